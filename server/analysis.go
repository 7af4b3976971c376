package server

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"panel/calculator"
	"panel/geometry"
	"panel/model"
)

// Analysis runs solve and sweep requests. One calculator per method is
// shared by all connections.
type Analysis struct {
	calculators map[calculator.Method]calculator.Calculator
	maxSweep    int
	maxPanels   int
}

// NewAnalysis caps each request at maxSweepPoints angles and maxPanels
// boundary points; a non-positive limit disables the cap.
func NewAnalysis(cfg calculator.Config, maxSweepPoints, maxPanels int) *Analysis {
	a := &Analysis{
		calculators: make(map[calculator.Method]calculator.Calculator),
		maxSweep:    maxSweepPoints,
		maxPanels:   maxPanels,
	}
	for _, m := range []calculator.Method{calculator.Source, calculator.Vortex, calculator.SourceVortex} {
		c, err := calculator.NewCalculator(m, cfg)
		if err != nil {
			// 三种方法都是合法的
			panic(err)
		}
		a.calculators[m] = c
	}
	return a
}

func (a *Analysis) calculator(method string, velocity float64) (calculator.Calculator, float64, error) {
	m := calculator.SourceVortex
	if method != "" {
		var err error
		if m, err = calculator.ParseMethod(method); err != nil {
			return nil, 0, err
		}
	}
	// 未给出来流速度时取 1
	if velocity == 0 {
		velocity = 1
	}
	return a.calculators[m], velocity, nil
}

// build checks the requested size before generating any panels, the
// matrix grows with the square of the panel count.
func (a *Analysis) build(g model.Geometry, alpha float64) ([]geometry.Panel, error) {
	if n := geometry.PointCount(g); a.maxPanels > 0 && n > a.maxPanels {
		return nil, fmt.Errorf("%w: geometry has %d points, limit is %d", calculator.ErrInvalidInput, n, a.maxPanels)
	}
	return geometry.Build(g, alpha)
}

func (a *Analysis) Solve(req model.SolveRequest) (*model.SolveResponse, error) {
	c, vInf, err := a.calculator(req.Method, req.Velocity)
	if err != nil {
		return nil, err
	}
	alpha := req.AlphaDeg * math.Pi / 180
	panels, err := a.build(req.Geometry, alpha)
	if err != nil {
		return nil, err
	}
	res, err := c.Coefficients(panels, vInf, alpha)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"method": res.Method,
		"alpha":  req.AlphaDeg,
		"panels": len(panels),
		"cl":     res.Cl,
	}).Info("计算完成")
	return solveResponse(req.AlphaDeg, res), nil
}

func solveResponse(alphaDeg float64, res *calculator.Result) *model.SolveResponse {
	resp := &model.SolveResponse{
		Method:     res.Method.String(),
		AlphaDeg:   alphaDeg,
		Cl:         res.Cl,
		Cd:         res.Cd,
		Panels:     make([]model.PanelResult, len(res.Cp)),
		DurationMs: res.Duration.Milliseconds(),
	}
	if res.HasMoment() {
		cm := res.Cm
		resp.Cm = &cm
	}
	if res.HasAccuracy() {
		acc := res.Accuracy
		resp.Accuracy = &acc
	}
	if res.Method != calculator.Source {
		circ := res.Circulation
		resp.Circulation = &circ
	}
	for i := range res.Cp {
		resp.Panels[i] = model.PanelResult{
			X:        res.ControlPoints[i].X,
			Y:        res.ControlPoints[i].Y,
			Cp:       res.Cp[i],
			Velocity: res.Velocities[i],
			Strength: res.Strengths[i],
		}
	}
	return resp
}

func (a *Analysis) Sweep(req model.SweepRequest) (*model.SweepResponse, error) {
	c, vInf, err := a.calculator(req.Method, req.Velocity)
	if err != nil {
		return nil, err
	}
	degs, err := calculator.AlphaRange(req.AlphaMinDeg, req.AlphaMaxDeg, req.StepDeg, a.maxSweep)
	if err != nil {
		return nil, err
	}
	alphas := make([]float64, len(degs))
	for i, d := range degs {
		alphas[i] = d * math.Pi / 180
	}

	panels, err := a.build(req.Geometry, alphas[0])
	if err != nil {
		return nil, err
	}
	results, err := calculator.Sweep(c, panels, vInf, alphas)
	if err != nil {
		return nil, err
	}

	resp := &model.SweepResponse{
		Method: c.Method().String(),
		Points: make([]model.SweepPoint, len(results)),
	}
	for i, res := range results {
		pt := model.SweepPoint{AlphaDeg: degs[i], Cl: res.Cl, Cd: res.Cd}
		if res.HasMoment() {
			cm := res.Cm
			pt.Cm = &cm
		}
		resp.Points[i] = pt
	}
	log.WithFields(log.Fields{
		"method": resp.Method,
		"angles": len(degs),
		"panels": len(panels),
	}).Info("攻角扫描完成")
	return resp, nil
}
