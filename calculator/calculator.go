package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"panel/geometry"
)

// Method selects the singularity distribution.
type Method int

const (
	Source       Method = iota // 源面元法
	Vortex                     // 涡面元法 + Kutta 条件
	SourceVortex               // 源 + 统一涡强, Kutta 条件
)

func (m Method) String() string {
	switch m {
	case Source:
		return "source"
	case Vortex:
		return "vortex"
	case SourceVortex:
		return "source-vortex"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// HasMoment reports whether the method produces a pitching moment.
func (m Method) HasMoment() bool {
	return m == Vortex || m == SourceVortex
}

// HasAccuracy reports whether the method carries source strengths whose
// weighted sum is the leak diagnostic.
func (m Method) HasAccuracy() bool {
	return m == Source || m == SourceVortex
}

func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source", "spm":
		return Source, nil
	case "vortex", "vpm":
		return Vortex, nil
	case "source-vortex", "sourcevortex", "svpm":
		return SourceVortex, nil
	}
	return 0, fmt.Errorf("%w: unknown panel method %q", ErrInvalidInput, s)
}

var ErrInvalidInput = errors.New("invalid input")

// Calculator solves one panel method over a panel sequence.
type Calculator interface {
	Method() Method

	// 组装线性方程组 A x = b
	Assemble(panels []geometry.Panel, vInf float64) (*mat.Dense, *mat.VecDense, error)

	// 求解面元强度; SourceVortex 最后一个分量为统一涡强
	Strengths(panels []geometry.Panel, vInf float64) (*mat.VecDense, error)

	// 压力系数及升力、阻力、力矩系数
	Coefficients(panels []geometry.Panel, vInf, alpha float64) (*Result, error)
}

type calculator struct {
	method Method
	cfg    Config
	e      *executor
}

func NewCalculator(method Method, cfg Config) (Calculator, error) {
	if method < Source || method > SourceVortex {
		return nil, fmt.Errorf("%w: unknown panel method %d", ErrInvalidInput, int(method))
	}
	return &calculator{
		method: method,
		cfg:    cfg,
		e:      newExecutor(cfg.Workers),
	}, nil
}

func (c *calculator) Method() Method {
	return c.method
}

func (c *calculator) Assemble(panels []geometry.Panel, vInf float64) (*mat.Dense, *mat.VecDense, error) {
	if err := checkInput(panels, vInf); err != nil {
		return nil, nil, err
	}
	switch c.method {
	case Vortex:
		a, b := c.assembleVortex(panels, vInf)
		return a, b, nil
	case SourceVortex:
		a, b := c.assembleSourceVortex(panels, vInf)
		return a, b, nil
	}
	a, b := c.assembleSource(panels, vInf)
	return a, b, nil
}

func (c *calculator) Strengths(panels []geometry.Panel, vInf float64) (*mat.VecDense, error) {
	start := time.Now()
	a, b, err := c.Assemble(panels, vInf)
	if err != nil {
		return nil, err
	}
	assembled := time.Since(start)

	x, err := solve(a, b)
	if err != nil {
		log.WithFields(log.Fields{
			"method": c.method,
			"panels": len(panels),
		}).WithError(err).Error("面元强度求解失败")
		return nil, err
	}
	log.WithFields(log.Fields{
		"method":   c.method,
		"panels":   len(panels),
		"assemble": assembled,
		"solve":    time.Since(start) - assembled,
	}).Debug("面元强度求解完成")
	return x, nil
}

func (c *calculator) Coefficients(panels []geometry.Panel, vInf, alpha float64) (*Result, error) {
	start := time.Now()
	x, err := c.Strengths(panels, vInf)
	if err != nil {
		return nil, err
	}
	res := c.evaluate(panels, x, vInf, alpha)
	res.Duration = time.Since(start)

	if res.HasAccuracy() && c.cfg.LeakTolerance > 0 {
		if err := res.Leak(c.cfg.LeakTolerance); err != nil {
			log.WithFields(log.Fields{
				"method":   c.method,
				"accuracy": res.Accuracy,
				"relative": res.RelativeLeak(),
			}).Warn("源强总和偏离 0, 请检查几何是否闭合")
		}
	}
	return res, nil
}

func checkInput(panels []geometry.Panel, vInf float64) error {
	if !(vInf > 0) || math.IsInf(vInf, 0) {
		return fmt.Errorf("%w: freestream velocity must be positive and finite, got %g", ErrInvalidInput, vInf)
	}
	if len(panels) < 3 {
		return fmt.Errorf("%w: at least 3 panels are needed, got %d", ErrInvalidInput, len(panels))
	}
	return nil
}

// RunClosed is the entry point for panels supplied directly rather than built
// by geometry.NewPanels: the chain must close before anything is solved.
func RunClosed(c Calculator, panels []geometry.Panel, vInf, alpha float64) (*Result, error) {
	if err := geometry.CheckClosed(panels); err != nil {
		return nil, err
	}
	return c.Coefficients(panels, vInf, alpha)
}

// Sweep solves the same body at each angle of attack (radians). The panels
// are copied and only their Beta changes between runs.
func Sweep(c Calculator, panels []geometry.Panel, vInf float64, alphas []float64) ([]*Result, error) {
	work := make([]geometry.Panel, len(panels))
	copy(work, panels)

	results := make([]*Result, 0, len(alphas))
	for _, alpha := range alphas {
		geometry.SetAlpha(work, alpha)
		res, err := c.Coefficients(work, vInf, alpha)
		if err != nil {
			return nil, fmt.Errorf("alpha %g: %w", alpha, err)
		}
		results = append(results, res)
	}
	return results, nil
}
