// Package plotting draws pressure distributions, body outlines and lift
// curves of solved panel problems.
package plotting

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"panel/calculator"
	"panel/geometry"
)

var ErrEmptyResult = errors.New("nothing to plot")

type Plotter struct {
	cfg Config
}

func NewPlotter(cfg Config) *Plotter {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultConfig.Height
	}
	return &Plotter{cfg: cfg}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Cp plots the pressure coefficient against x with the y axis inverted, the
// usual way of showing suction on top. Panels running in +x are drawn as
// the upper surface.
func (pl *Plotter) Cp(panels []geometry.Panel, res *calculator.Result) (*plot.Plot, error) {
	if res == nil || len(res.Cp) == 0 {
		return nil, ErrEmptyResult
	}
	if len(panels) != len(res.Cp) {
		return nil, fmt.Errorf("%d panels but %d pressure coefficients", len(panels), len(res.Cp))
	}

	var upper, lower plotter.XYs
	for i, p := range panels {
		xy := plotter.XY{X: p.Control.X, Y: res.Cp[i]}
		if p.Dx > 0 {
			upper = append(upper, xy)
		} else {
			lower = append(lower, xy)
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, α = %.2f°", res.Method, degrees(res.Alpha))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "Cp"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	var args []interface{}
	if len(upper) > 0 {
		args = append(args, "upper", upper)
	}
	if len(lower) > 0 {
		args = append(args, "lower", lower)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, err
	}
	return p, nil
}

// Body draws the panel outline with control points coloured by Cp.
func (pl *Plotter) Body(panels []geometry.Panel, res *calculator.Result) (*plot.Plot, error) {
	if len(panels) == 0 {
		return nil, ErrEmptyResult
	}

	p := plot.New()
	p.Title.Text = "body"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for _, seg := range outline(panels) {
		line, err := plotter.NewLine(seg)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(0)
		p.Add(line)
	}

	if res != nil && len(res.Cp) == len(panels) {
		controls := make(plotter.XYs, len(panels))
		for i, pn := range panels {
			controls[i] = plotter.XY{X: pn.Control.X, Y: pn.Control.Y}
		}
		scatter, err := plotter.NewScatter(controls)
		if err != nil {
			return nil, err
		}
		cmap := moreland.SmoothBlueRed()
		lo, hi := bounds(res.Cp)
		cmap.SetMin(lo)
		cmap.SetMax(hi)
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			style := draw.GlyphStyle{Shape: draw.CircleGlyph{}, Radius: vg.Points(2.5)}
			c, err := cmap.At(res.Cp[i])
			if err != nil {
				c = plotutil.Color(1)
			}
			style.Color = c
			return style
		}
		p.Add(scatter)
	}

	// 等比例显示
	xmin, xmax := p.X.Min, p.X.Max
	ymin, ymax := p.Y.Min, p.Y.Max
	span := math.Max(xmax-xmin, ymax-ymin) / 2
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	p.X.Min, p.X.Max = cx-span, cx+span
	p.Y.Min, p.Y.Max = cy-span, cy+span
	return p, nil
}

// outline splits the panel chain wherever it does not join up, so a dropped
// trailing-edge panel shows as a gap rather than a false edge.
func outline(panels []geometry.Panel) []plotter.XYs {
	var segs []plotter.XYs
	cur := plotter.XYs{{X: panels[0].Start.X, Y: panels[0].Start.Y}}
	for i, p := range panels {
		if i > 0 {
			prev := panels[i-1].End
			if math.Hypot(p.Start.X-prev.X, p.Start.Y-prev.Y) > 1e-8 {
				segs = append(segs, cur)
				cur = plotter.XYs{{X: p.Start.X, Y: p.Start.Y}}
			}
		}
		cur = append(cur, plotter.XY{X: p.End.X, Y: p.End.Y})
	}
	return append(segs, cur)
}

func bounds(vs []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}

// CircleCp compares a circular cylinder solution with cp = 1 - 4 sin²θ.
func (pl *Plotter) CircleCp(panels []geometry.Panel, res *calculator.Result) (*plot.Plot, error) {
	if res == nil || len(res.Cp) == 0 || len(panels) != len(res.Cp) {
		return nil, ErrEmptyResult
	}

	pts := make(plotter.XYs, len(panels))
	for i, p := range panels {
		theta := math.Atan2(p.Control.Y, p.Control.X)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		pts[i] = plotter.XY{X: degrees(theta), Y: res.Cp[i]}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("circle, %d panels", len(panels))
	p.X.Label.Text = "θ (°)"
	p.Y.Label.Text = "Cp"
	p.Add(plotter.NewGrid())

	exact := plotter.NewFunction(func(deg float64) float64 {
		s := math.Sin(deg * math.Pi / 180)
		return 1 - 4*s*s
	})
	exact.XMin, exact.XMax = 0, 360
	exact.Samples = 361
	exact.Color = plotutil.Color(0)
	p.Add(exact)
	p.Legend.Add("analytic", exact)

	if err := plotutil.AddScatters(p, res.Method.String(), pts); err != nil {
		return nil, err
	}
	p.X.Min, p.X.Max = 0, 360
	return p, nil
}

// LiftCurve plots cl against α for a sweep. expAlpha (degrees) and expCl
// are an optional measured polar drawn as markers.
func (pl *Plotter) LiftCurve(results []*calculator.Result, expAlpha, expCl []float64) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, ErrEmptyResult
	}
	if len(expAlpha) != len(expCl) {
		return nil, fmt.Errorf("experimental data has %d angles but %d lift coefficients", len(expAlpha), len(expCl))
	}

	pts := make(plotter.XYs, len(results))
	for i, r := range results {
		pts[i] = plotter.XY{X: degrees(r.Alpha), Y: r.Cl}
	}

	p := plot.New()
	p.Title.Text = "lift curve"
	p.X.Label.Text = "α (°)"
	p.Y.Label.Text = "Cl"
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLinePoints(p, results[0].Method.String(), pts); err != nil {
		return nil, err
	}
	if len(expAlpha) > 0 {
		exp := make(plotter.XYs, len(expAlpha))
		for i := range expAlpha {
			exp[i] = plotter.XY{X: expAlpha[i], Y: expCl[i]}
		}
		scatter, err := plotter.NewScatter(exp)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Shape = draw.CrossGlyph{}
		scatter.GlyphStyle.Color = plotutil.Color(1)
		p.Add(scatter)
		p.Legend.Add("experiment", scatter)
	}
	return p, nil
}

func (pl *Plotter) size() (vg.Length, vg.Length) {
	return vg.Length(pl.cfg.Width) * vg.Centimeter, vg.Length(pl.cfg.Height) * vg.Centimeter
}

// Save writes the plot to path; the format follows the file extension.
func (pl *Plotter) Save(p *plot.Plot, path string) error {
	w, h := pl.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"file":   path,
		"format": strings.TrimPrefix(filepath.Ext(path), "."),
	}).Info("图已保存")
	return nil
}

// Write renders the plot to w in the given format (png, svg, pdf, ...).
func (pl *Plotter) Write(p *plot.Plot, w io.Writer, format string) error {
	width, height := pl.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
