package plotting

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gopkg.in/ini.v1"

	"panel/calculator"
	"panel/geometry"
)

var pngMagic = []byte("\x89PNG")

func nacaResult(t *testing.T, method calculator.Method, alphaDeg float64) ([]geometry.Panel, *calculator.Result) {
	alpha := alphaDeg * math.Pi / 180
	points, err := geometry.NACA4("2412", 30)
	require.NoError(t, err)
	panels, err := geometry.NewPanels(geometry.Orient(points), alpha)
	require.NoError(t, err)
	c, err := calculator.NewCalculator(method, calculator.DefaultConfig)
	require.NoError(t, err)
	res, err := c.Coefficients(panels, 1, alpha)
	require.NoError(t, err)
	return panels, res
}

func TestCpPlot(t *testing.T) {
	panels, res := nacaResult(t, calculator.SourceVortex, 4)
	pl := NewPlotter(DefaultConfig)

	p, err := pl.Cp(panels, res)
	require.NoError(t, err)
	// 压力系数轴反向
	require.IsType(t, plot.InvertedScale{}, p.Y.Scale)

	var buf bytes.Buffer
	require.NoError(t, pl.Write(p, &buf, "png"))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	_, err = pl.Cp(panels[1:], res)
	require.Error(t, err)
	_, err = pl.Cp(panels, nil)
	require.ErrorIs(t, err, ErrEmptyResult)
}

func TestBodyPlot(t *testing.T) {
	panels, res := nacaResult(t, calculator.Vortex, 2)
	pl := NewPlotter(Config{Width: 8, Height: 8})

	p, err := pl.Body(panels, res)
	require.NoError(t, err)
	require.InDelta(t, p.X.Max-p.X.Min, p.Y.Max-p.Y.Min, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, pl.Write(p, &buf, "svg"))
	require.Contains(t, buf.String(), "<svg")

	_, err = pl.Body(nil, nil)
	require.ErrorIs(t, err, ErrEmptyResult)
}

func TestOutlineGap(t *testing.T) {
	points, err := geometry.NACA4("0012", 20)
	require.NoError(t, err)
	panels, err := geometry.NewPanels(geometry.Orient(points), 0)
	require.NoError(t, err)

	// 竖直尾缘面元被丢弃, 轮廓从下尾缘画到上尾缘
	segs := outline(panels)
	require.Len(t, segs, 1)
	require.Len(t, segs[0], len(panels)+1)

	circle, err := geometry.CirclePanels(1, 12, 0)
	require.NoError(t, err)
	require.Len(t, outline(geometry.ReversePanels(circle)), 1)
	require.Len(t, outline(circle), len(circle))
}

func TestCircleCpPlot(t *testing.T) {
	panels, err := geometry.CirclePanels(1, 24, 0)
	require.NoError(t, err)
	panels = geometry.ReversePanels(panels)
	c, err := calculator.NewCalculator(calculator.Source, calculator.DefaultConfig)
	require.NoError(t, err)
	res, err := c.Coefficients(panels, 1, 0)
	require.NoError(t, err)

	pl := NewPlotter(DefaultConfig)
	p, err := pl.CircleCp(panels, res)
	require.NoError(t, err)
	require.Equal(t, 0.0, p.X.Min)
	require.Equal(t, 360.0, p.X.Max)

	path := filepath.Join(t.TempDir(), "circle.png")
	require.NoError(t, pl.Save(p, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestLiftCurvePlot(t *testing.T) {
	points, err := geometry.NACA4("0012", 30)
	require.NoError(t, err)
	panels, err := geometry.NewPanels(geometry.Orient(points), 0)
	require.NoError(t, err)
	c, err := calculator.NewCalculator(calculator.SourceVortex, calculator.DefaultConfig)
	require.NoError(t, err)
	alphas := []float64{-0.05, 0, 0.05, 0.1}
	results, err := calculator.Sweep(c, panels, 1, alphas)
	require.NoError(t, err)

	pl := NewPlotter(DefaultConfig)
	p, err := pl.LiftCurve(results, []float64{0, 4, 8}, []float64{0, 0.44, 0.85})
	require.NoError(t, err)
	require.LessOrEqual(t, p.X.Min, -2.8)

	_, err = pl.LiftCurve(results, []float64{0}, nil)
	require.Error(t, err)
	_, err = pl.LiftCurve(nil, nil, nil)
	require.ErrorIs(t, err, ErrEmptyResult)
}

func TestLoadConfig(t *testing.T) {
	file, err := ini.Load([]byte("[plotting]\nWidth = 20\n"))
	require.NoError(t, err)
	cfg := LoadConfig(file)
	require.Equal(t, 20.0, cfg.Width)
	require.Equal(t, DefaultConfig.Height, cfg.Height)

	pl := NewPlotter(Config{})
	require.Equal(t, DefaultConfig, pl.cfg)
}
