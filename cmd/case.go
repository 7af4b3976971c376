package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"panel/geometry"
	"panel/model"
)

// Case describes one analysis. Angles are in degrees.
type Case struct {
	Method   string  `toml:"method"`
	Velocity float64 `toml:"velocity"`
	Alpha    float64 `toml:"alpha"`

	Sweep    SweepRange   `toml:"sweep"`
	Geometry CaseGeometry `toml:"geometry"`

	// 压力系数图 / 升力曲线图
	Output string `toml:"output"`
	// 物体轮廓图
	BodyOutput string `toml:"body_output"`
	// 实验升力数据, 两列: 攻角(度), cl
	Experimental          string `toml:"experimental"`
	ExperimentalSeparator string `toml:"experimental_separator"`
}

type SweepRange struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Step float64 `toml:"step"`
}

// CaseGeometry picks the body: a coordinate file, a NACA section or a circle,
// in that order of precedence.
type CaseGeometry struct {
	File             string        `toml:"file"`
	Separator        string        `toml:"separator"`
	NACA             string        `toml:"naca"`
	PointsPerSurface int           `toml:"points_per_surface"`
	Circle           *model.Circle `toml:"circle"`
}

// DefaultCase returns the default parameters.
func DefaultCase() *Case {
	return &Case{
		Method:   "source-vortex",
		Velocity: 1,
		Alpha:    0,
		Sweep:    SweepRange{Min: -4, Max: 10, Step: 1},
		Geometry: CaseGeometry{
			Separator:        ",",
			NACA:             "0012",
			PointsPerSurface: geometry.DefaultPointsPerSurface,
		},
		ExperimentalSeparator: ",",
	}
}

// ParseCase parses the TOML case file whose path is provided. Relative file
// names inside it are resolved against the case file's directory.
func ParseCase(path string) (*Case, error) {
	// case file overwrites default parameters
	c := DefaultCase()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("parse case %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse case %s: unknown keys %v", path, undecoded)
	}
	// 显式给出文件或圆时不再使用默认翼型
	if md.IsDefined("geometry", "file") || md.IsDefined("geometry", "circle") {
		if !md.IsDefined("geometry", "naca") {
			c.Geometry.NACA = ""
		}
	}

	dir := filepath.Dir(path)
	c.Geometry.File = resolve(dir, c.Geometry.File)
	c.Experimental = resolve(dir, c.Experimental)
	c.Output = resolve(dir, c.Output)
	c.BodyOutput = resolve(dir, c.BodyOutput)
	return c, nil
}

func resolve(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func separator(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case "space", " ":
		return ' ', nil
	case "tab", `\t`, "\t":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	return r, nil
}

// Model turns the case geometry into the shared body description, reading
// the coordinate file if there is one.
func (g CaseGeometry) Model() (model.Geometry, error) {
	if g.File == "" {
		return model.Geometry{
			NACA:             g.NACA,
			PointsPerSurface: g.PointsPerSurface,
			Circle:           g.Circle,
		}, nil
	}

	sep, err := separator(g.Separator)
	if err != nil {
		return model.Geometry{}, err
	}
	f, err := os.Open(g.File)
	if err != nil {
		return model.Geometry{}, err
	}
	defer f.Close()
	points, err := geometry.ImportPoints(f, sep)
	if err != nil {
		return model.Geometry{}, fmt.Errorf("%s: %w", g.File, err)
	}
	geo := model.Geometry{Points: make([][2]float64, len(points))}
	for i, p := range points {
		geo.Points[i] = [2]float64{p.X, p.Y}
	}
	return geo, nil
}

// ExperimentalLift reads the measured polar, if any.
func (c *Case) ExperimentalLift() ([]float64, []float64, error) {
	if c.Experimental == "" {
		return nil, nil, nil
	}
	sep, err := separator(c.ExperimentalSeparator)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(c.Experimental)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	alpha, cl, err := geometry.ImportTuples(f, sep)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", c.Experimental, err)
	}
	return alpha, cl, nil
}
