package cmd

import (
	"github.com/spf13/cobra"

	"panel/model"
)

// addCaseFlags registers the flags shared by solve and sweep. A flag given on
// the command line overrides the case file.
func addCaseFlags(cmd *cobra.Command) {
	d := DefaultCase()
	cmd.Flags().StringP("case", "c", "", "TOML case file")
	cmd.Flags().StringP("method", "m", d.Method, "panel method: source, vortex or source-vortex")
	cmd.Flags().Float64P("velocity", "v", d.Velocity, "freestream velocity")
	cmd.Flags().String("naca", d.Geometry.NACA, "NACA 4-digit designation")
	cmd.Flags().Int("naca-points", d.Geometry.PointsPerSurface, "points per surface of the NACA section")
	cmd.Flags().StringP("points", "p", "", "two-column coordinate file of the body")
	cmd.Flags().String("separator", d.Geometry.Separator, "column separator of the coordinate file (\",\", space, tab)")
	cmd.Flags().Float64("circle", 0, "radius of a circular body, replaces the airfoil")
	cmd.Flags().Int("divisions", 36, "panel count of the circular body")
	cmd.Flags().StringP("out", "o", "", "output image, format from the extension (png, svg, pdf)")
	cmd.Flags().String("body-out", "", "output image of the body outline")
}

func loadCase(cmd *cobra.Command) (*Case, error) {
	flags := cmd.Flags()
	c := DefaultCase()
	if path, _ := flags.GetString("case"); path != "" {
		var err error
		if c, err = ParseCase(path); err != nil {
			return nil, err
		}
	}

	if flags.Changed("method") {
		c.Method, _ = flags.GetString("method")
	}
	if flags.Changed("velocity") {
		c.Velocity, _ = flags.GetFloat64("velocity")
	}
	if flags.Changed("naca") {
		c.Geometry.NACA, _ = flags.GetString("naca")
		c.Geometry.File = ""
		c.Geometry.Circle = nil
	}
	if flags.Changed("naca-points") {
		c.Geometry.PointsPerSurface, _ = flags.GetInt("naca-points")
	}
	if flags.Changed("points") {
		c.Geometry.File, _ = flags.GetString("points")
	}
	if flags.Changed("separator") {
		c.Geometry.Separator, _ = flags.GetString("separator")
	}
	if flags.Changed("circle") || flags.Changed("divisions") {
		radius, _ := flags.GetFloat64("circle")
		divisions, _ := flags.GetInt("divisions")
		if c.Geometry.Circle != nil && !flags.Changed("circle") {
			radius = c.Geometry.Circle.Radius
		}
		c.Geometry.Circle = &model.Circle{Radius: radius, Divisions: divisions}
		c.Geometry.NACA = ""
		c.Geometry.File = ""
	}
	if flags.Changed("out") {
		c.Output, _ = flags.GetString("out")
	}
	if flags.Changed("body-out") {
		c.BodyOutput, _ = flags.GetString("body-out")
	}
	return c, nil
}
