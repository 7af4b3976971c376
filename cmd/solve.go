package cmd

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"panel/calculator"
	"panel/geometry"
	"panel/plotting"
)

func newSolveCmd(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one angle of attack and print the coefficients",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCase(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("alpha") {
				c.Alpha, _ = cmd.Flags().GetFloat64("alpha")
			}
			return runSolve(cmd.OutOrStdout(), settings, c)
		},
	}
	addCaseFlags(cmd)
	cmd.Flags().Float64P("alpha", "a", 0, "angle of attack in degrees")
	return cmd
}

func newCalculator(settings *Settings, method string) (calculator.Calculator, error) {
	m, err := calculator.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return calculator.NewCalculator(m, settings.Calculator)
}

func runSolve(out io.Writer, settings *Settings, c *Case) error {
	calc, err := newCalculator(settings, c.Method)
	if err != nil {
		return err
	}
	geo, err := c.Geometry.Model()
	if err != nil {
		return err
	}
	alpha := c.Alpha * math.Pi / 180
	panels, err := geometry.Build(geo, alpha)
	if err != nil {
		return err
	}
	res, err := calc.Coefficients(panels, c.Velocity, alpha)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"method":   res.Method,
		"panels":   len(panels),
		"duration": res.Duration,
	}).Debug("求解完成")

	if err := printResult(out, res); err != nil {
		return err
	}

	pl := plotting.NewPlotter(settings.Plotting)
	if c.Output != "" {
		plotCp := pl.Cp
		if geo.Circle != nil && len(geo.Points) == 0 && geo.NACA == "" {
			plotCp = pl.CircleCp
		}
		p, err := plotCp(panels, res)
		if err != nil {
			return err
		}
		if err := pl.Save(p, c.Output); err != nil {
			return err
		}
	}
	if c.BodyOutput != "" {
		p, err := pl.Body(panels, res)
		if err != nil {
			return err
		}
		if err := pl.Save(p, c.BodyOutput); err != nil {
			return err
		}
	}
	return nil
}

func printResult(out io.Writer, res *calculator.Result) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "method\t%s\n", res.Method)
	fmt.Fprintf(w, "alpha\t%.4f°\n", res.Alpha*180/math.Pi)
	fmt.Fprintf(w, "panels\t%d\n", len(res.Cp))
	fmt.Fprintf(w, "cl\t%.6f\n", res.Cl)
	fmt.Fprintf(w, "cd\t%.6f\n", res.Cd)
	if res.HasMoment() {
		fmt.Fprintf(w, "cm\t%.6f\n", res.Cm)
	}
	if res.HasAccuracy() {
		fmt.Fprintf(w, "accuracy\t%.3e\n", res.Accuracy)
	}
	if res.Method != calculator.Source {
		fmt.Fprintf(w, "circulation\t%.6f\n", res.Circulation)
	}
	return w.Flush()
}
