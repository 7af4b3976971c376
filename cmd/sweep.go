package cmd

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"panel/calculator"
	"panel/geometry"
	"panel/plotting"
)

func newSweepCmd(settings *Settings) *cobra.Command {
	d := DefaultCase()
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve a range of angles of attack and plot the lift curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCase(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("alpha-min") {
				c.Sweep.Min, _ = flags.GetFloat64("alpha-min")
			}
			if flags.Changed("alpha-max") {
				c.Sweep.Max, _ = flags.GetFloat64("alpha-max")
			}
			if flags.Changed("step") {
				c.Sweep.Step, _ = flags.GetFloat64("step")
			}
			if flags.Changed("experimental") {
				c.Experimental, _ = flags.GetString("experimental")
			}
			return runSweep(cmd.OutOrStdout(), settings, c)
		},
	}
	addCaseFlags(cmd)
	cmd.Flags().Float64("alpha-min", d.Sweep.Min, "first angle of attack in degrees")
	cmd.Flags().Float64("alpha-max", d.Sweep.Max, "last angle of attack in degrees")
	cmd.Flags().Float64("step", d.Sweep.Step, "angle step in degrees")
	cmd.Flags().String("experimental", "", "two-column file of measured alpha (degrees) and cl")
	return cmd
}

func runSweep(out io.Writer, settings *Settings, c *Case) error {
	calc, err := newCalculator(settings, c.Method)
	if err != nil {
		return err
	}
	degs, err := calculator.AlphaRange(c.Sweep.Min, c.Sweep.Max, c.Sweep.Step, settings.Server.MaxSweepPoints)
	if err != nil {
		return err
	}
	alphas := make([]float64, len(degs))
	for i, d := range degs {
		alphas[i] = d * math.Pi / 180
	}

	geo, err := c.Geometry.Model()
	if err != nil {
		return err
	}
	panels, err := geometry.Build(geo, alphas[0])
	if err != nil {
		return err
	}
	results, err := calculator.Sweep(calc, panels, c.Velocity, alphas)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "alpha\tcl\tcd\tcm")
	for i, res := range results {
		cm := "-"
		if res.HasMoment() {
			cm = fmt.Sprintf("%.6f", res.Cm)
		}
		fmt.Fprintf(w, "%.2f\t%.6f\t%.6f\t%s\n", degs[i], res.Cl, res.Cd, cm)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.Output == "" {
		return nil
	}
	expAlpha, expCl, err := c.ExperimentalLift()
	if err != nil {
		return err
	}
	pl := plotting.NewPlotter(settings.Plotting)
	p, err := pl.LiftCurve(results, expAlpha, expCl)
	if err != nil {
		return err
	}
	return pl.Save(p, c.Output)
}
