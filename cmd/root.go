// Package cmd holds the command line interface: solve, sweep and serve.
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "conf/config.ini"

// NewRootCmd builds the command tree. Every call returns fresh commands and
// flags.
func NewRootCmd() *cobra.Command {
	var settings Settings
	root := &cobra.Command{
		Use:           "panel",
		Short:         "2D panel method solver for airfoils and closed bodies",
		Long:          `Source, vortex and combined source-vortex panel methods for inviscid flow around 2D bodies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			s, err := LoadSettings(path)
			if err != nil {
				return err
			}
			settings = *s
			log.SetLevel(settings.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().String("config", defaultConfigPath, "ini file with [calculator], [server], [plotting] and [log] sections")

	root.AddCommand(newSolveCmd(&settings), newSweepCmd(&settings), newServeCmd(&settings))
	return root
}

func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		log.WithError(err).Error("执行失败")
	}
	return err
}
