package cmd

import (
	"github.com/spf13/cobra"

	"panel/server"
)

func newServeCmd(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the websocket analysis service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr, _ = cmd.Flags().GetString("addr")
			}
			return server.NewServerFromConfig(cfg, settings.Calculator).Serve()
		},
	}
	cmd.Flags().String("addr", server.DefaultConfig.Addr, "listen address, overrides [server] Addr")
	return cmd
}
