package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/usecase-agent/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = a.cfg.Server.Port
		}

		var history server.LinkHistory
		if a.recorder != nil {
			history = a.recorder
		}

		srv := server.NewServer(a.pipeline, history, a.cfg.Server.DefaultSubject, a.log)
		r := srv.SetupRouter()

		a.log.Info("starting server", zap.String("port", port))
		return r.Run(":" + port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (default: server.port or $PORT)")
	rootCmd.AddCommand(serveCmd)
}
