package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vfg2006/weathertrigger-console/internal/api"
	"github.com/vfg2006/weathertrigger-console/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console HTTP API",
	Long: `Starts the console HTTP API on HOST:PORT.

The saved session is restored on startup, the Meta integration is initialized
when a session exists and the request cache cleanup job starts in background.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.WithError(err).Error("Erro ao fechar o container")
		}
	}()

	if err := a.Start(ctx); err != nil {
		return err
	}
	logger.Info("Agendador de limpeza do cache iniciado")

	server, err := api.New(cfg, a, logger)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
