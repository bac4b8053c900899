package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/weathertrigger-console/internal/app"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

var (
	cfg     *config.Config
	logger  log.Logger
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Weather-triggered ads management console",
	Long: `Console for the weather-triggered advertising platform.

Runs the local HTTP console with "serve", or drives the same stores from the
terminal: sign in, list campaigns and check the Meta integration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewConfig()
		if err != nil {
			return err
		}

		lvl := log.Configure(cfg.App.LogLevel)
		logger = log.Default()
		logger.Debugf("Nível de log configurado para: %s", lvl)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Timeout for terminal commands")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(campaignsCmd)
	rootCmd.AddCommand(metaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withApp monta o container, roda fn e fecha o armazenamento ao final
func withApp(fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.WithError(err).Warn("Erro ao fechar o container")
		}
	}()

	return fn(ctx, a)
}

// requireSession restaura a sessão salva; sem ela o comando não prossegue
func requireSession(ctx context.Context, a *app.App) error {
	if err := a.Auth.HydrateProfile(ctx); err != nil {
		logger.WithError(err).Debug("Perfil não restaurado")
	}

	if !a.Auth.IsAuthenticated() {
		return fmt.Errorf("%s: Please log in to continue", apiErrors.ErrSessionRequired)
	}
	return nil
}
