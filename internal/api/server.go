package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler/router"
	"github.com/vfg2006/weathertrigger-console/internal/app"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	logger     log.Logger
}

// New monta o roteador do console sobre o container da aplicação
func New(cfg *config.Config, a *app.App, logger log.Logger) (*Server, error) {
	logger = logger.WithField("component", "server")

	cronServices := handler.CronJobServices{
		CacheCleanup: a.Scheduler,
	}

	rt := Handler(cfg, a, cronServices, logger)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           rt,
			ReadHeaderTimeout: 2 * time.Second,
		},
		logger: logger,
	}

	return srv, nil
}

// Handler devolve o roteador completo com a cadeia de middlewares
func Handler(cfg *config.Config, a *app.App, cronServices handler.CronJobServices, logger log.Logger) http.Handler {
	opener := handler.NewPopupOpener()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(a.Auth)...),
		router.WithRoutes(handler.Meta(a.Meta, opener, cfg.Meta.CallbackPath)...),
		router.WithRoutes(handler.Campaigns(a.Campaigns)...),
		router.WithRoutes(handler.AdAccounts(a.Campaigns)...),
		router.WithRoutes(handler.Rules(a.Automation, a.Wizard)...),
		router.WithRoutes(handler.Notification(a.Notifications)...),
		router.WithRoutes(handler.UserPreferences(a.Tokens)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.SessionGuard(a.Auth,
			handler.PathHealthcheck,
			handler.PathLogin,
			handler.PathRegister,
			handler.PathProfile,
			cfg.Meta.CallbackPath,
		),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		s.logger.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		s.logger.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		s.logger.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		s.logger.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	s.logger.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info("Servidor HTTP desligado com sucesso")
	return nil
}
