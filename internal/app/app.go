// Package app monta o container de estado do console: armazenamento, cliente do
// backend, cache de requisições e todas as stores. É o único dono dessas
// instâncias; handlers e comandos recebem o container pronto.
package app

import (
	"context"
	"fmt"

	"github.com/vfg2006/weathertrigger-console/infrastructure/database"
	"github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/backendclient"
	"github.com/vfg2006/weathertrigger-console/infrastructure/repository"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/internal/scheduler"
	"github.com/vfg2006/weathertrigger-console/internal/tokenstorage"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/authenticating"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/automating"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/drafting"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/notifying"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
)

type App struct {
	Config *config.Config

	DB      *database.Connection
	Tokens  *tokenstorage.Storage
	Backend *backendclient.BackendClient
	Cache   *requestcache.Cache

	Notifications *notifying.Service
	Auth          *authenticating.Service
	Bus           *linking.Bus
	Meta          *linking.Store
	Campaigns     *campaigning.Store
	Automation    *automating.Service
	Wizard        *drafting.Wizard
	Scheduler     *scheduler.CacheCleanupService

	logger log.Logger
}

// New abre o armazenamento e constrói as stores na ordem de dependência
func New(ctx context.Context, cfg *config.Config, logger log.Logger) (*App, error) {
	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco %s: %w", cfg.Database.Driver, err)
	}

	tokens, err := tokenstorage.New(repository.NewKVRepository(conn), cfg.SecretKey)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	a := &App{
		Config: cfg,
		DB:     conn,
		Tokens: tokens,
		logger: logger.WithField("component", "app"),
	}

	a.Backend = backendclient.NewClient(cfg, tokens, logger)
	a.Cache = requestcache.New(cfg.Cache.DefaultTTL, requestcache.WithLogger(logger))

	a.Notifications = notifying.NewService(logger)
	a.Auth = authenticating.NewService(a.Backend, tokens, logger)
	a.Bus = linking.NewBus()
	a.Meta = linking.NewStore(cfg, a.Backend, a.Cache, a.Notifications, a.Bus, logger)
	a.Campaigns = campaigning.NewStore(cfg, a.Backend, a.Cache, a.Notifications, logger)
	a.Automation = automating.NewService(cfg, a.Backend, a.Cache, a.Notifications, logger)
	a.Wizard = drafting.NewWizard(a.Automation, a.Backend, a.Notifications, logger)
	a.Scheduler = scheduler.NewCacheCleanupService(a.Cache, cfg, logger)

	a.Backend.SetUnauthorizedHandler(a.handleUnauthorized)

	a.logger.WithFields(log.Fields{
		"driver":  conn.Driver(),
		"backend": cfg.Backend.BaseURL,
	}).Info("Container da aplicação inicializado")

	return a, nil
}

// handleUnauthorized roda depois que o cliente já apagou os tokens. Um 401 no
// perfil invalida tudo; nos demais endpoints basta encerrar a sessão.
func (a *App) handleUnauthorized(ctx context.Context, path string) {
	if path == backendclient.ProfilePath {
		a.logger.Warn("Perfil recusado pelo backend, reiniciando estado")
		a.ResetAll()
		return
	}

	a.logger.WithField("path", path).Warn("Sessão expirada, encerrando")
	if err := a.Auth.Logout(ctx); err != nil {
		a.logger.WithError(err).Error("Erro ao encerrar sessão após 401")
	}
}

// ResetAll volta todas as stores ao estado inicial. Os tokens persistidos não
// são tocados aqui.
func (a *App) ResetAll() {
	if h, ok := a.Meta.ActiveHandshake(); ok {
		h.Cancel()
	}

	a.Cache.Clear()
	a.Meta.Reset()
	a.Campaigns.Reset()
	a.Wizard.Reset()
	a.Notifications.Clear()
	a.Auth.ClearSession()

	a.logger.Info("Estado da aplicação reiniciado")
}

// Start restaura a sessão salva e inicia o agendador de limpeza
func (a *App) Start(ctx context.Context) error {
	if err := a.Auth.HydrateProfile(ctx); err != nil {
		a.logger.WithError(err).Warn("Não foi possível restaurar o perfil")
	}

	if a.Auth.IsAuthenticated() {
		a.Meta.Initialize(ctx)
	}

	if err := a.Scheduler.Start(ctx); err != nil {
		return fmt.Errorf("erro ao iniciar agendador: %w", err)
	}

	return nil
}

func (a *App) Close() error {
	if h, ok := a.Meta.ActiveHandshake(); ok {
		h.Cancel()
	}
	return a.DB.Close()
}
