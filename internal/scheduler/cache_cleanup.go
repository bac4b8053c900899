package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
)

const defaultCleanupEvery = 60 * time.Second

// Cleaner é o cache cujas entradas vencidas são removidas periodicamente
type Cleaner interface {
	Cleanup() int
	Stats() requestcache.Stats
}

// CacheCleanupConfig representa a configuração do agendador de limpeza do cache
type CacheCleanupConfig struct {
	Every   time.Duration
	Enabled bool
}

// CacheCleanupService remove do cache de requisições as respostas mais antigas que o TTL padrão
type CacheCleanupService struct {
	scheduler *gocron.Scheduler
	config    CacheCleanupConfig
	cache     Cleaner
	logger    log.Logger
	now       func() time.Time

	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRemoved        int
	totalRuns          int

	manual sync.WaitGroup
}

func NewCacheCleanupService(cache Cleaner, appConfig *config.Config, logger log.Logger) *CacheCleanupService {
	cleanupConfig := CacheCleanupConfig{
		Every:   defaultCleanupEvery,
		Enabled: true,
	}
	if appConfig != nil {
		if appConfig.Cache.CleanupEvery > 0 {
			cleanupConfig.Every = appConfig.Cache.CleanupEvery
		}
		cleanupConfig.Enabled = appConfig.Cache.Enabled
	}

	logger = logger.WithField("component", "scheduler")

	logger.WithFields(log.Fields{
		"every":   cleanupConfig.Every.String(),
		"enabled": cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza do cache carregada")

	return &CacheCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// Start inicia o agendador; o primeiro ciclo roda após um intervalo completo
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info("Limpeza do cache desabilitada por configuração")
		return nil
	}

	s.logger.WithField("every", s.config.Every.String()).Info("Iniciando agendador de limpeza do cache")

	_, err := s.scheduler.Every(s.config.Every).WaitForSchedule().Do(s.runCleanup)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.logger.Info("Parando agendador de limpeza do cache")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheCleanupService) runCleanup() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		s.logger.Debug("Limpeza do cache já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	s.runMutex.Unlock()

	removed := s.cache.Cleanup()
	stats := s.cache.Stats()

	s.runMutex.Lock()
	s.running = false
	s.lastRemoved = removed
	s.totalRuns++
	s.lastRunCompletedAt = s.now()
	s.runMutex.Unlock()

	if removed > 0 {
		s.logger.WithFields(log.Fields{
			"removed": removed,
			"total":   stats.Total,
			"pending": stats.Pending,
		}).Info("Entradas vencidas removidas do cache")
	}
}

// TriggerManualRun dispara uma limpeza fora do agendamento
func (s *CacheCleanupService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		s.logger.Info("Limpeza do cache já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	s.logger.Info("Iniciando limpeza manual do cache")

	s.manual.Add(1)
	go func() {
		defer s.manual.Done()
		s.runCleanup()
	}()
}

// Wait aguarda as limpezas manuais em andamento
func (s *CacheCleanupService) Wait() {
	s.manual.Wait()
}

// GetStatus retorna o status atual do agendador
func (s *CacheCleanupService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	stats := s.cache.Stats()

	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_every":         s.config.Every.String(),
		"running":               s.running,
		"total_runs":            s.totalRuns,
		"last_removed":          s.lastRemoved,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"cache_total":           stats.Total,
		"cache_pending":         stats.Pending,
		"cache_cached":          stats.Cached,
	}
}
