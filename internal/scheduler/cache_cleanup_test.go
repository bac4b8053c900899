package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
)

type fakeCleaner struct {
	calls   atomic.Int32
	removed int
	stats   requestcache.Stats
}

func (f *fakeCleaner) Cleanup() int {
	f.calls.Add(1)
	return f.removed
}

func (f *fakeCleaner) Stats() requestcache.Stats {
	return f.stats
}

func TestNewCacheCleanupService_Configuracao(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.Config
		wantEvery   time.Duration
		wantEnabled bool
	}{
		{
			name:        "Sem configuração usa padrão",
			cfg:         nil,
			wantEvery:   60 * time.Second,
			wantEnabled: true,
		},
		{
			name:        "Intervalo configurado",
			cfg:         &config.Config{Cache: config.Cache{CleanupEvery: 5 * time.Second, Enabled: true}},
			wantEvery:   5 * time.Second,
			wantEnabled: true,
		},
		{
			name:        "Intervalo zerado volta ao padrão",
			cfg:         &config.Config{Cache: config.Cache{Enabled: false}},
			wantEvery:   60 * time.Second,
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCacheCleanupService(&fakeCleaner{}, tt.cfg, log.Discard())

			assert.Equal(t, tt.wantEvery, s.config.Every)
			assert.Equal(t, tt.wantEnabled, s.config.Enabled)
		})
	}
}

func TestRunCleanup_AtualizaStatus(t *testing.T) {
	cleaner := &fakeCleaner{removed: 3, stats: requestcache.Stats{Total: 2, Cached: 2}}
	s := NewCacheCleanupService(cleaner, nil, log.Discard())

	started := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return started }

	s.runCleanup()

	status := s.GetStatus()
	assert.Equal(t, int32(1), cleaner.calls.Load())
	assert.Equal(t, 1, status["total_runs"])
	assert.Equal(t, 3, status["last_removed"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, started, status["last_run_started_at"])
	assert.Equal(t, started, status["last_run_completed_at"])
	assert.Equal(t, 2, status["cache_total"])
}

func TestRunCleanup_IgnoraQuandoJaEmAndamento(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := NewCacheCleanupService(cleaner, nil, log.Discard())
	s.running = true

	s.runCleanup()
	s.TriggerManualRun()
	s.Wait()

	assert.Equal(t, int32(0), cleaner.calls.Load())
}

func TestTriggerManualRun(t *testing.T) {
	cleaner := &fakeCleaner{removed: 1}
	s := NewCacheCleanupService(cleaner, nil, log.Discard())

	s.TriggerManualRun()
	s.Wait()

	assert.Equal(t, int32(1), cleaner.calls.Load())
	assert.Equal(t, 1, s.GetStatus()["total_runs"])
}

func TestStart_Desabilitado(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := NewCacheCleanupService(cleaner, &config.Config{Cache: config.Cache{CleanupEvery: time.Millisecond}}, log.Discard())

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.scheduler.IsRunning())
}

func TestStart_ExecutaPeriodicamente(t *testing.T) {
	cleaner := &fakeCleaner{}
	cfg := &config.Config{Cache: config.Cache{CleanupEvery: 20 * time.Millisecond, Enabled: true}}
	s := NewCacheCleanupService(cleaner, cfg, log.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))

	assert.Eventually(t, func() bool {
		return cleaner.calls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool {
		return !s.scheduler.IsRunning()
	}, time.Second, 10*time.Millisecond)
}
