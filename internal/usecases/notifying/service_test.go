package notifying

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

type fakeTimer struct {
	d       time.Duration
	fire    func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	f.stopped = true
	return true
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) afterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, fire: f}
	s.timers = append(s.timers, t)
	return t
}

func newTestService() (*Service, *fakeScheduler) {
	sched := &fakeScheduler{}
	return NewService(log.Discard(), WithTimer(sched.afterFunc)), sched
}

func TestService_TitulosPadrao(t *testing.T) {
	tests := []struct {
		name      string
		show      func(s *Service) string
		wantType  Type
		wantTitle string
	}{
		{
			name:      "Sucesso sem título usa Success",
			show:      func(s *Service) string { return s.Success("", "Campanha pausada") },
			wantType:  TypeSuccess,
			wantTitle: "Success",
		},
		{
			name:      "Erro sem título usa Error",
			show:      func(s *Service) string { return s.Error("", "Falhou") },
			wantType:  TypeError,
			wantTitle: "Error",
		},
		{
			name:      "Info mantém título informado",
			show:      func(s *Service) string { return s.Info("Sincronizando", "") },
			wantType:  TypeInfo,
			wantTitle: "Sincronizando",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService()
			id := tt.show(s)

			toasts := s.List()
			require.Len(t, toasts, 1)
			assert.Equal(t, id, toasts[0].ID)
			assert.Equal(t, tt.wantType, toasts[0].Type)
			assert.Equal(t, tt.wantTitle, toasts[0].Title)
			assert.Equal(t, DefaultDuration, toasts[0].Duration)
		})
	}
}

func TestService_AutoDismiss(t *testing.T) {
	s, sched := newTestService()

	s.Success("Campaign paused", "")
	s.Error("Failed", "boom")
	require.Len(t, s.List(), 2)
	require.Len(t, sched.timers, 2)
	assert.Equal(t, 3500*time.Millisecond, sched.timers[0].d)

	sched.timers[0].fire()

	toasts := s.List()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Failed", toasts[0].Title)
}

func TestService_DuracaoNegativaNaoAgenda(t *testing.T) {
	s, sched := newTestService()

	s.Show(Toast{Type: TypeInfo, Title: "Fixo", Duration: -1})

	assert.Empty(t, sched.timers)
	assert.Len(t, s.List(), 1)
}

func TestService_DismissEClear(t *testing.T) {
	s, sched := newTestService()

	first := s.Info("Um", "")
	s.Info("Dois", "")

	assert.True(t, s.Dismiss(first))
	assert.False(t, s.Dismiss(first))
	assert.True(t, sched.timers[0].stopped)
	assert.Len(t, s.List(), 1)

	s.Clear()
	assert.Empty(t, s.List())
	assert.True(t, sched.timers[1].stopped)
}

func TestService_ListDevolveCopia(t *testing.T) {
	s, _ := newTestService()
	s.Info("Original", "")

	toasts := s.List()
	toasts[0].Title = "Alterado"

	assert.Equal(t, "Original", s.List()[0].Title)
}
