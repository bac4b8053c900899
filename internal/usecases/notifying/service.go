package notifying

import (
	"sync"
	"time"

	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/utils"
)

// DefaultDuration é o tempo de exibição de um toast sem duração explícita
const DefaultDuration = 3500 * time.Millisecond

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

type Toast struct {
	ID        string        `json:"id"`
	Type      Type          `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Notifier é o que os stores usam para emitir toasts
type Notifier interface {
	Success(title, message string) string
	Error(title, message string) string
	Info(title, message string) string
}

// Timer é o agendamento de remoção de um toast
type Timer interface {
	Stop() bool
}

type Service struct {
	mu     sync.Mutex
	toasts []Toast
	timers map[string]Timer

	afterFunc func(d time.Duration, f func()) Timer
	now       func() time.Time
	logger    log.Logger
}

type Option func(*Service)

// WithTimer substitui o agendamento do auto-dismiss
func WithTimer(afterFunc func(d time.Duration, f func()) Timer) Option {
	return func(s *Service) { s.afterFunc = afterFunc }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(logger log.Logger, opts ...Option) *Service {
	s := &Service{
		timers: make(map[string]Timer),
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		now:    time.Now,
		logger: logger.WithField("component", "notifying"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show adiciona o toast e agenda sua remoção. Duração negativa mantém o
// toast até Dismiss ou Clear.
func (s *Service) Show(t Toast) string {
	if t.ID == "" {
		t.ID = utils.NewID("")
	}
	if t.Type == "" {
		t.Type = TypeInfo
	}
	if t.Title == "" {
		t.Title = defaultTitle(t.Type)
	}
	if t.Duration == 0 {
		t.Duration = DefaultDuration
	}
	t.CreatedAt = s.now()

	s.mu.Lock()
	s.toasts = append(s.toasts, t)
	if t.Duration > 0 {
		id := t.ID
		s.timers[id] = s.afterFunc(t.Duration, func() { s.Dismiss(id) })
	}
	s.mu.Unlock()

	s.logger.WithFields(log.Fields{
		"toast_id": t.ID,
		"type":     t.Type,
		"title":    t.Title,
	}).Debug("Toast exibido")

	return t.ID
}

func (s *Service) Success(title, message string) string {
	return s.Show(Toast{Type: TypeSuccess, Title: title, Message: message})
}

func (s *Service) Error(title, message string) string {
	return s.Show(Toast{Type: TypeError, Title: title, Message: message})
}

func (s *Service) Info(title, message string) string {
	return s.Show(Toast{Type: TypeInfo, Title: title, Message: message})
}

// Dismiss remove o toast; devolve false se ele já não existia
func (s *Service) Dismiss(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i:i], s.toasts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}

// List devolve os toasts visíveis, do mais antigo para o mais recente
func (s *Service) List() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

func defaultTitle(t Type) string {
	switch t {
	case TypeSuccess:
		return "Success"
	case TypeError:
		return "Error"
	default:
		return "Info"
	}
}
