package authenticating

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

type Status string

const (
	StatusIdle          Status = "idle"
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusError         Status = "error"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type RegisterInput struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// State é a cópia do estado de autenticação entregue aos chamadores
type State struct {
	User       *User  `json:"user"`
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	HasSession bool   `json:"hasSession"`
}

type Authenticator interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (*User, error)
	Logout(ctx context.Context) error
	HydrateProfile(ctx context.Context) error
	State() State
	IsAuthenticated() bool
}

type Service struct {
	backend Backend
	tokens  TokenStore
	logger  log.Logger
	now     func() time.Time

	mu         sync.RWMutex
	user       *User
	status     Status
	err        string
	hasSession bool
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(backend Backend, tokens TokenStore, logger log.Logger, opts ...Option) *Service {
	s := &Service{
		backend: backend,
		tokens:  tokens,
		logger:  logger.WithField("component", "authenticating"),
		now:     time.Now,
		status:  StatusIdle,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	input.Email = handleEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}

	s.setLoading()

	res, err := s.backend.Register(ctx, backenddomain.RegisterRequest{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		s.logger.WithError(err).WithField("email", input.Email).Error("Falha ao registrar usuário")
		return nil, s.fail(err)
	}

	return s.startSession(ctx, res)
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*User, error) {
	input.Email = handleEmail(input.Email)

	if input.Email == "" || input.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	s.setLoading()

	res, err := s.backend.Login(ctx, backenddomain.LoginRequest{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		s.logger.WithError(err).WithField("email", input.Email).Warn("Falha no login")
		return nil, s.fail(err)
	}

	return s.startSession(ctx, res)
}

// Logout remove os tokens e volta ao estado inicial mesmo se o armazenamento falhar
func (s *Service) Logout(ctx context.Context) error {
	err := s.tokens.Clear(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao remover tokens no logout")
	}

	s.clearSession()
	s.logger.Info("Sessão encerrada")

	if err != nil {
		return NewAuthError(ErrTokenStorage, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return nil
}

// HydrateProfile recarrega o usuário da sessão salva. Sem sessão não faz nada;
// 401 ou 403 do backend descartam os tokens e voltam para idle sem erro.
func (s *Service) HydrateProfile(ctx context.Context) error {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Token salvo ilegível, descartando sessão")
		s.discardSession(ctx)
		return nil
	}
	if token == "" {
		return nil
	}

	if exp, ok, err := s.tokens.AccessTokenExpiry(ctx); err == nil && ok && !exp.After(s.now()) {
		s.logger.WithField("expired_at", exp).Info("Token de acesso expirado, descartando sessão")
		s.discardSession(ctx)
		return nil
	}

	s.mu.Lock()
	s.hasSession = true
	s.status = StatusLoading
	s.mu.Unlock()

	profile, err := s.backend.Profile(ctx)
	if err != nil {
		status := backenddomain.StatusOf(err)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			s.logger.WithField("status", status).Info("Sessão recusada pelo backend, descartando tokens")
			s.discardSession(ctx)
			return nil
		}

		message := err.Error()
		if message == "" {
			message = "Profile load failed"
		}

		s.mu.Lock()
		s.status = StatusError
		s.err = message
		s.mu.Unlock()

		s.logger.WithError(err).Error("Erro ao carregar perfil")
		return fromBackend(err)
	}

	user := toUser(*profile)

	s.mu.Lock()
	s.user = &user
	s.status = StatusAuthenticated
	s.err = ""
	s.mu.Unlock()

	return nil
}

// ClearSession esquece a sessão em memória; usado quando os tokens já foram removidos
func (s *Service) ClearSession() {
	s.clearSession()
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := State{
		Status:     s.status,
		Error:      s.err,
		HasSession: s.hasSession,
	}
	if s.user != nil {
		user := *s.user
		state.User = &user
	}
	return state
}

func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status == StatusAuthenticated && s.user != nil
}

func (s *Service) startSession(ctx context.Context, res *backenddomain.AuthResponse) (*User, error) {
	if err := s.tokens.SetTokens(ctx, res.Token, res.RefreshToken); err != nil {
		s.logger.WithError(err).Error("Erro ao salvar tokens")
		s.mu.Lock()
		s.status = StatusError
		s.err = err.Error()
		s.mu.Unlock()
		return nil, NewAuthError(ErrTokenStorage, apiErrors.ErrDatabaseOperation, err.Error())
	}

	user := toUser(res.User)

	s.mu.Lock()
	s.user = &user
	s.status = StatusAuthenticated
	s.err = ""
	s.hasSession = true
	s.mu.Unlock()

	s.logger.WithField("user_id", user.ID).Info("Sessão iniciada")

	copied := user
	return &copied, nil
}

func (s *Service) setLoading() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = ""
	s.mu.Unlock()
}

func (s *Service) fail(err error) error {
	authErr := fromBackend(err)

	s.mu.Lock()
	s.status = StatusError
	s.err = err.Error()
	s.mu.Unlock()

	return authErr
}

func (s *Service) discardSession(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.WithError(err).Error("Erro ao remover tokens")
	}
	s.clearSession()
}

func (s *Service) clearSession() {
	s.mu.Lock()
	s.user = nil
	s.status = StatusIdle
	s.err = ""
	s.hasSession = false
	s.mu.Unlock()
}

func toUser(u backenddomain.User) User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
