package authenticating

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.MockBackend, *mocks.MockTokenStore) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	tokens := mocks.NewMockTokenStore(ctrl)

	svc := NewService(backend, tokens, log.Discard(), WithClock(func() time.Time { return now }))
	return svc, backend, tokens
}

func authResponse() *backenddomain.AuthResponse {
	return &backenddomain.AuthResponse{
		User:         backenddomain.User{ID: "u-1", Email: "ana@example.com", Name: "Ana"},
		Token:        "access-1",
		RefreshToken: "refresh-1",
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		input      LoginInput
		setup      func(b *mocks.MockBackend, tk *mocks.MockTokenStore)
		wantErr    error
		wantCode   string
		wantStatus Status
	}{
		{
			name:  "Login com sucesso grava os tokens",
			input: LoginInput{Email: " Ana@Example.com ", Password: "segredo"},
			setup: func(b *mocks.MockBackend, tk *mocks.MockTokenStore) {
				b.EXPECT().Login(gomock.Any(), backenddomain.LoginRequest{Email: "ana@example.com", Password: "segredo"}).
					Return(authResponse(), nil)
				tk.EXPECT().SetTokens(gomock.Any(), "access-1", "refresh-1").Return(nil)
			},
			wantStatus: StatusAuthenticated,
		},
		{
			name:       "Campos obrigatórios não chamam o backend",
			input:      LoginInput{Email: "ana@example.com"},
			setup:      func(*mocks.MockBackend, *mocks.MockTokenStore) {},
			wantErr:    ErrMissingRequiredData,
			wantCode:   apiErrors.ErrMissingRequiredData,
			wantStatus: StatusIdle,
		},
		{
			name:  "Credenciais recusadas",
			input: LoginInput{Email: "ana@example.com", Password: "errada"},
			setup: func(b *mocks.MockBackend, _ *mocks.MockTokenStore) {
				b.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, &backenddomain.APIError{Status: http.StatusUnauthorized, Message: "Invalid credentials"})
			},
			wantErr:    ErrInvalidCredentials,
			wantCode:   apiErrors.ErrInvalidCredentials,
			wantStatus: StatusError,
		},
		{
			name:  "Backend fora do ar",
			input: LoginInput{Email: "ana@example.com", Password: "segredo"},
			setup: func(b *mocks.MockBackend, _ *mocks.MockTokenStore) {
				b.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, &backenddomain.APIError{Network: true, Message: "connection refused"})
			},
			wantErr:    ErrBackend,
			wantCode:   apiErrors.ErrCommunication,
			wantStatus: StatusError,
		},
		{
			name:  "Falha ao gravar tokens",
			input: LoginInput{Email: "ana@example.com", Password: "segredo"},
			setup: func(b *mocks.MockBackend, tk *mocks.MockTokenStore) {
				b.EXPECT().Login(gomock.Any(), gomock.Any()).Return(authResponse(), nil)
				tk.EXPECT().SetTokens(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr:    ErrTokenStorage,
			wantCode:   apiErrors.ErrDatabaseOperation,
			wantStatus: StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend, tokens := newService(t)
			tt.setup(backend, tokens)

			user, err := svc.Login(context.Background(), tt.input)

			state := svc.State()
			assert.Equal(t, tt.wantStatus, state.Status)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.wantCode, authErr.Code)
				assert.Nil(t, user)
				assert.False(t, svc.IsAuthenticated())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, &User{ID: "u-1", Email: "ana@example.com", Name: "Ana"}, user)
			assert.True(t, state.HasSession)
			assert.True(t, svc.IsAuthenticated())
		})
	}
}

func TestRegister(t *testing.T) {
	svc, backend, tokens := newService(t)

	backend.EXPECT().Register(gomock.Any(), backenddomain.RegisterRequest{
		Email:    "ana@example.com",
		Password: "segredo",
		Name:     "Ana",
	}).Return(authResponse(), nil)
	tokens.EXPECT().SetTokens(gomock.Any(), "access-1", "refresh-1").Return(nil)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:        " Ana ",
		CompanyName: "Loja",
		Email:       "ANA@example.com",
		Password:    "segredo",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, StatusAuthenticated, svc.State().Status)
}

func TestRegister_UsuarioJaExiste(t *testing.T) {
	svc, backend, _ := newService(t)

	backend.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(nil, &backenddomain.APIError{Status: http.StatusConflict, Message: "Email already registered"})

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	state := svc.State()
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "Email already registered", state.Error)
}

func TestLogout(t *testing.T) {
	svc, backend, tokens := newService(t)

	backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(authResponse(), nil)
	tokens.EXPECT().SetTokens(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	_, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)

	tokens.EXPECT().Clear(gomock.Any()).Return(nil)
	require.NoError(t, svc.Logout(context.Background()))

	assert.Equal(t, State{Status: StatusIdle}, svc.State())
	assert.False(t, svc.IsAuthenticated())
}

func TestLogout_FalhaNoArmazenamentoAindaLimpaEstado(t *testing.T) {
	svc, _, tokens := newService(t)

	tokens.EXPECT().Clear(gomock.Any()).Return(errors.New("locked"))
	err := svc.Logout(context.Background())

	assert.ErrorIs(t, err, ErrTokenStorage)
	assert.Equal(t, State{Status: StatusIdle}, svc.State())
}

func TestHydrateProfile(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(b *mocks.MockBackend, tk *mocks.MockTokenStore)
		wantErr   bool
		wantState State
	}{
		{
			name: "Sem sessão não chama o backend",
			setup: func(_ *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("", nil)
			},
			wantState: State{Status: StatusIdle},
		},
		{
			name: "Perfil carregado",
			setup: func(b *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("access-1", nil)
				tk.EXPECT().AccessTokenExpiry(gomock.Any()).Return(now.Add(time.Hour), true, nil)
				b.EXPECT().Profile(gomock.Any()).Return(&backenddomain.User{ID: "u-1", Email: "ana@example.com"}, nil)
			},
			wantState: State{
				User:       &User{ID: "u-1", Email: "ana@example.com"},
				Status:     StatusAuthenticated,
				HasSession: true,
			},
		},
		{
			name: "Token sem expiração também consulta o perfil",
			setup: func(b *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("opaque", nil)
				tk.EXPECT().AccessTokenExpiry(gomock.Any()).Return(time.Time{}, false, nil)
				b.EXPECT().Profile(gomock.Any()).Return(&backenddomain.User{ID: "u-1"}, nil)
			},
			wantState: State{User: &User{ID: "u-1"}, Status: StatusAuthenticated, HasSession: true},
		},
		{
			name: "Token expirado é descartado sem chamar o backend",
			setup: func(_ *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("access-1", nil)
				tk.EXPECT().AccessTokenExpiry(gomock.Any()).Return(now.Add(-time.Minute), true, nil)
				tk.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantState: State{Status: StatusIdle},
		},
		{
			name: "401 limpa tokens e volta para idle",
			setup: func(b *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("access-1", nil)
				tk.EXPECT().AccessTokenExpiry(gomock.Any()).Return(now.Add(time.Hour), true, nil)
				b.EXPECT().Profile(gomock.Any()).Return(nil, &backenddomain.APIError{Status: http.StatusUnauthorized})
				tk.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantState: State{Status: StatusIdle},
		},
		{
			name: "403 limpa tokens e volta para idle",
			setup: func(b *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("access-1", nil)
				tk.EXPECT().AccessTokenExpiry(gomock.Any()).Return(now.Add(time.Hour), true, nil)
				b.EXPECT().Profile(gomock.Any()).Return(nil, &backenddomain.APIError{Status: http.StatusForbidden})
				tk.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantState: State{Status: StatusIdle},
		},
		{
			name: "Erro do servidor mantém a sessão com status de erro",
			setup: func(b *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("access-1", nil)
				tk.EXPECT().AccessTokenExpiry(gomock.Any()).Return(now.Add(time.Hour), true, nil)
				b.EXPECT().Profile(gomock.Any()).
					Return(nil, &backenddomain.APIError{Status: http.StatusInternalServerError, Message: "db down"})
			},
			wantErr:   true,
			wantState: State{Status: StatusError, Error: "db down", HasSession: true},
		},
		{
			name: "Token ilegível é descartado",
			setup: func(_ *mocks.MockBackend, tk *mocks.MockTokenStore) {
				tk.EXPECT().AccessToken(gomock.Any()).Return("", errors.New("stored token could not be decrypted"))
				tk.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantState: State{Status: StatusIdle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, backend, tokens := newService(t)
			tt.setup(backend, tokens)

			err := svc.HydrateProfile(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantState, svc.State())
		})
	}
}

func TestClearSession(t *testing.T) {
	svc, backend, tokens := newService(t)

	backend.EXPECT().Login(gomock.Any(), gomock.Any()).Return(authResponse(), nil)
	tokens.EXPECT().SetTokens(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	_, err := svc.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "x"})
	require.NoError(t, err)

	svc.ClearSession()

	assert.Equal(t, State{Status: StatusIdle}, svc.State())
}

func TestIsCredentialsError(t *testing.T) {
	assert.True(t, IsCredentialsError(NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")))
	assert.True(t, IsCredentialsError(ErrExpiredToken))
	assert.False(t, IsCredentialsError(NewAuthError(ErrBackend, apiErrors.ErrExternalService, "timeout")))
}
