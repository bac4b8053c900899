package linking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"go.uber.org/mock/gomock"
)

const redirectURI = origin + "/oauth/meta/callback"

func expectAuthURL(f *fixture) {
	f.backend.EXPECT().GetMetaAuthURL(gomock.Any(), redirectURI).
		Return(&backenddomain.AuthURLResponse{AuthURL: "https://www.facebook.com/dialog/oauth?x=1", State: "st-1"}, nil)
}

func waitDone(t *testing.T, h *Handshake) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("handshake não terminou")
	}
}

func TestConnect_SucessoDuplicadoFazUmUnicoRefresh(t *testing.T) {
	f := newFixture(t, nil)
	popup := &fakePopup{}
	expectAuthURL(f)

	h, err := f.store.Connect(context.Background(), openerFor(popup))
	require.NoError(t, err)
	assert.Equal(t, "st-1", h.State)
	assert.Equal(t, StatusConnecting, f.store.Status())

	f.backend.EXPECT().GetMetaAccount(gomock.Any()).
		Return(connectedResponse(backenddomain.AdAccount{ID: "act_1", IsActive: boolPtr(true)}), nil).
		Times(1)

	f.bus.Publish(Message{Type: MessageAuthSuccess, Origin: "https://evil.example"})
	f.bus.Publish(Message{Type: MessageAuthSuccess, Origin: origin})
	f.bus.Publish(Message{Type: MessageAuthSuccess, Origin: origin})
	f.bus.Publish(Message{Type: MessageAuthError, Message: "late", Origin: origin})

	waitDone(t, h)
	require.NoError(t, h.Err())

	assert.Equal(t, StatusConnected, f.store.Status())
	assert.Equal(t, []toast{{"success", "Connected", "Your Meta account is now linked."}}, f.notifier.all())
	assert.Empty(t, f.store.State().Error)
}

func TestConnect_RefreshFalhaAposSucesso(t *testing.T) {
	f := newFixture(t, nil)
	expectAuthURL(f)

	h, err := f.store.Connect(context.Background(), openerFor(&fakePopup{}))
	require.NoError(t, err)

	f.backend.EXPECT().GetMetaAccount(gomock.Any()).Return(nil, errors.New("boom")).Times(maxRefreshAttempts)

	f.bus.Publish(Message{Type: MessageAuthSuccess, Origin: origin})
	waitDone(t, h)

	require.Error(t, h.Err())
	assert.Equal(t, StatusError, f.store.Status())
	assert.Equal(t, []toast{{"error", "", "Account connected but failed to load details. Please refresh the page."}}, f.notifier.all())
}

func TestConnect_ErroDoCallback(t *testing.T) {
	f := newFixture(t, nil)
	expectAuthURL(f)

	h, err := f.store.Connect(context.Background(), openerFor(&fakePopup{}))
	require.NoError(t, err)

	f.bus.Publish(Message{Type: MessageAuthError, Message: "User denied access", Origin: origin})
	waitDone(t, h)

	assert.ErrorIs(t, h.Err(), ErrAuthFailed)
	state := f.store.State()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Equal(t, "User denied access", state.Error)
	assert.Equal(t, []toast{{"error", "", "User denied access"}}, f.notifier.all())
}

func TestConnect_PopupFechadoVoltaParaIdleSemToast(t *testing.T) {
	f := newFixture(t, nil)
	popup := &fakePopup{}
	expectAuthURL(f)

	h, err := f.store.Connect(context.Background(), openerFor(popup))
	require.NoError(t, err)

	popup.closed.Store(true)
	waitDone(t, h)

	assert.ErrorIs(t, h.Err(), ErrPopupClosed)
	assert.Equal(t, StatusIdle, f.store.Status())
	assert.Empty(t, f.notifier.all())
}

func TestConnect_PopupFechadoJuntoComSucessoAindaConecta(t *testing.T) {
	f := newFixture(t, nil)
	expectAuthURL(f)

	// a janela posta o resultado e fecha antes da primeira verificação do loop
	popup := &fakePopup{}
	opener := openerFunc(func(context.Context, string) (Popup, error) {
		f.bus.Publish(Message{Type: MessageAuthSuccess, Origin: origin})
		popup.closed.Store(true)
		return popup, nil
	})

	f.backend.EXPECT().GetMetaAccount(gomock.Any()).Return(connectedResponse(backenddomain.AdAccount{ID: "act_1"}), nil)

	h, err := f.store.Connect(context.Background(), opener)
	require.NoError(t, err)

	waitDone(t, h)
	require.NoError(t, h.Err())
	assert.Equal(t, StatusConnected, f.store.Status())
}

func TestConnect_Timeout(t *testing.T) {
	cfg := testConfig()
	cfg.Meta.OAuthTimeout = 30 * time.Millisecond
	f := newFixture(t, cfg)
	popup := &fakePopup{}
	expectAuthURL(f)

	h, err := f.store.Connect(context.Background(), openerFor(popup))
	require.NoError(t, err)

	waitDone(t, h)

	assert.ErrorIs(t, h.Err(), ErrHandshakeTimeout)
	assert.Equal(t, int32(1), popup.closeCalls.Load())
	assert.Equal(t, StatusIdle, f.store.Status())
	assert.Equal(t, []toast{{"error", "", "OAuth process timed out. Please try again."}}, f.notifier.all())
}

func TestConnect_FalhasAoIniciar(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(f *fixture)
		opener      PopupOpener
		wantMessage string
		wantErr     error
	}{
		{
			name:  "Popup bloqueado",
			setup: expectAuthURL,
			opener: openerFunc(func(context.Context, string) (Popup, error) {
				return nil, nil
			}),
			wantMessage: "Popup blocked. Please allow popups and try again.",
			wantErr:     ErrPopupBlocked,
		},
		{
			name: "Backend não devolve a URL",
			setup: func(f *fixture) {
				f.backend.EXPECT().GetMetaAuthURL(gomock.Any(), redirectURI).Return(nil, errors.New("Meta app misconfigured"))
			},
			opener:      openerFor(&fakePopup{}),
			wantMessage: "Meta app misconfigured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			tt.setup(f)

			h, err := f.store.Connect(context.Background(), tt.opener)
			require.Error(t, err)
			assert.Nil(t, h)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			state := f.store.State()
			assert.Equal(t, StatusIdle, state.Status)
			assert.Equal(t, tt.wantMessage, state.Error)
			assert.Equal(t, []toast{{"error", "", tt.wantMessage}}, f.notifier.all())

			_, active := f.store.ActiveHandshake()
			assert.False(t, active)
		})
	}
}

func TestConnect_ApenasUmHandshakePorVez(t *testing.T) {
	f := newFixture(t, nil)
	expectAuthURL(f)

	h, err := f.store.Connect(context.Background(), openerFor(&fakePopup{}))
	require.NoError(t, err)

	_, err = f.store.Connect(context.Background(), openerFor(&fakePopup{}))
	assert.ErrorIs(t, err, ErrHandshakeInProgress)

	active, ok := f.store.ActiveHandshake()
	require.True(t, ok)
	assert.Same(t, h, active)

	h.Cancel()
	waitDone(t, h)

	assert.ErrorIs(t, h.Err(), context.Canceled)
	assert.Equal(t, StatusIdle, f.store.Status())
}

func TestCompleteCallback(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		backendErr  error
		wantErr     bool
		wantMessage Message
	}{
		{
			name:        "Sucesso avisa o handshake",
			code:        "code-1",
			wantMessage: Message{Type: MessageAuthSuccess, Origin: origin},
		},
		{
			name:        "Código já utilizado conta como sucesso",
			code:        "code-1",
			backendErr:  errors.New("This authorization code has been used"),
			wantMessage: Message{Type: MessageAuthSuccess, Message: "Authorization already completed", Origin: origin},
		},
		{
			name:        "Erro real é repassado",
			code:        "code-1",
			backendErr:  errors.New("Invalid OAuth state"),
			wantErr:     true,
			wantMessage: Message{Type: MessageAuthError, Message: "Invalid OAuth state", Origin: origin},
		},
		{
			name:        "Sem code não chama o backend",
			wantErr:     true,
			wantMessage: Message{Type: MessageAuthError, Message: "Missing code", Origin: origin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			messages, unsubscribe := f.bus.Subscribe()
			defer unsubscribe()

			if tt.code != "" {
				f.backend.EXPECT().MetaAuthCallback(gomock.Any(), backenddomain.AuthCallbackRequest{
					Code:        tt.code,
					State:       "st-1",
					RedirectURI: redirectURI,
				}).Return(&backenddomain.AuthCallbackResponse{}, tt.backendErr)
			}

			err := f.store.CompleteCallback(context.Background(), tt.code, "st-1")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			select {
			case msg := <-messages:
				assert.Equal(t, tt.wantMessage, msg)
			default:
				t.Fatal("nenhuma mensagem publicada")
			}
			assert.Empty(t, f.notifier.all(), "com ouvinte não há toast")
		})
	}
}

func TestCompleteCallback_SemOuvinteMostraToast(t *testing.T) {
	f := newFixture(t, nil)

	f.backend.EXPECT().MetaAuthCallback(gomock.Any(), gomock.Any()).Return(&backenddomain.AuthCallbackResponse{}, nil)
	require.NoError(t, f.store.CompleteCallback(context.Background(), "code-1", "st"))

	f.backend.EXPECT().MetaAuthCallback(gomock.Any(), gomock.Any()).Return(nil, errors.New("code already processed"))
	require.NoError(t, f.store.CompleteCallback(context.Background(), "code-2", "st"))

	assert.Equal(t, []toast{
		{"success", "Meta connected", "Your account is now linked."},
		{"info", "", "Your Meta account appears already connected."},
	}, f.notifier.all())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()
	ch, unsubscribe := bus.Subscribe()

	assert.Equal(t, 1, bus.Publish(Message{Type: MessageAuthSuccess}))
	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, bus.Publish(Message{Type: MessageAuthSuccess}))
	assert.Len(t, ch, 1)
}
