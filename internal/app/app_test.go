package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/authenticating"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
)

const loginBody = `{"success":true,"data":{"user":{"id":"u-1","email":"ana@exemplo.com","name":"Ana"},"token":"tok-1","refreshToken":"ref-1"}}`

func testConfig(backendURL string) *config.Config {
	return &config.Config{
		Server:    config.Server{PublicOrigin: "http://localhost:8000"},
		Backend:   config.Backend{BaseURL: backendURL, Timeout: 5 * time.Second},
		Database:  config.Database{Driver: "sqlite", DSN: ":memory:"},
		Cache:     config.Cache{DefaultTTL: 5 * time.Minute, CleanupEvery: time.Minute},
		Meta:      config.Meta{CallbackPath: "/oauth/meta/callback"},
		SecretKey: "segredo-de-teste",
	}
}

func newTestApp(t *testing.T, handler http.HandlerFunc) *App {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := New(context.Background(), testConfig(srv.URL), log.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func login(t *testing.T, a *App) {
	t.Helper()
	_, err := a.Auth.Login(context.Background(), authenticating.LoginInput{Email: "ana@exemplo.com", Password: "segredo"})
	require.NoError(t, err)
	require.True(t, a.Auth.IsAuthenticated())
}

func TestNew_MontaContainer(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{}`)
	})

	assert.NotNil(t, a.Tokens)
	assert.NotNil(t, a.Backend)
	assert.NotNil(t, a.Meta)
	assert.NotNil(t, a.Campaigns)
	assert.NotNil(t, a.Wizard)
	assert.NotNil(t, a.Scheduler)

	theme, err := a.Tokens.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "system", theme)
}

func TestNew_DriverInvalido(t *testing.T) {
	cfg := testConfig("http://localhost:3001")
	cfg.Database.Driver = "mysql"

	_, err := New(context.Background(), cfg, log.Discard())

	assert.Error(t, err)
}

func TestResetAll(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, loginBody)
	})
	login(t, a)

	a.Notifications.Success("", "Campaign paused successfully")
	a.Wizard.SetName("Dias de chuva")
	_, err := requestcache.Get(context.Background(), a.Cache, "campaigns-act_1",
		func(context.Context) (int, error) { return 1, nil }, requestcache.Options{})
	require.NoError(t, err)

	a.ResetAll()

	assert.Empty(t, a.Notifications.List())
	assert.Empty(t, a.Wizard.Draft().Name)
	assert.Equal(t, 0, a.Cache.Stats().Total)
	assert.False(t, a.Auth.IsAuthenticated())
	assert.Equal(t, authenticating.StatusIdle, a.Auth.State().Status)

	// tokens persistidos continuam; quem apaga é o cliente HTTP no 401
	token, err := a.Tokens.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestUnauthorized_PerfilReiniciaTudo(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(w, http.StatusOK, loginBody)
		case "/auth/profile":
			writeJSON(w, http.StatusUnauthorized, `{"success":false,"error":{"message":"Invalid token"}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{}`)
		}
	})
	login(t, a)

	a.Wizard.SetName("Calor")
	a.Notifications.Info("", "Your Meta account appears already connected.")

	require.NoError(t, a.Auth.HydrateProfile(context.Background()))

	token, err := a.Tokens.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.False(t, a.Auth.IsAuthenticated())
	assert.Empty(t, a.Wizard.Draft().Name, "reset completo limpa o assistente")
	assert.Empty(t, a.Notifications.List())
}

func TestUnauthorized_OutroEndpointEncerraSessao(t *testing.T) {
	var rulesCalls atomic.Int32
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(w, http.StatusOK, loginBody)
		case "/automation-rules":
			rulesCalls.Add(1)
			writeJSON(w, http.StatusUnauthorized, `{"success":false,"error":{"message":"Token expired"}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{}`)
		}
	})
	login(t, a)

	a.Wizard.SetName("Frio")

	_, err := a.Automation.ListRules(context.Background(), 20, 0, false)
	require.Error(t, err)

	assert.Equal(t, int32(1), rulesCalls.Load())
	assert.False(t, a.Auth.IsAuthenticated())

	token, err := a.Tokens.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.Equal(t, "Frio", a.Wizard.Draft().Name, "logout simples não reinicia as demais stores")
}

func TestStart_SemSessaoSalva(t *testing.T) {
	var calls atomic.Int32
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusNotFound, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))

	assert.Equal(t, int32(0), calls.Load(), "sem token não consulta o backend")
	assert.False(t, a.Auth.IsAuthenticated())
}
