package linking

import (
	"context"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	statusCacheKey = "meta-account-status"

	defaultStatusTTL    = 5 * time.Minute
	defaultSyncDelay    = time.Second
	defaultOAuthTimeout = 5 * time.Minute
	defaultPollInterval = time.Second
	defaultCallbackPath = "/oauth/meta/callback"

	maxRefreshAttempts = 5
)

var metaPattern = regexp.MustCompile(`^meta-`)

// refreshDelay é a espera antes da tentativa n (n >= 1)
func refreshDelay(attempt int) time.Duration {
	return 500*time.Millisecond + time.Duration(attempt)*250*time.Millisecond
}

type Store struct {
	backend  Backend
	cache    *requestcache.Cache
	notifier Notifier
	bus      *Bus
	logger   log.Logger
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error

	origin       string
	redirectURI  string
	statusTTL    time.Duration
	syncDelay    time.Duration
	oauthTimeout time.Duration
	pollInterval time.Duration

	mu          sync.RWMutex
	status      Status
	connected   bool
	err         string
	account     *Account
	adAccounts  []AdAccount
	selected    map[string]bool
	lastFetch   time.Time
	initialized bool
	fetching    bool
	handshake   *Handshake

	loads singleflight.Group
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSleep troca a espera usada entre tentativas de refresh
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Store) { s.sleep = sleep }
}

func NewStore(cfg *config.Config, backend Backend, cache *requestcache.Cache, notifier Notifier, bus *Bus, logger log.Logger, opts ...Option) *Store {
	s := &Store{
		backend:      backend,
		cache:        cache,
		notifier:     notifier,
		bus:          bus,
		logger:       logger.WithField("component", "linking"),
		now:          time.Now,
		sleep:        sleepContext,
		redirectURI:  defaultCallbackPath,
		statusTTL:    defaultStatusTTL,
		syncDelay:    defaultSyncDelay,
		oauthTimeout: defaultOAuthTimeout,
		pollInterval: defaultPollInterval,
		status:       StatusIdle,
		selected:     make(map[string]bool),
	}

	if cfg != nil {
		s.origin = cfg.Server.PublicOrigin
		s.redirectURI = cfg.RedirectURI()
		if cfg.Meta.StatusCacheTTL > 0 {
			s.statusTTL = cfg.Meta.StatusCacheTTL
		}
		if cfg.Meta.SyncDelay > 0 {
			s.syncDelay = cfg.Meta.SyncDelay
		}
		if cfg.Meta.OAuthTimeout > 0 {
			s.oauthTimeout = cfg.Meta.OAuthTimeout
		}
		if cfg.Meta.PopupPollInterval > 0 {
			s.pollInterval = cfg.Meta.PopupPollInterval
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Initialize carrega o estado da conexão sem propagar falhas; o erro fica no estado
func (s *Store) Initialize(ctx context.Context) {
	if err := s.LoadAccountData(ctx, LoadOptions{}); err != nil {
		s.logger.WithError(err).Debug("Conexão Meta indisponível na inicialização")
	}
}

// LoadAccountData consulta o status da conexão Meta.
// Chamadas concorrentes compartilham a mesma requisição.
func (s *Store) LoadAccountData(ctx context.Context, opts LoadOptions) error {
	_, err, _ := s.loads.Do("account", func() (any, error) {
		return nil, s.loadAccountData(ctx, opts)
	})
	return err
}

func (s *Store) loadAccountData(ctx context.Context, opts LoadOptions) error {
	s.mu.Lock()
	if !opts.Force && s.initialized && s.account != nil && s.now().Sub(s.lastFetch) < s.statusTTL {
		s.mu.Unlock()
		return nil
	}
	if s.status != StatusConnecting {
		s.status = StatusLoading
	}
	s.fetching = true
	s.err = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.fetching = false
		s.mu.Unlock()
	}()

	if opts.Force {
		s.cache.Invalidate(statusCacheKey)
	}

	resp, err := requestcache.Get(ctx, s.cache, statusCacheKey, s.backend.GetMetaAccount,
		requestcache.Options{TTL: s.statusTTL, Force: opts.Force})
	if err != nil {
		message := err.Error()
		if message == "" {
			message = "Failed to check Meta connection"
		}

		s.mu.Lock()
		s.connected = false
		s.status = StatusError
		s.err = message
		s.account = nil
		s.adAccounts = nil
		s.selected = make(map[string]bool)
		s.lastFetch = s.now()
		s.initialized = true
		s.mu.Unlock()

		s.logger.WithError(err).Error("Falha ao consultar conexão Meta")
		return err
	}

	var adAccounts []AdAccount
	if resp.Account != nil {
		adAccounts = normalizeAdAccounts(resp.Account.AdAccounts)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// backend às vezes devolve zero contas logo após o OAuth; mantém o snapshot anterior
	if len(adAccounts) == 0 && s.connected && len(s.adAccounts) > 0 {
		if s.status != StatusConnecting {
			s.status = StatusConnected
		}
		s.lastFetch = s.now()
		s.initialized = true
		s.err = ""

		s.logger.Warn("Refresh sem contas de anúncio, mantendo contas anteriores")
		return nil
	}

	s.selected = buildSelection(adAccounts, s.selected, opts.PreserveSelection)
	s.connected = resp.Connected
	if resp.Connected {
		s.status = StatusConnected
	} else {
		s.status = StatusIdle
	}
	s.account = toAccount(resp.Account, adAccounts)
	s.adAccounts = adAccounts
	s.lastFetch = s.now()
	s.initialized = true
	s.err = ""

	s.logger.WithFields(log.Fields{
		"connected":         resp.Connected,
		"ad_accounts_count": len(adAccounts),
	}).Debug("Status da conexão Meta carregado")

	return nil
}

// RefreshConnection força novas consultas até que o backend devolva contas.
// Devolve o último erro apenas quando nenhuma tentativa trouxe contas.
func (s *Store) RefreshConnection(ctx context.Context) error {
	var lastErr error

	for attempt := 0; attempt < maxRefreshAttempts; attempt++ {
		if attempt > 0 {
			if err := s.sleep(ctx, refreshDelay(attempt)); err != nil {
				return err
			}
		}

		s.cache.Invalidate(statusCacheKey)
		s.mu.Lock()
		s.lastFetch = time.Time{}
		s.initialized = false
		s.mu.Unlock()

		if err := s.LoadAccountData(ctx, LoadOptions{Force: true, PreserveSelection: true}); err != nil {
			lastErr = err
			continue
		}
		lastErr = nil

		s.mu.RLock()
		loaded := len(s.adAccounts) > 0
		s.mu.RUnlock()
		if loaded {
			return nil
		}
	}

	if lastErr != nil {
		s.logger.WithError(lastErr).Warn("Refresh da conexão Meta não carregou contas após as tentativas")
	}
	return lastErr
}

// SyncAfterAuth espera o backend processar o callback e recarrega tudo do zero
func (s *Store) SyncAfterAuth(ctx context.Context) error {
	if err := s.sleep(ctx, s.syncDelay); err != nil {
		return err
	}

	s.Reset()

	if err := s.LoadAccountData(ctx, LoadOptions{Force: true}); err != nil {
		s.logger.WithError(err).Error("Falha ao recarregar conexão Meta após autenticação")
		return err
	}
	return nil
}

func (s *Store) ToggleSelected(adAccountID string, checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if checked {
		s.selected[adAccountID] = true
	} else {
		delete(s.selected, adAccountID)
	}
}

func (s *Store) ClearSelected() {
	s.mu.Lock()
	s.selected = make(map[string]bool)
	s.mu.Unlock()
}

func (s *Store) SelectedAccounts() []AdAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]AdAccount, 0)
	for _, acc := range s.adAccounts {
		if s.selected[acc.ID] {
			out = append(out, acc)
		}
	}
	return out
}

func (s *Store) TotalSelected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countSelected(s.selected)
}

func countSelected(m map[string]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

func (s *Store) SetStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

// SetError registra a mensagem; vazio limpa e volta para idle
func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = message
	if message != "" {
		s.status = StatusError
	} else {
		s.status = StatusIdle
	}
}

func (s *Store) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = connected
	switch {
	case connected:
		s.status = StatusConnected
		s.err = ""
	case s.err != "":
		s.status = StatusError
	default:
		s.status = StatusIdle
	}
}

// Reset limpa o estado e as entradas meta-* do cache
func (s *Store) Reset() {
	s.cache.InvalidatePattern(metaPattern)
	s.loads.Forget("account")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusIdle
	s.connected = false
	s.err = ""
	s.account = nil
	s.adAccounts = nil
	s.selected = make(map[string]bool)
	s.lastFetch = time.Time{}
	s.initialized = false
	s.fetching = false
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Status:        s.status,
		Connected:     s.connected,
		Error:         s.err,
		Account:       copyAccount(s.account),
		AdAccounts:    append([]AdAccount{}, s.adAccounts...),
		Selected:      copySelection(s.selected),
		IsInitialized: s.initialized,
		IsFetching:    s.fetching,
		TotalSelected: countSelected(s.selected),
	}
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// ActivateSelected ativa as contas selecionadas e desativa as ativas que saíram da seleção
func (s *Store) ActivateSelected(ctx context.Context) error {
	s.mu.RLock()
	var selectedIDs []string
	for id, on := range s.selected {
		if on {
			selectedIDs = append(selectedIDs, id)
		}
	}
	current := make(map[string]bool, len(s.adAccounts))
	for _, acc := range s.adAccounts {
		current[acc.ID] = acc.IsActive
	}
	selected := copySelection(s.selected)
	s.mu.RUnlock()

	if len(selectedIDs) == 0 {
		err := errNoAccountsSelected()
		s.notifier.Info("", err.Message)
		return err
	}

	type toggle struct {
		id     string
		active bool
	}
	var ops []toggle
	sort.Strings(selectedIDs)
	for _, id := range selectedIDs {
		if !current[id] {
			ops = append(ops, toggle{id, true})
		}
	}
	for id, wasActive := range current {
		if wasActive && !selected[id] {
			ops = append(ops, toggle{id, false})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, op := range ops {
		g.Go(func() error {
			_, err := s.backend.ToggleMetaAccount(gctx, op.id, op.active)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		message := err.Error()
		if message == "" {
			message = "Could not connect accounts"
		}
		s.logger.WithError(err).Error("Falha ao ativar contas Meta selecionadas")
		s.notifier.Error("", message)
		return err
	}

	s.notifier.Success("", "Selected accounts connected")

	if len(ops) > 0 {
		if err := s.LoadAccountData(ctx, LoadOptions{Force: true, PreserveSelection: true}); err != nil {
			s.logger.WithError(err).Warn("Falha ao recarregar contas após ativação")
		}
	}
	return nil
}

// Disconnect remove a conexão Meta no backend e limpa o estado local
func (s *Store) Disconnect(ctx context.Context) error {
	if err := s.backend.DisconnectMeta(ctx); err != nil {
		message := err.Error()
		if message == "" {
			message = "Failed to disconnect"
		}
		s.notifier.Error("", message)
		return err
	}

	s.Reset()
	s.notifier.Success("", "Disconnected Meta account")
	return nil
}
