package campaigning

import (
	"context"
	"regexp"
	"sync"
	"time"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	accountCacheKey = "meta-account-campaigns"

	defaultFreshness     = 30 * time.Second
	defaultMaxConcurrent = 4
)

var (
	campaignsPattern       = regexp.MustCompile(`^campaigns-`)
	campaignsReloadPattern = regexp.MustCompile(`^(meta-account-campaigns|campaigns-)`)
	adSetsPattern          = regexp.MustCompile(`^adsets-`)
)

func campaignsCacheKey(adAccountID string) string { return "campaigns-" + adAccountID }
func adSetsCacheKey(campaignID string) string     { return "adsets-" + campaignID }

type Store struct {
	backend  Backend
	cache    *requestcache.Cache
	notifier Notifier
	logger   log.Logger
	now      func() time.Time

	freshness     time.Duration
	maxConcurrent int

	mu                sync.RWMutex
	campaigns         []CampaignWithAdSets
	metaAccount       *backenddomain.MetaAccount
	adAccounts        []AccountInfo
	selectedAccountID string
	accountsLoading   map[string]bool
	actionStates      map[string]ActionState
	googleCampaigns   map[string][]backenddomain.GoogleCampaign
	isLoading         bool
	err               string
	lastFetch         time.Time
	initialized       bool

	loads singleflight.Group
	locks *keyedMutex
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(cfg *config.Config, backend Backend, cache *requestcache.Cache, notifier Notifier, logger log.Logger, opts ...Option) *Store {
	s := &Store{
		backend:         backend,
		cache:           cache,
		notifier:        notifier,
		logger:          logger.WithField("component", "campaigning"),
		now:             time.Now,
		freshness:       defaultFreshness,
		maxConcurrent:   defaultMaxConcurrent,
		accountsLoading: make(map[string]bool),
		actionStates:    make(map[string]ActionState),
		googleCampaigns: make(map[string][]backenddomain.GoogleCampaign),
		locks:           newKeyedMutex(),
	}

	if cfg != nil {
		if cfg.Campaigns.FreshnessWindow > 0 {
			s.freshness = cfg.Campaigns.FreshnessWindow
		}
		if cfg.Campaigns.MaxConcurrentAccounts > 0 {
			s.maxConcurrent = cfg.Campaigns.MaxConcurrentAccounts
		}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LoadCampaigns carrega as campanhas de todas as contas conectadas.
// Chamadas concorrentes compartilham a mesma carga.
func (s *Store) LoadCampaigns(ctx context.Context) error {
	_, err, _ := s.loads.Do("campaigns", func() (any, error) {
		return nil, s.loadCampaigns(ctx)
	})
	return err
}

type accountResult struct {
	info      *AccountInfo
	campaigns []CampaignWithAdSets
}

func (s *Store) loadCampaigns(ctx context.Context) error {
	now := s.now()

	s.mu.Lock()
	if s.initialized && now.Sub(s.lastFetch) < s.freshness {
		s.mu.Unlock()
		return nil
	}
	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	status, err := requestcache.Get(ctx, s.cache, accountCacheKey, s.backend.GetMetaAccount, requestcache.Options{TTL: s.freshness})
	if err != nil {
		return s.failLoad(now, err)
	}

	if !status.Connected {
		s.mu.Lock()
		s.metaAccount = nil
		s.campaigns = nil
		s.isLoading = false
		s.lastFetch = now
		s.initialized = true
		s.mu.Unlock()

		if status.Expired {
			s.notifier.Error("Connection Expired", "Your Meta connection has expired. Please reconnect to continue.")
		}
		return nil
	}

	s.mu.Lock()
	s.metaAccount = status.Account
	s.mu.Unlock()

	var adAccounts []backenddomain.AdAccount
	if status.Account != nil {
		adAccounts = status.Account.AdAccounts
	}

	results := make([]accountResult, len(adAccounts))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrent)
	for i, adAccount := range adAccounts {
		g.Go(func() error {
			results[i] = s.fetchAccount(ctx, adAccount)
			return nil
		})
	}
	_ = g.Wait()

	accounts := make([]AccountInfo, 0, len(results))
	campaigns := make([]CampaignWithAdSets, 0)
	for _, r := range results {
		if r.info != nil {
			accounts = append(accounts, *r.info)
		}
		campaigns = append(campaigns, r.campaigns...)
	}

	s.mu.Lock()
	selected := s.selectedAccountID
	if selected == "" && len(accounts) > 0 {
		selected = accounts[0].ID
	}
	s.campaigns = campaigns
	s.adAccounts = accounts
	s.selectedAccountID = selected
	s.isLoading = false
	s.err = ""
	s.lastFetch = now
	s.initialized = true
	s.mu.Unlock()

	s.logger.WithFields(log.Fields{
		"accounts_count":  len(accounts),
		"campaigns_count": len(campaigns),
	}).Debug("Campanhas carregadas")

	return nil
}

// fetchAccount busca as campanhas de uma conta; falhas são registradas e omitidas
func (s *Store) fetchAccount(ctx context.Context, adAccount backenddomain.AdAccount) accountResult {
	id := adAccount.CanonicalID()
	if id == "" {
		return accountResult{}
	}

	s.setAccountLoading(id, true)
	defer s.setAccountLoading(id, false)

	campaigns, err := requestcache.Get(ctx, s.cache, campaignsCacheKey(id), func(ctx context.Context) ([]backenddomain.Campaign, error) {
		return s.backend.GetCampaigns(ctx, id)
	}, requestcache.Options{TTL: s.freshness})
	if err != nil {
		s.logger.WithError(err).WithField("ad_account_id", id).Warn("Falha ao carregar campanhas da conta")
		return accountResult{}
	}

	info := &AccountInfo{
		ID:            id,
		Name:          accountName(adAccount.Name, id),
		Currency:      currencyOrDefault(adAccount.Currency),
		IsActive:      activeOrDefault(adAccount),
		CampaignCount: len(campaigns),
	}

	tagged := make([]CampaignWithAdSets, 0, len(campaigns))
	for _, c := range campaigns {
		tagged = append(tagged, withContext(c, id, adAccount.Name, adAccount.Currency))
	}

	return accountResult{info: info, campaigns: tagged}
}

// contas sem flag de ativação contam como ativas na listagem de campanhas
func activeOrDefault(a backenddomain.AdAccount) bool {
	if a.IsActive == nil && a.IsActiveSnake == nil {
		return true
	}
	return a.Active()
}

func (s *Store) failLoad(now time.Time, err error) error {
	message := errMessage(err, "Failed to load campaigns")

	s.mu.Lock()
	s.err = message
	s.isLoading = false
	s.lastFetch = now
	s.initialized = true
	s.adAccounts = nil
	s.selectedAccountID = ""
	s.mu.Unlock()

	s.logger.WithError(err).Error("Erro ao carregar campanhas")
	s.notifier.Error("Failed to Load Campaigns", message)

	return err
}

// LoadCampaignsForAccount recarrega uma única conta ignorando o cache
func (s *Store) LoadCampaignsForAccount(ctx context.Context, adAccountID string) error {
	s.mu.Lock()
	if s.accountsLoading[adAccountID] {
		s.mu.Unlock()
		return nil
	}
	s.accountsLoading[adAccountID] = true
	s.mu.Unlock()

	campaigns, err := requestcache.Get(ctx, s.cache, campaignsCacheKey(adAccountID), func(ctx context.Context) ([]backenddomain.Campaign, error) {
		return s.backend.GetCampaigns(ctx, adAccountID)
	}, requestcache.Options{TTL: s.freshness, Force: true})
	if err != nil {
		s.setAccountLoading(adAccountID, false)
		s.logger.WithError(err).WithField("ad_account_id", adAccountID).Error("Falha ao carregar campanhas da conta")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var name, currency string
	if s.metaAccount != nil {
		for _, acc := range s.metaAccount.AdAccounts {
			if acc.CanonicalID() == adAccountID {
				name, currency = acc.Name, acc.Currency
				break
			}
		}
	}

	updated := make([]CampaignWithAdSets, 0, len(s.campaigns)+len(campaigns))
	for _, c := range s.campaigns {
		if c.AdAccountID != adAccountID {
			updated = append(updated, c)
		}
	}
	for _, c := range campaigns {
		updated = append(updated, withContext(c, adAccountID, name, currency))
	}
	s.campaigns = updated

	for i := range s.adAccounts {
		if s.adAccounts[i].ID == adAccountID {
			s.adAccounts[i].CampaignCount = len(campaigns)
		}
	}
	s.accountsLoading[adAccountID] = false

	return nil
}

// RefreshCampaigns descarta o cache de campanhas e recarrega
func (s *Store) RefreshCampaigns(ctx context.Context) error {
	s.cache.InvalidatePattern(campaignsReloadPattern)
	s.cache.InvalidatePattern(adSetsPattern)

	s.mu.Lock()
	s.lastFetch = time.Time{}
	s.initialized = false
	s.mu.Unlock()

	return s.LoadCampaigns(ctx)
}

// ForceRefresh é o RefreshCampaigns que também limpa os estados de ação
func (s *Store) ForceRefresh(ctx context.Context) error {
	s.cache.InvalidatePattern(campaignsReloadPattern)
	s.cache.InvalidatePattern(adSetsPattern)

	s.mu.Lock()
	s.lastFetch = time.Time{}
	s.initialized = false
	s.actionStates = make(map[string]ActionState)
	s.accountsLoading = make(map[string]bool)
	s.mu.Unlock()

	return s.LoadCampaigns(ctx)
}

// LoadAdSets devolve os ad sets em memória ou busca no backend
func (s *Store) LoadAdSets(ctx context.Context, campaignID string) ([]backenddomain.AdSet, error) {
	campaign, ok := s.CampaignByID(campaignID)
	if !ok {
		return nil, errCampaignNotFound(campaignID)
	}

	if len(campaign.AdSets) > 0 {
		return campaign.AdSets, nil
	}

	adSets, err := requestcache.Get(ctx, s.cache, adSetsCacheKey(campaignID), func(ctx context.Context) ([]backenddomain.AdSet, error) {
		return s.backend.GetAdSets(ctx, campaignID)
	}, requestcache.Options{TTL: s.freshness})
	if err != nil {
		s.logger.WithError(err).WithField("campaign_id", campaignID).Error("Falha ao carregar ad sets")
		return nil, err
	}

	s.mu.Lock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == campaignID {
			s.campaigns[i].AdSets = make([]backenddomain.AdSet, len(adSets))
			for j, as := range adSets {
				s.campaigns[i].AdSets[j] = cloneAdSet(as)
			}
			break
		}
	}
	s.mu.Unlock()

	out := make([]backenddomain.AdSet, len(adSets))
	for i, as := range adSets {
		out[i] = cloneAdSet(as)
	}
	return out, nil
}

// Reset volta o store ao estado inicial
func (s *Store) Reset() {
	s.cache.InvalidatePattern(campaignsReloadPattern)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaigns = nil
	s.metaAccount = nil
	s.adAccounts = nil
	s.selectedAccountID = ""
	s.accountsLoading = make(map[string]bool)
	s.actionStates = make(map[string]ActionState)
	s.googleCampaigns = make(map[string][]backenddomain.GoogleCampaign)
	s.isLoading = false
	s.err = ""
	s.lastFetch = time.Time{}
	s.initialized = false
}

func (s *Store) setAccountLoading(id string, loading bool) {
	s.mu.Lock()
	s.accountsLoading[id] = loading
	s.mu.Unlock()
}

func (s *Store) setActionState(id string, state ActionState) {
	s.mu.Lock()
	s.actionStates[id] = state
	s.mu.Unlock()
}

func errMessage(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
