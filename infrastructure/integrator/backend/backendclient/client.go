package backendclient

import (
	"context"
	"net/http"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ProfilePath é o endpoint cujo 401 exige reset completo da aplicação
const ProfilePath = "/auth/profile"

// maxResponseBytes limita o corpo lido de uma resposta do backend
const maxResponseBytes = 10 << 20

type Client interface {
	Register(ctx context.Context, req backenddomain.RegisterRequest) (*backenddomain.AuthResponse, error)
	Login(ctx context.Context, req backenddomain.LoginRequest) (*backenddomain.AuthResponse, error)
	Profile(ctx context.Context) (*backenddomain.User, error)

	GetMetaAccount(ctx context.Context) (*backenddomain.AccountStatusResponse, error)
	GetMetaAuthURL(ctx context.Context, redirectURI string) (*backenddomain.AuthURLResponse, error)
	MetaAuthCallback(ctx context.Context, req backenddomain.AuthCallbackRequest) (*backenddomain.AuthCallbackResponse, error)
	ToggleMetaAccount(ctx context.Context, adAccountID string, active bool) (*backenddomain.ToggleAccountResponse, error)
	DisconnectMeta(ctx context.Context) error

	GetCampaigns(ctx context.Context, adAccountID string) ([]backenddomain.Campaign, error)
	CreateCampaign(ctx context.Context, req backenddomain.CreateCampaignRequest) (*backenddomain.CreateCampaignResponse, error)
	UpdateCampaign(ctx context.Context, campaignID string, req backenddomain.UpdateCampaignRequest) error
	DeleteCampaign(ctx context.Context, campaignID string) error
	CampaignAction(ctx context.Context, campaignID string, action backenddomain.Action) (*backenddomain.ActionResponse, error)

	GetAdSets(ctx context.Context, campaignID string) ([]backenddomain.AdSet, error)
	GetAdSet(ctx context.Context, adSetID string) (*backenddomain.AdSet, error)
	CreateAdSet(ctx context.Context, req backenddomain.CreateAdSetRequest) (*backenddomain.CreateAdSetResponse, error)
	DeleteAdSet(ctx context.Context, adSetID string) error
	AdSetAction(ctx context.Context, adSetID string, action backenddomain.Action) (*backenddomain.ActionResponse, error)

	GetGoogleCampaigns(ctx context.Context, customerID string) ([]backenddomain.GoogleCampaign, error)
	GoogleCampaignAction(ctx context.Context, campaignID string, action backenddomain.Action) (*backenddomain.ActionResponse, error)

	ListRules(ctx context.Context, limit, offset int) (*backenddomain.RulesResponse, error)
	GetRule(ctx context.Context, ruleID string) (*backenddomain.AutomationRule, error)
	CreateRule(ctx context.Context, req backenddomain.CreateRuleRequest) (*backenddomain.AutomationRule, error)
	UpdateRule(ctx context.Context, ruleID string, req backenddomain.UpdateRuleRequest) (*backenddomain.AutomationRule, error)
	ToggleRule(ctx context.Context, ruleID string) (*backenddomain.AutomationRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
	RecentExecutions(ctx context.Context, limit, offset int) (*backenddomain.ExecutionsResponse, error)
	EngineStats(ctx context.Context) (*backenddomain.EngineStats, error)

	WeatherByCity(ctx context.Context, city, country string) (*backenddomain.WeatherData, error)
	WeatherByCoordinates(ctx context.Context, lat, lon float64) (*backenddomain.WeatherData, error)
}

// TokenSource fornece e limpa o token de acesso da sessão
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// UnauthorizedHandler é chamado após um 401, com os tokens já removidos
type UnauthorizedHandler func(ctx context.Context, path string)

type BackendClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     log.Logger
	maxBody    int64

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHandler
}

func NewClient(cfg *config.Config, tokens TokenSource, logger log.Logger) *BackendClient {
	return &BackendClient{
		baseURL:    strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Backend.Timeout},
		tokens:     tokens,
		logger:     logger.WithField("component", "backendclient"),
		maxBody:    maxResponseBytes,
	}
}

// SetUnauthorizedHandler registra o tratamento global de 401
func (c *BackendClient) SetUnauthorizedHandler(h UnauthorizedHandler) {
	c.mu.Lock()
	c.onUnauthorized = h
	c.mu.Unlock()
}

func (c *BackendClient) unauthorizedHandler() UnauthorizedHandler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onUnauthorized
}
