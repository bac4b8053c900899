package handler

import (
	"context"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/drafting"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/notifying"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/handler.go -package=mocks

type MetaService interface {
	State() linking.State
	LoadAccountData(ctx context.Context, opts linking.LoadOptions) error
	RefreshConnection(ctx context.Context) error
	Connect(ctx context.Context, opener linking.PopupOpener) (*linking.Handshake, error)
	ActiveHandshake() (*linking.Handshake, bool)
	CompleteCallback(ctx context.Context, code, state string) error
	ToggleSelected(adAccountID string, checked bool)
	ActivateSelected(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

type CampaignService interface {
	LoadCampaigns(ctx context.Context) error
	ForceRefresh(ctx context.Context) error
	LoadCampaignsForAccount(ctx context.Context, adAccountID string) error
	Campaigns() []campaigning.CampaignWithAdSets
	CampaignsForAccount(adAccountID string) []campaigning.CampaignWithAdSets
	CampaignByID(id string) (campaigning.CampaignWithAdSets, bool)
	ActionState(id string) campaigning.ActionState
	CreateCampaign(ctx context.Context, form campaigning.CampaignForm) (*campaigning.CampaignWithAdSets, error)
	UpdateCampaign(ctx context.Context, campaignID string, form campaigning.CampaignForm) error
	DeleteCampaign(ctx context.Context, campaignID string) error
	UpdateCampaignStatus(ctx context.Context, campaignID string, action backenddomain.Action) error
	LoadAdSets(ctx context.Context, campaignID string) ([]backenddomain.AdSet, error)
	CreateAdSet(ctx context.Context, campaignID string, form campaigning.AdSetForm) (*backenddomain.AdSet, error)
	UpdateAdSetStatus(ctx context.Context, adSetID string, action backenddomain.Action) error
	DeleteAdSet(ctx context.Context, adSetID string) error
	LoadGoogleCampaigns(ctx context.Context, customerID string, force bool) ([]backenddomain.GoogleCampaign, error)
	UpdateGoogleCampaignStatus(ctx context.Context, customerID, campaignID string, action backenddomain.Action) error
	AccountsWithStats() []campaigning.AccountWithStats
	SelectedAccountID() string
	SetSelectedAccount(adAccountID string)
	Summary() campaigning.Summary
}

type AutomationService interface {
	ListRules(ctx context.Context, limit, offset int, force bool) (*backenddomain.RulesResponse, error)
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

type RuleWizard interface {
	Draft() drafting.Draft
	Replace(d drafting.Draft) error
	Reset()
	CanSubmit() bool
	Submit(ctx context.Context) (*backenddomain.AutomationRule, error)
}

type Notifications interface {
	List() []notifying.Toast
	Dismiss(id string) bool
}

type Preferences interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualRun()
	GetStatus() map[string]any
}
