package campaigning

import (
	"context"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/campaigning.go -package=mocks

// Backend reúne as chamadas ao backend usadas pelo store de campanhas
type Backend interface {
	GetMetaAccount(ctx context.Context) (*backenddomain.AccountStatusResponse, error)

	GetCampaigns(ctx context.Context, adAccountID string) ([]backenddomain.Campaign, error)
	CreateCampaign(ctx context.Context, req backenddomain.CreateCampaignRequest) (*backenddomain.CreateCampaignResponse, error)
	UpdateCampaign(ctx context.Context, campaignID string, req backenddomain.UpdateCampaignRequest) error
	DeleteCampaign(ctx context.Context, campaignID string) error
	CampaignAction(ctx context.Context, campaignID string, action backenddomain.Action) (*backenddomain.ActionResponse, error)

	GetAdSets(ctx context.Context, campaignID string) ([]backenddomain.AdSet, error)
	CreateAdSet(ctx context.Context, req backenddomain.CreateAdSetRequest) (*backenddomain.CreateAdSetResponse, error)
	DeleteAdSet(ctx context.Context, adSetID string) error
	AdSetAction(ctx context.Context, adSetID string, action backenddomain.Action) (*backenddomain.ActionResponse, error)

	GetGoogleCampaigns(ctx context.Context, customerID string) ([]backenddomain.GoogleCampaign, error)
	GoogleCampaignAction(ctx context.Context, campaignID string, action backenddomain.Action) (*backenddomain.ActionResponse, error)
}

// Notifier emite os toasts de sucesso e falha das ações
type Notifier interface {
	Success(title, message string) string
	Error(title, message string) string
}
