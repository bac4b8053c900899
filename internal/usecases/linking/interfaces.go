package linking

import (
	"context"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/linking.go -package=mocks

type Backend interface {
	GetMetaAccount(ctx context.Context) (*backenddomain.AccountStatusResponse, error)
	GetMetaAuthURL(ctx context.Context, redirectURI string) (*backenddomain.AuthURLResponse, error)
	MetaAuthCallback(ctx context.Context, req backenddomain.AuthCallbackRequest) (*backenddomain.AuthCallbackResponse, error)
	ToggleMetaAccount(ctx context.Context, adAccountID string, active bool) (*backenddomain.ToggleAccountResponse, error)
	DisconnectMeta(ctx context.Context) error
}

type Notifier interface {
	Success(title, message string) string
	Error(title, message string) string
	Info(title, message string) string
}
