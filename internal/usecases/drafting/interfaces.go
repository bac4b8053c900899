package drafting

import (
	"context"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/drafting.go -package=mocks

// Rules cria a regra montada pelo assistente
type Rules interface {
	CreateRule(ctx context.Context, req backenddomain.CreateRuleRequest) (*backenddomain.AutomationRule, error)
}

// Accounts resolve os nomes das contas de anúncios usadas na regra
type Accounts interface {
	GetMetaAccount(ctx context.Context) (*backenddomain.AccountStatusResponse, error)
}

type Notifier interface {
	Success(title, message string) string
	Error(title, message string) string
}
