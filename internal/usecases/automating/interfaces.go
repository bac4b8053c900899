package automating

import (
	"context"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/automating.go -package=mocks

// Backend reúne as rotas de regras, do motor de automação e de clima
type Backend interface {
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

type Notifier interface {
	Success(title, message string) string
	Error(title, message string) string
}
