package automating

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
)

const (
	defaultRulesTTL   = 30 * time.Second
	defaultEngineTTL  = 15 * time.Second
	defaultWeatherTTL = 10 * time.Minute

	minCheckInterval = 5
	maxCheckInterval = 1440
)

var rulesPattern = regexp.MustCompile(`^rules-`)

func ruleCacheKey(id string) string { return "rules-" + id }

func rulesListCacheKey(limit, offset int) string {
	return fmt.Sprintf("rules-list-%d-%d", limit, offset)
}

type Service struct {
	backend  Backend
	cache    *requestcache.Cache
	notifier Notifier
	logger   log.Logger

	rulesTTL   time.Duration
	engineTTL  time.Duration
	weatherTTL time.Duration
}

func NewService(cfg *config.Config, backend Backend, cache *requestcache.Cache, notifier Notifier, logger log.Logger) *Service {
	s := &Service{
		backend:    backend,
		cache:      cache,
		notifier:   notifier,
		logger:     logger.WithField("component", "automating"),
		rulesTTL:   defaultRulesTTL,
		engineTTL:  defaultEngineTTL,
		weatherTTL: defaultWeatherTTL,
	}

	if cfg != nil && cfg.Cache.DefaultTTL > 0 && cfg.Cache.DefaultTTL < s.weatherTTL {
		s.weatherTTL = cfg.Cache.DefaultTTL
	}

	return s
}

func (s *Service) ListRules(ctx context.Context, limit, offset int, force bool) (*backenddomain.RulesResponse, error) {
	rules, err := requestcache.Get(ctx, s.cache, rulesListCacheKey(limit, offset), func(ctx context.Context) (*backenddomain.RulesResponse, error) {
		return s.backend.ListRules(ctx, limit, offset)
	}, requestcache.Options{TTL: s.rulesTTL, Force: force})
	if err != nil {
		s.logger.WithError(err).Error("Erro ao listar regras de automação")
		return nil, err
	}
	return rules, nil
}

func (s *Service) GetRule(ctx context.Context, ruleID string) (*backenddomain.AutomationRule, error) {
	rule, err := requestcache.Get(ctx, s.cache, ruleCacheKey(ruleID), func(ctx context.Context) (*backenddomain.AutomationRule, error) {
		return s.backend.GetRule(ctx, ruleID)
	}, requestcache.Options{TTL: s.rulesTTL})
	if err != nil {
		s.logger.WithError(err).WithField("rule_id", ruleID).Error("Erro ao buscar regra")
		return nil, notFoundOr(err, ruleID)
	}
	return rule, nil
}

// CreateRule não emite toast; quem monta a regra decide a mensagem
func (s *Service) CreateRule(ctx context.Context, req backenddomain.CreateRuleRequest) (*backenddomain.AutomationRule, error) {
	rule, err := s.backend.CreateRule(ctx, req)
	if err != nil {
		s.logger.WithError(err).WithField("name", req.Name).Error("Erro ao criar regra")
		return nil, err
	}

	s.cache.InvalidatePattern(rulesPattern)

	s.logger.WithFields(log.Fields{
		"rule_id":   rule.ID,
		"campaigns": len(req.Campaigns),
	}).Info("Regra de automação criada")

	return rule, nil
}

func (s *Service) UpdateRule(ctx context.Context, ruleID string, req backenddomain.UpdateRuleRequest) (*backenddomain.AutomationRule, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewRuleError(ErrInvalidRule, apiErrors.ErrInvalidRule, "Rule name is required")
		}
		req.Name = &name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		req.Description = &description
	}
	if req.CheckIntervalMinutes != nil {
		if v := *req.CheckIntervalMinutes; v < minCheckInterval || v > maxCheckInterval {
			return nil, NewRuleError(ErrInvalidRule, apiErrors.ErrInvalidRule, "Check interval must be between 5 and 1440 minutes")
		}
	}

	rule, err := s.backend.UpdateRule(ctx, ruleID, req)
	if err != nil {
		s.logger.WithError(err).WithField("rule_id", ruleID).Error("Erro ao atualizar regra")
		s.notifier.Error("", messageOr(err, "Failed to update rule"))
		return nil, notFoundOr(err, ruleID)
	}

	s.cache.InvalidatePattern(rulesPattern)
	s.notifier.Success("", "Rule updated successfully")

	return rule, nil
}

func (s *Service) ToggleRule(ctx context.Context, ruleID string) (*backenddomain.AutomationRule, error) {
	rule, err := s.backend.ToggleRule(ctx, ruleID)
	if err != nil {
		s.logger.WithError(err).WithField("rule_id", ruleID).Error("Erro ao alternar regra")
		s.notifier.Error("", messageOr(err, "Failed to toggle"))
		return nil, notFoundOr(err, ruleID)
	}

	s.cache.InvalidatePattern(rulesPattern)

	state := "deactivated"
	if rule.IsActive {
		state = "activated"
	}
	s.notifier.Success("", fmt.Sprintf("Rule %s successfully", state))

	return rule, nil
}

func (s *Service) DeleteRule(ctx context.Context, ruleID string) error {
	if err := s.backend.DeleteRule(ctx, ruleID); err != nil {
		s.logger.WithError(err).WithField("rule_id", ruleID).Error("Erro ao excluir regra")
		s.notifier.Error("", messageOr(err, "Failed to delete"))
		return notFoundOr(err, ruleID)
	}

	s.cache.InvalidatePattern(rulesPattern)
	s.notifier.Success("", "Rule deleted successfully")

	return nil
}

func (s *Service) RecentExecutions(ctx context.Context, limit, offset int) (*backenddomain.ExecutionsResponse, error) {
	key := fmt.Sprintf("automation-executions-%d-%d", limit, offset)
	return requestcache.Get(ctx, s.cache, key, func(ctx context.Context) (*backenddomain.ExecutionsResponse, error) {
		return s.backend.RecentExecutions(ctx, limit, offset)
	}, requestcache.Options{TTL: s.engineTTL})
}

func (s *Service) EngineStats(ctx context.Context) (*backenddomain.EngineStats, error) {
	return requestcache.Get(ctx, s.cache, "automation-engine-stats", s.backend.EngineStats, requestcache.Options{TTL: s.engineTTL})
}

func messageOr(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
