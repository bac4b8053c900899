package backendclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

func (c *BackendClient) ListRules(ctx context.Context, limit, offset int) (*backenddomain.RulesResponse, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	path := "/automation-rules"
	if qs := params.Encode(); qs != "" {
		path += "?" + qs
	}

	var response backenddomain.RulesResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) GetRule(ctx context.Context, ruleID string) (*backenddomain.AutomationRule, error) {
	var response backenddomain.RuleResponse
	if err := c.do(ctx, http.MethodGet, "/automation-rules/"+url.PathEscape(ruleID), nil, &response); err != nil {
		return nil, err
	}
	return &response.Rule, nil
}

func (c *BackendClient) CreateRule(ctx context.Context, req backenddomain.CreateRuleRequest) (*backenddomain.AutomationRule, error) {
	var response backenddomain.RuleResponse
	if err := c.do(ctx, http.MethodPost, "/automation-rules", req, &response); err != nil {
		return nil, err
	}
	return &response.Rule, nil
}

func (c *BackendClient) UpdateRule(ctx context.Context, ruleID string, req backenddomain.UpdateRuleRequest) (*backenddomain.AutomationRule, error) {
	var response backenddomain.RuleResponse
	if err := c.do(ctx, http.MethodPut, "/automation-rules/"+url.PathEscape(ruleID), req, &response); err != nil {
		return nil, err
	}
	return &response.Rule, nil
}

func (c *BackendClient) ToggleRule(ctx context.Context, ruleID string) (*backenddomain.AutomationRule, error) {
	var response backenddomain.RuleResponse
	if err := c.do(ctx, http.MethodPost, "/automation-rules/"+url.PathEscape(ruleID)+"/toggle", nil, &response); err != nil {
		return nil, err
	}
	return &response.Rule, nil
}

func (c *BackendClient) DeleteRule(ctx context.Context, ruleID string) error {
	return c.do(ctx, http.MethodDelete, "/automation-rules/"+url.PathEscape(ruleID), nil, nil)
}

func (c *BackendClient) RecentExecutions(ctx context.Context, limit, offset int) (*backenddomain.ExecutionsResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var response backenddomain.ExecutionsResponse
	if err := c.do(ctx, http.MethodGet, "/automation-rules/executions/recent?"+params.Encode(), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) EngineStats(ctx context.Context) (*backenddomain.EngineStats, error) {
	var response backenddomain.EngineStats
	if err := c.do(ctx, http.MethodGet, "/automation-rules/engine/stats", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
