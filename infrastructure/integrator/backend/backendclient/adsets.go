package backendclient

import (
	"context"
	"net/http"
	"net/url"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

func (c *BackendClient) GetAdSets(ctx context.Context, campaignID string) ([]backenddomain.AdSet, error) {
	var response backenddomain.AdSetsResponse
	if err := c.do(ctx, http.MethodGet, "/meta/adsets/"+url.PathEscape(campaignID), nil, &response); err != nil {
		return nil, err
	}

	if response.AdSets == nil {
		return []backenddomain.AdSet{}, nil
	}

	return response.AdSets, nil
}

func (c *BackendClient) GetAdSet(ctx context.Context, adSetID string) (*backenddomain.AdSet, error) {
	var response backenddomain.AdSetResponse
	if err := c.do(ctx, http.MethodGet, "/meta/adset/"+url.PathEscape(adSetID), nil, &response); err != nil {
		return nil, err
	}
	return &response.AdSet, nil
}

func (c *BackendClient) CreateAdSet(ctx context.Context, req backenddomain.CreateAdSetRequest) (*backenddomain.CreateAdSetResponse, error) {
	var response backenddomain.CreateAdSetResponse
	if err := c.do(ctx, http.MethodPost, "/meta/adsets", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) DeleteAdSet(ctx context.Context, adSetID string) error {
	return c.do(ctx, http.MethodDelete, "/meta/adsets/"+url.PathEscape(adSetID), nil, nil)
}

func (c *BackendClient) AdSetAction(ctx context.Context, adSetID string, action backenddomain.Action) (*backenddomain.ActionResponse, error) {
	var response backenddomain.ActionResponse
	body := backenddomain.AdSetActionRequest{AdSetID: adSetID, Action: action}
	if err := c.do(ctx, http.MethodPost, "/meta/adsets/action", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
