package backendclient

import (
	"context"
	"net/http"
	"net/url"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

func (c *BackendClient) GetCampaigns(ctx context.Context, adAccountID string) ([]backenddomain.Campaign, error) {
	var response backenddomain.CampaignsResponse
	if err := c.do(ctx, http.MethodGet, "/meta/campaigns/"+url.PathEscape(adAccountID), nil, &response); err != nil {
		return nil, err
	}

	if response.Campaigns == nil {
		return []backenddomain.Campaign{}, nil
	}

	return response.Campaigns, nil
}

func (c *BackendClient) CreateCampaign(ctx context.Context, req backenddomain.CreateCampaignRequest) (*backenddomain.CreateCampaignResponse, error) {
	var response backenddomain.CreateCampaignResponse
	if err := c.do(ctx, http.MethodPost, "/meta/campaigns", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) UpdateCampaign(ctx context.Context, campaignID string, req backenddomain.UpdateCampaignRequest) error {
	return c.do(ctx, http.MethodPut, "/meta/campaigns/"+url.PathEscape(campaignID), req, nil)
}

func (c *BackendClient) DeleteCampaign(ctx context.Context, campaignID string) error {
	return c.do(ctx, http.MethodDelete, "/meta/campaigns/"+url.PathEscape(campaignID), nil, nil)
}

func (c *BackendClient) CampaignAction(ctx context.Context, campaignID string, action backenddomain.Action) (*backenddomain.ActionResponse, error) {
	var response backenddomain.ActionResponse
	body := backenddomain.CampaignActionRequest{CampaignID: campaignID, Action: action}
	if err := c.do(ctx, http.MethodPost, "/meta/campaigns/action", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) GetGoogleCampaigns(ctx context.Context, customerID string) ([]backenddomain.GoogleCampaign, error) {
	var response backenddomain.GoogleCampaignsResponse
	if err := c.do(ctx, http.MethodGet, "/google/campaigns/"+url.PathEscape(customerID), nil, &response); err != nil {
		return nil, err
	}

	if response.Campaigns == nil {
		return []backenddomain.GoogleCampaign{}, nil
	}

	return response.Campaigns, nil
}

func (c *BackendClient) GoogleCampaignAction(ctx context.Context, campaignID string, action backenddomain.Action) (*backenddomain.ActionResponse, error) {
	var response backenddomain.ActionResponse
	body := backenddomain.CampaignActionRequest{CampaignID: campaignID, Action: action}
	if err := c.do(ctx, http.MethodPost, "/google/campaigns/action", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
