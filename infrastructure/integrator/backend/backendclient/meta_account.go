package backendclient

import (
	"context"
	"net/http"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

func (c *BackendClient) GetMetaAccount(ctx context.Context) (*backenddomain.AccountStatusResponse, error) {
	var response backenddomain.AccountStatusResponse
	if err := c.do(ctx, http.MethodGet, "/meta/account", nil, &response); err != nil {
		return nil, err
	}

	adAccounts := 0
	if response.Account != nil {
		adAccounts = len(response.Account.AdAccounts)
	}
	c.logger.WithContext(ctx).WithFields(log.Fields{
		"connected":         response.Connected,
		"ad_accounts_count": adAccounts,
	}).Debug("Status da conta Meta recebido")

	return &response, nil
}

func (c *BackendClient) GetMetaAuthURL(ctx context.Context, redirectURI string) (*backenddomain.AuthURLResponse, error) {
	var response backenddomain.AuthURLResponse
	body := backenddomain.AuthURLRequest{RedirectURI: redirectURI}
	if err := c.do(ctx, http.MethodPost, "/meta/auth/url", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) MetaAuthCallback(ctx context.Context, req backenddomain.AuthCallbackRequest) (*backenddomain.AuthCallbackResponse, error) {
	var response backenddomain.AuthCallbackResponse
	if err := c.do(ctx, http.MethodPost, "/meta/auth/callback", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) ToggleMetaAccount(ctx context.Context, adAccountID string, active bool) (*backenddomain.ToggleAccountResponse, error) {
	var response backenddomain.ToggleAccountResponse
	body := backenddomain.ToggleAccountRequest{AdAccountID: adAccountID, IsActive: active}
	if err := c.do(ctx, http.MethodPost, "/meta/accounts/toggle", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) DisconnectMeta(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/meta/account", nil, nil)
}
