package backendclient

import (
	"context"
	"net/http"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

func (c *BackendClient) Register(ctx context.Context, req backenddomain.RegisterRequest) (*backenddomain.AuthResponse, error) {
	var response backenddomain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) Login(ctx context.Context, req backenddomain.LoginRequest) (*backenddomain.AuthResponse, error) {
	var response backenddomain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) Profile(ctx context.Context) (*backenddomain.User, error) {
	var response backenddomain.ProfileResponse
	if err := c.do(ctx, http.MethodGet, ProfilePath, nil, &response); err != nil {
		return nil, err
	}
	return &response.User, nil
}
