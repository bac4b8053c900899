package authenticating

import (
	"context"
	"time"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/authenticating.go -package=mocks

type Backend interface {
	Register(ctx context.Context, req backenddomain.RegisterRequest) (*backenddomain.AuthResponse, error)
	Login(ctx context.Context, req backenddomain.LoginRequest) (*backenddomain.AuthResponse, error)
	Profile(ctx context.Context) (*backenddomain.User, error)
}

// TokenStore guarda os tokens da sessão entre execuções do console
type TokenStore interface {
	AccessToken(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
	AccessTokenExpiry(ctx context.Context) (time.Time, bool, error)
}
