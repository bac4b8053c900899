// Package tokenstorage guarda os tokens de sessão e a preferência de tema no
// armazenamento durável. Leituras e escritas sempre trocam o valor inteiro.
package tokenstorage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/weathertrigger-console/infrastructure/repository"
	"github.com/vfg2006/weathertrigger-console/internal/config"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	AccessTokenKey  = "wt:accessToken"
	RefreshTokenKey = "wt:refreshToken"
	ThemeKey        = "wt:theme"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

var (
	ErrCorruptedValue = errors.New("stored token could not be decrypted")
	ErrInvalidTheme   = errors.New("invalid theme")
	ErrWeakSecret     = errors.New("secret key is empty or a placeholder")
)

type TokenStorage interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	SetTokens(ctx context.Context, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
	AccessTokenExpiry(ctx context.Context) (time.Time, bool, error)
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

type Storage struct {
	repo repository.KVRepository
	key  [32]byte
}

// New deriva a chave de selagem a partir do segredo da aplicação
func New(repo repository.KVRepository, secret string) (*Storage, error) {
	if trimmed := strings.TrimSpace(secret); trimmed == "" || trimmed == config.PlaceholderSecret {
		return nil, ErrWeakSecret
	}

	s := &Storage{repo: repo}

	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("wt:tokenstorage"))
	if _, err := io.ReadFull(kdf, s.key[:]); err != nil {
		return nil, fmt.Errorf("erro ao derivar chave: %w", err)
	}

	return s, nil
}

func (s *Storage) AccessToken(ctx context.Context) (string, error) {
	return s.readSealed(ctx, AccessTokenKey)
}

func (s *Storage) RefreshToken(ctx context.Context) (string, error) {
	return s.readSealed(ctx, RefreshTokenKey)
}

// SetTokens grava os dois tokens juntos; uma falha não deixa sessão pela metade
func (s *Storage) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	access, err := s.seal(accessToken)
	if err != nil {
		return err
	}
	refresh, err := s.seal(refreshToken)
	if err != nil {
		return err
	}

	return s.repo.Apply(ctx,
		repository.Entry{Key: AccessTokenKey, Value: access},
		repository.Entry{Key: RefreshTokenKey, Value: refresh},
	)
}

// Clear remove os dois tokens
func (s *Storage) Clear(ctx context.Context) error {
	return s.repo.Apply(ctx,
		repository.Entry{Key: AccessTokenKey},
		repository.Entry{Key: RefreshTokenKey},
	)
}

// AccessTokenExpiry lê o claim exp do token de acesso sem validar a assinatura.
// A validação é responsabilidade do backend.
func (s *Storage) AccessTokenExpiry(ctx context.Context) (time.Time, bool, error) {
	token, err := s.AccessToken(ctx)
	if err != nil || token == "" {
		return time.Time{}, false, err
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false, nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}

func (s *Storage) Theme(ctx context.Context) (string, error) {
	value, found, err := s.repo.Get(ctx, ThemeKey)
	if err != nil {
		return "", err
	}
	if !found {
		return ThemeSystem, nil
	}
	return value, nil
}

func (s *Storage) SetTheme(ctx context.Context, theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	return s.repo.Set(ctx, ThemeKey, theme)
}

func (s *Storage) readSealed(ctx context.Context, key string) (string, error) {
	value, found, err := s.repo.Get(ctx, key)
	if err != nil || !found {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil || len(raw) < 24 {
		return "", ErrCorruptedValue
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	opened, ok := secretbox.Open(nil, raw[24:], &nonce, &s.key)
	if !ok {
		return "", ErrCorruptedValue
	}

	return string(opened), nil
}

// seal devolve o valor selado em base64; vazio continua vazio e remove a chave
func (s *Storage) seal(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}

	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}
