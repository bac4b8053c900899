package authenticating

import (
	"errors"
	"fmt"
	"net/http"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de autenticação
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserAlreadyExists  = errors.New("usuário já existe")
	ErrNoSession          = errors.New("nenhuma sessão ativa")
	ErrExpiredToken       = errors.New("token expirado")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// Erros de integração
	ErrBackend      = errors.New("falha ao falar com o backend")
	ErrTokenStorage = errors.New("falha ao gravar os tokens")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoSession)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// fromBackend traduz a falha do backend no erro de autenticação equivalente
func fromBackend(err error) *AuthError {
	details := err.Error()

	switch backenddomain.StatusOf(err) {
	case http.StatusUnauthorized:
		return NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, details)
	case http.StatusConflict:
		return NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, details)
	case http.StatusBadRequest:
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrInvalidRequest, details)
	}

	var apiErr *backenddomain.APIError
	if errors.As(err, &apiErr) && apiErr.Category() == backenddomain.CategoryNetwork {
		return NewAuthError(ErrBackend, apiErrors.ErrCommunication, details)
	}

	return NewAuthError(ErrBackend, apiErrors.ErrExternalService, details)
}
