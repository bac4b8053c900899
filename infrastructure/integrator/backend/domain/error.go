package backenddomain

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Envelope é o formato {success, data|error} usado pela maioria dos endpoints
type Envelope struct {
	Success *bool         `json:"success"`
	Data    RawJSON       `json:"data"`
	Error   *ErrorPayload `json:"error"`
}

// ErrorPayload contém os detalhes de erro devolvidos pelo backend
type ErrorPayload struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RawJSON adia a decodificação de um campo
type RawJSON []byte

func (r *RawJSON) UnmarshalJSON(b []byte) error {
	*r = append((*r)[0:0], b...)
	return nil
}

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

type ErrorCategory string

const (
	CategoryAuth        ErrorCategory = "auth"
	CategoryPermission  ErrorCategory = "permission"
	CategoryValidation  ErrorCategory = "validation"
	CategoryNotFound    ErrorCategory = "not_found"
	CategoryRateLimited ErrorCategory = "rate_limited"
	CategoryServer      ErrorCategory = "server"
	CategoryNetwork     ErrorCategory = "network"
	CategoryUnknown     ErrorCategory = "unknown"
)

// APIError representa uma falha ao falar com o backend
type APIError struct {
	Message string
	Status  int
	Details any
	Path    string
	// Network indica falha de transporte, sem resposta HTTP
	Network bool
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Category classifica o erro pelo status HTTP
func (e *APIError) Category() ErrorCategory {
	if e.Network {
		return CategoryNetwork
	}

	switch e.Status {
	case http.StatusUnauthorized:
		return CategoryAuth
	case http.StatusForbidden:
		return CategoryPermission
	case http.StatusBadRequest:
		return CategoryValidation
	case http.StatusNotFound:
		return CategoryNotFound
	case http.StatusTooManyRequests:
		return CategoryRateLimited
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return CategoryServer
	default:
		return CategoryUnknown
	}
}

// Retryable indica se repetir a requisição pode ter outro resultado
func (e *APIError) Retryable() bool {
	switch e.Category() {
	case CategoryRateLimited, CategoryServer, CategoryNetwork:
		return true
	default:
		return false
	}
}

// Describe devolve o título e a mensagem exibidos ao usuário para um erro
func Describe(err error) (title, message string) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		if err == nil {
			return "Error", "An unexpected error occurred."
		}
		return "Error", err.Error()
	}

	switch apiErr.Category() {
	case CategoryAuth:
		return "Authentication Required", "Your session has expired. Please log in again."
	case CategoryPermission:
		return "Permission Denied", "You don't have permission to perform this action. Check your account permissions."
	case CategoryValidation:
		return "Invalid Data", orDefault(apiErr.Message, "The request data is invalid. Please check your input.")
	case CategoryNotFound:
		return "Not Found", "The requested resource was not found."
	case CategoryRateLimited:
		return "Rate Limited", "Too many requests. Please wait a moment and try again."
	case CategoryServer:
		return "Server Error", "Server error occurred. Please try again later."
	case CategoryNetwork:
		return "Connection Error", "Network connection failed. Please check your internet connection."
	default:
		return "Error", orDefault(apiErr.Message, "An unexpected error occurred.")
	}
}

// StatusOf devolve o status HTTP de um erro do backend, ou 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (e *APIError) GoString() string {
	return fmt.Sprintf("APIError{Status:%d, Path:%q, Message:%q}", e.Status, e.Path, e.Message)
}
