package automating

import (
	"errors"
	"net/http"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

var (
	ErrRuleNotFound    = errors.New("automation rule not found")
	ErrInvalidRule     = errors.New("invalid automation rule")
	ErrInvalidLocation = errors.New("invalid weather location")
)

// RuleError carrega o código da API e a mensagem exibida ao usuário
type RuleError struct {
	Err     error
	Code    string
	Message string
}

func (e *RuleError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

func NewRuleError(baseErr error, code string, message string) *RuleError {
	return &RuleError{
		Err:     baseErr,
		Code:    code,
		Message: message,
	}
}

// notFoundOr troca um 404 do backend pelo erro de regra inexistente
func notFoundOr(err error, ruleID string) error {
	if backenddomain.StatusOf(err) == http.StatusNotFound {
		return NewRuleError(ErrRuleNotFound, apiErrors.ErrNotFound, "Automation rule not found: "+ruleID)
	}
	return err
}
