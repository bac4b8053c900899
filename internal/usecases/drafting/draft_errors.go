package drafting

import (
	"errors"

	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

var (
	ErrIncompleteDraft = errors.New("rule draft is incomplete")
	ErrInvalidInterval = errors.New("invalid check interval")
	ErrInvalidDraft    = errors.New("invalid rule draft")
)

// DraftError carrega o código da API e a mensagem exibida ao usuário
type DraftError struct {
	Err     error
	Code    string
	Message string
}

func (e *DraftError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DraftError) Unwrap() error {
	return e.Err
}

func NewDraftError(baseErr error, message string) *DraftError {
	return &DraftError{
		Err:     baseErr,
		Code:    apiErrors.ErrInvalidRule,
		Message: message,
	}
}

func errInvalidInterval() *DraftError {
	return NewDraftError(ErrInvalidInterval, "Check interval must be 720 or 1440 minutes")
}
