package campaigning

import (
	"errors"

	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAdSetNotFound     = errors.New("ad set not found")
	ErrAdAccountNotFound = errors.New("ad account not found")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidCampaign   = errors.New("invalid campaign")
	ErrInvalidAdSet      = errors.New("invalid ad set")
	ErrInvalidBudget     = errors.New("invalid budget")
)

// CampaignError carrega o código da API e a mensagem exibida ao usuário
type CampaignError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Message string // Texto exibido ao usuário
}

func (e *CampaignError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(baseErr error, code string, message string) *CampaignError {
	return &CampaignError{
		Err:     baseErr,
		Code:    code,
		Message: message,
	}
}

// IsValidationError indica erro detectado antes de qualquer chamada ao backend
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCampaign) ||
		errors.Is(err, ErrInvalidAdSet) ||
		errors.Is(err, ErrInvalidBudget) ||
		errors.Is(err, ErrInvalidAction)
}

func errCampaignNotFound(id string) *CampaignError {
	return NewCampaignError(ErrCampaignNotFound, apiErrors.ErrNotFound, "Campaign not found: "+id)
}

func errAdSetNotFound(id string) *CampaignError {
	return NewCampaignError(ErrAdSetNotFound, apiErrors.ErrNotFound, "Ad set not found: "+id)
}
