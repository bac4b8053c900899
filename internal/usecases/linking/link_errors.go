package linking

import (
	"errors"

	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

var (
	ErrNotConnected        = errors.New("meta account not connected")
	ErrHandshakeInProgress = errors.New("meta handshake already in progress")
	ErrHandshakeTimeout    = errors.New("meta handshake timed out")
	ErrPopupBlocked        = errors.New("popup blocked")
	ErrPopupClosed         = errors.New("popup closed before completion")
	ErrNoAccountsSelected  = errors.New("no ad accounts selected")
	ErrAuthFailed          = errors.New("meta authentication failed")
	ErrMissingCode         = errors.New("missing authorization code")
)

type LinkError struct {
	Err     error
	Code    string
	Message string
}

func (e *LinkError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

func NewLinkError(baseErr error, code string, message string) *LinkError {
	return &LinkError{
		Err:     baseErr,
		Code:    code,
		Message: message,
	}
}

func errPopupBlocked() *LinkError {
	return NewLinkError(ErrPopupBlocked, apiErrors.ErrPopupBlocked, "Popup blocked. Please allow popups and try again.")
}

func errHandshakeTimeout() *LinkError {
	return NewLinkError(ErrHandshakeTimeout, apiErrors.ErrHandshakeTimeout, "OAuth process timed out. Please try again.")
}

func errNoAccountsSelected() *LinkError {
	return NewLinkError(ErrNoAccountsSelected, apiErrors.ErrNoAccountsSelected, "Please select at least one account")
}
