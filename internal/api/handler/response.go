package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/tokenstorage"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/authenticating"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/automating"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/drafting"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return false
	}
	return true
}

func queryBool(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// handleError traduz o erro de domínio no código da API; erros sem código
// próprio caem na categoria do erro do backend
func handleError(w http.ResponseWriter, err error) {
	var (
		authErr     *authenticating.AuthError
		campaignErr *campaigning.CampaignError
		linkErr     *linking.LinkError
		ruleErr     *automating.RuleError
		draftErr    *drafting.DraftError
		backendErr  *backenddomain.APIError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.As(err, &campaignErr):
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)

	case errors.As(err, &linkErr):
		apiErrors.WriteError(w, linkErr.Code, linkErr.Error(), nil)

	case errors.As(err, &ruleErr):
		apiErrors.WriteError(w, ruleErr.Code, ruleErr.Error(), nil)

	case errors.As(err, &draftErr):
		apiErrors.WriteError(w, draftErr.Code, draftErr.Error(), nil)

	case errors.As(err, &backendErr):
		apiErrors.Write(w, apiErrors.APIError{
			Code:      codeForCategory(backendErr.Category()),
			Message:   backendErr.Error(),
			Details:   backendErr.Details,
			Retryable: backendErr.Retryable(),
		})

	case errors.Is(err, tokenstorage.ErrInvalidTheme):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro não mapeado no handler")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func codeForCategory(c backenddomain.ErrorCategory) string {
	switch c {
	case backenddomain.CategoryAuth:
		return apiErrors.ErrInvalidToken
	case backenddomain.CategoryPermission:
		return apiErrors.ErrPermissionDenied
	case backenddomain.CategoryValidation:
		return apiErrors.ErrInvalidRequest
	case backenddomain.CategoryNotFound:
		return apiErrors.ErrNotFound
	case backenddomain.CategoryRateLimited:
		return apiErrors.ErrRateLimited
	case backenddomain.CategoryNetwork:
		return apiErrors.ErrCommunication
	default:
		return apiErrors.ErrExternalService
	}
}
