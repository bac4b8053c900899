package handler

import (
	"net/http"
	"strconv"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler/router"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/drafting"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

const defaultExecutionsLimit = 10

func ListRules(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules, err := service.ListRules(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0), queryBool(r, "force"))
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rules)
	}
}

func GetRule(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rule, err := service.GetRule(r.Context(), router.Param(r, "id"))
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rule)
	}
}

// CreateRule envia o corpo pronto ao backend, sem passar pelo assistente
func CreateRule(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backenddomain.CreateRuleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		rule, err := service.CreateRule(r.Context(), req)
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rule)
	}
}

func UpdateRule(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req backenddomain.UpdateRuleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		rule, err := service.UpdateRule(r.Context(), router.Param(r, "id"), req)
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rule)
	}
}

func ToggleRule(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rule, err := service.ToggleRule(r.Context(), router.Param(r, "id"))
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rule)
	}
}

func DeleteRule(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteRule(r.Context(), router.Param(r, "id")); err != nil {
			handleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func RecentExecutions(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		executions, err := service.RecentExecutions(r.Context(), queryInt(r, "limit", defaultExecutionsLimit), queryInt(r, "offset", 0))
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, executions)
	}
}

func EngineStats(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.EngineStats(r.Context())
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func WeatherByCity(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		weather, err := service.WeatherByCity(r.Context(), query.Get("city"), query.Get("country"))
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, weather)
	}
}

func WeatherByCoordinates(service AutomationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(query.Get("lon"), 64)
		if latErr != nil || lonErr != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "lat and lon must be numbers", nil)
			return
		}

		weather, err := service.WeatherByCoordinates(r.Context(), lat, lon)
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, weather)
	}
}

type DraftResponse struct {
	Draft       drafting.Draft `json:"draft"`
	DisplayName string         `json:"displayName"`
	CanSubmit   bool           `json:"canSubmit"`
}

func draftResponse(wizard RuleWizard) DraftResponse {
	d := wizard.Draft()
	return DraftResponse{
		Draft:       d,
		DisplayName: d.DisplayName(),
		CanSubmit:   wizard.CanSubmit(),
	}
}

func GetRuleDraft(wizard RuleWizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, draftResponse(wizard))
	}
}

func ReplaceRuleDraft(wizard RuleWizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d drafting.Draft
		if !decodeBody(w, r, &d) {
			return
		}

		if err := wizard.Replace(d); err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, draftResponse(wizard))
	}
}

func ResetRuleDraft(wizard RuleWizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wizard.Reset()
		w.WriteHeader(http.StatusNoContent)
	}
}

func SubmitRuleDraft(wizard RuleWizard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rule, err := wizard.Submit(r.Context())
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rule)
	}
}
