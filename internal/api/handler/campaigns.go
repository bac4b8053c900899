package handler

import (
	"net/http"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler/router"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

type StatusRequest struct {
	Action backenddomain.Action `json:"action"`
}

type CampaignsResponse struct {
	Campaigns         []campaigning.CampaignWithAdSets `json:"campaigns"`
	SelectedAccountID string                           `json:"selectedAccountId,omitempty"`
}

// ListCampaigns aceita ?account= para filtrar uma conta, ?q= para busca e ?force=true
// para ignorar a janela de frescor
func ListCampaigns(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query()
		accountID := query.Get("account")

		var err error
		switch {
		case queryBool(r, "force") && accountID != "":
			err = service.LoadCampaignsForAccount(ctx, accountID)
		case queryBool(r, "force"):
			err = service.ForceRefresh(ctx)
		default:
			err = service.LoadCampaigns(ctx)
		}
		if err != nil {
			handleError(w, err)
			return
		}

		var campaigns []campaigning.CampaignWithAdSets
		if accountID != "" {
			campaigns = service.CampaignsForAccount(accountID)
		} else {
			campaigns = service.Campaigns()
		}
		if term := query.Get("q"); term != "" {
			campaigns = campaigning.FilterCampaigns(campaigns, term)
		}

		writeJSON(w, http.StatusOK, CampaignsResponse{
			Campaigns:         campaigns,
			SelectedAccountID: service.SelectedAccountID(),
		})
	}
}

func CreateCampaign(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form campaigning.CampaignForm
		if !decodeBody(w, r, &form) {
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), form)
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func UpdateCampaign(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")

		var form campaigning.CampaignForm
		if !decodeBody(w, r, &form) {
			return
		}

		if err := service.UpdateCampaign(r.Context(), id, form); err != nil {
			handleError(w, err)
			return
		}

		writeCampaign(w, service, id)
	}
}

func DeleteCampaign(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteCampaign(r.Context(), router.Param(r, "id")); err != nil {
			handleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func UpdateCampaignStatus(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")

		action, ok := decodeAction(w, r)
		if !ok {
			return
		}

		if err := service.UpdateCampaignStatus(r.Context(), id, action); err != nil {
			handleError(w, err)
			return
		}

		writeCampaign(w, service, id)
	}
}

func ListAdSets(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adSets, err := service.LoadAdSets(r.Context(), router.Param(r, "id"))
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"adSets": adSets})
	}
}

func CreateAdSet(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form campaigning.AdSetForm
		if !decodeBody(w, r, &form) {
			return
		}

		adSet, err := service.CreateAdSet(r.Context(), router.Param(r, "id"), form)
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, adSet)
	}
}

func UpdateAdSetStatus(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")

		action, ok := decodeAction(w, r)
		if !ok {
			return
		}

		if err := service.UpdateAdSetStatus(r.Context(), id, action); err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id":          id,
			"actionState": service.ActionState(id),
		})
	}
}

func DeleteAdSet(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteAdSet(r.Context(), router.Param(r, "id")); err != nil {
			handleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListGoogleCampaigns(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.LoadGoogleCampaigns(r.Context(), router.Param(r, "customerId"), queryBool(r, "force"))
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"campaigns": campaigns})
	}
}

func UpdateGoogleCampaignStatus(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action, ok := decodeAction(w, r)
		if !ok {
			return
		}

		err := service.UpdateGoogleCampaignStatus(r.Context(), router.Param(r, "customerId"), router.Param(r, "id"), action)
		if err != nil {
			handleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeAction(w http.ResponseWriter, r *http.Request) (backenddomain.Action, bool) {
	var req StatusRequest
	if !decodeBody(w, r, &req) {
		return "", false
	}
	if !req.Action.Valid() {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid action: "+string(req.Action), nil)
		return "", false
	}
	return req.Action, true
}

func writeCampaign(w http.ResponseWriter, service CampaignService, id string) {
	campaign, ok := service.CampaignByID(id)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}
