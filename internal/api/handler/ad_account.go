package handler

import (
	"net/http"

	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

type SelectedAccountRequest struct {
	AccountID string `json:"accountId"`
}

type AccountsResponse struct {
	Accounts          []campaigning.AccountWithStats `json:"accounts"`
	SelectedAccountID string                         `json:"selectedAccountId,omitempty"`
}

// AdAccountList lista as contas carregadas pela store de campanhas, já ordenadas
func AdAccountList(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.LoadCampaigns(r.Context()); err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AccountsResponse{
			Accounts:          service.AccountsWithStats(),
			SelectedAccountID: service.SelectedAccountID(),
		})
	}
}

func SelectAdAccount(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectedAccountRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "accountId is required", nil)
			return
		}

		service.SetSelectedAccount(req.AccountID)

		writeJSON(w, http.StatusOK, AccountsResponse{
			Accounts:          service.AccountsWithStats(),
			SelectedAccountID: service.SelectedAccountID(),
		})
	}
}

type SummaryResponse struct {
	campaigning.Summary
	Accounts []campaigning.AccountWithStats `json:"accounts"`
}

func GetReportSummary(service CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.LoadCampaigns(r.Context()); err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SummaryResponse{
			Summary:  service.Summary(),
			Accounts: service.AccountsWithStats(),
		})
	}
}
