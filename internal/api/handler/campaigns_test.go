package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler/mocks"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func campaign(id, name string, status backenddomain.Status) campaigning.CampaignWithAdSets {
	return campaigning.CampaignWithAdSets{
		Campaign: backenddomain.Campaign{ID: id, Name: name, Status: status},
		Platform: "meta",
	}
}

func TestListCampaigns_EscolheCarga(t *testing.T) {
	tests := []struct {
		name   string
		target string
		expect func(svc *mocks.MockCampaignService)
	}{
		{
			name:   "carga normal",
			target: "/v1/campaigns",
			expect: func(svc *mocks.MockCampaignService) {
				svc.EXPECT().LoadCampaigns(gomock.Any()).Return(nil)
				svc.EXPECT().Campaigns().Return([]campaigning.CampaignWithAdSets{campaign("c-1", "Verão", backenddomain.StatusActive)})
			},
		},
		{
			name:   "forçada",
			target: "/v1/campaigns?force=true",
			expect: func(svc *mocks.MockCampaignService) {
				svc.EXPECT().ForceRefresh(gomock.Any()).Return(nil)
				svc.EXPECT().Campaigns().Return([]campaigning.CampaignWithAdSets{campaign("c-1", "Verão", backenddomain.StatusActive)})
			},
		},
		{
			name:   "forçada para uma conta",
			target: "/v1/campaigns?force=true&account=act_1",
			expect: func(svc *mocks.MockCampaignService) {
				svc.EXPECT().LoadCampaignsForAccount(gomock.Any(), "act_1").Return(nil)
				svc.EXPECT().CampaignsForAccount("act_1").Return([]campaigning.CampaignWithAdSets{campaign("c-1", "Verão", backenddomain.StatusActive)})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCampaignService(ctrl)
			tt.expect(svc)
			svc.EXPECT().SelectedAccountID().Return("act_1")

			rec := serve(t, Campaigns(svc), http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusOK, rec.Code)

			var res CampaignsResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
			require.Len(t, res.Campaigns, 1)
			assert.Equal(t, "c-1", res.Campaigns[0].ID)
			assert.Equal(t, "act_1", res.SelectedAccountID)
		})
	}
}

func TestListCampaigns_Busca(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampaignService(ctrl)

	svc.EXPECT().LoadCampaigns(gomock.Any()).Return(nil)
	svc.EXPECT().Campaigns().Return([]campaigning.CampaignWithAdSets{
		campaign("c-1", "Verão 2024", backenddomain.StatusActive),
		campaign("c-2", "Inverno", backenddomain.StatusPaused),
	})
	svc.EXPECT().SelectedAccountID().Return("")

	rec := serve(t, Campaigns(svc), http.MethodGet, "/v1/campaigns?q=inverno", "")

	var res CampaignsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Campaigns, 1)
	assert.Equal(t, "c-2", res.Campaigns[0].ID)
}

func TestUpdateCampaignStatus(t *testing.T) {
	t.Run("ação inválida não chega à store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCampaignService(ctrl)

		rec := serve(t, Campaigns(svc), http.MethodPost, "/v1/campaigns/c-1/status", `{"action":"archive"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid action: archive", decodeError(t, rec).Message)
	})

	t.Run("pausa e devolve a campanha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCampaignService(ctrl)

		svc.EXPECT().UpdateCampaignStatus(gomock.Any(), "c-1", backenddomain.ActionPause).Return(nil)
		svc.EXPECT().CampaignByID("c-1").Return(campaign("c-1", "Verão", backenddomain.StatusPaused), true)

		rec := serve(t, Campaigns(svc), http.MethodPost, "/v1/campaigns/c-1/status", `{"action":"pause"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"PAUSED"`)
	})

	t.Run("campanha desconhecida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCampaignService(ctrl)

		svc.EXPECT().UpdateCampaignStatus(gomock.Any(), "c-9", backenddomain.ActionResume).
			Return(campaigning.NewCampaignError(campaigning.ErrCampaignNotFound, apiErrors.ErrNotFound, "Campaign not found"))

		rec := serve(t, Campaigns(svc), http.MethodPost, "/v1/campaigns/c-9/status", `{"action":"resume"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateAdSet_OrcamentoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampaignService(ctrl)

	svc.EXPECT().CreateAdSet(gomock.Any(), "c-1", campaigning.AdSetForm{Name: "Praia", DailyBudget: "0"}).
		Return(nil, campaigning.NewCampaignError(campaigning.ErrInvalidBudget, apiErrors.ErrInvalidBudget, "Daily budget must be greater than 0"))

	rec := serve(t, Campaigns(svc), http.MethodPost, "/v1/campaigns/c-1/adsets", `{"name":"Praia","daily_budget":"0"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInvalidBudget, apiErr.Code)
	assert.Equal(t, "Daily budget must be greater than 0", apiErr.Message)
}

func TestUpdateAdSetStatus_DevolveEstadoDaAcao(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampaignService(ctrl)

	svc.EXPECT().UpdateAdSetStatus(gomock.Any(), "as-1", backenddomain.ActionPause).Return(nil)
	svc.EXPECT().ActionState("as-1").Return(campaigning.ActionState{LastAction: "pause"})

	rec := serve(t, Campaigns(svc), http.MethodPost, "/v1/adsets/as-1/status", `{"action":"pause"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"as-1","actionState":{"isLoading":false,"lastAction":"pause"}}`, rec.Body.String())
}

func TestGoogleCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampaignService(ctrl)

	svc.EXPECT().LoadGoogleCampaigns(gomock.Any(), "123", true).Return([]backenddomain.GoogleCampaign{}, nil)
	rec := serve(t, Campaigns(svc), http.MethodGet, "/v1/google/campaigns/123?force=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.EXPECT().UpdateGoogleCampaignStatus(gomock.Any(), "123", "g-1", backenddomain.ActionResume).
		Return(&backenddomain.APIError{Status: http.StatusBadGateway, Message: "Google Ads unavailable"})
	rec = serve(t, Campaigns(svc), http.MethodPost, "/v1/google/campaigns/123/g-1/status", `{"action":"resume"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSelectAdAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampaignService(ctrl)

	rec := serve(t, AdAccounts(svc), http.MethodPut, "/v1/accounts/selected", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)

	svc.EXPECT().SetSelectedAccount("act_2")
	svc.EXPECT().AccountsWithStats().Return(nil)
	svc.EXPECT().SelectedAccountID().Return("act_2")

	rec = serve(t, AdAccounts(svc), http.MethodPut, "/v1/accounts/selected", `{"accountId":"act_2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"selectedAccountId":"act_2"`)
}

func TestGetReportSummary_ErroDeRede(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCampaignService(ctrl)

	svc.EXPECT().LoadCampaigns(gomock.Any()).Return(&backenddomain.APIError{Network: true, Err: errors.New("dial tcp")})

	rec := serve(t, AdAccounts(svc), http.MethodGet, "/v1/reports/summary", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
