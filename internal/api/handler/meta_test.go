package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler/mocks"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const testCallbackPath = "/oauth/meta/callback"

func metaRoutes(t *testing.T) (*mocks.MockMetaService, *PopupOpener, func(method, target, body string) (int, string)) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMetaService(ctrl)
	opener := NewPopupOpener()
	routes := Meta(svc, opener, testCallbackPath)

	do := func(method, target, body string) (int, string) {
		rec := serve(t, routes, method, target, body)
		return rec.Code, rec.Body.String()
	}
	return svc, opener, do
}

func TestGetMetaStatus_RepassaOpcoes(t *testing.T) {
	svc, _, do := metaRoutes(t)

	svc.EXPECT().LoadAccountData(gomock.Any(), linking.LoadOptions{Force: true, PreserveSelection: true}).Return(nil)
	svc.EXPECT().State().Return(linking.State{Status: linking.StatusConnected, Connected: true})

	code, body := do(http.MethodGet, "/v1/meta/status?force=true&preserve=true", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"connected":true`)
}

func TestConnectMeta(t *testing.T) {
	svc, _, do := metaRoutes(t)

	svc.EXPECT().Connect(gomock.Any(), gomock.Any()).
		Return(&linking.Handshake{AuthURL: "https://facebook.com/dialog/oauth?state=abc", State: "abc"}, nil)

	code, body := do(http.MethodPost, "/v1/meta/connect", "")

	assert.Equal(t, http.StatusAccepted, code)
	assert.JSONEq(t, `{"authUrl":"https://facebook.com/dialog/oauth?state=abc","state":"abc"}`, body)
}

func TestConnectMeta_JaEmAndamento(t *testing.T) {
	svc, _, do := metaRoutes(t)

	svc.EXPECT().Connect(gomock.Any(), gomock.Any()).
		Return(nil, linking.NewLinkError(errors.New("busy"), apiErrors.ErrHandshakeInProgress, "A Meta connection is already in progress"))

	code, _ := do(http.MethodPost, "/v1/meta/connect", "")

	assert.Equal(t, http.StatusConflict, code)
}

func TestCancelMetaConnect(t *testing.T) {
	t.Run("fecha a janela aberta", func(t *testing.T) {
		_, opener, do := metaRoutes(t)

		popup, err := opener.Open(context.Background(), "https://facebook.com/dialog/oauth")
		require.NoError(t, err)

		code, _ := do(http.MethodPost, "/v1/meta/connect/cancel", "")

		assert.Equal(t, http.StatusNoContent, code)
		assert.True(t, popup.Closed())
	})

	t.Run("sem conexão em andamento", func(t *testing.T) {
		svc, _, do := metaRoutes(t)
		svc.EXPECT().ActiveHandshake().Return(nil, false)

		code, body := do(http.MethodPost, "/v1/meta/connect/cancel", "")

		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, body, "No Meta connection in progress")
	})
}

func TestMetaCallback(t *testing.T) {
	t.Run("sucesso fecha a janela", func(t *testing.T) {
		svc, opener, do := metaRoutes(t)
		popup, _ := opener.Open(context.Background(), "https://facebook.com/dialog/oauth")

		svc.EXPECT().CompleteCallback(gomock.Any(), "code-1", "abc").Return(nil)

		code, body := do(http.MethodGet, testCallbackPath+"?code=code-1&state=abc", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "Meta account connected")
		assert.True(t, popup.Closed())
	})

	t.Run("estado inválido", func(t *testing.T) {
		svc, _, do := metaRoutes(t)

		svc.EXPECT().CompleteCallback(gomock.Any(), "code-1", "xyz").
			Return(linking.NewLinkError(errors.New("state mismatch"), apiErrors.ErrInvalidRequest, "Invalid OAuth state"))

		code, body := do(http.MethodGet, testCallbackPath+"?code=code-1&state=xyz", "")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, body, "Something went wrong")
		assert.Contains(t, body, "Invalid OAuth state")
	})
}

func TestSelectMetaAccount(t *testing.T) {
	svc, _, do := metaRoutes(t)

	svc.EXPECT().ToggleSelected("act_1", true)
	svc.EXPECT().State().Return(linking.State{Selected: map[string]bool{"act_1": true}, TotalSelected: 1})

	code, body := do(http.MethodPost, "/v1/meta/accounts/act_1/select", `{"selected":true}`)

	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"totalSelected":1`)
}

func TestDisconnectMeta(t *testing.T) {
	svc, _, do := metaRoutes(t)
	svc.EXPECT().Disconnect(gomock.Any()).Return(nil)

	code, _ := do(http.MethodDelete, "/v1/meta/account", "")

	assert.Equal(t, http.StatusNoContent, code)
}

func TestPopupOpener_CloseCurrentSoUmaVez(t *testing.T) {
	opener := NewPopupOpener()
	assert.False(t, opener.CloseCurrent())

	_, err := opener.Open(context.Background(), "https://example.com")
	require.NoError(t, err)

	assert.True(t, opener.CloseCurrent())
	assert.False(t, opener.CloseCurrent())
}
