package handler

import (
	"context"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/weathertrigger-console/internal/api/handler/router"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

type ConnectResponse struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state,omitempty"`
}

type SelectAccountRequest struct {
	Selected bool `json:"selected"`
}

func GetMetaStatus(service MetaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := linking.LoadOptions{
			Force:             queryBool(r, "force"),
			PreserveSelection: queryBool(r, "preserve"),
		}

		if err := service.LoadAccountData(r.Context(), opts); err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, service.State())
	}
}

// ConnectMeta inicia o OAuth. O handshake continua depois da resposta, por isso
// não herda o cancelamento da requisição.
func ConnectMeta(service MetaService, opener *PopupOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := service.Connect(context.WithoutCancel(r.Context()), opener)
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusAccepted, ConnectResponse{AuthURL: h.AuthURL, State: h.State})
	}
}

// CancelMetaConnect equivale ao usuário fechar a janela de consentimento
func CancelMetaConnect(service MetaService, opener *PopupOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if opener.CloseCurrent() {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if h, ok := service.ActiveHandshake(); ok {
			h.Cancel()
			w.WriteHeader(http.StatusNoContent)
			return
		}

		apiErrors.WriteError(w, apiErrors.ErrNotFound, "No Meta connection in progress", nil)
	}
}

func RefreshMeta(service MetaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.RefreshConnection(r.Context()); err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, service.State())
	}
}

func SelectMetaAccount(service MetaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectAccountRequest
		if !decodeBody(w, r, &req) {
			return
		}

		service.ToggleSelected(router.Param(r, "id"), req.Selected)
		writeJSON(w, http.StatusOK, service.State())
	}
}

func ActivateMetaAccounts(service MetaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.ActivateSelected(r.Context()); err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, service.State())
	}
}

func DisconnectMeta(service MetaService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Disconnect(r.Context()); err != nil {
			handleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

var callbackPage = template.Must(template.New("callback").Parse(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Meta connection</title></head>
<body>
{{if .Error}}
<h1>Something went wrong</h1>
<p>{{.Error}}</p>
{{else}}
<h1>Meta account connected</h1>
<p>You can close this window.</p>
{{end}}
<script>window.close();</script>
</body>
</html>
`))

// MetaCallback é a página de retorno do OAuth; o resultado chega ao handshake pela bus
func MetaCallback(service MetaService, opener *PopupOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		err := service.CompleteCallback(r.Context(), query.Get("code"), query.Get("state"))

		// a janela fecha logo após avisar quem abriu
		opener.CloseCurrent()

		data := struct{ Error string }{}
		status := http.StatusOK
		if err != nil {
			data.Error = err.Error()
			status = http.StatusBadRequest
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := callbackPage.Execute(w, data); err != nil {
			logrus.WithError(err).Error("Erro ao renderizar página de callback")
		}
	}
}
