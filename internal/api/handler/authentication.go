package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/authenticating"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authenticating.LoginInput
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.Login(r.Context(), req)
		if err != nil {
			logrus.WithError(err).Warn("Falha no login")
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"user": user})
	}
}

func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authenticating.RegisterInput
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.Register(r.Context(), req)
		if err != nil {
			logrus.WithError(err).Warn("Falha no cadastro")
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"user": user})
	}
}

// Logout sempre encerra a sessão em memória; falha ao apagar os tokens ainda é reportada
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Logout(r.Context()); err != nil {
			handleError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetProfile recarrega o perfil no backend quando pedido com ?refresh=true
func GetProfile(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if queryBool(r, "refresh") {
			if err := service.HydrateProfile(r.Context()); err != nil {
				handleError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusOK, service.State())
	}
}
