package handler

import (
	"net/http"

	"github.com/vfg2006/weathertrigger-console/internal/api/handler/router"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

func ListNotifications(service Notifications) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"notifications": service.List()})
	}
}

func DismissNotification(service Notifications) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := router.Param(r, "id")
		if !service.Dismiss(id) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Notification not found: "+id, nil)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
