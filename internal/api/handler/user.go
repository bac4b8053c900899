package handler

import (
	"net/http"
)

type ThemeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme devolve a preferência de tema salva; sem preferência vale "system"
func GetTheme(prefs Preferences) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, err := prefs.Theme(r.Context())
		if err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ThemeRequest{Theme: theme})
	}
}

func SetTheme(prefs Preferences) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ThemeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := prefs.SetTheme(r.Context(), req.Theme); err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}
