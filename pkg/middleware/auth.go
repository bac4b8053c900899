package middleware

import (
	"net/http"

	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

// Session informa se o console tem um usuário autenticado
type Session interface {
	IsAuthenticated() bool
}

// SessionGuard recusa rotas protegidas enquanto não houver sessão ativa.
// publicPaths são liberados sem sessão, assim como os preflights de CORS.
func SessionGuard(session Session, publicPaths ...string) func(http.Handler) http.Handler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := public[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if !session.IsAuthenticated() {
				apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Please log in to continue", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
