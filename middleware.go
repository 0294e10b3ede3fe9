package localekit

import (
	"net/http"
)

// Middleware returns an HTTP middleware that initializes the locale for
// every request: it resolves the locale, composes the dictionary, fires the
// configured hooks, persists user-attributable decisions, and exposes the
// outcome to downstream handlers.
//
// Handlers read the outcome with GetLocale, GetDictionary and GetSignal.
// The response carries a Content-Language header with the resolved locale.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, dict, sig := m.initialize(w, r)
			if locale == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Language", locale)

			ctx := SetLocale(r.Context(), locale)
			ctx = SetDictionary(ctx, dict)
			ctx = SetSignal(ctx, sig)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
