package localekit

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
)

// DictionaryHandler serves the composed dictionary for the request locale as
// JSON, for clients that render translations themselves. The locale comes
// from the context when the manager middleware ran, otherwise it is
// resolved on the spot.
func DictionaryHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := localeFromContext(r.Context())
		if !ok {
			locale, _ = m.Resolve(r)
		}
		dict := m.Compose(locale)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Language", locale)
		if err := json.NewEncoder(w).Encode(dict); err != nil {
			m.logger.ErrorContext(r.Context(), "failed to encode dictionary",
				"error", err, "locale", locale)
		}
	}
}

// LocalesHandler lists the registered locales together with the one active
// for the request, for building language switcher UIs.
func LocalesHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale, ok := localeFromContext(r.Context())
		if !ok {
			locale, _ = m.Resolve(r)
		}
		active, ok := m.registry.Match(locale)
		if !ok {
			active = m.registry.DefaultLocale()
		}

		payload := struct {
			Locales []string `json:"locales"`
			Active  string   `json:"active"`
		}{
			Locales: m.registry.Locales(),
			Active:  active,
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			m.logger.ErrorContext(r.Context(), "failed to encode locales",
				"error", err)
		}
	}
}

// SwitchHandler records an explicit language choice from the "locale" URL
// parameter and sends the visitor back where they came from. Unusable
// values redirect back without recording anything.
//
// Mount as GET /switch/{locale} on a chi router.
func SwitchHandler(m *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// chi hands back the raw path segment when the URL carries
		// percent-escapes, so decode before recording.
		locale := chi.URLParam(r, "locale")
		if decoded, err := url.PathUnescape(locale); err == nil {
			locale = decoded
		}
		m.SetPreference(w, r, locale)
		redirectBack(w, r, "/")
	}
}

// redirectBack sends the visitor to the referer, falling back when it is
// absent or points off-host.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := fallback
	if referer := r.Header.Get("Referer"); referer != "" && isSameHost(referer, r) {
		target = referer
	}

	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		_ = sse.Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// isSameHost checks if a URL is safe to redirect back to
func isSameHost(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	// Empty host means a relative URL
	return parsed.Host == "" || parsed.Host == r.Host
}
