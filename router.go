package localekit

import (
	"github.com/go-chi/chi/v5"
)

// RouterOptions configures the locale router.
type RouterOptions struct {
	// Manager handles resolution, composition and persistence; required.
	Manager *Manager
}

// Router assembles the HTTP surface of the locale module:
//
//	GET /dictionary.json — composed dictionary for the request locale
//	GET /locales.json    — registered locales and the active one
//	GET /switch/{locale} — record the choice, redirect back
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware())
//	r.Mount("/locale", localekit.Router(localekit.RouterOptions{
//	    Manager: manager,
//	}))
//
// The entry redirect is not part of this router; guard entry routes with
// Redirector.Middleware where the site needs it.
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.Manager == nil {
		return r
	}

	r.Get("/dictionary.json", DictionaryHandler(opts.Manager))
	r.Get("/locales.json", LocalesHandler(opts.Manager))
	r.Get("/switch/{locale}", SwitchHandler(opts.Manager))

	return r
}
