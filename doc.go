// Package localekit resolves the locale of incoming HTTP requests, composes
// per-locale translation dictionaries over an English base, and redirects
// visitors of multi-locale sites to the canonical path for their language.
// It owns the decision of which locale a request is in; what translations
// mean and how they render stays with the host application.
//
// # Architecture
//
// A Registry holds the dictionaries in a fixed registration order. A
// Resolver inspects request signals in one canonical priority order: the
// first URL path segment under strict matching, a query override, the
// persisted preference, and finally a platform-derived default which always
// yields a value, so resolution only comes back empty for a nil request.
// The Manager ties both together: it resolves, composes the dictionary,
// fires the configured hooks, and persists decisions the user actually
// made. A Redirector applies the canonical-path rule on entry routes of
// sites that split per language.
//
//	┌─────────┐  signals  ┌──────────┐
//	│ Request │ ────────► │ Resolver │
//	└─────────┘           └──────────┘
//	      ▲                    │ locale
//	      │                    ▼
//	┌─────────────────────────────────┐
//	│             Manager             │
//	└─────────────────────────────────┘
//	      │ compose            │ persist
//	      ▼                    ▼
//	┌──────────┐        ┌───────────────────┐
//	│ Registry │        │ cookie, prefstore │
//	└──────────┘        └───────────────────┘
//
// # Usage
//
//	import "github.com/dmitrymomot/localekit"
//
//	reg, err := localekit.NewRegistry(ctx,
//	    localekit.WithDictionary("en-US", english),
//	    localekit.WithDictionary("zh-CN", chinese),
//	    localekit.WithDictionary("fr-FR", french),
//	)
//	if err != nil {
//	    // an English dictionary is required as the fallback base
//	}
//
//	manager, err := localekit.New(reg,
//	    localekit.WithLanguageHook(app.SetLanguage),
//	    localekit.WithDictionaryHook(app.SetTranslations),
//	)
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware())
//	r.Mount("/locale", localekit.Router(localekit.RouterOptions{Manager: manager}))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    locale := localekit.GetLocale(r.Context())
//	    dict := localekit.GetDictionary(r.Context())
//	    // render with dict
//	}
//
// Multi-locale sites guard their entry route:
//
//	redirector := localekit.NewRedirector("site-en,site-zh")
//	r.With(redirector.Middleware()).Get("/", home)
//
// Dictionaries can also load from JSON or YAML files, a directory, or an
// embedded filesystem:
//
//	reg, err := localekit.NewRegistry(ctx,
//	    localekit.WithSource(localekit.NewDirSource("./translations")),
//	)
//
// Preferences persist in a plain cookie. Configure a store from
// pkg/prefstore to keep them server-side as well, keyed by an anonymous
// visitor ID or any subject the application derives:
//
//	manager, err := localekit.New(reg,
//	    localekit.WithStore(prefstore.NewMemoryStore()),
//	)
//
// Every runtime operation is total: malformed locales degrade to English,
// requests without signals fall back to the platform default, and a nil
// request is a no-op everywhere.
package localekit
