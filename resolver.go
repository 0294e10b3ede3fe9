package localekit

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/localekit/pkg/prefstore"
)

const (
	// DefaultCookieName is the cookie the language preference persists under.
	DefaultCookieName = "lang"

	// DefaultVisitorCookie is the cookie carrying the anonymous visitor ID
	// used as the default preference-store subject.
	DefaultVisitorCookie = "visitor_id"
)

// defaultQueryParams are checked in order for an explicit locale override
var defaultQueryParams = []string{"locale", "lang"}

// ResolverConfig holds the knobs for the default resolver chain.
// Zero-value fields fall back to package defaults.
type ResolverConfig struct {
	// CookieName is the preference cookie consulted as the stored signal.
	CookieName string
	// QueryParams are checked in order for an explicit override.
	QueryParams []string
	// Store, when set, is consulted after the cookie for a persisted preference.
	Store prefstore.Store
	// Subject derives the store key; defaults to the visitor cookie value.
	Subject SubjectFunc
	// Platform reports the platform language; defaults to Accept-Language.
	Platform PlatformFunc
	// DefaultLocale is the terminal fallback, "en-US" unless set.
	DefaultLocale string
	// ChineseLocale is the terminal fallback for Chinese-reporting
	// platforms, "zh-CN" unless set.
	ChineseLocale string
}

// DefaultResolver assembles the canonical resolution chain:
//
//  1. First URL path segment, under the registry's strict Canonical rules
//  2. Query parameter override ("locale", then "lang")
//  3. Persisted preference: cookie, then the configured store
//  4. Platform default derived from the platform's reported language
//
// The chain yields a locale for every non-nil request because the platform
// step always produces one; ("", SignalNone) is reserved for nil requests.
func DefaultResolver(reg *Registry, config ResolverConfig) Resolver {
	if reg == nil {
		return nil
	}
	if config.CookieName == "" {
		config.CookieName = DefaultCookieName
	}
	if len(config.QueryParams) == 0 {
		config.QueryParams = defaultQueryParams
	}
	if config.Subject == nil {
		config.Subject = VisitorSubject(DefaultVisitorCookie)
	}
	if config.Platform == nil {
		config.Platform = AcceptLanguagePlatform()
	}

	return NewCompositeResolver(
		NewPathResolver(reg),
		NewQueryResolver(reg, config.QueryParams...),
		NewCookieResolver(reg, config.CookieName),
		NewStoreResolver(reg, config.Store, config.Subject),
		NewPlatformResolver(config.Platform, config.DefaultLocale, config.ChineseLocale),
	)
}

// NewPathResolver resolves the locale from the first URL path segment.
// The segment counts only when the registry maps it under the strict
// Canonical rules; anything else falls through so ordinary routes like
// /pricing never read as a locale.
func NewPathResolver(reg *Registry) Resolver {
	if reg == nil {
		return nil
	}
	return func(r *http.Request) (string, Signal) {
		if r == nil || r.URL == nil {
			return "", SignalNone
		}
		segment := firstPathSegment(r.URL.Path)
		if segment == "" {
			return "", SignalNone
		}
		if id, ok := reg.Canonical(segment); ok {
			return id, SignalPath
		}
		return "", SignalNone
	}
}

// NewQueryResolver resolves the locale from the first non-empty query
// parameter among params. Values are canonicalized to the registered form
// when one serves them and pass through raw otherwise.
func NewQueryResolver(reg *Registry, params ...string) Resolver {
	if reg == nil || len(params) == 0 {
		return nil
	}
	return func(r *http.Request) (string, Signal) {
		if r == nil || r.URL == nil {
			return "", SignalNone
		}
		query := r.URL.Query()
		for _, param := range params {
			if param == "" {
				continue
			}
			if locale := normalizeLocale(reg, query.Get(param)); locale != "" {
				return locale, SignalQuery
			}
		}
		return "", SignalNone
	}
}

// NewCookieResolver resolves the locale from the preference cookie.
func NewCookieResolver(reg *Registry, cookieName string) Resolver {
	if reg == nil || cookieName == "" {
		return nil
	}
	return func(r *http.Request) (string, Signal) {
		if r == nil {
			return "", SignalNone
		}
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return "", SignalNone
		}
		if locale := normalizeLocale(reg, cookie.Value); locale != "" {
			return locale, SignalStored
		}
		return "", SignalNone
	}
}

// NewStoreResolver resolves the locale from a preference store under the
// subject the request carries. Store errors, including a missing entry,
// read as no signal.
func NewStoreResolver(reg *Registry, store prefstore.Store, subject SubjectFunc) Resolver {
	if reg == nil || store == nil {
		return nil
	}
	if subject == nil {
		subject = VisitorSubject(DefaultVisitorCookie)
	}
	return func(r *http.Request) (string, Signal) {
		if r == nil {
			return "", SignalNone
		}
		key := subject(r)
		if key == "" {
			return "", SignalNone
		}
		value, err := store.Get(r.Context(), key)
		if err != nil {
			return "", SignalNone
		}
		if locale := normalizeLocale(reg, value); locale != "" {
			return locale, SignalStored
		}
		return "", SignalNone
	}
}

// NewPlatformResolver terminates the chain with a platform-derived default:
// the Chinese locale when the platform reports any Chinese language tag,
// the default locale otherwise. It always yields a value for a non-nil
// request.
func NewPlatformResolver(platform PlatformFunc, defaultLocale, chineseLocale string) Resolver {
	if platform == nil {
		platform = AcceptLanguagePlatform()
	}
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	if chineseLocale == "" {
		chineseLocale = DefaultChineseLocale
	}
	return func(r *http.Request) (string, Signal) {
		if r == nil {
			return "", SignalNone
		}
		if baseLang(platform(r)) == "zh" {
			return chineseLocale, SignalPlatform
		}
		return defaultLocale, SignalPlatform
	}
}

// NewCompositeResolver chains resolvers in priority order; the first
// non-empty result wins. Nil resolvers are skipped.
func NewCompositeResolver(resolvers ...Resolver) Resolver {
	return func(r *http.Request) (string, Signal) {
		if r == nil {
			return "", SignalNone
		}
		for _, resolve := range resolvers {
			if resolve == nil {
				continue
			}
			if locale, sig := resolve(r); locale != "" {
				return locale, sig
			}
		}
		return "", SignalNone
	}
}

// normalizeLocale cleans a user-supplied locale value and canonicalizes it
// to the registered form when one serves it. Unregistered values pass
// through so downstream composition can degrade to English.
func normalizeLocale(reg *Registry, value string) string {
	value = cleanLocale(value)
	if value == "" {
		return ""
	}
	if id, ok := reg.Match(value); ok {
		return id
	}
	return value
}

// firstPathSegment returns the first segment of a URL path without slashes
func firstPathSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		path = path[:idx]
	}
	return path
}
