package localekit

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/localekit/pkg/prefstore"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithResolver replaces the default resolver chain entirely
func WithResolver(resolver Resolver) Option {
	return func(m *Manager) {
		if resolver == nil {
			return
		}
		m.resolver = resolver
	}
}

// WithStore sets the preference store consulted for and written with
// persisted language preferences
func WithStore(store prefstore.Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithSubject sets how the store key is derived from a request, e.g. the
// authenticated user ID. When set, the manager stops issuing visitor IDs.
func WithSubject(subject SubjectFunc) Option {
	return func(m *Manager) {
		m.subject = subject
	}
}

// WithPlatform sets how the platform language is read from a request
func WithPlatform(platform PlatformFunc) Option {
	return func(m *Manager) {
		m.platform = platform
	}
}

// WithQueryParams sets the query parameters checked for a locale override
func WithQueryParams(params ...string) Option {
	return func(m *Manager) {
		if len(params) == 0 {
			return
		}
		m.queryParams = params
	}
}

// WithCookieName sets the preference cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		if name == "" {
			return
		}
		m.cookie.name = name
	}
}

// WithVisitorCookie sets the cookie carrying the anonymous visitor ID
func WithVisitorCookie(name string) Option {
	return func(m *Manager) {
		if name == "" {
			return
		}
		m.visitorCookie = name
	}
}

// WithCookieMaxAge sets how long preference cookies live
func WithCookieMaxAge(maxAge time.Duration) Option {
	return func(m *Manager) {
		if maxAge <= 0 {
			return
		}
		m.cookie.maxAge = maxAge
	}
}

// WithCookiePath sets the path attribute on the cookies the manager writes
func WithCookiePath(path string) Option {
	return func(m *Manager) {
		if path == "" {
			return
		}
		m.cookie.path = path
	}
}

// WithCookieDomain sets the domain attribute on the cookies the manager writes
func WithCookieDomain(domain string) Option {
	return func(m *Manager) {
		m.cookie.domain = domain
	}
}

// WithSecureCookies marks the cookies the manager writes as HTTPS-only
func WithSecureCookies(secure bool) Option {
	return func(m *Manager) {
		m.cookie.secure = secure
	}
}

// WithDefaultLocale sets the terminal fallback locale
func WithDefaultLocale(locale string) Option {
	return func(m *Manager) {
		if locale == "" {
			return
		}
		m.defaultLocale = locale
	}
}

// WithChineseLocale sets the fallback locale for Chinese-reporting platforms
func WithChineseLocale(locale string) Option {
	return func(m *Manager) {
		if locale == "" {
			return
		}
		m.chineseLocale = locale
	}
}

// WithLanguageHook sets the callback fired with the resolved locale on every
// init, before persistence. Use it to point the host application's language
// state at the new value.
func WithLanguageHook(fn func(lang string)) Option {
	return func(m *Manager) {
		m.langHook = fn
	}
}

// WithDictionaryHook sets the callback fired with the composed dictionary on
// every init, before persistence. Use it to install the active translation
// source in the host application.
func WithDictionaryHook(fn func(dict Dictionary)) Option {
	return func(m *Manager) {
		m.dictHook = fn
	}
}

// WithLogger sets the logger for persistence warnings
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger == nil {
			return
		}
		m.logger = logger
	}
}
