package localekit

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/localekit/pkg/prefstore"
)

// DefaultCookieMaxAge is how long preference cookies live
const DefaultCookieMaxAge = 365 * 24 * time.Hour

// cookieConfig holds the attributes shared by the cookies the manager writes
type cookieConfig struct {
	name     string
	path     string
	domain   string
	maxAge   time.Duration
	secure   bool
	sameSite http.SameSite
}

// Manager orchestrates locale handling for a request: it resolves the
// locale, composes the dictionary, fires the configured hooks, and persists
// user-attributable decisions to the preference cookie and the optional
// store. A Manager is safe for concurrent use; all mutable state lives in
// the request and the configured store.
type Manager struct {
	registry      *Registry
	resolver      Resolver
	store         prefstore.Store
	subject       SubjectFunc
	issueVisitor  bool
	platform      PlatformFunc
	queryParams   []string
	cookie        cookieConfig
	visitorCookie string
	defaultLocale string
	chineseLocale string
	langHook      func(lang string)
	dictHook      func(dict Dictionary)
	logger        *slog.Logger
}

// New creates a new locale manager for the given registry.
// The zero configuration resolves from path, query, cookie and platform,
// persists to a "lang" cookie, and logs nothing.
func New(reg *Registry, opts ...Option) (*Manager, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	m := &Manager{
		registry: reg,
		cookie: cookieConfig{
			name:     DefaultCookieName,
			path:     "/",
			maxAge:   DefaultCookieMaxAge,
			sameSite: http.SameSiteLaxMode,
		},
		visitorCookie: DefaultVisitorCookie,
		queryParams:   defaultQueryParams,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.subject == nil {
		m.subject = VisitorSubject(m.visitorCookie)
		// Anonymous visitors only get an ID when there is a store to key
		m.issueVisitor = m.store != nil
	}

	if m.resolver == nil {
		m.resolver = DefaultResolver(reg, ResolverConfig{
			CookieName:    m.cookie.name,
			QueryParams:   m.queryParams,
			Store:         m.store,
			Subject:       m.subject,
			Platform:      m.platform,
			DefaultLocale: m.defaultLocale,
			ChineseLocale: m.chineseLocale,
		})
	}

	return m, nil
}

// Registry returns the registry the manager serves.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Resolve reports the locale the request carries and the signal that
// produced it, without side effects.
func (m *Manager) Resolve(r *http.Request) (string, Signal) {
	return m.resolver(r)
}

// Compose builds the dictionary for a locale. See Registry.Compose.
func (m *Manager) Compose(locale string) Dictionary {
	return m.registry.Compose(locale)
}

// Init resolves the request locale, composes its dictionary, fires the
// configured hooks and persists user-attributable decisions. Returns the
// resolved locale with its dictionary, or ("", nil) when the request is nil.
func (m *Manager) Init(w http.ResponseWriter, r *http.Request) (string, Dictionary) {
	locale, dict, _ := m.initialize(w, r)
	return locale, dict
}

func (m *Manager) initialize(w http.ResponseWriter, r *http.Request) (string, Dictionary, Signal) {
	if r == nil {
		return "", nil, SignalNone
	}

	locale, sig := m.resolver(r)
	if locale == "" {
		return "", nil, SignalNone
	}

	dict := m.registry.Compose(locale)
	if m.langHook != nil {
		m.langHook(locale)
	}
	if m.dictHook != nil {
		m.dictHook(dict)
	}
	m.persist(w, r, locale, sig)

	return locale, dict, sig
}

// SetPreference records an explicit language choice: the value is
// canonicalized when the registry serves it, written to the preference
// cookie and, when configured, to the store. Returns the recorded locale,
// or an empty string when nothing usable was given.
func (m *Manager) SetPreference(w http.ResponseWriter, r *http.Request, locale string) string {
	if w == nil || r == nil {
		return ""
	}
	locale = normalizeLocale(m.registry, locale)
	if locale == "" {
		return ""
	}

	m.setCookie(w, m.cookie.name, locale, false)
	m.storeSet(w, r, locale)
	return locale
}

// persist writes the decision back when it is user-attributable and differs
// from what is already stored. Platform defaults never persist.
func (m *Manager) persist(w http.ResponseWriter, r *http.Request, locale string, sig Signal) {
	if w == nil || !sig.UserChosen() {
		return
	}
	if strings.EqualFold(m.storedPreference(r), locale) {
		return
	}

	m.setCookie(w, m.cookie.name, locale, false)
	m.storeSet(w, r, locale)
}

// storedPreference reads the currently persisted value, cookie first.
func (m *Manager) storedPreference(r *http.Request) string {
	if cookie, err := r.Cookie(m.cookie.name); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if m.store != nil {
		if key := m.subject(r); key != "" {
			if value, err := m.store.Get(r.Context(), key); err == nil {
				return value
			}
		}
	}
	return ""
}

// storeSet mirrors the preference into the store under the request subject,
// issuing a visitor ID when the default subject has none yet. Store
// failures are logged and swallowed; the cookie already carries the value.
func (m *Manager) storeSet(w http.ResponseWriter, r *http.Request, locale string) {
	if m.store == nil {
		return
	}

	key := m.subject(r)
	if key == "" {
		if !m.issueVisitor {
			return
		}
		key = uuid.NewString()
		m.setCookie(w, m.visitorCookie, key, true)
	}

	if err := m.store.Set(r.Context(), key, locale); err != nil {
		m.logger.WarnContext(r.Context(), "failed to persist language preference",
			"error", err, "locale", locale)
	}
}

func (m *Manager) setCookie(w http.ResponseWriter, name, value string, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.cookie.path,
		Domain:   m.cookie.domain,
		MaxAge:   int(m.cookie.maxAge.Seconds()),
		Secure:   m.cookie.secure,
		HttpOnly: httpOnly,
		SameSite: m.cookie.sameSite,
	})
}
