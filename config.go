package localekit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes the environment-driven settings of the locale module.
// Every field has a working default, so an empty environment yields a
// usable configuration.
type Config struct {
	// CookieName is the preference cookie name.
	CookieName string `env:"LOCALE_COOKIE_NAME" envDefault:"lang"`
	// VisitorCookie carries the anonymous visitor ID keying the store.
	VisitorCookie string `env:"LOCALE_VISITOR_COOKIE" envDefault:"visitor_id"`
	// CookieMaxAge is how long preference cookies live.
	CookieMaxAge time.Duration `env:"LOCALE_COOKIE_MAX_AGE" envDefault:"8760h"`
	// SecureCookies marks written cookies as HTTPS-only.
	SecureCookies bool `env:"LOCALE_SECURE_COOKIES" envDefault:"false"`
	// QueryParams are checked in order for an explicit locale override.
	QueryParams []string `env:"LOCALE_QUERY_PARAMS" envDefault:"locale,lang"`
	// DefaultLocale is the terminal fallback locale.
	DefaultLocale string `env:"LOCALE_DEFAULT" envDefault:"en-US"`
	// ChineseLocale is the fallback for Chinese-reporting platforms.
	ChineseLocale string `env:"LOCALE_CHINESE_DEFAULT" envDefault:"zh-CN"`
	// Sites is the comma-separated site identifier list for the entry
	// redirect. Empty or single-entry lists disable redirecting.
	Sites string `env:"LOCALE_SITES"`
	// DictionaryDir is the directory dictionaries load from.
	DictionaryDir string `env:"LOCALE_DICTIONARY_DIR"`
	// RedirectCode is the HTTP status for entry redirects.
	RedirectCode int `env:"LOCALE_REDIRECT_CODE" envDefault:"302"`
}

var loadEnvOnce sync.Once

// LoadConfig reads Config from the environment, loading a .env file first
// when one exists.
func LoadConfig() (Config, error) {
	loadEnvOnce.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Redirector builds the entry redirector described by the configuration,
// or nil when no site list is configured.
func (c Config) Redirector() *Redirector {
	if c.Sites == "" {
		return nil
	}
	return NewRedirector(c.Sites, WithRedirectCode(c.RedirectCode))
}

// NewFromConfig builds a Manager from environment-driven settings, loading
// the registry from the configured dictionary directory. Options given here
// apply on top of the configuration, so a store or hooks can still be
// injected.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Manager, error) {
	if cfg.DictionaryDir == "" {
		return nil, ErrNoDictionaryDir
	}

	reg, err := NewRegistry(ctx, WithSource(NewDirSource(cfg.DictionaryDir)))
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithCookieName(cfg.CookieName),
		WithVisitorCookie(cfg.VisitorCookie),
		WithCookieMaxAge(cfg.CookieMaxAge),
		WithSecureCookies(cfg.SecureCookies),
		WithQueryParams(cfg.QueryParams...),
		WithDefaultLocale(cfg.DefaultLocale),
		WithChineseLocale(cfg.ChineseLocale),
	}
	return New(reg, append(base, opts...)...)
}
