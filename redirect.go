package localekit

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// LangPrefix is the default SiteTagFunc: the segment after the final '-' in
// a site identifier, so "site-en" yields "en" and "site-zh" yields "zh".
// Identifiers whose tags embed a region, like "-zh-CN", need a custom
// SiteTagFunc.
func LangPrefix(siteID string) string {
	if idx := strings.LastIndexByte(siteID, '-'); idx >= 0 {
		return siteID[idx+1:]
	}
	return ""
}

// Redirector sends visitors to the canonical path for their language on
// multi-locale sites. The site list is a comma-separated string of site
// identifiers, each carrying a language tag extracted by the configured
// SiteTagFunc. The list is parsed on every call, so swapping the list
// value between deployments needs no other coordination.
type Redirector struct {
	sites string
	tag   SiteTagFunc
	code  int
}

// RedirectorOption configures the Redirector
type RedirectorOption func(*Redirector)

// WithSiteTag sets how language tags are extracted from site identifiers
func WithSiteTag(fn SiteTagFunc) RedirectorOption {
	return func(rd *Redirector) {
		if fn == nil {
			return
		}
		rd.tag = fn
	}
}

// WithRedirectCode sets the HTTP status used for plain redirects
func WithRedirectCode(code int) RedirectorOption {
	return func(rd *Redirector) {
		if code < http.StatusMultipleChoices || code >= http.StatusBadRequest {
			return
		}
		rd.code = code
	}
}

// NewRedirector creates a redirector over the given site identifier list.
func NewRedirector(sites string, opts ...RedirectorOption) *Redirector {
	rd := &Redirector{
		sites: sites,
		tag:   LangPrefix,
		code:  http.StatusFound,
	}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// CanonicalPath reports the path visitors speaking lang should land on, and
// whether the site list defines one. A list without a separator describes a
// single-locale site and never defines one. The first entry whose tag
// shares lang's base language wins; Chinese-tagged entries canonicalize to
// the root path, every other tag to "/{tag}" lowercased.
func (rd *Redirector) CanonicalPath(lang string) (string, bool) {
	if !strings.Contains(rd.sites, ",") {
		return "", false
	}
	userBase := baseLang(lang)
	if userBase == "" {
		return "", false
	}

	for _, site := range strings.Split(rd.sites, ",") {
		site = strings.TrimSpace(site)
		if site == "" {
			continue
		}
		tag := rd.tag(site)
		if tag == "" || baseLang(tag) != userBase {
			continue
		}
		if baseLang(tag) == "zh" {
			return "/", true
		}
		return "/" + strings.ToLower(tag), true
	}
	return "", false
}

// Redirect navigates to the canonical path for lang when the request is not
// already there. DataStar clients receive the navigation over SSE so the
// browser still performs a full location change; everyone else gets a plain
// HTTP redirect. Reports whether a navigation was written.
func (rd *Redirector) Redirect(w http.ResponseWriter, r *http.Request, lang string) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	target, ok := rd.CanonicalPath(lang)
	if !ok {
		return false
	}
	if strings.EqualFold(normalizePath(r.URL.Path), target) {
		return false
	}

	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		_ = sse.Redirect(target)
		return true
	}
	http.Redirect(w, r, target, rd.code)
	return true
}

// Middleware applies the canonical-path check before passing the request
// through, reading the locale the Manager middleware put in the context.
// Requests without a resolved locale pass through untouched.
//
// Mount it on entry routes only: the comparison is against the full current
// path, so any non-canonical path it sees gets bounced.
func (rd *Redirector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if locale, ok := localeFromContext(r.Context()); ok {
				if rd.Redirect(w, r, locale) {
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// normalizePath strips trailing slashes so "/en" and "/en/" compare equal;
// the root path stays "/".
func normalizePath(path string) string {
	if path != "" && path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}

// isDataStar reports whether the request came from a DataStar client
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL != nil && r.URL.Query().Has("datastar")
}
