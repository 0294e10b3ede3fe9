package localekit

import "net/http"

// Signal identifies the source that produced a resolved locale.
type Signal string

const (
	// SignalNone means no source produced a value, which only happens for
	// a nil request.
	SignalNone Signal = ""
	// SignalPath means the locale came from the first URL path segment.
	SignalPath Signal = "path"
	// SignalQuery means the locale came from a query parameter.
	SignalQuery Signal = "query"
	// SignalStored means the locale came from a persisted preference.
	SignalStored Signal = "stored"
	// SignalPlatform means the locale is the platform-derived default.
	SignalPlatform Signal = "platform"
)

// UserChosen reports whether the signal reflects an explicit user decision.
// Only such signals are worth persisting.
func (s Signal) UserChosen() bool {
	return s == SignalPath || s == SignalQuery
}

// Resolver inspects a request and reports the locale it carries along with
// the signal that produced it. Resolvers return ("", SignalNone) when the
// request carries nothing usable or is nil.
type Resolver func(r *http.Request) (string, Signal)

// PlatformFunc reports the language tag the visitor's platform claims,
// or an empty string when the platform reports none.
type PlatformFunc func(r *http.Request) string

// SubjectFunc derives the key a request's preference is stored under,
// or an empty string when the request carries no usable subject.
type SubjectFunc func(r *http.Request) string

// SiteTagFunc extracts the language tag encoded in a site identifier,
// or an empty string when the identifier encodes none.
type SiteTagFunc func(siteID string) string
