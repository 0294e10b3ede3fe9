package localekit

import (
	"net/http"

	"golang.org/x/text/language"
)

// AcceptLanguagePlatform reads the visitor's platform language from the
// Accept-Language header. Only the highest-ranked tag is taken; the header
// is treated as the platform's report of its own language, not as a
// negotiation list to match against the registry.
func AcceptLanguagePlatform() PlatformFunc {
	return func(r *http.Request) string {
		if r == nil {
			return ""
		}
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			return ""
		}
		return tags[0].String()
	}
}

// VisitorSubject keys preferences by the value of the given cookie.
// Requests without the cookie yield an empty subject.
func VisitorSubject(cookieName string) SubjectFunc {
	return func(r *http.Request) string {
		if r == nil || cookieName == "" {
			return ""
		}
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return ""
		}
		return cookie.Value
	}
}
