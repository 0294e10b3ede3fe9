package localekit

import "strings"

const (
	// DefaultLocale is the identifier used when no signal yields a usable value.
	DefaultLocale = "en-US"

	// DefaultChineseLocale is the identifier used when the platform reports
	// any Chinese language tag.
	DefaultChineseLocale = "zh-CN"
)

// maxLocaleLength is the maximum accepted length for a locale identifier
const maxLocaleLength = 35 // RFC 5646 recommends 35 characters max

// splitLocale splits a locale identifier into language and region on the
// first '-' or '_' separator. No ISO validation is applied; both components
// pass through as written.
func splitLocale(id string) (lang, region string) {
	if idx := strings.IndexAny(id, "-_"); idx >= 0 {
		return id[:idx], id[idx+1:]
	}
	return id, ""
}

// baseLang returns the lowercase language component of a locale identifier.
func baseLang(id string) string {
	lang, _ := splitLocale(strings.TrimSpace(id))
	return strings.ToLower(lang)
}

// sameLanguage reports whether two locale identifiers share a base language,
// ignoring case and region.
func sameLanguage(a, b string) bool {
	return baseLang(a) != "" && baseLang(a) == baseLang(b)
}

// cleanLocale trims surrounding whitespace and rejects oversized values.
// Returns an empty string for anything unusable.
func cleanLocale(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxLocaleLength {
		return ""
	}
	return id
}
