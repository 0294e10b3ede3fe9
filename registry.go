package localekit

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Registry is an ordered, immutable set of locale dictionaries. Registration
// order is significant: same-language fallbacks resolve to the earliest
// registered entry, so the preferred regional variant of a language should be
// registered first. A registry always contains an English entry, which is the
// structural base every composed dictionary is merged over.
type Registry struct {
	ids      []string
	dicts    map[string]Dictionary
	fallback string // first registered en* locale
}

// registryBuilder accumulates option state before validation
type registryBuilder struct {
	entries []registryEntry
	sources []Source
}

type registryEntry struct {
	locale string
	dict   Dictionary
}

// RegistryOption configures registry construction
type RegistryOption func(*registryBuilder)

// WithDictionary registers a dictionary under the given locale identifier.
// Call order defines registry order.
func WithDictionary(locale string, dict Dictionary) RegistryOption {
	return func(b *registryBuilder) {
		b.entries = append(b.entries, registryEntry{locale: locale, dict: dict})
	}
}

// WithSource registers every dictionary a source yields. Sources load after
// explicit WithDictionary entries, in the order given; locales within a
// single source register in sorted order to keep registry order stable
// across runs. Nil sources are ignored.
func WithSource(src Source) RegistryOption {
	return func(b *registryBuilder) {
		if src == nil {
			return
		}
		b.sources = append(b.sources, src)
	}
}

// NewRegistry creates a Registry from the given options. It fails when no
// dictionary is registered, when a locale appears twice, or when no English
// entry is present to serve as the fallback base. After construction the
// registry never changes.
func NewRegistry(ctx context.Context, opts ...RegistryOption) (*Registry, error) {
	b := &registryBuilder{}
	for _, opt := range opts {
		opt(b)
	}

	for _, src := range b.sources {
		loaded, err := src.Load(ctx)
		if err != nil {
			return nil, err
		}
		locales := make([]string, 0, len(loaded))
		for locale := range loaded {
			locales = append(locales, locale)
		}
		sort.Strings(locales)
		for _, locale := range locales {
			b.entries = append(b.entries, registryEntry{locale: locale, dict: loaded[locale]})
		}
	}

	if len(b.entries) == 0 {
		return nil, ErrNoDictionaries
	}

	r := &Registry{
		ids:   make([]string, 0, len(b.entries)),
		dicts: make(map[string]Dictionary, len(b.entries)),
	}
	for _, entry := range b.entries {
		locale := cleanLocale(entry.locale)
		if locale == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyLocaleID, entry.locale)
		}
		if entry.dict == nil {
			return nil, fmt.Errorf("%w: locale %s", ErrNilDictionary, locale)
		}
		for _, id := range r.ids {
			if strings.EqualFold(id, locale) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateLocale, locale)
			}
		}
		r.ids = append(r.ids, locale)
		r.dicts[locale] = entry.dict.Clone()
	}

	for _, id := range r.ids {
		if baseLang(id) == "en" {
			r.fallback = id
			break
		}
	}
	if r.fallback == "" {
		return nil, ErrMissingEnglishDictionary
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
// Intended for static registries assembled at program start.
func MustNewRegistry(ctx context.Context, opts ...RegistryOption) *Registry {
	r, err := NewRegistry(ctx, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Locales returns the registered locale identifiers in registration order.
func (r *Registry) Locales() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// DefaultLocale returns the English entry used as the fallback base.
func (r *Registry) DefaultLocale() string {
	return r.fallback
}

// Canonical maps a tag to a registered locale identifier under the strict
// rules applied to URL path segments: the tag must equal a registered
// identifier, or be a bare language code that aliases one ("en" resolves to
// a registered "en-US"). Comparisons ignore case. Anything else, including
// regional variants that are not registered, reports false.
func (r *Registry) Canonical(tag string) (string, bool) {
	tag = cleanLocale(tag)
	if tag == "" {
		return "", false
	}
	for _, id := range r.ids {
		if strings.EqualFold(id, tag) {
			return id, true
		}
	}
	if _, region := splitLocale(tag); region != "" {
		return "", false
	}
	for _, id := range r.ids {
		if sameLanguage(id, tag) {
			return id, true
		}
	}
	return "", false
}

// Match finds the registered locale serving the given identifier: an exact
// case-insensitive match first, otherwise the earliest registered entry
// sharing the base language. Reports false when no entry serves it.
func (r *Registry) Match(locale string) (string, bool) {
	locale = cleanLocale(locale)
	if locale == "" {
		return "", false
	}
	for _, id := range r.ids {
		if strings.EqualFold(id, locale) {
			return id, true
		}
	}
	for _, id := range r.ids {
		if sameLanguage(id, locale) {
			return id, true
		}
	}
	return "", false
}

// Compose builds the dictionary for a locale: the matched entry deep-merged
// over the English base. Keys present only in English survive, so every
// English key is available in every composed dictionary. Compose never
// fails; unknown or malformed locales yield the English dictionary. The
// result is a private copy the caller may mutate freely.
func (r *Registry) Compose(locale string) Dictionary {
	base := r.dicts[r.fallback].Clone()
	id, ok := r.Match(locale)
	if !ok || id == r.fallback {
		return base
	}
	mergeDictionary(base, r.dicts[id])
	return base
}
