package localekit

import (
	"context"
)

// localeContextKey is the key for storing the resolved locale in context
type localeContextKey struct{}

// dictionaryContextKey is the key for storing the composed dictionary in context
type dictionaryContextKey struct{}

// signalContextKey is the key for storing the winning signal in context
type signalContextKey struct{}

// SetLocale sets the resolved locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the resolved locale from the context.
// If no locale is set, will return the default locale - "en-US".
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLocale
	}
	return locale
}

// SetDictionary sets the composed dictionary in the context.
func SetDictionary(ctx context.Context, dict Dictionary) context.Context {
	return context.WithValue(ctx, dictionaryContextKey{}, dict)
}

// GetDictionary returns the composed dictionary from the context.
// If none is set, returns an empty dictionary rather than nil so lookups
// on the result never panic.
func GetDictionary(ctx context.Context) Dictionary {
	dict, _ := ctx.Value(dictionaryContextKey{}).(Dictionary)
	if dict == nil {
		return Dictionary{}
	}
	return dict
}

// localeFromContext reads the locale without applying the default, so
// callers can tell a resolved locale apart from an uninitialized context.
func localeFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok && locale != ""
}

// SetSignal sets the winning resolution signal in the context.
func SetSignal(ctx context.Context, sig Signal) context.Context {
	return context.WithValue(ctx, signalContextKey{}, sig)
}

// GetSignal returns the resolution signal from the context,
// SignalNone when unset.
func GetSignal(ctx context.Context) Signal {
	sig, _ := ctx.Value(signalContextKey{}).(Signal)
	return sig
}
