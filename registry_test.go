package localekit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit"
)

// testRegistry builds the registry most tests run against: English base plus
// Chinese and French variants, registered in that order.
func testRegistry(t *testing.T) *localekit.Registry {
	t.Helper()

	reg, err := localekit.NewRegistry(context.Background(),
		localekit.WithDictionary("en-US", localekit.Dictionary{
			"greeting": "Hello",
			"farewell": "Goodbye",
			"nav": map[string]any{
				"home":    "Home",
				"pricing": "Pricing",
			},
		}),
		localekit.WithDictionary("zh-CN", localekit.Dictionary{
			"greeting": "你好",
			"nav": map[string]any{
				"home": "首页",
			},
		}),
		localekit.WithDictionary("fr-FR", localekit.Dictionary{
			"greeting": "Bonjour",
			"nav": map[string]any{
				"home": "Accueil",
			},
		}),
	)
	require.NoError(t, err)
	return reg
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("requires at least one dictionary", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.NewRegistry(context.Background())
		assert.ErrorIs(t, err, localekit.ErrNoDictionaries)
	})

	t.Run("requires an english fallback base", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("fr-FR", localekit.Dictionary{"greeting": "Bonjour"}),
		)
		assert.ErrorIs(t, err, localekit.ErrMissingEnglishDictionary)
	})

	t.Run("rejects empty locale identifier", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("  ", localekit.Dictionary{"greeting": "Hello"}),
		)
		assert.ErrorIs(t, err, localekit.ErrEmptyLocaleID)
	})

	t.Run("rejects nil dictionary", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("en-US", nil),
		)
		assert.ErrorIs(t, err, localekit.ErrNilDictionary)
	})

	t.Run("rejects duplicate locale ignoring case", func(t *testing.T) {
		t.Parallel()
		_, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("en-US", localekit.Dictionary{"greeting": "Hello"}),
			localekit.WithDictionary("EN-us", localekit.Dictionary{"greeting": "Hi"}),
		)
		assert.ErrorIs(t, err, localekit.ErrDuplicateLocale)
	})

	t.Run("registration is isolated from caller mutations", func(t *testing.T) {
		t.Parallel()
		dict := localekit.Dictionary{"greeting": "Hello"}
		reg, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("en-US", dict),
		)
		require.NoError(t, err)

		dict["greeting"] = "mutated"
		assert.Equal(t, "Hello", reg.Compose("en-US")["greeting"])
	})

	t.Run("loads dictionaries from a source", func(t *testing.T) {
		t.Parallel()
		src := &localekit.MapSource{Data: map[string]localekit.Dictionary{
			"en-US": {"greeting": "Hello"},
			"de-DE": {"greeting": "Hallo"},
		}}

		reg, err := localekit.NewRegistry(context.Background(), localekit.WithSource(src))
		require.NoError(t, err)
		// Source locales register in sorted order for stability
		assert.Equal(t, []string{"de-DE", "en-US"}, reg.Locales())
	})

	t.Run("explicit dictionaries register before sources", func(t *testing.T) {
		t.Parallel()
		src := &localekit.MapSource{Data: map[string]localekit.Dictionary{
			"de-DE": {"greeting": "Hallo"},
		}}

		reg, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("en-US", localekit.Dictionary{"greeting": "Hello"}),
			localekit.WithSource(src),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en-US", "de-DE"}, reg.Locales())
	})

	t.Run("must panics on error", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			localekit.MustNewRegistry(context.Background())
		})
	})
}

func TestRegistryLocales(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	t.Run("registration order is stable", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"en-US", "zh-CN", "fr-FR"}, reg.Locales())
		assert.Equal(t, reg.Locales(), reg.Locales())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		locales := reg.Locales()
		locales[0] = "mutated"
		assert.Equal(t, "en-US", reg.Locales()[0])
	})

	t.Run("default locale is the english entry", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en-US", reg.DefaultLocale())
	})
}

func TestRegistryCanonical(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	tests := []struct {
		name string
		tag  string
		want string
		ok   bool
	}{
		{"exact match", "en-US", "en-US", true},
		{"exact match ignoring case", "ZH-cn", "zh-CN", true},
		{"bare language aliases the registered variant", "en", "en-US", true},
		{"bare language uppercase", "FR", "fr-FR", true},
		{"unregistered region is not canonical", "en-GB", "", false},
		{"unregistered language", "de", "", false},
		{"ordinary route segment", "pricing", "", false},
		{"empty tag", "", "", false},
		{"whitespace tag", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := reg.Canonical(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistryMatch(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	tests := []struct {
		name   string
		locale string
		want   string
		ok     bool
	}{
		{"exact match", "zh-CN", "zh-CN", true},
		{"exact match ignoring case", "fr-fr", "fr-FR", true},
		{"unregistered region falls back to same language", "zh-TW", "zh-CN", true},
		{"underscore separator", "zh_TW", "zh-CN", true},
		{"bare language", "fr", "fr-FR", true},
		{"wholly unregistered", "xx-XX", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := reg.Match(tt.locale)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("earliest registered entry wins for shared language", func(t *testing.T) {
		t.Parallel()
		reg, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("en-US", localekit.Dictionary{"greeting": "Hello"}),
			localekit.WithDictionary("zh-CN", localekit.Dictionary{"greeting": "你好"}),
			localekit.WithDictionary("zh-TW", localekit.Dictionary{"greeting": "妳好"}),
		)
		require.NoError(t, err)

		got, ok := reg.Match("zh-HK")
		require.True(t, ok)
		assert.Equal(t, "zh-CN", got)
	})
}

func TestRegistryCompose(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)

	t.Run("every english key survives in every registered locale", func(t *testing.T) {
		t.Parallel()
		base := reg.Compose(reg.DefaultLocale())

		for _, locale := range reg.Locales() {
			dict := reg.Compose(locale)
			for key := range base {
				assert.Contains(t, dict, key, "locale %s is missing key %s", locale, key)
			}
		}
	})

	t.Run("selected locale overrides at every depth", func(t *testing.T) {
		t.Parallel()
		dict := reg.Compose("zh-CN")

		assert.Equal(t, "你好", dict["greeting"])
		assert.Equal(t, "Goodbye", dict["farewell"]) // only in English

		nav, ok := dict["nav"].(localekit.Dictionary)
		require.True(t, ok)
		assert.Equal(t, "首页", nav["home"])
		assert.Equal(t, "Pricing", nav["pricing"]) // deep fallback to English
	})

	t.Run("unregistered region composes the same-language entry", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "你好", reg.Compose("zh-XX")["greeting"])
	})

	t.Run("wholly unregistered locale composes english", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, reg.Compose("en-US"), reg.Compose("xx-XX"))
	})

	t.Run("empty locale composes english", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello", reg.Compose("")["greeting"])
	})

	t.Run("garbage locale composes english", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello", reg.Compose("!!--__??")["greeting"])
	})

	t.Run("keys only in the selected locale are kept", func(t *testing.T) {
		t.Parallel()
		reg, err := localekit.NewRegistry(context.Background(),
			localekit.WithDictionary("en-US", localekit.Dictionary{"greeting": "Hello"}),
			localekit.WithDictionary("fr-FR", localekit.Dictionary{
				"greeting": "Bonjour",
				"extra":    "Seulement en français",
			}),
		)
		require.NoError(t, err)

		dict := reg.Compose("fr-FR")
		assert.Equal(t, "Bonjour", dict["greeting"])
		assert.Equal(t, "Seulement en français", dict["extra"])
	})

	t.Run("composed dictionary is a private copy", func(t *testing.T) {
		t.Parallel()
		first := reg.Compose("zh-CN")
		first["greeting"] = "mutated"
		nav := first["nav"].(localekit.Dictionary)
		nav["home"] = "mutated"

		second := reg.Compose("zh-CN")
		assert.Equal(t, "你好", second["greeting"])
		assert.Equal(t, "首页", second["nav"].(localekit.Dictionary)["home"])
	})
}
