package localekit_test

import (
	"context"
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit"
)

//go:embed testdata
var dictFS embed.FS

func TestMapSource(t *testing.T) {
	t.Parallel()

	t.Run("returns data as provided", func(t *testing.T) {
		t.Parallel()

		src := &localekit.MapSource{Data: map[string]localekit.Dictionary{
			"en-US": {"greeting": "Hello"},
		}}

		dicts, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, dicts, "en-US")
		assert.Equal(t, "Hello", dicts["en-US"]["greeting"])
	})

	t.Run("nil data yields empty map", func(t *testing.T) {
		t.Parallel()

		dicts, err := (&localekit.MapSource{}).Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, dicts)
	})
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	t.Run("loads YAML file", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewFileSource(filepath.Join("testdata", "en-US.yaml"))
		require.NotNil(t, src)

		dicts, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, dicts, "en-US")
		assert.Equal(t, "Hello", dicts["en-US"]["greeting"])
		assert.Equal(t, "Goodbye", dicts["en-US"]["farewell"])
	})

	t.Run("loads JSON file", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewFileSource(filepath.Join("testdata", "fr-FR.json"))
		dicts, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, dicts, "fr-FR")
		assert.Equal(t, "Bonjour", dicts["fr-FR"]["greeting"])
	})

	t.Run("empty path returns nil source", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, localekit.NewFileSource(""))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewFileSource(filepath.Join("testdata", "notes.txt"))
		dicts, err := src.Load(context.Background())
		assert.ErrorIs(t, err, localekit.ErrUnsupportedFileFormat)
		assert.Nil(t, dicts)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewFileSource(filepath.Join("testdata", "missing.yaml"))
		dicts, err := src.Load(context.Background())
		assert.ErrorIs(t, err, localekit.ErrFailedToReadFile)
		assert.Nil(t, dicts)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := localekit.NewFileSource(path).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is empty")
	})

	t.Run("parser failure", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("en-US: [unclosed"), 0o644))

		_, err := localekit.NewFileSource(path).Load(context.Background())
		assert.ErrorIs(t, err, localekit.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := localekit.NewFileSource(filepath.Join("testdata", "en-US.yaml"))
		_, err := src.Load(ctx)
		assert.ErrorIs(t, err, localekit.ErrLoadingFileCancelled)
	})
}

func TestDirSource(t *testing.T) {
	t.Parallel()

	t.Run("loads every supported file and merges per locale", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewDirSource("testdata")
		require.NotNil(t, src)

		dicts, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, dicts, "en-US")
		require.Contains(t, dicts, "fr-FR")
		require.Contains(t, dicts, "zh-CN")

		en := dicts["en-US"]
		assert.Equal(t, "Hello", en["greeting"])
		assert.Equal(t, "See you", en["farewell"], "later files override earlier ones")

		nav, ok := en["nav"].(localekit.Dictionary)
		require.True(t, ok)
		assert.Equal(t, "Home", nav["home"])
		assert.Equal(t, "Pricing", nav["pricing"])
		assert.Equal(t, "Blog", nav["blog"], "nested sections merge instead of clobbering")

		assert.Equal(t, "Bonjour", dicts["fr-FR"]["greeting"], "JSON files load alongside YAML")
	})

	t.Run("empty path returns nil source", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, localekit.NewDirSource(""))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewDirSource(filepath.Join("testdata", "missing"))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, localekit.ErrFailedToAccessDirectory)
	})

	t.Run("path is a file", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewDirSource(filepath.Join("testdata", "en-US.yaml"))
		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})

	t.Run("directory without dictionary files", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewDirSource(t.TempDir())
		_, err := src.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no dictionary files found")
	})

	t.Run("a broken file does not sink the rest", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("en-US: [unclosed"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yaml"), []byte("en-US:\n  greeting: \"Hello\"\n"), 0o644))

		dicts, err := localekit.NewDirSource(dir).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Hello", dicts["en-US"]["greeting"])
	})

	t.Run("only broken files surfaces the failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("en-US: [unclosed"), 0o644))

		_, err := localekit.NewDirSource(dir).Load(context.Background())
		assert.ErrorIs(t, err, localekit.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := localekit.NewDirSource("testdata").Load(ctx)
		assert.ErrorIs(t, err, localekit.ErrLoadingDirectoryCancelled)
	})
}

func TestFSSource(t *testing.T) {
	t.Parallel()

	t.Run("loads embedded dictionaries", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewFSSource(dictFS, "testdata")
		require.NotNil(t, src)

		dicts, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Contains(t, dicts, "en-US")
		require.Contains(t, dicts, "fr-FR")
		require.Contains(t, dicts, "zh-CN")

		en := dicts["en-US"]
		assert.Equal(t, "See you", en["farewell"], "later files override earlier ones")

		nav, ok := en["nav"].(localekit.Dictionary)
		require.True(t, ok)
		assert.Equal(t, "Blog", nav["blog"])
		assert.Equal(t, "Pricing", nav["pricing"])
	})

	t.Run("nil filesystem returns nil source", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, localekit.NewFSSource(nil, "testdata"))
	})

	t.Run("empty dir returns nil source", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, localekit.NewFSSource(dictFS, ""))
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		src := localekit.NewFSSource(dictFS, "nowhere")
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, localekit.ErrFailedToReadFS)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := localekit.NewFSSource(dictFS, "testdata").Load(ctx)
		assert.ErrorIs(t, err, localekit.ErrLoadingSourceCancelled)
	})
}
