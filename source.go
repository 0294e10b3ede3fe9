package localekit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source loads dictionary documents for registry construction.
type Source interface {
	// Load returns dictionaries keyed by locale identifier.
	Load(ctx context.Context) (map[string]Dictionary, error)
}

// MapSource is a simple source that uses an in-memory map of dictionaries
type MapSource struct {
	Data map[string]Dictionary
}

// Load implements the Source interface
func (s *MapSource) Load(_ context.Context) (map[string]Dictionary, error) {
	if s.Data == nil {
		return make(map[string]Dictionary), nil
	}
	return s.Data, nil
}

// FileSource loads dictionaries from a single file. The parser is picked by
// file extension, so both JSON and YAML documents work without configuration.
type FileSource struct {
	path string
}

// NewFileSource creates a new FileSource instance.
// Returns nil if path is empty.
func NewFileSource(path string) *FileSource {
	if path == "" {
		return nil
	}
	return &FileSource{path: path}
}

// Load implements the Source interface
func (s *FileSource) Load(ctx context.Context) (map[string]Dictionary, error) {
	if s.path == "" {
		return nil, fmt.Errorf("dictionary file path is empty")
	}

	parser := NewParserForFile(s.path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileFormat, s.path)
	}

	// Read in a goroutine so a cancelled context does not block on slow storage
	done := make(chan struct{})
	var content []byte
	var readErr error
	go func() {
		content, readErr = os.ReadFile(s.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("dictionary file '%s' is empty", s.path)
	}

	dicts, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if dicts == nil {
		return nil, fmt.Errorf("parser returned nil dictionaries for file '%s'", s.path)
	}
	return dicts, nil
}

// DirSource loads dictionaries from every supported file in a directory.
// Files load in name order; dictionaries for the same locale found in
// multiple files merge recursively, later files overriding earlier ones.
type DirSource struct {
	path string
}

// NewDirSource creates a new DirSource instance.
// Returns nil if path is empty.
func NewDirSource(path string) *DirSource {
	if path == "" {
		return nil
	}
	return &DirSource{path: path}
}

// Load implements the Source interface
func (s *DirSource) Load(ctx context.Context) (map[string]Dictionary, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path '%s' is not a directory", s.path)
	}

	done := make(chan struct{})
	var entries []os.DirEntry
	var readErr error
	go func() {
		entries, readErr = os.ReadDir(s.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingDirectoryCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, readErr)
	}

	all := make(map[string]Dictionary)
	var lastErr error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if NewParserForFile(entry.Name()) == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}

		file := NewFileSource(filepath.Join(s.path, entry.Name()))
		dicts, err := file.Load(ctx)
		if err != nil {
			// A single broken file must not sink the whole directory
			lastErr = err
			continue
		}
		mergeLoaded(all, dicts)
	}

	if len(all) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, fmt.Errorf("no dictionary files found in directory '%s'", s.path)
	}
	return all, nil
}

// FSSource loads dictionaries from a directory inside an fs.FS, typically an
// embed.FS so dictionaries ship inside the binary.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource creates a new FSSource instance.
// Returns nil if fsys is nil or dir is empty.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	if fsys == nil || dir == "" {
		return nil
	}
	return &FSSource{fsys: fsys, dir: dir}
}

// Load implements the Source interface
func (s *FSSource) Load(ctx context.Context) (map[string]Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingSourceCancelled, err)
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFS, err)
	}

	all := make(map[string]Dictionary)
	var lastErr error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingSourceCancelled, err)
		}

		content, err := fs.ReadFile(s.fsys, filepath.Join(s.dir, entry.Name()))
		if err != nil {
			lastErr = errors.Join(ErrFailedToReadFS, err)
			continue
		}
		if len(content) == 0 {
			continue
		}
		dicts, err := parser.Parse(ctx, string(content))
		if err != nil {
			lastErr = errors.Join(ErrFailedToParseFile, err)
			continue
		}
		mergeLoaded(all, dicts)
	}

	if len(all) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, fmt.Errorf("no dictionary files found in '%s'", s.dir)
	}
	return all, nil
}

// mergeLoaded folds freshly loaded dictionaries into the accumulated set,
// merging per locale so split files compose instead of clobbering.
func mergeLoaded(all map[string]Dictionary, loaded map[string]Dictionary) {
	for locale, dict := range loaded {
		if existing, ok := all[locale]; ok {
			mergeDictionary(existing, dict)
			continue
		}
		all[locale] = dict.Clone()
	}
}
