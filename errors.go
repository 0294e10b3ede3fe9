package localekit

import "errors"

// Sentinels are joined with the underlying cause at the failure site, so
// errors.Is works against both. Cancellation sentinels stay separate from
// parse failures so callers can tell an aborted load from a broken file.
var (
	// Registry construction
	ErrNoDictionaries           = errors.New("registry requires at least one dictionary")
	ErrMissingEnglishDictionary = errors.New("registry requires an english dictionary as the fallback base")
	ErrEmptyLocaleID            = errors.New("empty locale identifier")
	ErrNilDictionary            = errors.New("nil dictionary")
	ErrDuplicateLocale          = errors.New("locale registered more than once")

	// Manager construction
	ErrNilRegistry = errors.New("registry is nil")

	// Configuration
	ErrParsingConfig   = errors.New("failed to parse configuration from environment")
	ErrNoDictionaryDir = errors.New("no dictionary directory configured")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrUnsupportedFileFormat = errors.New("unsupported dictionary file format")
	ErrLoadingFileCancelled  = errors.New("loading dictionary file cancelled")
	ErrFailedToReadFile      = errors.New("failed to read dictionary file")
	ErrFailedToParseFile     = errors.New("failed to parse dictionary file")

	// Directory operations
	ErrFailedToAccessDirectory   = errors.New("failed to access dictionary directory")
	ErrLoadingDirectoryCancelled = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read dictionary directory")

	// Filesystem operations
	ErrLoadingSourceCancelled = errors.New("loading dictionaries cancelled before starting")
	ErrFailedToReadFS         = errors.New("failed to read dictionary filesystem")
)
