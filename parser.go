package localekit

import (
	"context"
	"strings"
)

// Parser decodes dictionary documents from a serialized file format.
type Parser interface {
	// Parse processes the given content and returns dictionaries keyed by
	// locale identifier. The outer map keys are locale IDs such as "en-US",
	// the values are the translation payloads for those locales.
	Parse(ctx context.Context, content string) (map[string]Dictionary, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot (e.g. both "json" and ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension,
// or nil when no parser handles the format.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(fileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// fileExtension extracts the extension from a filename without the dot.
func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
