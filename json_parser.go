package localekit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// JSONParser implements the Parser interface for JSON dictionary files
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON content and returns dictionaries keyed by locale
func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]Dictionary, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	// Top-level keys are locale identifiers, values must be objects
	result := make(map[string]Dictionary, len(data))
	for locale, payload := range data {
		dict, ok := asDictionary(payload)
		if !ok {
			return nil, fmt.Errorf("invalid JSON structure for locale '%s': expected object, got %T", locale, payload)
		}
		result[locale] = dict
	}

	return result, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
