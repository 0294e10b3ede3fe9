package localekit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML dictionary files
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns dictionaries keyed by locale
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]Dictionary, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]Dictionary, len(data))
	for locale, payload := range data {
		dict, ok := asDictionary(payload)
		if !ok {
			return nil, fmt.Errorf("invalid YAML structure for locale '%s': expected map, got %T", locale, payload)
		}
		result[locale] = dict
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no dictionaries found in YAML content")
	}

	return result, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
