// Package yamlutil wraps YAML encoding to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Marshal encodes v with two-space indented sequences.
// Multiline strings are written as literal blocks so source text stays readable.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v,
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}
