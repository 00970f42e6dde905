// Package report dumps query results in a human-readable form.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"example.com/eventreport/internal/errs"
)

// Write encodes v as indented JSON (format "json" or "") or YAML ("yaml").
// A nil slice is written as an empty list.
func Write(w io.Writer, v any, format string) error {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.IsNil() {
		v = []any{}
	}

	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%w: json report: %v", errs.ErrWriteFailed, err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%w: yaml report: %v", errs.ErrWriteFailed, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: yaml report: %v", errs.ErrWriteFailed, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown report format %q", errs.ErrInvalidConfig, format)
	}
}
