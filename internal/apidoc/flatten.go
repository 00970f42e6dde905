package apidoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EndpointRow is one (path, method) pair. Field order is column order.
type EndpointRow struct {
	Method      string
	URL         string
	Summary     string
	Description string
	Parameters  string
	Responses   string
}

// Flatten walks paths then methods in document order and returns one row per
// operation. A document without paths yields no rows.
func Flatten(doc *Document) ([]EndpointRow, error) {
	if doc == nil || doc.Paths == nil {
		return nil, nil
	}

	var rows []EndpointRow
	for path := doc.Paths.Oldest(); path != nil; path = path.Next() {
		if path.Value == nil {
			continue
		}
		for method := path.Value.Oldest(); method != nil; method = method.Next() {
			if !isObject(method.Value) {
				continue
			}
			var op Operation
			if err := json.Unmarshal(method.Value, &op); err != nil {
				return nil, fmt.Errorf("operation %s %s: %w", strings.ToUpper(method.Key), path.Key, err)
			}
			responses, err := indentResponses(op.Responses)
			if err != nil {
				return nil, fmt.Errorf("responses %s %s: %w", strings.ToUpper(method.Key), path.Key, err)
			}
			rows = append(rows, EndpointRow{
				Method:      strings.ToUpper(method.Key),
				URL:         path.Key,
				Summary:     op.Summary,
				Description: op.Description,
				Parameters:  joinParameters(op.Parameters),
				Responses:   responses,
			})
		}
	}
	return rows, nil
}

func joinParameters(params []Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+": "+p.Description)
	}
	return strings.Join(parts, ", ")
}

// indentResponses re-indents the raw response map with two spaces, keeping
// the source key order. Absent or null responses render as "{}".
func indentResponses(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "{}", nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
