// Package apidoc reads Swagger/OpenAPI JSON documents and flattens their
// path/method tree into one row per operation.
package apidoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"example.com/eventreport/internal/errs"
)

// Document keeps only what the listing needs. Both levels of the paths tree
// keep the key order of the source file.
type Document struct {
	Paths *orderedmap.OrderedMap[string, *PathItem] `json:"paths"`
}

// PathItem maps a method name to its raw operation object. Entries whose
// value is not a JSON object (path-level parameters, $ref) are not operations.
type PathItem = orderedmap.OrderedMap[string, json.RawMessage]

type Operation struct {
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	Parameters  []Parameter     `json:"parameters"`
	Responses   json.RawMessage `json:"responses"`
}

type Parameter struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a document already in memory.
func Parse(b []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: api document: %v", errs.ErrParsingFailed, err)
	}
	return &doc, nil
}
