// Package events loads an export of event records keyed by record id.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"example.com/eventreport/internal/domain"
	"example.com/eventreport/internal/errs"
)

// Load reads the export at path and returns its values in file order.
// The record keys are dropped and not compared with each event's id.
func Load(path string) ([]domain.Event, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(b)
}

// Decode parses an in-memory export.
func Decode(b []byte) ([]domain.Event, error) {
	byID := orderedmap.New[string, domain.Event]()
	if err := json.Unmarshal(b, byID); err != nil {
		return nil, fmt.Errorf("%w: events: %v", errs.ErrParsingFailed, err)
	}

	out := make([]domain.Event, 0, byID.Len())
	for pair := byID.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out, nil
}
