package config

import (
	"fmt"
	"strings"
)

// FieldError represents a single setting's validation error.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"message"`
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

var (
	projections = []string{ProjectionNarrow, ProjectionDetached, ProjectionNone}
	modes       = []string{ModeEvents, ModeVisitors, ModeTopVisitors, ModeDaily, ModeMinutely, ModeByDate}
	formats     = []string{FormatJSON, FormatYAML}
	operators   = []string{"eq", "ne", "gt", "gte", "lt", "lte", "contains"}
)

// Validate checks enumerated settings and rules. Paths are not checked here;
// a missing input surfaces when it is read.
func (c Config) Validate() []FieldError {
	var errs []FieldError

	if c.Sheet.SheetName == "" {
		errs = append(errs, FieldError{"sheet.sheet_name", "required"})
	} else if len(c.Sheet.SheetName) > 31 {
		errs = append(errs, FieldError{"sheet.sheet_name", "max length 31"})
	}

	if !oneOf(c.Report.Projection, projections) {
		errs = append(errs, FieldError{"report.projection", "must be one of " + strings.Join(projections, "|")})
	}
	if !oneOf(c.Report.Mode, modes) {
		errs = append(errs, FieldError{"report.mode", "must be one of " + strings.Join(modes, "|")})
	}
	if !oneOf(c.Report.Format, formats) {
		errs = append(errs, FieldError{"report.format", "must be one of " + strings.Join(formats, "|")})
	}

	for i, r := range c.Report.Rules {
		if strings.TrimSpace(r.Field) == "" {
			errs = append(errs, FieldError{fmt.Sprintf("report.rules[%d].field", i), "required"})
		}
		if !oneOf(r.Operator, operators) {
			errs = append(errs, FieldError{fmt.Sprintf("report.rules[%d].operator", i), "must be one of " + strings.Join(operators, "|")})
		}
	}

	return errs
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func joinFieldErrors(fe []FieldError) string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}
