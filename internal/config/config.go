package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"example.com/eventreport/internal/errs"
)

// Projection names.
const (
	ProjectionNarrow   = "narrow"
	ProjectionDetached = "detached"
	ProjectionNone     = "none"
)

// Report modes.
const (
	ModeEvents      = "events"
	ModeVisitors    = "visitors"
	ModeTopVisitors = "top-visitors"
	ModeDaily       = "daily"
	ModeMinutely    = "minutely"
	ModeByDate      = "by-date"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Sheet       SheetConfig  `yaml:"sheet"`
	Report      ReportConfig `yaml:"report"`
	LogLevel    string       `yaml:"log_level"`
	MetricsFile string       `yaml:"metrics_file"` // empty disables the textfile dump
}

type SheetConfig struct {
	SourcePath string `yaml:"source_path"` // API description document
	OutputPath string `yaml:"output_path"` // .xlsx destination, overwritten
	SheetName  string `yaml:"sheet_name"`
}

type ReportConfig struct {
	EventsPath    string `yaml:"events_path"`
	EventID       string `yaml:"event_id"` // events mode only; empty selects every event
	SortByCreated bool   `yaml:"sort_by_created"`
	Projection    string `yaml:"projection"`
	Mode          string `yaml:"mode"`
	Format        string `yaml:"format"`
	Rules         []Rule `yaml:"rules"`
}

// Rule is one field condition; every rule must hold for an event to be kept.
type Rule struct {
	Field    string `yaml:"field"`    // JSON name, dot notation for embedded objects
	Operator string `yaml:"operator"` // eq|ne|gt|gte|lt|lte|contains
	Value    string `yaml:"value"`
}

// Default mirrors the fixed paths the reports have always used.
func Default() Config {
	return Config{
		Sheet: SheetConfig{
			SourcePath: "./swagger.json",
			OutputPath: "./api_list.xlsx",
			SheetName:  "APIs",
		},
		Report: ReportConfig{
			EventsPath:    "getNft.json",
			EventID:       "7633",
			SortByCreated: true,
			Projection:    ProjectionNarrow,
			Mode:          ModeEvents,
			Format:        FormatJSON,
		},
		LogLevel: "info",
	}
}

// Parse builds the configuration from defaults, the optional YAML file named
// by REPORT_CONFIG, and environment overrides, in that order.
func Parse() (Config, error) {
	cfg := Default()
	if path := getString("REPORT_CONFIG", ""); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg.Sheet.SourcePath = getString("SWAGGER_PATH", cfg.Sheet.SourcePath)
	cfg.Sheet.OutputPath = getString("SHEET_PATH", cfg.Sheet.OutputPath)
	cfg.Sheet.SheetName = getString("SHEET_NAME", cfg.Sheet.SheetName)
	cfg.Report.EventsPath = getString("EVENTS_PATH", cfg.Report.EventsPath)
	cfg.Report.EventID = lookupString("EVENT_ID", cfg.Report.EventID)
	cfg.Report.SortByCreated = getBool("SORT_BY_CREATED", cfg.Report.SortByCreated)
	cfg.Report.Projection = strings.ToLower(getString("PROJECTION", cfg.Report.Projection))
	cfg.Report.Mode = strings.ToLower(getString("REPORT", cfg.Report.Mode))
	cfg.Report.Format = strings.ToLower(getString("OUTPUT_FORMAT", cfg.Report.Format))
	cfg.LogLevel = getString("LOG_LEVEL", cfg.LogLevel)
	cfg.MetricsFile = getString("METRICS_FILE", cfg.MetricsFile)

	if fe := cfg.Validate(); len(fe) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errs.ErrInvalidConfig, joinFieldErrors(fe))
	}
	return cfg, nil
}

// Load reads a YAML file on top of Default; keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("%w: parse yaml: %v", errs.ErrInvalidConfig, err)
	}
	return c, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// lookupString lets an explicitly empty variable override def.
func lookupString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
