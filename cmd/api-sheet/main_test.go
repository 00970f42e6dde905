package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"

	"example.com/eventreport/internal/config"
	"example.com/eventreport/internal/errs"
)

const swagger = `{
  "openapi": "3.0.0",
  "paths": {
    "/conferences": {
      "get": {
        "summary": "List conferences",
        "parameters": [{"name": "page", "description": "page number"}],
        "responses": {"200": {"description": "ok"}}
      }
    },
    "/conferences/{key}/events": {
      "get": {"summary": "List events"},
      "post": {"summary": "Record event", "description": "Stores a visit"}
    }
  }
}`

func sheetConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "swagger.json")
	require.NoError(t, os.WriteFile(src, []byte(swagger), 0o644))

	cfg := config.Default()
	cfg.Sheet.SourcePath = src
	cfg.Sheet.OutputPath = filepath.Join(dir, "api_list.xlsx")
	return cfg
}

func TestRun_WritesWorkbook(t *testing.T) {
	cfg := sheetConfig(t)
	require.NoError(t, run(cfg, zaptest.NewLogger(t)))

	f, err := excelize.OpenFile(cfg.Sheet.OutputPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("APIs")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Method", "URL", "Summary", "Description", "Parameters", "Responses"}, rows[0])
	assert.Equal(t, []string{"GET", "/conferences", "List conferences", "", "page: page number", "{\n  \"200\": {\n    \"description\": \"ok\"\n  }\n}"}, rows[1])
	assert.Equal(t, []string{"GET", "/conferences/{key}/events", "List events", "", "", "{}"}, rows[2])
	assert.Equal(t, []string{"POST", "/conferences/{key}/events", "Record event", "Stores a visit", "", "{}"}, rows[3])
}

func TestRun_IsRepeatable(t *testing.T) {
	cfg := sheetConfig(t)
	require.NoError(t, run(cfg, zaptest.NewLogger(t)))
	require.NoError(t, run(cfg, zaptest.NewLogger(t)))

	f, err := excelize.OpenFile(cfg.Sheet.OutputPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("APIs")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestRun_MissingDocument(t *testing.T) {
	cfg := sheetConfig(t)
	cfg.Sheet.SourcePath = filepath.Join(t.TempDir(), "swagger.json")

	err := run(cfg, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInputNotFound)
	assert.NoFileExists(t, cfg.Sheet.OutputPath)
}

func TestRun_MetricsFile(t *testing.T) {
	cfg := sheetConfig(t)
	cfg.MetricsFile = filepath.Join(t.TempDir(), "api-sheet.prom")
	require.NoError(t, run(cfg, zaptest.NewLogger(t)))

	b, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `eventreport_endpoint_rows_exported_total{command="api-sheet"} 3`)
	assert.Contains(t, string(b), `outcome="ok"`)
}
