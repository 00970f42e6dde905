package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"example.com/eventreport/internal/apidoc"
)

func readSheet(t *testing.T, path, name string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{name}, f.GetSheetList())
	rows, err := f.GetRows(name)
	require.NoError(t, err)
	return rows
}

func TestWriteRows_EndpointRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_list.xlsx")
	rows := []apidoc.EndpointRow{
		{Method: "GET", URL: "/pets", Summary: "List pets", Description: "all", Parameters: "limit: page size", Responses: "{}"},
		{Method: "POST", URL: "/pets", Summary: "Create", Description: "", Parameters: "", Responses: "{\n  \"201\": {}\n}"},
	}

	require.NoError(t, WriteRows(path, "APIs", rows))

	got := readSheet(t, path, "APIs")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Method", "URL", "Summary", "Description", "Parameters", "Responses"}, got[0])
	assert.Equal(t, []string{"GET", "/pets", "List pets", "all", "limit: page size", "{}"}, got[1])
	assert.Equal(t, []string{"POST", "/pets", "Create", "", "", "{\n  \"201\": {}\n}"}, got[2])
}

func TestWriteRows_HeaderOnlyWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteRows[apidoc.EndpointRow](path, "APIs", nil))

	got := readSheet(t, path, "APIs")
	require.Len(t, got, 1)
	assert.Equal(t, "Method", got[0][0])
}

func TestWriteRows_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_list.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteRows(path, "APIs", []apidoc.EndpointRow{{Method: "GET", URL: "/", Responses: "{}"}}))
	got := readSheet(t, path, "APIs")
	assert.Len(t, got, 2)
}

func TestWriteRows_DefaultSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, WriteRows(path, "Sheet1", []apidoc.EndpointRow{{Method: "GET", URL: "/", Responses: "{}"}}))
	assert.Len(t, readSheet(t, path, "Sheet1"), 2)
}

func TestWriteRows_RejectsNonStruct(t *testing.T) {
	err := WriteRows(filepath.Join(t.TempDir(), "x.xlsx"), "APIs", []string{"a"})
	require.Error(t, err)
}

func TestWriteRows_UnwritablePath(t *testing.T) {
	err := WriteRows(filepath.Join(t.TempDir(), "missing-dir", "x.xlsx"), "APIs", []apidoc.EndpointRow{})
	require.Error(t, err)
}
