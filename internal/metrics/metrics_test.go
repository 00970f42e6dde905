package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/eventreport/internal/errs"
)

func TestRecorder_Counters(t *testing.T) {
	r := New("event-report")
	r.EventsLoaded.Add(5)
	r.EventsSelected.Inc()

	assert.Equal(t, 5.0, testutil.ToFloat64(r.EventsLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.EventsSelected))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.RowsExported))
	n, err := testutil.GatherAndCount(r.Registry(), "eventreport_events_loaded_total", "eventreport_events_selected_total", "eventreport_endpoint_rows_exported_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRecorder_Finish(t *testing.T) {
	r := New("api-sheet")
	r.Finish(nil)
	r.Finish(errors.New("boom"))

	assert.Equal(t, 2, testutil.CollectAndCount(r.RunDuration))
	assert.GreaterOrEqual(t, testutil.ToFloat64(r.RunDuration.WithLabelValues("ok")), 0.0)
}

func TestRecorder_WriteFile(t *testing.T) {
	r := New("api-sheet")
	r.RowsExported.Add(7)

	require.NoError(t, r.WriteFile(""))

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, r.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `eventreport_endpoint_rows_exported_total{command="api-sheet"} 7`)

	err = r.WriteFile(filepath.Join(t.TempDir(), "nope", "run.prom"))
	assert.ErrorIs(t, err, errs.ErrWriteFailed)
}
