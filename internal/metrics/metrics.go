// Package metrics records per-run counters on a private Prometheus registry
// and can dump them in the text exposition format for a textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/eventreport/internal/errs"
)

type Recorder struct {
	registry *prometheus.Registry
	started  time.Time

	RowsExported   prometheus.Counter
	EventsLoaded   prometheus.Counter
	EventsSelected prometheus.Counter
	RunDuration    *prometheus.GaugeVec
}

// New registers the counters under the given command name.
func New(command string) *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry(), started: time.Now()}
	labels := prometheus.Labels{"command": command}

	r.RowsExported = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "eventreport",
		Name:        "endpoint_rows_exported_total",
		Help:        "Endpoint rows written to the spreadsheet",
		ConstLabels: labels,
	})
	r.EventsLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "eventreport",
		Name:        "events_loaded_total",
		Help:        "Events decoded from the export",
		ConstLabels: labels,
	})
	r.EventsSelected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   "eventreport",
		Name:        "events_selected_total",
		Help:        "Events left after ordering and filtering",
		ConstLabels: labels,
	})
	r.RunDuration = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   "eventreport",
		Name:        "run_duration_seconds",
		Help:        "Wall time of the last run by outcome",
		ConstLabels: labels,
	}, []string{"outcome"})

	r.registry.MustRegister(r.RowsExported, r.EventsLoaded, r.EventsSelected, r.RunDuration)
	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Finish records the run duration under "ok" or "error".
func (r *Recorder) Finish(runErr error) {
	outcome := "ok"
	if runErr != nil {
		outcome = "error"
	}
	r.RunDuration.WithLabelValues(outcome).Set(time.Since(r.started).Seconds())
}

// WriteFile dumps the registry to path. An empty path is a no-op.
func (r *Recorder) WriteFile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("%w: metrics %s: %v", errs.ErrWriteFailed, path, err)
	}
	return nil
}
