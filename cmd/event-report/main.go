package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"example.com/eventreport/internal/config"
	"example.com/eventreport/internal/domain"
	"example.com/eventreport/internal/errs"
	"example.com/eventreport/internal/events"
	"example.com/eventreport/internal/logger"
	"example.com/eventreport/internal/metrics"
	"example.com/eventreport/internal/query"
	"example.com/eventreport/internal/report"
)

func main() {
	os.Exit(realMain(os.Stdout))
}

func realMain(stdout io.Writer) int {
	cfg, cfgErr := config.Parse()
	level := cfg.LogLevel
	if cfgErr != nil {
		level = os.Getenv("LOG_LEVEL")
	}
	log, err := logger.New(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer logger.Sync(log)

	if cfgErr != nil {
		log.Error("Invalid configuration", zap.Error(cfgErr))
		return errs.ExitCode(cfgErr)
	}

	err = run(cfg, log, stdout)
	if err != nil {
		log.Error("Event report failed",
			zap.Error(err),
			zap.String("class", errs.Classify(err).String()),
		)
	}
	return errs.ExitCode(err)
}

// run loads the export, applies the configured stages and writes the result
// to out. Nothing is written to out when loading fails.
func run(cfg config.Config, log *zap.Logger, out io.Writer) (err error) {
	log = log.With(zap.String("run_id", uuid.NewString()))
	rec := metrics.New("event-report")
	defer func() {
		rec.Finish(err)
		if werr := rec.WriteFile(cfg.MetricsFile); werr != nil {
			log.Warn("Failed to write metrics", zap.Error(werr))
		}
	}()

	rc := cfg.Report
	evs, err := events.Load(rc.EventsPath)
	if err != nil {
		return err
	}
	rec.EventsLoaded.Add(float64(len(evs)))
	log.Info("Events loaded", zap.String("path", rc.EventsPath), zap.Int("count", len(evs)))

	result, selected := build(rc, evs)
	rec.EventsSelected.Add(float64(selected))
	log.Debug("Report built",
		zap.String("mode", rc.Mode),
		zap.String("projection", rc.Projection),
		zap.Int("selected", selected),
	)

	return report.Write(out, result, rc.Format)
}

// build applies ordering, filtering and the mode's projection or reduction.
// It returns the result and how many events survived filtering.
func build(rc config.ReportConfig, evs []domain.Event) (any, int) {
	rules := make([]query.Rule, 0, len(rc.Rules))
	for _, r := range rc.Rules {
		rules = append(rules, query.Rule{Field: r.Field, Operator: r.Operator, Value: r.Value})
	}

	sel := query.Selection{SortByCreated: rc.SortByCreated, Where: query.Match(rules)}
	if rc.Mode == config.ModeEvents && rc.EventID != "" {
		sel.Where = query.All(query.ByID(rc.EventID), sel.Where)
	}
	selected := sel.Apply(evs)

	switch rc.Mode {
	case config.ModeVisitors:
		return query.CountBy(selected, query.VisitorKey), len(selected)
	case config.ModeTopVisitors:
		return query.Top(query.CountBy(selected, query.VisitorKey)), len(selected)
	case config.ModeDaily:
		return query.CountBy(selected, query.DateKey), len(selected)
	case config.ModeMinutely:
		return query.CountBy(selected, query.MinuteKey), len(selected)
	case config.ModeByDate:
		return query.GroupBy(selected, query.DateKey), len(selected)
	}

	switch rc.Projection {
	case config.ProjectionNarrow:
		return query.Narrow(selected), len(selected)
	case config.ProjectionDetached:
		return query.Detach(selected), len(selected)
	default:
		return selected, len(selected)
	}
}
