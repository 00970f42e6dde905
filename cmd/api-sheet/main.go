package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"example.com/eventreport/internal/apidoc"
	"example.com/eventreport/internal/config"
	"example.com/eventreport/internal/errs"
	"example.com/eventreport/internal/logger"
	"example.com/eventreport/internal/metrics"
	"example.com/eventreport/internal/sheet"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
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

	err = run(cfg, log)
	if err != nil {
		log.Error("API sheet export failed",
			zap.Error(err),
			zap.String("class", errs.Classify(err).String()),
		)
	}
	return errs.ExitCode(err)
}

// run flattens the API document and writes the listing workbook.
func run(cfg config.Config, log *zap.Logger) (err error) {
	log = log.With(zap.String("run_id", uuid.NewString()))
	rec := metrics.New("api-sheet")
	defer func() {
		rec.Finish(err)
		if werr := rec.WriteFile(cfg.MetricsFile); werr != nil {
			log.Warn("Failed to write metrics", zap.Error(werr))
		}
	}()

	sc := cfg.Sheet
	doc, err := apidoc.Load(sc.SourcePath)
	if err != nil {
		return err
	}
	rows, err := apidoc.Flatten(doc)
	if err != nil {
		return err
	}

	if err := sheet.WriteRows(sc.OutputPath, sc.SheetName, rows); err != nil {
		return err
	}
	rec.RowsExported.Add(float64(len(rows)))

	log.Info("Excel file has been created",
		zap.String("path", sc.OutputPath),
		zap.String("sheet", sc.SheetName),
		zap.Int("rows", len(rows)),
	)
	return nil
}
