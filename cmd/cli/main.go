package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"naprofile/adapters/excel"
	"naprofile/adapters/stats/engine"
	"naprofile/domain/core"
	"naprofile/internal"
	"naprofile/internal/config"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()
	logger := internal.NewDefaultLogger()

	file := flag.String("file", cfg.Input.File, "xlsx or csv input file")
	sheet := flag.String("sheet", cfg.Input.Sheet, "worksheet name for xlsx input")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -file data.xlsx [-sheet Sheet1]")
		os.Exit(2)
	}

	logger.Info("reading %s", *file)
	frame, err := excel.NewDataReader(*file).WithSheet(*sheet).ReadFrame()
	if err != nil {
		logger.Error("read failed: %v", err)
		os.Exit(1)
	}
	logger.Info("frame loaded (%d rows, %d columns)", frame.RowCount(), frame.ColumnCount())

	opts := engine.Options{
		MatrixplotSort: cfg.Plot.MatrixplotSort,
		PlotTransform:  cfg.Plot.PlotTransform,
	}

	report, err := engine.New().Profile(context.Background(), frame, opts)
	if err != nil {
		var se *core.SchemaError
		if errors.As(err, &se) {
			logger.Error("non-numeric columns: %v", se.Columns)
		} else {
			logger.Error("profile failed: %v", err)
		}
		os.Exit(1)
	}

	if report.ClusteringError != "" {
		logger.Warn("clustering skipped: %s", report.ClusteringError)
	}
	if len(report.VarsAboveHalf) > 0 {
		logger.Warn("variables above 50%% missingness: %v", report.VarsAboveHalf)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Error("encode failed: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
