package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/greatestleague/dashboard-api/internal/app"
	"github.com/greatestleague/dashboard-api/internal/config"
	"github.com/greatestleague/dashboard-api/internal/platform/logging"
)

func main() {
	_ = godotenv.Load(".env")

	startYear := flag.Int("start", 0, "first season to import")
	endYear := flag.Int("end", 0, "last season to import (defaults to start)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if *endYear == 0 {
		*endYear = *startYear
	}
	if *startYear == 0 {
		logger.Error("usage: backfill -start <year> [-end <year>]")
		os.Exit(2)
	}

	services, err := app.BuildServices(cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := services.Ingest.Backfill(ctx, *startYear, *endYear)
	if err != nil {
		logger.ErrorContext(ctx, "backfill failed", "start", *startYear, "end", *endYear, "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "backfill completed",
		"years", summary.Years,
		"weeks_scraped", summary.WeeksScraped,
		"new_matchups", summary.NewMatchups,
		"new_standings", summary.NewStandings,
	)
}
