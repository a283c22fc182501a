package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"cuisine-scene/charts"
	"cuisine-scene/config"
	"cuisine-scene/models"
	"cuisine-scene/prompt"
	"cuisine-scene/scraper/yelp"
	"cuisine-scene/services"
	"cuisine-scene/storage"
	"cuisine-scene/utils"
)

func main() {
	state := flag.String("state", "", "U.S. state to analyse (prompted for when empty)")
	flag.Parse()

	cfg := config.Load()
	if *state != "" {
		cfg.State = *state
	}
	logger := utils.NewLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := yelp.NewClient(yelp.ClientOpts{
		BaseURL:     cfg.YelpBaseURL,
		APIKey:      cfg.YelpAPIKey,
		Timeout:     cfg.HTTPTimeout,
		MaxAttempts: cfg.MaxRetries,
		RateLimitMs: cfg.RateLimitMs,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("Failed to create Yelp client: %v", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, client, logger, os.Stdout); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// run drives one analysis: resolve the state, recommend, tally, aggregate,
// print, store and draw.
func run(ctx context.Context, cfg *config.Config, searcher services.Searcher, logger *utils.Logger, out io.Writer) error {
	printer := services.NewReportPrinter(out)
	resolver := services.NewLocalityResolver(services.StateCapitals)

	printer.Intro()

	var (
		locality models.Locality
		err      error
	)
	if cfg.State != "" {
		locality, err = resolver.Resolve(cfg.State)
	} else {
		locality, err = prompt.AskState(resolver)
	}
	if err != nil {
		return err
	}
	printer.Confirm(locality)

	recommender := services.NewRecommender(searcher, logger)
	recs, err := recommender.Recommend(ctx, locality, cfg.RatingThreshold)
	if err != nil {
		logger.Warn("Recommendations unavailable: %v", err)
	}
	printer.Recommendations(locality, recs)
	fmt.Fprintln(out)

	tally := services.NewCategoryTally(searcher, cfg.YelpSearchLimit, logger)
	counts := tally.Tally(ctx, locality, models.DefaultCuisines)
	for _, c := range counts {
		printer.CategoryCount(locality, c)
	}

	agg, err := services.Aggregate(counts)
	if err != nil {
		return fmt.Errorf("no restaurants counted in %s: %w", locality, err)
	}
	printer.Summary(locality, agg)

	report := &models.Report{
		RunID:           uuid.NewString(),
		Locality:        locality,
		Recommendations: recs,
		Aggregate:       agg,
		CreatedAt:       time.Now(),
	}

	for _, w := range openWriters(cfg, logger) {
		if err := w.Write(report); err != nil {
			logger.Error("Failed to store run %s: %v", report.RunID, err)
		}
		if err := w.Close(); err != nil {
			logger.Warn("Failed to close writer: %v", err)
		}
	}

	var rasterizer charts.Rasterizer
	if cfg.ChartFormat == config.ChartFormatPNG {
		rasterizer = charts.NewChromeRasterizer(cfg.ChromeBin, logger)
	}
	files, err := charts.NewRenderer(cfg.OutputDir, rasterizer, logger).Render(ctx, locality.String(), agg.Rows)
	if err != nil {
		logger.Error("Chart rendering failed: %v", err)
	}

	fmt.Fprintf(out, "  Done. Table → %s | Charts → %s, %s\n\n", cfg.CSVOutputPath, files.Bar, files.Pie)
	return nil
}

// openWriters returns every configured storage backend that could be opened.
func openWriters(cfg *config.Config, logger *utils.Logger) []storage.ReportWriter {
	var writers []storage.ReportWriter

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
	} else {
		writers = append(writers, csvWriter)
	}

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			logger.Error("Make sure Docker is running: docker compose up -d")
		} else {
			writers = append(writers, pgWriter)
		}
	}

	return writers
}
