package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/abekoci/election-map/aggregate"
	"github.com/abekoci/election-map/apiclient"
	"github.com/abekoci/election-map/catalog"
	"github.com/abekoci/election-map/cliparse"
	"github.com/abekoci/election-map/middleware"
	"github.com/abekoci/election-map/models"
	"github.com/abekoci/election-map/poller"
	"github.com/abekoci/election-map/router"
	"github.com/abekoci/election-map/store"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			slog.Error("Error loading catalog", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Watch {
		runWatch(cfg, cat)
		return
	}

	if cfg.EntryPassword == cliparse.DefaultPassword {
		slog.Warn("Using default password. Set ELECTION_MAP_PASSWORD environment variable for security.")
	}

	st, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	mux := router.NewRouter(st, cfg, cat)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port, "driver", cfg.DatabaseDriver)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// runWatch is the headless viewer: poll the API on a fixed period and
// log the national summary whenever the snapshot actually changes.
func runWatch(cfg cliparse.Config, cat *catalog.Catalog) {
	agg := aggregate.New(cat)
	client := apiclient.New(cfg.APIBaseURL)

	p := poller.New(client, cat, cfg.PollInterval, func(snap models.ResultsSnapshot) {
		tally, segments := agg.Aggregate(snap)
		for _, h := range agg.Headlines(tally) {
			slog.Info("headline", "party", h.Party, "seats", h.Seats, "percent", h.Percent)
		}
		for _, seg := range segments {
			slog.Info("bar segment", "party", seg.Party, "seats", seg.Seats, "width", seg.WidthPercent)
		}
		slog.Info("national tally", "counted", tally.TotalSeatsCounted, "of", cat.TotalNationalSeats)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Watching results", "api", cfg.APIBaseURL, "interval", cfg.PollInterval)
	if err := p.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("Watcher stopped", "error", err)
	}
}
