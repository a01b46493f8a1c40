package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"veritas/internal/aggregate"
	"veritas/internal/annualreturn"
	"veritas/internal/audit"
	"veritas/internal/platform/config"
	"veritas/internal/platform/httpserver"
	"veritas/internal/platform/logger"
	"veritas/internal/platform/metrics"
	platformredis "veritas/internal/platform/redis"
	"veritas/internal/records"
	"veritas/internal/score"
	httptransport "veritas/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	var (
		store     records.Store
		countries records.CountrySource
		db        *sql.DB
	)
	if cfg.DatabaseURL != "" {
		var err error
		db, err = records.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := records.NewPostgres(db)
		store, countries = pg, pg
	} else {
		mem := records.NewInMemoryStore()
		orgID := records.Seed(mem)
		log.Info("no DATABASE_URL set, using seeded in-memory store", "org_id", orgID)
		store, countries = mem, mem
	}

	redisClient, err := platformredis.New(cfg.Redis())
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		countries = records.NewCountryCache(countries, redisClient.Client, config.CountryCacheTTL, log)
	}

	aggregator, err := aggregate.New(store, countries,
		aggregate.WithLogger(log),
		aggregate.WithMetrics(m),
	)
	if err != nil {
		log.Error("aggregate service init failed", "error", err)
		os.Exit(1)
	}

	static := score.NewStaticDataProvider()
	if cfg.StaticCategoryFile != "" {
		static, err = score.NewStaticDataProviderFromFile(cfg.StaticCategoryFile)
		if err != nil {
			log.Error("static category data load failed", "path", cfg.StaticCategoryFile, "error", err)
			os.Exit(1)
		}
	}

	auditor := audit.NewPublisher(audit.NewInMemoryStore())

	scores, err := score.New(aggregator, static,
		score.WithLogger(log),
		score.WithMetrics(m),
		score.WithAuditPublisher(auditor),
	)
	if err != nil {
		log.Error("score service init failed", "error", err)
		os.Exit(1)
	}

	returns, err := annualreturn.New(aggregator,
		annualreturn.WithLogger(log),
		annualreturn.WithMetrics(m),
		annualreturn.WithAuditPublisher(auditor),
	)
	if err != nil {
		log.Error("annual return service init failed", "error", err)
		os.Exit(1)
	}

	handler := httptransport.New(scores, returns, log, m)
	router := httptransport.NewRouter(handler, log, healthCheck(db, redisClient))

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting veritas", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("veritas stopped")
}

// healthCheck pings the backing stores that are actually configured.
func healthCheck(db *sql.DB, redisClient *platformredis.Client) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				return err
			}
		}
		if redisClient != nil {
			if err := redisClient.Health(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}
