package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"DealProjector/internal/api"
	"DealProjector/internal/config"
	"DealProjector/internal/recorder"
	"DealProjector/internal/report"
	"DealProjector/internal/scenario"
	"DealProjector/internal/scheduler"
	"DealProjector/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] DealProjector starting...")

	config.LoadEnv(".env")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init cache
	var cache service.Cache
	if cfg.Cache.Backend == config.CacheRedis {
		rc := service.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
		err := rc.Ping(pingCtx)
		pingCancel()
		if err != nil {
			log.Printf("[WARN] redis cache unavailable, using memory: %v", err)
			rc.Close()
			cache = service.NewMemoryCache(cfg.Cache.TTL)
		} else {
			cache = rc
			defer rc.Close()
		}
	} else {
		cache = service.NewMemoryCache(cfg.Cache.TTL)
	}
	log.Printf("[INFO] projection cache: %s", cache.Name())

	projector := service.NewProjector(cache)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scheduler
	src := scenario.NewDirSource(cfg.Scenarios.Dir)
	log.Printf("[INFO] scenario source: %s", src.Name())

	var notifier report.Notifier = report.LogNotifier{}
	if cfg.Report.WebhookURL != "" {
		notifier = report.NewWebhookNotifier(cfg.Report.WebhookURL, cfg.Report.Proxy)
		log.Println("[INFO] batch reports go to webhook")
	}

	sched := scheduler.NewScheduler(ctx, src, projector, notifier, rec)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, projecting scenarios now")
		go sched.RunBatch()
	}

	// Init HTTP server
	limiter := rate.NewLimiter(rate.Limit(cfg.Server.RatePerSecond), cfg.Server.Burst)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewRouter(projector, rec, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Printf("[INFO] DealProjector listening on %s. Press Ctrl+C to stop.", cfg.Server.Addr)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] DealProjector stopped")
}
