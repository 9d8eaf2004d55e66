package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/portfolio-wizard/config"
	_ "github.com/epeers/portfolio-wizard/docs"
	"github.com/epeers/portfolio-wizard/internal/cache"
	"github.com/epeers/portfolio-wizard/internal/catalog"
	"github.com/epeers/portfolio-wizard/internal/database"
	"github.com/epeers/portfolio-wizard/internal/handlers"
	"github.com/epeers/portfolio-wizard/internal/metrics"
	"github.com/epeers/portfolio-wizard/internal/repository"
	"github.com/epeers/portfolio-wizard/internal/services"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.SetupLogging(cfg); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Load reference data
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Initialize snapshot store
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer closeStore()

	metrics.Init()

	// Initialize services and router
	wizardSvc := services.NewWizardService(store, cat)
	router := handlers.NewRouter(wizardSvc)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		log.Infof("Starting server on port %s (store: %s)", cfg.Port, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		// Give outstanding requests 5 seconds to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Server stopped with error: %v", err)
		closeStore()
		os.Exit(1)
	}
	log.Info("Server exited")
}

// openStore builds the snapshot store selected by STORE_BACKEND
func openStore(ctx context.Context, cfg *config.Config) (services.SnapshotStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSnapshotRepository(db.Pool), db.Close, nil
	case config.StoreRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		return rc, func() { _ = rc.Close() }, nil
	default:
		return cache.NewMemoryCache(cfg.SessionTTL), func() {}, nil
	}
}
