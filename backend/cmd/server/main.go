package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toolshelf/backend/internal/api"
	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/graph"
	"toolshelf/backend/internal/notes"
	"toolshelf/backend/pkg/config"
	"toolshelf/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP server...")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	router, cleanup, err := buildRouter(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to build router", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// buildRouter opens the catalog and the optional stores named by cfg and
// returns the router with a cleanup func releasing them.
func buildRouter(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	registry, err := catalog.Open(cfg.CatalogFile)
	if err != nil {
		return nil, cleanup, err
	}
	log.Info("Catalog loaded",
		zap.Int("tools", registry.Len()),
		zap.String("file", cfg.CatalogFile),
	)

	opts := api.Options{Registry: registry, Logger: log}

	if cfg.NotesEnabled() {
		store, err := notes.Open(ctx, cfg.NotesDBPath)
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() {
			if err := store.Close(); err != nil {
				log.Warn("Failed to close notes store", zap.Error(err))
			}
		})
		opts.Notes = store
	}

	if cfg.GraphEnabled() {
		driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
		if err != nil {
			// related tools still work from the registry
			log.Warn("Graph unavailable, ranking related tools in memory", zap.Error(err))
		} else {
			repo := graph.NewRepository(driver)
			closers = append(closers, func() { _ = repo.Close() })
			opts.Related = api.NewGraphRelated(repo, registry)
		}
	}

	router, err := api.NewRouter(opts)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return router, cleanup, nil
}
