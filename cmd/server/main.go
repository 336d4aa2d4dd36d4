package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codyseavey/gingerdex/internal/api"
	"github.com/codyseavey/gingerdex/internal/config"
	"github.com/codyseavey/gingerdex/internal/database"
	"github.com/codyseavey/gingerdex/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize database
	if err := database.Initialize(cfg.DBPath, database.ParseLogLevel(cfg.GormLogLevel)); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if _, err := database.PruneOpenings(database.GetDB(), cfg.PackHistoryKeep); err != nil {
		log.Printf("Warning: failed to prune pack history: %v", err)
	}

	dexService, err := services.NewDexService(cfg.ViewCacheSize)
	if err != nil {
		log.Fatalf("Failed to initialize dex service: %v", err)
	}

	// On failure the engine routes answer 503 with the load error.
	if err := dexService.Load(cfg.DataPath); err != nil {
		log.Printf("Warning: %v", err)
	}

	packConfig := services.PackConfig{
		Size:          cfg.PackSize,
		RatePerMinute: cfg.PackRatePerMinute,
		Burst:         cfg.PackBurst,
	}
	if cfg.PackSeeded {
		log.Printf("Pack draws seeded with %d", cfg.PackSeed)
		packConfig.Source = rand.NewSource(cfg.PackSeed)
	}
	packService := services.NewPackService(dexService, database.GetDB(), packConfig)

	router := api.SetupRouter(api.RouterConfig{
		CORSOrigins:      cfg.CORSOrigins,
		FrontendDistPath: cfg.FrontendDistPath,
	}, dexService, packService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
