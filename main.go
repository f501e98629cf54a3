package main

import (
	"context"
	"log"
	"time"

	"github.com/Bryanads/thecheckAPI/config"
	"github.com/Bryanads/thecheckAPI/di"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container := di.NewContainer(cfg)

	if err := container.SpotService.SeedSpotCatalog(); err != nil {
		log.Fatalf("Failed to seed spot catalog: %v", err)
	}

	log.Println("[MAIN] Running initial forecast refresh")
	if err := container.ForecastRefresherService.RefreshForecasts(context.Background()); err != nil {
		log.Printf("[MAIN] Initial forecast refresh failed: %v", err)
	}

	container.ForecastRefresherService.StartPeriodicJob(
		time.Duration(cfg.ForecastRefreshMinutes) * time.Minute)

	container.TheCheckHttpServer.Start()
}
