package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-engine/config"
	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/router"
	"github.com/yeremiapane/restaurant-engine/store"
	"github.com/yeremiapane/restaurant-engine/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	var st store.Store
	switch cfg.StoreDriver {
	case "sqlite":
		gs, err := store.NewGormStore(cfg.SQLiteDSN)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to open sqlite store: %v", err)
		}
		st = gs
		utils.InfoLogger.Printf("Using sqlite store at %s", cfg.SQLiteDSN)
	default:
		st = store.NewFileStore(cfg.DataDir)
		utils.InfoLogger.Printf("Using file store in %s", cfg.DataDir)
	}

	// A corrupt snapshot is fatal: refuse to start rather than run on
	// partial data.
	eng, err := engine.New(st, engine.WithTaxRate(cfg.TaxRate))
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load restaurant state: %v", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter(eng)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
