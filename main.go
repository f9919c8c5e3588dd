package main

import (
	"log"

	"github.com/jmathewk/PromoDeck/config"
	"github.com/jmathewk/PromoDeck/repository"
	"github.com/jmathewk/PromoDeck/routes"
	"github.com/jmathewk/PromoDeck/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	db, err := config.OpenDB(cfg)
	if err != nil {
		utils.LogError("Failed to initialize database: %v", err)
		log.Fatal("Failed to initialize database:", err)
	}

	// Initialize asset store
	assets, err := utils.NewAssetStore(cfg.UploadDir)
	if err != nil {
		utils.LogError("Failed to initialize asset store: %v", err)
		log.Fatal("Failed to initialize asset store:", err)
	}

	repo := repository.NewGormOfferRepository(db, assets)

	// Set up router
	router := routes.SetupRouter(routes.Deps{
		Config: cfg,
		Repo:   repo,
		Assets: assets,
	})

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
