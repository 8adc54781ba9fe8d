package main

import (
	"log"

	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/database"
	"github.com/gipis/website/internal/routes"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting application...")

	// Load .env if present; real env vars win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()
	log.Printf("Config loaded. Database Type: %s", cfg.DatabaseType)

	log.Println("Initializing database connection...")
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully.")

	log.Println("Setting up router...")
	router := routes.SetupRouter(cfg, db)

	addr := cfg.ServerHost + ":" + cfg.ServerPort
	log.Printf("Server starting on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
