package main

import (
	"log"

	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/database"
	"github.com/gipis/website/internal/migration"
	"github.com/joho/godotenv"
)

// One-time migration of the legacy JSON document into the relational schema.
// Drops and recreates every table; never run against a live server.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log.Printf("Cargando datos de %s...", cfg.DataFile)
	doc, err := migration.LoadDocument(cfg.DataFile)
	if err != nil {
		log.Fatalf("Documento inválido: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	counts, err := migration.Run(db, doc)
	if err != nil {
		log.Fatalf("Migración fallida: %v", err)
	}

	log.Println("Migración completada exitosamente!")
	log.Printf("  - %d categorías", counts.Categories)
	log.Printf("  - %d miembros", counts.Members)
	log.Printf("  - %d secciones de investigación", counts.Sections)
	log.Printf("  - %d items de investigación", counts.Items)
	log.Printf("  - %d contenidos del sitio", counts.SiteContents)
}
