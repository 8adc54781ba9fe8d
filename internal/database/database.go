package database

import (
	"log"

	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and runs schema auto-migration.
// The handle is returned to the caller; nothing is stored globally.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DatabaseType {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connected successfully")

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Member{},
		&models.ResearchSection{},
		&models.ResearchItem{},
		&models.ResearchLine{},
		&models.News{},
		&models.SiteContent{},
		&models.Session{},
	)
}

// DropAll removes every table of the schema. The migration script calls this
// before repopulating; rerunning the migration is safe only because it always
// starts from an empty schema.
func DropAll(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&models.Session{},
		&models.Member{},
		&models.Category{},
		&models.ResearchItem{},
		&models.ResearchSection{},
		&models.ResearchLine{},
		&models.News{},
		&models.SiteContent{},
	)
}
