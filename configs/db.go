package configs

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GDG-MenuMate/MenuMate-BE/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)

	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.Restaurant{},
		&entity.Menu{},
		&entity.Category{},
		&entity.MenuCategory{},
	)
	if err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
