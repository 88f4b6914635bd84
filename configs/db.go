package configs

import (
	"log"

	"github.com/TanthaiP001/spprosupply/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
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

	// TranslateError เพื่อให้ unique constraint กลายเป็น gorm.ErrDuplicatedKey
	gcfg := &gorm.Config{TranslateError: true}

	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gcfg)
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), gcfg)
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Banner{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
