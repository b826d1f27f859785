package configs

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
)

// Connect opens the database named by the config. The handle is owned by
// the caller and injected into the route layer; there is no package-level
// pool.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dial = mysql.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return gorm.Open(dial, &gorm.Config{})
}

// Migrate creates/updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.EventPackage{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.GalleryImage{},
	)
}
