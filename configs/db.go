package configs

import (
	"fmt"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase opens the embedded sqlite file and migrates the four core
// tables. The returned handle is owned by the caller; there is no package
// level connection.
func OpenDatabase(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", source, err)
	}

	if err := db.AutoMigrate(
		&entity.Category{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
