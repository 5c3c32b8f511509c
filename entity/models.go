package entity

import (
	"fmt"

	"gorm.io/gorm"
)

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&Product{},
		&Outlet{},
		&Order{},
		&OrderItem{},
	}
}

// indexes the list and dashboard queries use that gorm tags cannot express
// (created_at lives on the embedded gorm.Model).
var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_source ON orders(source)`,
}

// Migrate creates or updates the schema and its extra indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
