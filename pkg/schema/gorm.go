package schema

import (
	"gorm.io/gorm"
)

// FlatModels returns the models owned by the load phase.
// The normalized reference tables are created by the normalize phase
// through discrete migration operations, not through GORM.
func FlatModels() []any {
	return []any{
		&Report{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the flat table.
// AutoMigrate only adds what is missing, so it is safe to run before
// every load. Note that after a normalize run it re-adds the
// denormalized columns the normalizer dropped; a subsequent load plus
// normalize cycle is the designed way to refresh the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(FlatModels()...)
}
