// Package ioschema implements the SchemaManager interface for the flat
// table. This is an impure I/O package that wraps GORM AutoMigrate.
package ioschema

import (
	"context"

	"github.com/exobio/codexdb/pkg/codexdb"
	"github.com/exobio/codexdb/pkg/db"
	"github.com/exobio/codexdb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the codexdb.SchemaManager interface using GORM
// AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) codexdb.SchemaManager {
	return &manager{operator: op}
}

// Create brings the codex_reports flat table into existence using GORM
// AutoMigrate. AutoMigrate only adds missing tables and columns, so
// Create is safe to run before every load.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	return nil
}
