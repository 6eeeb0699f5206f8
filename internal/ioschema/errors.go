package ioschema

import (
	"fmt"

	"github.com/exobio/codexdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when schema creation is
// attempted without database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for a failed GORM session.
func GORMConnectionError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  "Could not open GORM session over the connection pool",
		Err:  fmt.Errorf("gorm connection failed: %w", err),
	}
}

// CreateSchemaError creates an error for a failed flat-table creation.
func CreateSchemaError(err error) error {
	msg := `Could not create the <em>codex_reports</em> table`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}
