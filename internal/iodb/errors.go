package iodb

import (
	"fmt"

	"github.com/exobio/codexdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError creates an error for a failed PostgreSQL connection.
func ConnectionError(
	host string, port int,
	database, user string,
	err error,
) error {
	msg := `Could not connect to PostgreSQL database

<em>Possible causes:</em>
  • PostgreSQL is not running
  • Database configuration is incorrect
  • Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>

  3. Review connection settings:
     Host: %s
     Port: %d
     Database: %s
     User: %s`

	vars := []any{
		host, port,
		host, user,
		host, port, database, user,
	}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError creates an error for operations attempted before
// Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError creates an error for a failed table probe.
func TableExistsCheckError(table string, err error) error {
	msg := `Could not check existence of table <em>%s</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to check table %s: %w",
			table, err),
	}
}

// ColumnExistsCheckError creates an error for a failed column probe.
func ColumnExistsCheckError(table, column string, err error) error {
	msg := `Could not check existence of column <em>%s.%s</em>`
	vars := []any{table, column}

	return &gn.Error{
		Code: errcode.DBColumnExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to check column %s.%s: %w",
			table, column, err),
	}
}

// TableCheckError creates an error for when the table probe of the
// whole public schema fails.
func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Could not verify database state",
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}
