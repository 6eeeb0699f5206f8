package ionormalize

import (
	"fmt"

	"github.com/exobio/codexdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when normalization is attempted
// without a database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Normalization attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// NoFlatTableError creates an error for a database that was never
// loaded.
func NoFlatTableError() error {
	msg := `The <em>codex_reports</em> table does not exist

Run <em>codexdb load</em> first to populate the flat table.`

	return &gn.Error{
		Code: errcode.NormalizeNoFlatTableError,
		Msg:  msg,
		Err:  fmt.Errorf("flat table does not exist"),
	}
}

// TeardownError creates an error for a failed teardown stage.
func TeardownError(err error) error {
	return &gn.Error{
		Code: errcode.NormalizeTeardownError,
		Msg:  "Failed to remove prior normalization artifacts",
		Err:  fmt.Errorf("teardown stage failed: %w", err),
	}
}

// CreateError creates an error for a failed reference-table creation
// stage.
func CreateError(err error) error {
	return &gn.Error{
		Code: errcode.NormalizeCreateError,
		Msg:  "Failed to create reference tables",
		Err:  fmt.Errorf("create stage failed: %w", err),
	}
}

// ProbeError creates an error for a failed legacy-column probe. Only a
// failing introspection query is an error; column absence is a handled
// condition.
func ProbeError(column string, err error) error {
	return &gn.Error{
		Code: errcode.NormalizeProbeError,
		Msg:  "Failed to probe column <em>%s</em> of the flat table",
		Vars: []any{column},
		Err:  fmt.Errorf("cannot probe column %q: %w", column, err),
	}
}

// PopulateError creates an error for a failed reference-table insert.
func PopulateError(desc string, err error) error {
	return &gn.Error{
		Code: errcode.NormalizePopulateError,
		Msg:  "Failed to %s",
		Vars: []any{desc},
		Err:  fmt.Errorf("%s failed: %w", desc, err),
	}
}

// BackfillError creates an error for a failed reference backfill.
func BackfillError(desc string, err error) error {
	return &gn.Error{
		Code: errcode.NormalizeBackfillError,
		Msg:  "Failed to %s",
		Vars: []any{desc},
		Err:  fmt.Errorf("%s failed: %w", desc, err),
	}
}

// CleanupError creates an error for a failed column cleanup stage.
func CleanupError(err error) error {
	return &gn.Error{
		Code: errcode.NormalizeCleanupError,
		Msg:  "Failed to drop superseded columns",
		Err:  fmt.Errorf("cleanup stage failed: %w", err),
	}
}
