package ioload

import (
	"fmt"

	"github.com/exobio/codexdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when load is attempted
// without database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Load attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// InputOpenError creates an error for an unreadable input document.
func InputOpenError(path string, err error) error {
	msg := `Cannot open codex document <em>%s</em>

<em>How to fix:</em>
  1. Check the path in config.yaml (load.input_file)
     or pass it with <em>--input</em>
  2. Verify the file exists and is readable`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.LoadInputOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open input: %w", err),
	}
}

// SourceParseError creates an error for malformed JSON structure in
// the input document. Structural damage is fatal; there is no way to
// tell how much of the document is affected.
func SourceParseError(err error) error {
	msg := `Codex document is not valid JSON

The document must be an array of objects or a stream of
concatenated objects.`

	return &gn.Error{
		Code: errcode.LoadSourceParseError,
		Msg:  msg,
		Err:  fmt.Errorf("malformed codex document: %w", err),
	}
}

// InsertError creates an error for a failed row insert. One failing
// row aborts the whole load; partial unverified loads are worse than a
// clean abort and re-run.
func InsertError(err error) error {
	msg := `Failed to write a report row

The load was aborted and the current batch rolled back.
Fix the cause and re-run <em>codexdb load</em>.`

	return &gn.Error{
		Code: errcode.LoadInsertError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to insert report: %w", err),
	}
}

// TxError creates an error for a failed batch transaction.
func TxError(err error) error {
	return &gn.Error{
		Code: errcode.LoadTxError,
		Msg:  "Failed to run a batch transaction",
		Err:  fmt.Errorf("batch transaction failed: %w", err),
	}
}

// CancelledError creates an error for when the load is cancelled.
func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  "Load operation was cancelled",
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}
