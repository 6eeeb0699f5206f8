package iofs

import (
	"fmt"

	"github.com/exobio/codexdb/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError creates an error for a failed directory creation.
func CreateDirError(dir string, err error) error {
	msg := "Cannot create directory <em>%s</em>"
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create dir: %w", err),
	}
}

// WriteFileError creates an error for a failed file write.
func WriteFileError(path string, err error) error {
	msg := "Cannot write file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write file: %w", err),
	}
}

// ReadFileError creates an error for a failed file read.
func ReadFileError(path string, err error) error {
	msg := "Cannot read file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read file: %w", err),
	}
}
