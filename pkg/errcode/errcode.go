package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBColumnExistsCheckError
	DBTableCheckError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Migration errors
	MigrationApplyError

	// Load errors
	LoadInputOpenError
	LoadSourceParseError
	LoadInsertError
	LoadTxError
	LoadCancelledError

	// Normalize errors
	NormalizeNoFlatTableError
	NormalizeTeardownError
	NormalizeCreateError
	NormalizeProbeError
	NormalizePopulateError
	NormalizeBackfillError
	NormalizeCleanupError
)
