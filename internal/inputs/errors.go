package inputs

import "codeberg.org/mutker/puzzlebench/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("inputs_invalid_db_path")
	ErrInvalidKey    = errors.ErrorCode("inputs_invalid_key")

	// Schema Errors
	ErrSchemaInitFailed       = errors.ErrorCode("inputs_schema_init_failed")
	ErrSchemaValidationFailed = errors.ErrorCode("inputs_schema_validation_failed")
	ErrSchemaMigrationFailed  = errors.ErrorCode("inputs_schema_migration_failed")
	ErrTransactionFailed      = errors.ErrorCode("inputs_transaction_failed")

	// Storage Errors
	ErrStorageAccess = errors.ErrorCode("inputs_storage_access_failed")
	ErrStorageInit   = errors.ErrInitFailed
	ErrStorageClose  = errors.ErrShutdownFailed
	ErrNotFound      = errors.ErrMissingInput

	// Operation Errors
	ErrOperationTimeout = errors.ErrTimeout
)
