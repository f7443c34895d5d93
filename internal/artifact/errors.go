package artifact

import "errors"

// Load-time failures.
var (
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
	ErrSchemaVersion     = errors.New("artifact schema version mismatch")
	ErrCorrupt           = errors.New("corrupt artifact")
	ErrIncompatible      = errors.New("artifact features do not match input schema")
)

// Predict-time failures.
var (
	ErrMissingColumn    = errors.New("missing column")
	ErrUnexpectedColumn = errors.New("unexpected column")
	ErrColumnType       = errors.New("column type mismatch")
)

// IsRowError reports whether err was caused by a malformed feature row.
func IsRowError(err error) bool {
	return errors.Is(err, ErrMissingColumn) || errors.Is(err, ErrUnexpectedColumn) || errors.Is(err, ErrColumnType)
}
