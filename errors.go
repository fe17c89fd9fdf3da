package perfprof

import "errors"

// Fatal input errors. Compute wraps these with the offending column or row.
var (
	ErrNilTable         = errors.New("table is nil")
	ErrEmptyTable       = errors.New("table has no rows")
	ErrNoProblemColumns = errors.New("no problem columns given")
	ErrNoMeasureColumns = errors.New("no objective columns given")
	ErrNoMethodColumns  = errors.New("no method columns given")
	ErrMissingColumn    = errors.New("column not found")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrColumnLength     = errors.New("column length mismatch")
	ErrNotNumeric       = errors.New("column is not numeric")
	ErrNotBool          = errors.New("column is not boolean")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrUnknownMethod    = errors.New("unknown method")
)
