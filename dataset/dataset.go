// Package dataset provides the tabular abstraction that column checks are
// evaluated against: named columns, elementwise comparison into row masks,
// and mask-aligned filtering.
package dataset

import "errors"

var (
	// ErrColumnNotFound is returned when a dataset has no column with the requested name.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNotNumeric is returned when a numeric operation is applied to a text column.
	ErrNotNumeric = errors.New("column is not numeric")

	// ErrLengthMismatch is returned when a mask or column is not aligned with the dataset rows.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDuplicateColumn is returned when a frame is built with two columns of the same name.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrUnknownOp is returned when a comparison operator name is not recognized.
	ErrUnknownOp = errors.New("unknown comparison operator")
)

// Dataset is a read-only table of equally sized columns.
type Dataset interface {
	// Len returns the number of rows.
	Len() int

	// Column looks up a column by name. Implementations return an error
	// wrapping ErrColumnNotFound when the column does not exist.
	Column(name string) (*Series, error)
}
