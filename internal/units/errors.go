package units

import "errors"

// Domain errors for quantity operations.
var (
	// ErrDimensionMismatch indicates an operation between quantities whose
	// dimensions are incompatible with the operation.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrUnknownUnit indicates a unit symbol missing from the unit table.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrBadQuantity indicates text that could not be parsed as a quantity.
	ErrBadQuantity = errors.New("units: malformed quantity")
)
