package units

import "errors"

var (
	// ErrDimensionMismatch reports an add, subtract or cast between
	// incompatible dimension vectors.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrLossyConversion reports a cast to an integral representation that
	// cannot be carried out exactly.
	ErrLossyConversion = errors.New("units: lossy integer conversion")

	// ErrOverflow reports a rational product that left the int64 width.
	ErrOverflow = errors.New("units: rational overflow")

	// ErrScaleMismatch reports an operation that requires both operands to
	// be recorded under the exact same scale.
	ErrScaleMismatch = errors.New("units: scale mismatch")
)
