package mat

import "errors"

// Every message is prefixed with "mat: ". Callers match with errors.Is;
// context is added with fmt.Errorf("...: %w", err) at the boundary.
var (
	// ErrInvalidArgument is returned by GaussianElimination for a malformed
	// call: non-positive size, a missing or short matrix buffer, an optional
	// input without its output (or the reverse), or a bad column count.
	// No buffer has been touched when it is returned.
	ErrInvalidArgument = errors.New("mat: invalid argument")

	// ErrSingular is returned when no non-zero pivot remains. All requested
	// outputs have been zero-filled and the determinant is 0.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrBadShape is returned when rows or cols is not positive.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols() != b.Rows() or a data slice of the wrong length.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("mat: index out of range")
)
