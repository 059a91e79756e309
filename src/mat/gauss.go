package mat

import (
	"github.com/chewxy/math32"
)

/*
GaussianElimination runs one pass of full-pivoting Gauss-Jordan elimination
over the numRows x numRows row-major matrix m, and returns its determinant.

The same pass produces:
  - the inverse of m in inverse (nil when the caller does not need it; a
    scratch buffer is used instead, the inverse is always computed),
  - the solution x of m·x = b, when b and x are both given,
  - the solution y of m·y = c, when c and y are both given, c and y being
    row-major numRows x numCols.

m, b and c are only read. inverse, x and y are overwritten.

A malformed call returns ErrInvalidArgument before anything is written.
If the largest pivot candidate left is exactly zero the matrix is singular:
inverse, x and y are zero-filled and ErrSingular is returned with a zero
determinant. There is no tolerance on that test, a nearly singular matrix
is inverted as is.
*/
func GaussianElimination(numRows int, m, inverse []float32, b, x []float32, c []float32, numCols int, y []float32) (float32, error) {
	if err := validateElimination(numRows, m, inverse, b, x, c, numCols, y); err != nil {
		return 0.0, err
	}

	n := numRows
	numElements := n * n
	wantInverse := inverse != nil
	if !wantInverse {
		inverse = make([]float32, numElements)
	}
	copy(inverse, m)

	if b != nil {
		copy(x, b)
	}

	if c != nil {
		copy(y, c)
	}

	rowIndex := make([]int, n)
	colIndex := make([]int, n)
	pivoted := make([]bool, n)

	odd := false
	determinant := float32(1.0)

	row, col := 0, 0
	for i0 := 0; i0 < n; i0++ {
		// Largest absolute entry over the rows and columns not pivoted yet.
		maxValue := float32(0.0)
		for i1 := 0; i1 < n; i1++ {
			if pivoted[i1] {
				continue
			}
			for i2 := 0; i2 < n; i2++ {
				if pivoted[i2] {
					continue
				}
				if absValue := math32.Abs(inverse[i1*n+i2]); absValue > maxValue {
					maxValue = absValue
					row = i1
					col = i2
				}
			}
		}

		if maxValue == 0.0 {
			if wantInverse {
				clear(inverse)
			}
			if b != nil {
				clear(x)
			}
			if c != nil {
				clear(y)
			}
			return 0.0, ErrSingular
		}

		pivoted[col] = true

		// Move the pivot onto the diagonal.
		if row != col {
			odd = !odd
			swapRows(inverse, n, row, col)

			if b != nil {
				x[row], x[col] = x[col], x[row]
			}

			if c != nil {
				swapRows(y, numCols, row, col)
			}
		}

		rowIndex[i0] = row
		colIndex[i0] = col

		// Scale the pivot row so the pivot is 1. The pivot slot itself ends up
		// holding 1/diagonal, which is where the inverse builds up in place.
		diagonal := inverse[col*n+col]
		determinant *= diagonal
		inv := 1.0 / diagonal
		inverse[col*n+col] = 1.0
		for i2 := 0; i2 < n; i2++ {
			inverse[col*n+i2] *= inv
		}

		if b != nil {
			x[col] *= inv
		}

		if c != nil {
			for i2 := 0; i2 < numCols; i2++ {
				y[col*numCols+i2] *= inv
			}
		}

		// Zero the pivot column in every other row.
		for i1 := 0; i1 < n; i1++ {
			if i1 == col {
				continue
			}

			save := inverse[i1*n+col]
			inverse[i1*n+col] = 0.0
			for i2 := 0; i2 < n; i2++ {
				inverse[i1*n+i2] -= inverse[col*n+i2] * save
			}

			if b != nil {
				x[i1] -= x[col] * save
			}

			if c != nil {
				for i2 := 0; i2 < numCols; i2++ {
					y[i1*numCols+i2] -= y[col*numCols+i2] * save
				}
			}
		}
	}

	if wantInverse {
		// Undo the pivot permutations, last one first, by swapping columns.
		for i1 := n - 1; i1 >= 0; i1-- {
			if rowIndex[i1] != colIndex[i1] {
				swapCols(inverse, n, rowIndex[i1], colIndex[i1])
			}
		}
	}

	if odd {
		determinant = -determinant
	}

	return determinant, nil
}

func validateElimination(numRows int, m, inverse []float32, b, x []float32, c []float32, numCols int, y []float32) error {
	if numRows <= 0 || m == nil {
		return ErrInvalidArgument
	}

	if (b != nil) != (x != nil) || (c != nil) != (y != nil) {
		return ErrInvalidArgument
	}

	if c != nil && numCols < 1 {
		return ErrInvalidArgument
	}

	numElements := numRows * numRows
	if len(m) != numElements || (inverse != nil && len(inverse) != numElements) {
		return ErrInvalidArgument
	}

	if b != nil && (len(b) != numRows || len(x) != numRows) {
		return ErrInvalidArgument
	}

	if c != nil && (len(c) != numRows*numCols || len(y) != numRows*numCols) {
		return ErrInvalidArgument
	}

	return nil
}

// swapRows exchanges rows r0 and r1 of a row-major buffer with the given width.
func swapRows(data []float32, width, r0, r1 int) {
	a := data[r0*width : (r0+1)*width]
	b := data[r1*width : (r1+1)*width]
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// swapCols exchanges columns c0 and c1 of a row-major n x n buffer.
func swapCols(data []float32, n, c0, c1 int) {
	for r := 0; r < n; r++ {
		data[r*n+c0], data[r*n+c1] = data[r*n+c1], data[r*n+c0]
	}
}

// Invert returns the inverse and determinant of the n x n row-major matrix m.
func Invert(n int, m []float32) ([]float32, float32, error) {
	if n <= 0 {
		return nil, 0.0, ErrInvalidArgument
	}

	inverse := make([]float32, n*n)
	det, err := GaussianElimination(n, m, inverse, nil, nil, nil, 0, nil)
	if err != nil {
		return nil, det, err
	}
	return inverse, det, nil
}

// Determinant returns the determinant of the n x n row-major matrix m.
// A singular or malformed matrix gives 0.
func Determinant(n int, m []float32) float32 {
	det, _ := GaussianElimination(n, m, nil, nil, nil, nil, 0, nil)
	return det
}

// Solve returns x such that m·x = b.
func Solve(n int, m, b []float32) ([]float32, error) {
	if b == nil {
		return nil, ErrInvalidArgument
	}

	x := make([]float32, len(b))
	if _, err := GaussianElimination(n, m, nil, b, x, nil, 0, nil); err != nil {
		return nil, err
	}
	return x, nil
}

// SolveMatrix returns the n x numCols matrix y such that m·y = c.
func SolveMatrix(n int, m, c []float32, numCols int) ([]float32, error) {
	if c == nil {
		return nil, ErrInvalidArgument
	}

	y := make([]float32, len(c))
	if _, err := GaussianElimination(n, m, nil, nil, nil, c, numCols, y); err != nil {
		return nil, err
	}
	return y, nil
}
