package mat

import (
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Dense is a runtime-sized row-major float32 matrix. Element (r, c) lives at
// data[r*cols+c]. The fixed-size types convert to and from it.
type Dense struct {
	rows, cols int
	data       []float32
}

// NewDense wraps data as an r x c matrix. A nil data allocates zeros;
// otherwise len(data) must be r*c and the slice is used without copying.
func NewDense(r, c int, data []float32) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDense %dx%d: %w", r, c, ErrBadShape)
	}

	if data == nil {
		data = make([]float32, r*c)
	} else if len(data) != r*c {
		return nil, fmt.Errorf("NewDense %dx%d with %d values: %w", r, c, len(data), ErrDimensionMismatch)
	}

	return &Dense{rows: r, cols: c, data: data}, nil
}

// Identity returns the n x n identity. Panics if n <= 0.
func Identity(n int) *Dense {
	if n <= 0 {
		panic("mat: identity size must be positive")
	}

	d := &Dense{rows: n, cols: n, data: make([]float32, n*n)}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1.0
	}
	return d
}

func (d *Dense) Rows() int { return d.rows }
func (d *Dense) Cols() int { return d.cols }

// RawData returns the backing row-major slice.
func (d *Dense) RawData() []float32 { return d.data }

func (d *Dense) At(r, c int) (float32, error) {
	if r < 0 || r >= d.rows || c < 0 || c >= d.cols {
		return 0.0, fmt.Errorf("At(%d, %d) on %dx%d: %w", r, c, d.rows, d.cols, ErrOutOfRange)
	}
	return d.data[r*d.cols+c], nil
}

func (d *Dense) Set(r, c int, v float32) error {
	if r < 0 || r >= d.rows || c < 0 || c >= d.cols {
		return fmt.Errorf("Set(%d, %d) on %dx%d: %w", r, c, d.rows, d.cols, ErrOutOfRange)
	}
	d.data[r*d.cols+c] = v
	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	data := make([]float32, len(d.data))
	copy(data, d.data)
	return &Dense{rows: d.rows, cols: d.cols, data: data}
}

func (d *Dense) general() blas32.General {
	return blas32.General{Rows: d.rows, Cols: d.cols, Data: d.data, Stride: d.cols}
}

// Mul returns a·b.
func Mul(a, b *Dense) (*Dense, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("Mul %dx%d by %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	out := &Dense{rows: a.rows, cols: b.cols, data: make([]float32, a.rows*b.cols)}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1.0, a.general(), b.general(), 0.0, out.general())
	return out, nil
}

// MulVec returns d·v.
func (d *Dense) MulVec(v []float32) ([]float32, error) {
	if len(v) != d.cols {
		return nil, fmt.Errorf("MulVec %dx%d by %d: %w", d.rows, d.cols, len(v), ErrDimensionMismatch)
	}

	out := make([]float32, d.rows)
	blas32.Gemv(blas.NoTrans, 1.0, d.general(),
		blas32.Vector{N: len(v), Data: v, Inc: 1},
		0.0, blas32.Vector{N: len(out), Data: out, Inc: 1})
	return out, nil
}

func (d *Dense) Transpose() *Dense {
	t := &Dense{rows: d.cols, cols: d.rows, data: make([]float32, len(d.data))}
	for r := 0; r < d.rows; r++ {
		for c := 0; c < d.cols; c++ {
			t.data[c*d.rows+r] = d.data[r*d.cols+c]
		}
	}
	return t
}

func (d *Dense) square(op string) error {
	if d.rows != d.cols {
		return fmt.Errorf("%s on %dx%d: %w", op, d.rows, d.cols, ErrNonSquare)
	}
	return nil
}

// Inverse returns the inverse of d. d is left untouched.
func (d *Dense) Inverse() (*Dense, error) {
	if err := d.square("Inverse"); err != nil {
		return nil, err
	}

	inverse, _, err := Invert(d.rows, d.data)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	return &Dense{rows: d.rows, cols: d.cols, data: inverse}, nil
}

// Det returns the determinant of d, 0 for a singular matrix.
func (d *Dense) Det() (float32, error) {
	if err := d.square("Det"); err != nil {
		return 0.0, err
	}
	return Determinant(d.rows, d.data), nil
}

// Solve returns x such that d·x = b.
func (d *Dense) Solve(b []float32) ([]float32, error) {
	if err := d.square("Solve"); err != nil {
		return nil, err
	}

	x, err := Solve(d.rows, d.data, b)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	return x, nil
}

// SolveMatrix returns y such that d·y = c.
func (d *Dense) SolveMatrix(c *Dense) (*Dense, error) {
	if err := d.square("SolveMatrix"); err != nil {
		return nil, err
	}

	if c.rows != d.rows {
		return nil, fmt.Errorf("SolveMatrix %dx%d with %dx%d: %w", d.rows, d.cols, c.rows, c.cols, ErrDimensionMismatch)
	}

	y, err := SolveMatrix(d.rows, d.data, c.data, c.cols)
	if err != nil {
		return nil, fmt.Errorf("SolveMatrix: %w", err)
	}
	return &Dense{rows: c.rows, cols: c.cols, data: y}, nil
}

// EqualApprox reports whether d and o have the same shape and every pair of
// elements differs by at most tol.
func (d *Dense) EqualApprox(o *Dense, tol float32) bool {
	if d.rows != o.rows || d.cols != o.cols {
		return false
	}

	for i, v := range d.data {
		if math32.Abs(v-o.data[i]) > tol {
			return false
		}
	}
	return true
}

func (d *Dense) String() string {
	s := ""
	for r := 0; r < d.rows; r++ {
		s += fmt.Sprint(d.data[r*d.cols : (r+1)*d.cols])
		if r < d.rows-1 {
			s += "\n"
		}
	}
	return s
}
