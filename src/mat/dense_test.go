package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense(t *testing.T) {
	tests := []struct {
		name    string
		r, c    int
		data    []float32
		wantErr error
	}{
		{"zeros", 2, 3, nil, nil},
		{"wrapped", 2, 2, []float32{1.0, 2.0, 3.0, 4.0}, nil},
		{"zero rows", 0, 3, nil, ErrBadShape},
		{"negative cols", 2, -1, nil, ErrBadShape},
		{"short data", 2, 2, []float32{1.0, 2.0, 3.0}, ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDense(tc.r, tc.c, tc.data)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, d)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.r, d.Rows())
			assert.Equal(t, tc.c, d.Cols())
			assert.Len(t, d.RawData(), tc.r*tc.c)
		})
	}
}

func TestDenseAccessors(t *testing.T) {
	d := mustDense(t, 2, 3, nil)

	require.NoError(t, d.Set(1, 2, 5.0))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(5.0), v)
	assert.Equal(t, float32(5.0), d.RawData()[5])

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 3, 1.0), ErrOutOfRange)

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 9.0))
	v, _ = d.At(0, 0)
	assert.Equal(t, float32(0.0), v)

	assert.Panics(t, func() { Identity(0) })
}

func TestDenseMul(t *testing.T) {
	a := mustDense(t, 2, 3, []float32{
		1.0, 2.0, 3.0,
		4.0, 5.0, 6.0,
	})
	b := mustDense(t, 3, 2, []float32{
		7.0, 8.0,
		9.0, 10.0,
		11.0, 12.0,
	})

	p, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 2, p.Cols())
	assert.Equal(t, []float32{58.0, 64.0, 139.0, 154.0}, p.RawData())

	_, err = Mul(a, a)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	v, err := a.MulVec([]float32{1.0, 0.0, -1.0})
	require.NoError(t, err)
	assert.Equal(t, []float32{-2.0, -2.0}, v)

	_, err = a.MulVec([]float32{1.0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	tr := a.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, []float32{1.0, 4.0, 2.0, 5.0, 3.0, 6.0}, tr.RawData())
}

func TestDenseNonSquare(t *testing.T) {
	d := mustDense(t, 2, 3, nil)

	_, err := d.Inverse()
	assert.ErrorIs(t, err, ErrNonSquare)
	_, err = d.Det()
	assert.ErrorIs(t, err, ErrNonSquare)
	_, err = d.Solve([]float32{1.0, 2.0})
	assert.ErrorIs(t, err, ErrNonSquare)
	_, err = d.SolveMatrix(d)
	assert.ErrorIs(t, err, ErrNonSquare)
}

func TestDenseInverse(t *testing.T) {
	d := mustDense(t, 2, 2, []float32{
		2.0, 0.0,
		0.0, 2.0,
	})

	inv, err := d.Inverse()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.0, 0.0, 0.5}, inv.RawData())
	assert.Equal(t, []float32{2.0, 0.0, 0.0, 2.0}, d.RawData())

	det, err := d.Det()
	require.NoError(t, err)
	assert.Equal(t, float32(4.0), det)

	singular := mustDense(t, 2, 2, []float32{
		1.0, 2.0,
		2.0, 4.0,
	})
	_, err = singular.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	det, err = singular.Det()
	require.NoError(t, err)
	assert.Equal(t, float32(0.0), det)
	_, err = singular.Solve([]float32{1.0, 1.0})
	assert.ErrorIs(t, err, ErrSingular)
}

func TestDenseSolve(t *testing.T) {
	d := mustDense(t, 2, 2, []float32{
		1.0, 0.0,
		0.0, 2.0,
	})

	x, err := d.Solve([]float32{4.0, 6.0})
	require.NoError(t, err)
	assert.Equal(t, []float32{4.0, 3.0}, x)

	_, err = d.Solve([]float32{4.0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	c := mustDense(t, 2, 2, []float32{
		4.0, 1.0,
		6.0, 2.0,
	})
	y, err := d.SolveMatrix(c)
	require.NoError(t, err)
	assert.Equal(t, []float32{4.0, 1.0, 3.0, 1.0}, y.RawData())

	_, err = d.SolveMatrix(mustDense(t, 3, 1, nil))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestDenseString(t *testing.T) {
	d := mustDense(t, 2, 2, []float32{1.0, 2.0, 3.0, 4.0})
	assert.Equal(t, "[1 2]\n[3 4]", d.String())
	assert.True(t, d.EqualApprox(d.Clone(), 0.0))
	assert.False(t, d.EqualApprox(Identity(2), 0.5))
	assert.False(t, d.EqualApprox(Identity(3), 100.0))
}
