package mat

import (
	"fmt"

	"github.com/KasumiL5x/hmath/src/vec"
	"github.com/chewxy/math32"
)

// Mat2 is a 2x2 matrix in row major order.
//
// m[2*r + c] is the element in the r'th row and c'th column.
type Mat2 [4]float32

func Identity2() Mat2 { return Mat2{1.0, 0.0, 0.0, 1.0} }

// Rotation2 returns the counter-clockwise rotation by angle radians.
func Rotation2(angle float32) Mat2 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Mat2{
		c, -s,
		s, c,
	}
}

// RotationAngle recovers the angle of a rotation built by Rotation2.
func (m Mat2) RotationAngle() float32 {
	return math32.Atan2(m[2], m[0])
}

func (m Mat2) At(r, c int) float32 { return m[2*r+c] }

func (m *Mat2) Set(r, c int, v float32) { m[2*r+c] = v }

func (m Mat2) Row(r int) vec.Vec2 { return vec.Vec2{m[2*r], m[2*r+1]} }

func (m Mat2) Col(c int) vec.Vec2 { return vec.Vec2{m[c], m[2+c]} }

func (m Mat2) Add(o Mat2) Mat2 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m Mat2) Sub(o Mat2) Mat2 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

func (m Mat2) Scale(s float32) Mat2 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns m·o.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

// MulVec returns m·v.
func (m Mat2) MulVec(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{m[0]*v[0] + m[1]*v[1], m[2]*v[0] + m[3]*v[1]}
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{m[0], m[2], m[1], m[3]}
}

func (m Mat2) Determinant() float32 {
	return m[0]*m[3] - m[1]*m[2]
}

// Inverse returns the inverse of m and true, or the zero matrix and false
// when the determinant is exactly zero.
func (m Mat2) Inverse() (Mat2, bool) {
	det := m.Determinant()
	if det == 0.0 {
		return Mat2{}, false
	}

	inv := 1.0 / det
	return Mat2{
		m[3] * inv, -m[1] * inv,
		-m[2] * inv, m[0] * inv,
	}, true
}

func (m Mat2) EqualApprox(o Mat2, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// Dense copies m into a new 2x2 Dense.
func (m Mat2) Dense() *Dense {
	data := make([]float32, len(m))
	copy(data, m[:])
	return &Dense{rows: 2, cols: 2, data: data}
}

func Mat2FromDense(d *Dense) (Mat2, error) {
	var m Mat2
	if d.rows != 2 || d.cols != 2 {
		return m, fmt.Errorf("Mat2FromDense %dx%d: %w", d.rows, d.cols, ErrDimensionMismatch)
	}
	copy(m[:], d.data)
	return m, nil
}
