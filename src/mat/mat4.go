package mat

import (
	"fmt"

	"github.com/KasumiL5x/hmath/src/vec"
	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix in row major order.
//
// m[4*r + c] is the element in the r'th row and c'th column. Vectors are
// columns, so m.MulVec(v) is m·v and the translation sits in column 3.
type Mat4 [16]float32

func Identity4() Mat4 {
	return Mat4{
		1.0, 0.0, 0.0, 0.0,
		0.0, 1.0, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

func (m Mat4) At(r, c int) float32 { return m[4*r+c] }

func (m *Mat4) Set(r, c int, v float32) { m[4*r+c] = v }

func (m Mat4) Row(r int) vec.Vec4 { return vec.Vec4{m[4*r], m[4*r+1], m[4*r+2], m[4*r+3]} }

func (m Mat4) Col(c int) vec.Vec4 { return vec.Vec4{m[c], m[4+c], m[8+c], m[12+c]} }

func (m Mat4) Add(o Mat4) Mat4 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m Mat4) Sub(o Mat4) Mat4 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

func (m Mat4) Scale(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns m·o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var n Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for k := 0; k < 4; k++ {
				n[4*r+c] += m[4*r+k] * o[4*k+c]
			}
		}
	}
	return n
}

// MulVec returns m·v.
func (m Mat4) MulVec(v vec.Vec4) vec.Vec4 {
	return vec.Vec4{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v), m.Row(3).Dot(v)}
}

// TransformPoint applies m to p with w = 1, dividing by the resulting w
// when it is neither 0 nor 1.
func (m Mat4) TransformPoint(p vec.Vec3) vec.Vec3 {
	h := m.MulVec(vec.Point(p))
	if h[3] != 0.0 && h[3] != 1.0 {
		return h.Vec3().Scale(1.0 / h[3])
	}
	return h.Vec3()
}

// TransformDirection applies m to d with w = 0, so translation is ignored.
func (m Mat4) TransformDirection(d vec.Vec3) vec.Vec3 {
	return m.MulVec(vec.Direction(d)).Vec3()
}

func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[4*c+r] = m[4*r+c]
		}
	}
	return t
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Determinant is computed by Gaussian elimination.
func (m Mat4) Determinant() float32 {
	return Determinant(4, m[:])
}

// Inverse returns the inverse of m and true, or the zero matrix and false
// when m is singular.
func (m Mat4) Inverse() (Mat4, bool) {
	var inv Mat4
	if _, err := GaussianElimination(4, m[:], inv[:], nil, nil, nil, 0, nil); err != nil {
		return Mat4{}, false
	}
	return inv, true
}

func (m Mat4) EqualApprox(o Mat4, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// Dense copies m into a new 4x4 Dense.
func (m Mat4) Dense() *Dense {
	data := make([]float32, len(m))
	copy(data, m[:])
	return &Dense{rows: 4, cols: 4, data: data}
}

func Mat4FromDense(d *Dense) (Mat4, error) {
	var m Mat4
	if d.rows != 4 || d.cols != 4 {
		return m, fmt.Errorf("Mat4FromDense %dx%d: %w", d.rows, d.cols, ErrDimensionMismatch)
	}
	copy(m[:], d.data)
	return m, nil
}

func (m Mat4) String() string {
	return fmt.Sprintf("%v\n%v\n%v\n%v", m.Row(0), m.Row(1), m.Row(2), m.Row(3))
}
