package mat

import (
	"fmt"

	"github.com/KasumiL5x/hmath/src/vec"
	"github.com/chewxy/math32"
)

// Mat3 is a 3x3 matrix in row major order.
//
// m[3*r + c] is the element in the r'th row and c'th column.
type Mat3 [9]float32

func Identity3() Mat3 {
	return Mat3{
		1.0, 0.0, 0.0,
		0.0, 1.0, 0.0,
		0.0, 0.0, 1.0,
	}
}

func (m Mat3) At(r, c int) float32 { return m[3*r+c] }

func (m *Mat3) Set(r, c int, v float32) { m[3*r+c] = v }

func (m Mat3) Row(r int) vec.Vec3 { return vec.Vec3{m[3*r], m[3*r+1], m[3*r+2]} }

func (m Mat3) Col(c int) vec.Vec3 { return vec.Vec3{m[c], m[3+c], m[6+c]} }

func (m Mat3) Add(o Mat3) Mat3 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m Mat3) Sub(o Mat3) Mat3 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

func (m Mat3) Scale(s float32) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var n Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			for k := 0; k < 3; k++ {
				n[3*r+c] += m[3*r+k] * o[3*k+c]
			}
		}
	}
	return n
}

// MulVec returns m·v.
func (m Mat3) MulVec(v vec.Vec3) vec.Vec3 {
	return vec.Vec3{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3) Determinant() float32 {
	c00 := m[4]*m[8] - m[5]*m[7]
	c01 := m[5]*m[6] - m[3]*m[8]
	c02 := m[3]*m[7] - m[4]*m[6]
	return m[0]*c00 + m[1]*c01 + m[2]*c02
}

// Inverse returns the inverse of m and true, or the zero matrix and false
// when the determinant is exactly zero.
func (m Mat3) Inverse() (Mat3, bool) {
	// Adjugate, the transpose of the cofactor matrix.
	adj := Mat3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}

	det := m[0]*adj[0] + m[1]*adj[3] + m[2]*adj[6]
	if det == 0.0 {
		return Mat3{}, false
	}

	return adj.Scale(1.0 / det), true
}

// NormalMatrix returns the inverse-transpose of the upper-left 3x3 of m,
// which carries surface normals through m.
func NormalMatrix(m Mat4) (Mat3, bool) {
	inv, ok := m.Mat3().Inverse()
	if !ok {
		return Mat3{}, false
	}
	return inv.Transpose(), true
}

func (m Mat3) EqualApprox(o Mat3, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

// Dense copies m into a new 3x3 Dense.
func (m Mat3) Dense() *Dense {
	data := make([]float32, len(m))
	copy(data, m[:])
	return &Dense{rows: 3, cols: 3, data: data}
}

func Mat3FromDense(d *Dense) (Mat3, error) {
	var m Mat3
	if d.rows != 3 || d.cols != 3 {
		return m, fmt.Errorf("Mat3FromDense %dx%d: %w", d.rows, d.cols, ErrDimensionMismatch)
	}
	copy(m[:], d.data)
	return m, nil
}
