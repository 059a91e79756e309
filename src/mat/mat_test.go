package mat

import (
	"testing"

	"github.com/KasumiL5x/hmath/src/vec"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat2(t *testing.T) {
	m := Mat2{
		4.0, 7.0,
		2.0, 6.0,
	}

	assert.Equal(t, float32(10.0), m.Determinant())
	assert.Equal(t, float32(7.0), m.At(0, 1))
	assert.Equal(t, vec.Vec2{2.0, 6.0}, m.Row(1))
	assert.Equal(t, vec.Vec2{7.0, 6.0}, m.Col(1))
	assert.Equal(t, Mat2{4.0, 2.0, 7.0, 6.0}, m.Transpose())
	assert.Equal(t, vec.Vec2{11.0, 8.0}, m.MulVec(vec.Vec2{1.0, 1.0}))
	assert.Equal(t, Mat2{8.0, 14.0, 4.0, 12.0}, m.Add(m))
	assert.Equal(t, Mat2{}, m.Sub(m))
	assert.Equal(t, m.Add(m), m.Scale(2.0))

	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, m.Mul(inv).EqualApprox(Identity2(), tolerance))

	// the closed form agrees with elimination
	engine, det, err := Invert(2, m[:])
	require.NoError(t, err)
	assert.InDelta(t, m.Determinant(), det, tolerance)
	assert.InDeltaSlice(t, engine, inv[:], tolerance)

	inv, ok = Mat2{1.0, 2.0, 2.0, 4.0}.Inverse()
	assert.False(t, ok)
	assert.Equal(t, Mat2{}, inv)

	var s Mat2
	s.Set(1, 0, 3.0)
	assert.Equal(t, Mat2{0.0, 0.0, 3.0, 0.0}, s)
}

func TestMat2Rotation(t *testing.T) {
	r := Rotation2(math32.Pi / 2.0)
	v := r.MulVec(vec.Vec2{1.0, 0.0})
	assert.InDelta(t, 0.0, v[0], tolerance)
	assert.InDelta(t, 1.0, v[1], tolerance)

	for _, angle := range []float32{0.0, 0.5, -1.25, 3.0} {
		assert.InDelta(t, angle, Rotation2(angle).RotationAngle(), tolerance)
		assert.InDelta(t, 1.0, Rotation2(angle).Determinant(), tolerance)
	}
}

func TestMat3(t *testing.T) {
	m := Mat3{
		4.0, 7.0, 2.0,
		3.0, 6.0, 1.0,
		2.0, 5.0, 3.0,
	}

	assert.Equal(t, float32(9.0), m.Determinant())
	assert.Equal(t, vec.Vec3{7.0, 6.0, 5.0}, m.Col(1))
	assert.Equal(t, vec.Vec3{3.0, 6.0, 1.0}, m.Row(1))
	assert.Equal(t, vec.Vec3{13.0, 10.0, 10.0}, m.MulVec(vec.One3()))
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m, m.Mul(Identity3()))
	assert.Equal(t, m.Scale(3.0), m.Add(m).Add(m))
	assert.Equal(t, Mat3{}, m.Sub(m))

	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, m.Mul(inv).EqualApprox(Identity3(), tolerance))
	assert.True(t, inv.Mul(m).EqualApprox(Identity3(), tolerance))

	engine, det, err := Invert(3, m[:])
	require.NoError(t, err)
	assert.InDelta(t, 9.0, det, tolerance)
	assert.InDeltaSlice(t, engine, inv[:], tolerance)

	inv, ok = Mat3{
		1.0, 2.0, 3.0,
		2.0, 4.0, 6.0,
		0.0, 1.0, 1.0,
	}.Inverse()
	assert.False(t, ok)
	assert.Equal(t, Mat3{}, inv)

	var s Mat3
	s.Set(2, 1, 1.0)
	assert.Equal(t, float32(1.0), s.At(2, 1))
	assert.Equal(t, float32(1.0), s[7])
}

func TestMat4Product(t *testing.T) {
	a := Mat4{
		0.692211151, 0.624191821, -0.362254649, 0.0,
		0.0, 0.501949787, 0.864896834, 0.0,
		0.721695125, -0.598691225, 0.347455204, 0.0,
		0.249388814, -0.487314880, 0.282817066, 1.0,
	}
	b := Mat4{
		2.14450693, 0.0, 0.0, 0.0,
		0.0, 2.14450693, 0.0, 0.0,
		0.0, 0.0, -1.00019991, -1.0,
		0.0, 0.0, -0.200020000, 0.0,
	}

	want := []float32{
		1.4844516103427763, 1.3385836857838196, 0.3623270673268816, 0.362254649,
		0.0, 1.076434796733524, -0.8650697355260849, -0.864896834,
		1.5476801969097163, -1.2838974809426893, -0.3475246637698317, -0.347455204,
		0.5348160398874809, -1.0450501372521184, -0.4828936039596641, -0.282817066,
	}

	c := a.Mul(b)
	assert.InDeltaSlice(t, want, c[:], tolerance)

	// the Dense path goes through blas and must agree
	d, err := Mul(a.Dense(), b.Dense())
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, d.RawData(), tolerance)

	back, err := Mat4FromDense(d)
	require.NoError(t, err)
	assert.True(t, back.EqualApprox(c, tolerance))
}

func TestMat4Inverse(t *testing.T) {
	a := Mat4{
		0.692211151, 0.624191821, -0.362254649, 0.0,
		0.0, 0.501949787, 0.864896834, 0.0,
		0.721695125, -0.598691225, 0.347455204, 0.0,
		0.249388814, -0.487314880, 0.282817066, 1.0,
	}

	inv, ok := a.Inverse()
	require.True(t, ok)
	assert.True(t, a.Mul(inv).EqualApprox(Identity4(), tolerance), "%v", a.Mul(inv))

	// the upper 3x3 is a rotation, so the determinant is 1
	assert.InDelta(t, 1.0, a.Determinant(), 1e-4)
	assert.InDelta(t, a.Mat3().Determinant(), a.Determinant(), 1e-4)

	inv, ok = Mat4{}.Inverse()
	assert.False(t, ok)
	assert.Equal(t, Mat4{}, inv)
	assert.Equal(t, float32(0.0), Mat4{}.Determinant())

	assert.Equal(t, float32(1.0), Identity4().Determinant())
}

func TestMat4Accessors(t *testing.T) {
	var m Mat4
	m.Set(0, 3, 5.0)

	assert.Equal(t, float32(5.0), m.At(0, 3))
	assert.Equal(t, vec.Vec4{5.0, 0.0, 0.0, 0.0}, m.Col(3))
	assert.Equal(t, vec.Vec4{0.0, 0.0, 0.0, 5.0}, m.Row(0))
	assert.Equal(t, float32(5.0), m.Transpose().At(3, 0))
	assert.Equal(t, m.Scale(2.0), m.Add(m))
	assert.Equal(t, Mat4{}, m.Sub(m))
	assert.Equal(t, Identity3(), Identity4().Mat3())

	_, err := Mat4FromDense(Identity(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Mat3FromDense(Identity(4))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Mat2FromDense(Identity(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	m3, err := Mat3FromDense(Identity(3))
	require.NoError(t, err)
	assert.Equal(t, Identity3(), m3)
	m2, err := Mat2FromDense(Identity2().Dense())
	require.NoError(t, err)
	assert.Equal(t, Identity2(), m2)
	assert.True(t, Identity3().Dense().EqualApprox(Identity(3), 0.0))
}
