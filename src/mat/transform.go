package mat

import (
	"github.com/KasumiL5x/hmath/src/vec"
	"github.com/chewxy/math32"
)

// Right handed transform builders. Angles are in radians.

func Translation(t vec.Vec3) Mat4 {
	return Mat4{
		1.0, 0.0, 0.0, t[0],
		0.0, 1.0, 0.0, t[1],
		0.0, 0.0, 1.0, t[2],
		0.0, 0.0, 0.0, 1.0,
	}
}

func Scaling(s vec.Vec3) Mat4 {
	return Mat4{
		s[0], 0.0, 0.0, 0.0,
		0.0, s[1], 0.0, 0.0,
		0.0, 0.0, s[2], 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

func RotationX(angle float32) Mat4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Mat4{
		1.0, 0.0, 0.0, 0.0,
		0.0, c, -s, 0.0,
		0.0, s, c, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

func RotationY(angle float32) Mat4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Mat4{
		c, 0.0, s, 0.0,
		0.0, 1.0, 0.0, 0.0,
		-s, 0.0, c, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

func RotationZ(angle float32) Mat4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Mat4{
		c, -s, 0.0, 0.0,
		s, c, 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

// RotationAxis rotates counter-clockwise about axis, which need not be unit
// length. A zero axis gives the identity.
func RotationAxis(axis vec.Vec3, angle float32) Mat4 {
	if axis.Normalize() == 0.0 {
		return Identity4()
	}

	x, y, z := axis[0], axis[1], axis[2]
	s, c := math32.Sin(angle), math32.Cos(angle)
	t := 1.0 - c

	return Mat4{
		c + x*x*t, x*y*t - z*s, x*z*t + y*s, 0.0,
		y*x*t + z*s, c + y*y*t, y*z*t - x*s, 0.0,
		z*x*t - y*s, z*y*t + x*s, c + z*z*t, 0.0,
		0.0, 0.0, 0.0, 1.0,
	}
}

// Perspective maps the view frustum to OpenGL clip space, z in [-1, 1].
// fovY is the full vertical field of view.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1.0 / math32.Tan(fovY*0.5)
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0.0, 0.0, 0.0,
		0.0, f, 0.0, 0.0,
		0.0, 0.0, (far + near) * nf, 2.0 * far * near * nf,
		0.0, 0.0, -1.0, 0.0,
	}
}

// Ortho maps the box to OpenGL clip space, z in [-1, 1].
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2.0 * rl, 0.0, 0.0, -(right + left) * rl,
		0.0, 2.0 * tb, 0.0, -(top + bottom) * tb,
		0.0, 0.0, -2.0 * fn, -(far + near) * fn,
		0.0, 0.0, 0.0, 1.0,
	}
}

// LookAt returns the view matrix of a camera at eye looking at target.
// The camera looks down its local -Z with up along +Y.
func LookAt(eye, target, up vec.Vec3) Mat4 {
	f := target.Sub(eye).Normalized()
	s := f.CrossUnit(up)
	u := s.Cross(f)

	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0.0, 0.0, 0.0, 1.0,
	}
}
