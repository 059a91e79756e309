package vec

import "github.com/chewxy/math32"

type Vec3 [3]float32

func Zero3() Vec3 { return Vec3{} }

func One3() Vec3 { return Vec3{1.0, 1.0, 1.0} }

// Unit3 returns the basis vector along axis i. Panics if i is outside [0, 2].
func Unit3(i int) Vec3 {
	var v Vec3
	v[i] = 1.0
	return v
}

// Right handed, -Z is forward.
func Up() Vec3       { return Vec3{0.0, 1.0, 0.0} }
func Down() Vec3     { return Vec3{0.0, -1.0, 0.0} }
func Left() Vec3     { return Vec3{-1.0, 0.0, 0.0} }
func Right() Vec3    { return Vec3{1.0, 0.0, 0.0} }
func Forward() Vec3  { return Vec3{0.0, 0.0, -1.0} }
func Backward() Vec3 { return Vec3{0.0, 0.0, 1.0} }

func (a Vec3) X() float32 { return a[0] }
func (a Vec3) Y() float32 { return a[1] }
func (a Vec3) Z() float32 { return a[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vec3) Neg() Vec3 {
	return Vec3{-a[0], -a[1], -a[2]}
}

func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

// Div divides every component by s. Dividing by zero gives the zero vector.
func (a Vec3) Div(s float32) Vec3 {
	if s == 0.0 {
		return Vec3{}
	}
	return a.Scale(1.0 / s)
}

// Mul multiplies component-wise.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivComp divides component-wise.
func (a Vec3) DivComp(b Vec3) Vec3 {
	return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

// CrossUnit returns the normalized cross product.
func (a Vec3) CrossUnit(b Vec3) Vec3 {
	c := a.Cross(b)
	c.Normalize()
	return c
}

func (a Vec3) CrossUnitRobust(b Vec3) Vec3 {
	c := a.Cross(b)
	c.NormalizeRobust()
	return c
}

func (a Vec3) SqrLength() float32 {
	return a.Dot(a)
}

func (a Vec3) Length() float32 {
	return math32.Sqrt(a.SqrLength())
}

// LengthRobust avoids overflow by scaling by the largest component first.
func (a Vec3) LengthRobust() float32 {
	m := maxAbs(a[0], a[1], a[2])
	if m == 0.0 {
		return 0.0
	}
	return m * a.Scale(1.0/m).Length()
}

// Normalize makes a unit length and returns its previous length.
// The zero vector is left unchanged.
func (a *Vec3) Normalize() float32 {
	l := a.Length()
	if l > 0.0 {
		*a = a.Scale(1.0 / l)
	} else {
		*a = Vec3{}
	}
	return l
}

func (a *Vec3) NormalizeRobust() float32 {
	m := maxAbs(a[0], a[1], a[2])
	if m == 0.0 {
		*a = Vec3{}
		return 0.0
	}

	scaled := a.Scale(1.0 / m)
	l := scaled.Length()
	*a = scaled.Scale(1.0 / l)
	return m * l
}

func (a Vec3) Normalized() Vec3 {
	a.Normalize()
	return a
}

func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Length()
}

func (a Vec3) SqrDistance(b Vec3) float32 {
	return a.Sub(b).SqrLength()
}

func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{Min(a[0], b[0]), Min(a[1], b[1]), Min(a[2], b[2])}
}

func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{Max(a[0], b[0]), Max(a[1], b[1]), Max(a[2], b[2])}
}

func (a Vec3) Approximately(b Vec3) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > Epsilon {
			return false
		}
	}
	return true
}

func (a Vec3) Lerp(b Vec3, t float32) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

func (a Vec3) LerpClamped(b Vec3, t float32) Vec3 {
	return a.Lerp(b, Saturate(t))
}

// Reflect reflects direction a about the unit normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2.0 * a.Dot(n)))
}
