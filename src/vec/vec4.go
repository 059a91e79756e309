package vec

import "github.com/chewxy/math32"

type Vec4 [4]float32

func Zero4() Vec4 { return Vec4{} }

func One4() Vec4 { return Vec4{1.0, 1.0, 1.0, 1.0} }

// Unit4 returns the basis vector along axis i. Panics if i is outside [0, 3].
func Unit4(i int) Vec4 {
	var v Vec4
	v[i] = 1.0
	return v
}

// Point lifts p to homogeneous coordinates with w = 1.
func Point(p Vec3) Vec4 {
	return Vec4{p[0], p[1], p[2], 1.0}
}

// Direction lifts d to homogeneous coordinates with w = 0.
func Direction(d Vec3) Vec4 {
	return Vec4{d[0], d[1], d[2], 0.0}
}

func (a Vec4) X() float32 { return a[0] }
func (a Vec4) Y() float32 { return a[1] }
func (a Vec4) Z() float32 { return a[2] }
func (a Vec4) W() float32 { return a[3] }

// Vec3 drops w without dividing.
func (a Vec4) Vec3() Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a Vec4) Neg() Vec4 {
	return Vec4{-a[0], -a[1], -a[2], -a[3]}
}

func (a Vec4) Scale(s float32) Vec4 {
	return Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// Div divides every component by s. Dividing by zero gives the zero vector.
func (a Vec4) Div(s float32) Vec4 {
	if s == 0.0 {
		return Vec4{}
	}
	return a.Scale(1.0 / s)
}

func (a Vec4) Mul(b Vec4) Vec4 {
	return Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a Vec4) DivComp(b Vec4) Vec4 {
	return Vec4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func (a Vec4) Dot(b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (a Vec4) SqrLength() float32 {
	return a.Dot(a)
}

func (a Vec4) Length() float32 {
	return math32.Sqrt(a.SqrLength())
}

func (a Vec4) LengthRobust() float32 {
	m := maxAbs(a[0], a[1], a[2], a[3])
	if m == 0.0 {
		return 0.0
	}
	return m * a.Scale(1.0/m).Length()
}

// Normalize makes a unit length and returns its previous length.
func (a *Vec4) Normalize() float32 {
	l := a.Length()
	if l > 0.0 {
		*a = a.Scale(1.0 / l)
	} else {
		*a = Vec4{}
	}
	return l
}

func (a *Vec4) NormalizeRobust() float32 {
	m := maxAbs(a[0], a[1], a[2], a[3])
	if m == 0.0 {
		*a = Vec4{}
		return 0.0
	}

	scaled := a.Scale(1.0 / m)
	l := scaled.Length()
	*a = scaled.Scale(1.0 / l)
	return m * l
}

func (a Vec4) Normalized() Vec4 {
	a.Normalize()
	return a
}

func (a Vec4) Distance(b Vec4) float32 {
	return a.Sub(b).Length()
}

func (a Vec4) SqrDistance(b Vec4) float32 {
	return a.Sub(b).SqrLength()
}

func (a Vec4) Min(b Vec4) Vec4 {
	return Vec4{Min(a[0], b[0]), Min(a[1], b[1]), Min(a[2], b[2]), Min(a[3], b[3])}
}

func (a Vec4) Max(b Vec4) Vec4 {
	return Vec4{Max(a[0], b[0]), Max(a[1], b[1]), Max(a[2], b[2]), Max(a[3], b[3])}
}

func (a Vec4) Approximately(b Vec4) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > Epsilon {
			return false
		}
	}
	return true
}

func (a Vec4) Lerp(b Vec4, t float32) Vec4 {
	return a.Add(b.Sub(a).Scale(t))
}

func (a Vec4) LerpClamped(b Vec4, t float32) Vec4 {
	return a.Lerp(b, Saturate(t))
}

func (a Vec4) Reflect(n Vec4) Vec4 {
	return a.Sub(n.Scale(2.0 * a.Dot(n)))
}
