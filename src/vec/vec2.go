package vec

import "github.com/chewxy/math32"

type Vec2 [2]float32

func Zero2() Vec2 { return Vec2{} }

func One2() Vec2 { return Vec2{1.0, 1.0} }

// Unit2 returns the basis vector along axis i. Panics if i is not 0 or 1.
func Unit2(i int) Vec2 {
	var v Vec2
	v[i] = 1.0
	return v
}

func Up2() Vec2    { return Vec2{0.0, 1.0} }
func Down2() Vec2  { return Vec2{0.0, -1.0} }
func Left2() Vec2  { return Vec2{-1.0, 0.0} }
func Right2() Vec2 { return Vec2{1.0, 0.0} }

func (a Vec2) X() float32 { return a[0] }
func (a Vec2) Y() float32 { return a[1] }

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func (a Vec2) Neg() Vec2 {
	return Vec2{-a[0], -a[1]}
}

func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a[0] * s, a[1] * s}
}

// Div divides every component by s. Dividing by zero gives the zero vector.
func (a Vec2) Div(s float32) Vec2 {
	if s == 0.0 {
		return Vec2{}
	}
	return a.Scale(1.0 / s)
}

// Mul multiplies component-wise.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a[0] * b[0], a[1] * b[1]}
}

// DivComp divides component-wise.
func (a Vec2) DivComp(b Vec2) Vec2 {
	return Vec2{a[0] / b[0], a[1] / b[1]}
}

func (a Vec2) Dot(b Vec2) float32 {
	return a[0]*b[0] + a[1]*b[1]
}

func (a Vec2) SqrLength() float32 {
	return a.Dot(a)
}

func (a Vec2) Length() float32 {
	return math32.Sqrt(a.SqrLength())
}

// LengthRobust avoids overflow by scaling by the largest component first.
func (a Vec2) LengthRobust() float32 {
	m := maxAbs(a[0], a[1])
	if m == 0.0 {
		return 0.0
	}
	return m * a.Scale(1.0/m).Length()
}

// Normalize makes a unit length and returns its previous length.
// The zero vector is left unchanged.
func (a *Vec2) Normalize() float32 {
	l := a.Length()
	if l > 0.0 {
		*a = a.Scale(1.0 / l)
	} else {
		*a = Vec2{}
	}
	return l
}

func (a *Vec2) NormalizeRobust() float32 {
	m := maxAbs(a[0], a[1])
	if m == 0.0 {
		*a = Vec2{}
		return 0.0
	}

	scaled := a.Scale(1.0 / m)
	l := scaled.Length()
	*a = scaled.Scale(1.0 / l)
	return m * l
}

func (a Vec2) Normalized() Vec2 {
	a.Normalize()
	return a
}

func (a Vec2) Distance(b Vec2) float32 {
	return a.Sub(b).Length()
}

func (a Vec2) SqrDistance(b Vec2) float32 {
	return a.Sub(b).SqrLength()
}

func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{Min(a[0], b[0]), Min(a[1], b[1])}
}

func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{Max(a[0], b[0]), Max(a[1], b[1])}
}

func (a Vec2) Approximately(b Vec2) bool {
	return math32.Abs(a[0]-b[0]) <= Epsilon && math32.Abs(a[1]-b[1]) <= Epsilon
}

func (a Vec2) Lerp(b Vec2, t float32) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

func (a Vec2) LerpClamped(b Vec2, t float32) Vec2 {
	return a.Lerp(b, Saturate(t))
}

// Reflect reflects direction a about the unit normal n.
func (a Vec2) Reflect(n Vec2) Vec2 {
	return a.Sub(n.Scale(2.0 * a.Dot(n)))
}

// Perp returns a rotated a quarter turn counter-clockwise.
func (a Vec2) Perp() Vec2 {
	return Vec2{-a[1], a[0]}
}
