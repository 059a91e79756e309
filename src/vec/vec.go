/*
A simple math vector library for 2, 3 and 4 component float32 vectors,
plus the scalar helpers the vector and matrix code leans on.
*/

package vec

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const (
	Epsilon = float32(1e-7)

	// Multiply to convert degrees to radians.
	DegToRad = float32(0.0174532924)

	// Multiply to convert radians to degrees.
	RadToDeg = float32(57.29578)
)

func Radians(degrees float32) float32 {
	return degrees * DegToRad
}

func Degrees(radians float32) float32 {
	return radians * RadToDeg
}

func Clamp[T constraints.Ordered](v, min, max T) T {
	if v > max {
		return max
	}

	if v < min {
		return min
	}

	return v
}

// Saturate clamps v to [0, 1].
func Saturate[T ~float32 | ~float64](v T) T {
	return Clamp(v, T(0.0), T(1.0))
}

func Lerp[T ~float32 | ~float64](a, b, t T) T {
	return a + (b-a)*t
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min3[T constraints.Ordered](a, b, c T) T {
	return Min(a, Min(b, c))
}

func Max3[T constraints.Ordered](a, b, c T) T {
	return Max(a, Max(b, c))
}

func MinN[T constraints.Ordered](nums ...T) T {
	if len(nums) == 0 {
		panic("MinN requires at least one argument")
	}

	minValue := nums[0]
	for _, num := range nums[1:] {
		if num < minValue {
			minValue = num
		}
	}

	return minValue
}

func MaxN[T constraints.Ordered](nums ...T) T {
	if len(nums) == 0 {
		panic("MaxN requires at least one argument")
	}

	maxValue := nums[0]
	for _, num := range nums[1:] {
		if num > maxValue {
			maxValue = num
		}
	}

	return maxValue
}

func Sign(a float32) float32 {
	if a > 0.0 {
		return 1.0
	}

	if a < 0.0 {
		return -1.0
	}

	return 0.0
}

/*
WrapAngle wraps angle into [min, max). Works for angles any number of
periods away from the range, on either side.
*/
func WrapAngle(angle, min, max float32) float32 {
	span := max - min
	return math32.Mod(math32.Mod(angle-min, span)+span, span) + min
}

// largest absolute component, used by the robust length functions
func maxAbs(values ...float32) float32 {
	m := float32(0.0)
	for _, v := range values {
		m = Max(m, math32.Abs(v))
	}
	return m
}
