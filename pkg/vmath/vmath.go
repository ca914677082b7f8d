// Package vmath provides the scalar helpers shared by every vector
// operation in the engine: clamping, angle unit conversion and decimal
// rounding.
package vmath

import "math"

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Clamp keeps val inside [low, high]. The bounds are not validated;
// if low > high the result follows the comparison chain and is
// unspecified.
func Clamp(val, low, high float64) float64 {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}

// DegToRad converts degrees to radians.
func DegToRad(angle float64) float64 {
	return angle * degToRad
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * radToDeg
}

// Round rounds num to the given number of decimal places (default 0).
func Round(num float64, precision ...int) float64 {
	dec := 0
	if len(precision) > 0 {
		dec = precision[0]
	}
	if dec == 0 {
		return math.Round(num)
	}
	pow := math.Pow(10, float64(dec))
	return math.Round(num*pow) / pow
}
