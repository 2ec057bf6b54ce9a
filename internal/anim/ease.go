package anim

import "math"

// EaseFunc maps linear progress in [0,1] to eased progress in [0,1]
type EaseFunc func(t float64) float64

// Linear leaves progress unchanged
func Linear(t float64) float64 { return t }

// EaseInOutCubic accelerates until the midpoint and decelerates after it
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInOutQuad is the gentler quadratic variant used by panel scaling
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Clamp01 limits t to [0,1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
