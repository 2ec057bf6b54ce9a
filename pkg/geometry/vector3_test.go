package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	result := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3AddScaled(t *testing.T) {
	result := NewVector3(1, 0, 1).AddScaled(NewVector3(0, 0, -1), 0.5)

	expected := NewVector3(1, 0, 0.5)
	if result != expected {
		t.Errorf("AddScaled failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Normalize(t *testing.T) {
	normalized := NewVector3(3, 4, 0).Normalize()

	if math.Abs(normalized.Length()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	if zero := (Vector3{}).Normalize(); zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", zero)
	}
}

func TestVector3Cross(t *testing.T) {
	// Forward along -Z crossed with up points to +X (right)
	result := NewVector3(0, 0, -1).Cross(Up)

	expected := NewVector3(1, 0, 0)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3LerpEndpointsExact(t *testing.T) {
	a := NewVector3(0.1, 2.3, -7.7)
	b := NewVector3(-5.17, 2.0, 2.83)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}

	mid := a.Lerp(b, 0.5)
	expected := a.Add(b).Mul(0.5)
	if mid.Distance(expected) > 1e-12 {
		t.Errorf("Lerp(0.5) = %v, want %v", mid, expected)
	}
}

func TestYawForward(t *testing.T) {
	f := YawForward(0)
	if math.Abs(f.Z-1) > 1e-12 || math.Abs(f.X) > 1e-12 {
		t.Errorf("YawForward(0) = %v, want +Z", f)
	}

	f = YawForward(math.Pi / 2)
	if math.Abs(f.X-1) > 1e-12 || math.Abs(f.Z) > 1e-12 {
		t.Errorf("YawForward(pi/2) = %v, want +X", f)
	}
}
