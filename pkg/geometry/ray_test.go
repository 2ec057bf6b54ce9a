package geometry

import (
	"math"
	"testing"
)

func TestRayIntersectBoxHit(t *testing.T) {
	ray := Ray{Origin: NewVector3(0, 0, 10), Direction: NewVector3(0, 0, -1)}
	box := BoxAt(NewVector3(0, 0, 0), NewVector3(2, 2, 2))

	dist, ok := ray.IntersectBox(box)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(dist-9) > 1e-10 {
		t.Errorf("expected distance 9, got %v", dist)
	}
}

func TestRayIntersectBoxMiss(t *testing.T) {
	ray := Ray{Origin: NewVector3(5, 0, 10), Direction: NewVector3(0, 0, -1)}
	box := BoxAt(NewVector3(0, 0, 0), NewVector3(2, 2, 2))

	if _, ok := ray.IntersectBox(box); ok {
		t.Error("expected miss for parallel ray outside the slab")
	}
}

func TestRayIntersectBoxBehind(t *testing.T) {
	ray := Ray{Origin: NewVector3(0, 0, 10), Direction: NewVector3(0, 0, 1)}
	box := BoxAt(NewVector3(0, 0, 0), NewVector3(2, 2, 2))

	if _, ok := ray.IntersectBox(box); ok {
		t.Error("expected miss for box behind the origin")
	}
}

func TestRayIntersectBoxFromInside(t *testing.T) {
	ray := Ray{Origin: NewVector3(0, 0, 0), Direction: NewVector3(1, 0, 0)}
	box := BoxAt(NewVector3(0, 0, 0), NewVector3(4, 4, 4))

	dist, ok := ray.IntersectBox(box)
	if !ok {
		t.Fatal("expected hit from inside")
	}
	if math.Abs(dist-2) > 1e-10 {
		t.Errorf("expected exit distance 2, got %v", dist)
	}
}

func TestBoundingBoxExtend(t *testing.T) {
	b := NewBoundingBox()
	b.Extend(NewVector3(-1, 0, 2))
	b.Extend(NewVector3(3, 4, -2))

	if b.Min != NewVector3(-1, 0, -2) || b.Max != NewVector3(3, 4, 2) {
		t.Errorf("unexpected bounds %v", b)
	}
	if c := b.Center(); c != NewVector3(1, 2, 0) {
		t.Errorf("Center failed: got %v", c)
	}
}
