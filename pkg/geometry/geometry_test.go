package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	inside := []Point2D{
		{X: 10, Y: 20},
		{X: 110, Y: 70},
		{X: 60, Y: 45},
	}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("expected %+v inside %+v", p, r)
		}
	}

	outside := []Point2D{
		{X: 9.9, Y: 45},
		{X: 110.1, Y: 45},
		{X: 60, Y: 19.9},
		{X: 60, Y: 70.1},
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("expected %+v outside %+v", p, r)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)
	u := a.Union(b)
	want := NewRect(0, 0, 30, 15)
	if u != want {
		t.Errorf("union = %+v, want %+v", u, want)
	}
}

func TestBoundingBox(t *testing.T) {
	pts := []Point2D{
		{X: 5, Y: 8},
		{X: -3, Y: 12},
		{X: 7, Y: 2},
	}
	bb := BoundingBox(pts)
	want := NewRect(-3, 2, 10, 10)
	if bb != want {
		t.Errorf("bounding box = %+v, want %+v", bb, want)
	}

	if bb := BoundingBox(nil); bb != (Rect{}) {
		t.Errorf("empty input should yield zero rect, got %+v", bb)
	}
}

func TestAffineComposeInverse(t *testing.T) {
	tr := Translation(5, -3).Compose(Scaling(2, 4))
	p := Point2D{X: 1, Y: 1}
	q := tr.Apply(p)
	if !almostEqual(q.X, 7) || !almostEqual(q.Y, 1) {
		t.Fatalf("apply = %+v, want (7, 1)", q)
	}

	inv, ok := tr.Inverse()
	if !ok {
		t.Fatal("expected invertible transform")
	}
	back := inv.Apply(q)
	if !almostEqual(back.X, p.X) || !almostEqual(back.Y, p.Y) {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}
}

func TestAffineInverseSingular(t *testing.T) {
	if _, ok := Scaling(0, 1).Inverse(); ok {
		t.Error("expected singular transform to report non-invertible")
	}
}

func TestAffineFromPairs(t *testing.T) {
	// Known transform: scale (2, 3), translate (10, -5).
	want := Translation(10, -5).Compose(Scaling(2, 3))
	src := []Point2D{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {3, 7}}
	dst := make([]Point2D, len(src))
	for i, p := range src {
		dst[i] = want.Apply(p)
	}

	got, err := AffineFromPairs(src, dst)
	if err != nil {
		t.Fatalf("AffineFromPairs: %v", err)
	}
	for _, p := range []Point2D{{0.5, 0.5}, {-2, 4}} {
		a, b := want.Apply(p), got.Apply(p)
		if !almostEqual(a.X, b.X) || !almostEqual(a.Y, b.Y) {
			t.Errorf("fitted transform maps %+v to %+v, want %+v", p, b, a)
		}
	}
}

func TestAffineFromPairsErrors(t *testing.T) {
	if _, err := AffineFromPairs([]Point2D{{0, 0}}, nil); err == nil {
		t.Error("expected error for mismatched point counts")
	}
	if _, err := AffineFromPairs([]Point2D{{0, 0}, {1, 1}}, []Point2D{{0, 0}, {1, 1}}); err == nil {
		t.Error("expected error for fewer than 3 points")
	}
}

func TestRectMapping(t *testing.T) {
	src := NewRect(0, 0, 100, 50)
	dst := NewRect(10, 10, 200, 100)
	tr, err := RectMapping(src, dst)
	if err != nil {
		t.Fatalf("RectMapping: %v", err)
	}
	c := tr.Apply(src.Center())
	want := dst.Center()
	if !almostEqual(c.X, want.X) || !almostEqual(c.Y, want.Y) {
		t.Errorf("center maps to %+v, want %+v", c, want)
	}

	if _, err := RectMapping(Rect{}, dst); err == nil {
		t.Error("expected error for empty source rect")
	}
}
