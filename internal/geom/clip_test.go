package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestClipStrokeExitCrossing(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 1024, Height: 1024}
	s := Stroke{
		Origin: Point{500, 500},
		Points: []Point{{0, 0}, {600, 0}},
	}

	got := r.ClipStroke(s)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d: %v", len(got), got)
	}
	if !pointsNear(got[0], Point{0, 0}) {
		t.Errorf("first point = %v, expected (0, 0)", got[0])
	}
	// The segment leaves through x = 1024, which is relative x = 524.
	if !pointsNear(got[1], Point{524, 0}) {
		t.Errorf("exit point = %v, expected (524, 0)", got[1])
	}
}

func TestClipStrokeEntryCrossing(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 1024, Height: 1024}
	s := Stroke{
		Origin: Point{1100, 500},
		Points: []Point{{0, 0}, {-600, 0}},
	}

	got := r.ClipStroke(s)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d: %v", len(got), got)
	}
	// Entry through x = 1024, relative x = -76, then the inside vertex.
	if !pointsNear(got[0], Point{-76, 0}) {
		t.Errorf("entry point = %v, expected (-76, 0)", got[0])
	}
	if !pointsNear(got[1], Point{-600, 0}) {
		t.Errorf("second point = %v, expected (-600, 0)", got[1])
	}
}

func TestClipStrokeSinglePointOutside(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 1024, Height: 1024}
	s := Stroke{
		Origin: Point{2000, 2000},
		Points: []Point{{0, 0}},
	}

	if got := r.ClipStroke(s); len(got) != 0 {
		t.Errorf("expected empty output, got %v", got)
	}
}

func TestClipStrokeEmpty(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 1024, Height: 1024}

	if got := r.ClipStroke(Stroke{Origin: Point{10, 10}}); got != nil {
		t.Errorf("expected nil for empty stroke, got %v", got)
	}
}

func TestClipStrokeInteriorUnchanged(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 1024, Height: 1024}
	s := Stroke{
		Origin: Point{500, 500},
		Points: []Point{{0, 0}, {10, 5}, {20, -3}, {30, 12}, {15, 40}},
	}

	got := r.ClipStroke(s)
	if len(got) != len(s.Points) {
		t.Fatalf("expected %d points, got %d", len(s.Points), len(got))
	}
	for i := range got {
		if got[i] != s.Points[i] {
			t.Errorf("point %d changed: %v != %v", i, got[i], s.Points[i])
		}
	}
}

func TestClipStrokeAllOutside(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 100, Height: 100}
	s := Stroke{
		Origin: Point{500, 500},
		Points: []Point{{0, 0}, {10, 10}, {20, 30}},
	}

	if got := r.ClipStroke(s); len(got) != 0 {
		t.Errorf("expected empty output for fully outside stroke, got %v", got)
	}
}

// Every emitted point, converted back to absolute coordinates, must lie
// inside the region.
func TestClipStrokeOutputInsideRegion(t *testing.T) {
	r := Region{X: 100, Y: 100, Width: 200, Height: 150}
	s := Stroke{
		Origin: Point{150, 150},
		Points: []Point{
			{0, 0}, {80, 20}, {200, 40}, {120, 90}, {50, 180},
			{-20, 120}, {-120, 60}, {-30, 10}, {40, -30}, {90, -80},
		},
	}

	got := r.ClipStroke(s)
	if len(got) == 0 {
		t.Fatal("expected some output for a path weaving through the region")
	}
	for i, p := range got {
		abs := s.Origin.Add(p)
		// Allow for floating point rounding at the boundary itself.
		if abs.X < r.X-epsilon || abs.X > r.MaxX()+epsilon ||
			abs.Y < r.Y-epsilon || abs.Y > r.MaxY()+epsilon {
			t.Errorf("output point %d at %v lies outside region", i, abs)
		}
	}
}

func TestClipStrokeVertexOnBoundary(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 100, Height: 100}
	s := Stroke{
		Origin: Point{50, 50},
		Points: []Point{{0, 0}, {50, 0}, {40, 10}},
	}

	// The middle vertex sits exactly on x = 100. The closed boundary makes it
	// inside, so it is emitted verbatim with no synthetic crossing point.
	got := r.ClipStroke(s)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d: %v", len(got), got)
	}
	if got[1] != (Point{50, 0}) {
		t.Errorf("boundary vertex = %v, expected (50, 0) unchanged", got[1])
	}
}

func TestClipStrokeReentry(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 100, Height: 100}
	// Inside -> out the right edge -> back in: two crossings inserted.
	s := Stroke{
		Origin: Point{90, 50},
		Points: []Point{{0, 0}, {20, 0}, {0, 20}},
	}

	got := r.ClipStroke(s)
	if len(got) != 4 {
		t.Fatalf("expected 4 points, got %d: %v", len(got), got)
	}
	if !pointsNear(got[0], Point{0, 0}) {
		t.Errorf("point 0 = %v, expected (0, 0)", got[0])
	}
	// Exit through x = 100 at relative (10, 0).
	if !pointsNear(got[1], Point{10, 0}) {
		t.Errorf("exit point = %v, expected (10, 0)", got[1])
	}
	// Re-entry through x = 100 on the way back to (0, 20): the segment runs
	// from (110, 50) to (90, 70), crossing at (100, 60) = relative (10, 10).
	if !pointsNear(got[2], Point{10, 10}) {
		t.Errorf("entry point = %v, expected (10, 10)", got[2])
	}
	if !pointsNear(got[3], Point{0, 20}) {
		t.Errorf("final point = %v, expected (0, 20)", got[3])
	}
}

// A segment with both endpoints outside is dropped even when its chord
// passes through the region. Documented limitation, not a guarantee.
func TestClipStrokeChordCrossingDropped(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 100, Height: 100}
	s := Stroke{
		Origin: Point{-50, 50},
		Points: []Point{{0, 0}, {200, 0}},
	}

	if got := r.ClipStroke(s); len(got) != 0 {
		t.Errorf("expected chord crossing to be dropped, got %v", got)
	}
}

func TestClipStrokeRepeatedPoint(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 100, Height: 100}
	// Duplicate vertex straddling nothing: zero-length segments between an
	// inside and an identical inside point are just emitted.
	s := Stroke{
		Origin: Point{50, 50},
		Points: []Point{{0, 0}, {0, 0}, {10, 0}},
	}

	got := r.ClipStroke(s)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d: %v", len(got), got)
	}
}

func TestSegmentCrossing(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name    string
		p1, p2  Point
		want    Point
		wantHit bool
	}{
		{"exit right", Point{50, 50}, Point{150, 50}, Point{100, 50}, true},
		{"exit left", Point{50, 50}, Point{-50, 50}, Point{0, 50}, true},
		{"exit top", Point{50, 50}, Point{50, -50}, Point{50, 0}, true},
		{"exit bottom", Point{50, 50}, Point{50, 150}, Point{50, 100}, true},
		{"enter from right", Point{150, 50}, Point{50, 50}, Point{100, 50}, true},
		{"diagonal exit", Point{90, 90}, Point{110, 110}, Point{100, 100}, true},
		{"miss entirely", Point{150, 150}, Point{200, 150}, Point{}, false},
		{"zero length", Point{150, 50}, Point{150, 50}, Point{}, false},
		{"zero length inside", Point{50, 50}, Point{50, 50}, Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, hit := r.segmentCrossing(tc.p1, tc.p2)
			if hit != tc.wantHit {
				t.Fatalf("segmentCrossing(%v, %v) hit = %v, expected %v", tc.p1, tc.p2, hit, tc.wantHit)
			}
			if hit && !pointsNear(got, tc.want) {
				t.Errorf("segmentCrossing(%v, %v) = %v, expected %v", tc.p1, tc.p2, got, tc.want)
			}
		})
	}
}

func TestStrokeBounds(t *testing.T) {
	s := Stroke{
		Origin: Point{10, 10},
		Points: []Point{{0, 0}, {5, -3}, {-2, 8}},
	}

	b := s.Bounds()
	want := Box{MinX: 8, MinY: 7, MaxX: 15, MaxY: 18}
	if b != want {
		t.Errorf("Bounds() = %v, expected %v", b, want)
	}

	empty := Stroke{Origin: Point{3, 4}}
	b = empty.Bounds()
	if b.Width() != 0 || b.Height() != 0 || b.MinX != 3 || b.MinY != 4 {
		t.Errorf("empty stroke bounds = %v, expected zero box at origin", b)
	}
}
