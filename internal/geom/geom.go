// Package geom provides the boundary-region geometry that constrains drawing
// to an axis-aligned rectangle: point and box containment, coordinate and
// drag-offset clamping, and freehand stroke clipping.
//
// Everything here is a pure function over its arguments. The region is always
// passed in explicitly (never read from shared state), inputs are never
// mutated, and no function can fail on a well-formed region. Region validity
// (Width > 0, Height > 0) is the caller's contract and is enforced once at
// the configuration boundary, not here.
package geom

// Point is a 2D coordinate in the shared canvas space.
type Point struct {
	X, Y float64
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the point translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Box is an axis-aligned bounding box. Callers derive it from a shape's
// already-resolved bounds; rotation is never handled here.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoxFromPoints returns the normalized box spanning p and q.
func BoxFromPoints(p, q Point) Box {
	b := Box{MinX: p.X, MinY: p.Y, MaxX: q.X, MaxY: q.Y}
	if b.MaxX < b.MinX {
		b.MinX, b.MaxX = b.MaxX, b.MinX
	}
	if b.MaxY < b.MinY {
		b.MinY, b.MaxY = b.MaxY, b.MinY
	}
	return b
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Translate returns the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		MinX: b.MinX + dx,
		MinY: b.MinY + dy,
		MaxX: b.MaxX + dx,
		MaxY: b.MaxY + dy,
	}
}

// Region is the axis-aligned rectangle that drawing is constrained to.
// Callers must ensure Width > 0 and Height > 0.
type Region struct {
	X, Y, Width, Height float64
}

// MaxX returns the x-coordinate of the region's right edge.
func (r Region) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the y-coordinate of the region's bottom edge.
func (r Region) MaxY() float64 {
	return r.Y + r.Height
}

// ContainsPoint reports whether p lies within the region. The region is
// closed on all four edges, so a point exactly on the boundary is inside.
func (r Region) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() &&
		p.Y >= r.Y && p.Y <= r.MaxY()
}

// Overlaps reports whether b and the region share any point.
// Touching edges count as overlap.
func (r Region) Overlaps(b Box) bool {
	return !(b.MaxX < r.X || b.MinX > r.MaxX() ||
		b.MaxY < r.Y || b.MinY > r.MaxY())
}

// ContainsBox reports whether b lies entirely within the region,
// boundary included.
func (r Region) ContainsBox(b Box) bool {
	return b.MinX >= r.X && b.MaxX <= r.MaxX() &&
		b.MinY >= r.Y && b.MaxY <= r.MaxY()
}

// ClampPoint returns p snapped into the region, per axis independently.
// Idempotent: clamping a clamped point is a no-op.
func (r Region) ClampPoint(p Point) Point {
	return Point{
		X: clamp(p.X, r.X, r.MaxX()),
		Y: clamp(p.Y, r.Y, r.MaxY()),
	}
}

// ClampOffset limits a proposed translation of b so the translated box stays
// inside the region. It returns the largest offset not exceeding (dx, dy) in
// the direction of travel. The box is assumed to fit inside the region on
// both axes; if it does not, the left/top snap wins because the left/top
// overflow check runs first. That bias is observable behavior and must be
// kept stable.
func (r Region) ClampOffset(b Box, dx, dy float64) (float64, float64) {
	if b.MinX+dx < r.X {
		dx = r.X - b.MinX
	} else if b.MaxX+dx > r.MaxX() {
		dx = r.MaxX() - b.MaxX
	}
	if b.MinY+dy < r.Y {
		dy = r.Y - b.MinY
	} else if b.MaxY+dy > r.MaxY() {
		dy = r.MaxY() - b.MaxY
	}
	return dx, dy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
