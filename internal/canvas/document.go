// Package canvas holds the drawing document: committed strokes and shapes
// plus the optional boundary region that constrains them. It is pure logic
// with no Bubble Tea dependency; the platform layer owns input and display.
package canvas

import (
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
)

// hitTolerance is how close (in cells, per axis) a pointer position must be
// to a stroke point or shape boundary to count as a hit.
const hitTolerance = 0.75

// Document is a sketch: ordered strokes and shapes, optionally constrained
// to a boundary region. The region itself is owned by configuration; the
// document only holds the active value and never mutates it.
type Document struct {
	Name    string
	Strokes []Stroke
	Shapes  []Shape

	// Boundary is the active constraint region, nil when drawing is
	// unconstrained. Geometry calls always receive it explicitly.
	Boundary *geom.Region
}

// New creates an empty document.
func New(name string) *Document {
	return &Document{Name: name}
}

// SetBoundary activates the given constraint region.
func (d *Document) SetBoundary(r geom.Region) {
	d.Boundary = &r
}

// ClearBoundary removes the constraint region.
func (d *Document) ClearBoundary() {
	d.Boundary = nil
}

// AddStroke commits a freehand path. With an active boundary the path is
// trimmed first, so only the portions inside the region are stored, with
// exact crossing points inserted at the edges. Returns false if nothing
// survives trimming (the stroke is discarded).
func (d *Document) AddStroke(path geom.Stroke, c core.Color) bool {
	if d.Boundary != nil {
		pts := d.Boundary.ClipStroke(path)
		if len(pts) == 0 {
			return false
		}
		path = geom.Stroke{Origin: path.Origin, Points: pts}
	}
	if len(path.Points) == 0 {
		return false
	}
	d.Strokes = append(d.Strokes, Stroke{Path: path, Color: c})
	return true
}

// AddShape commits a shape. With an active boundary the shape is kept only
// if its bounds overlap the region (touching edges count); otherwise it is
// discarded and false is returned.
func (d *Document) AddShape(s Shape) bool {
	if d.Boundary != nil && !d.Boundary.Overlaps(s.Bounds()) {
		return false
	}
	d.Shapes = append(d.Shapes, s)
	return true
}

// MoveShape translates the i-th shape by at most (dx, dy). With an active
// boundary the offset is clamped so the shape's bounds stay inside the
// region. Returns the offset actually applied.
func (d *Document) MoveShape(i int, dx, dy float64) (float64, float64) {
	if i < 0 || i >= len(d.Shapes) {
		return 0, 0
	}
	if d.Boundary != nil {
		dx, dy = d.Boundary.ClampOffset(d.Shapes[i].Bounds(), dx, dy)
	}
	d.Shapes[i] = d.Shapes[i].Translate(dx, dy)
	return dx, dy
}

// MoveStroke translates the i-th stroke by at most (dx, dy), clamped against
// the boundary through the stroke's bounding box. Returns the offset
// actually applied.
func (d *Document) MoveStroke(i int, dx, dy float64) (float64, float64) {
	if i < 0 || i >= len(d.Strokes) {
		return 0, 0
	}
	if d.Boundary != nil {
		dx, dy = d.Boundary.ClampOffset(d.Strokes[i].Path.Bounds(), dx, dy)
	}
	d.Strokes[i].Path.Origin = d.Strokes[i].Path.Origin.Add(geom.Point{X: dx, Y: dy})
	return dx, dy
}

// RemoveShape deletes the i-th shape.
func (d *Document) RemoveShape(i int) {
	if i < 0 || i >= len(d.Shapes) {
		return
	}
	d.Shapes = append(d.Shapes[:i], d.Shapes[i+1:]...)
}

// RemoveStroke deletes the i-th stroke.
func (d *Document) RemoveStroke(i int) {
	if i < 0 || i >= len(d.Strokes) {
		return
	}
	d.Strokes = append(d.Strokes[:i], d.Strokes[i+1:]...)
}

// ShapeAt returns the index of the topmost shape whose bounds (expanded by
// the hit tolerance) contain p, or -1.
func (d *Document) ShapeAt(p geom.Point) int {
	for i := len(d.Shapes) - 1; i >= 0; i-- {
		b := d.Shapes[i].Bounds()
		if p.X >= b.MinX-hitTolerance && p.X <= b.MaxX+hitTolerance &&
			p.Y >= b.MinY-hitTolerance && p.Y <= b.MaxY+hitTolerance {
			return i
		}
	}
	return -1
}

// StrokeAt returns the index of the topmost stroke with a point within the
// hit tolerance of p, or -1.
func (d *Document) StrokeAt(p geom.Point) int {
	for i := len(d.Strokes) - 1; i >= 0; i-- {
		path := d.Strokes[i].Path
		for j := range path.Points {
			abs := path.Absolute(j)
			if abs.X >= p.X-hitTolerance && abs.X <= p.X+hitTolerance &&
				abs.Y >= p.Y-hitTolerance && abs.Y <= p.Y+hitTolerance {
				return i
			}
		}
	}
	return -1
}
