package canvas

import (
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
)

// ShapeKind identifies the kind of a placed shape. The set is deliberately
// closed: new kinds are added here, not through an interface hierarchy.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeLine
)

// String returns a human-readable name for the kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Shape is a placed rectangle or line, defined by its two anchor points in
// canvas coordinates.
type Shape struct {
	Kind  ShapeKind
	Start geom.Point
	End   geom.Point
	Color core.Color
}

// Bounds returns the normalized axis-aligned box enclosing the shape.
func (s Shape) Bounds() geom.Box {
	return geom.BoxFromPoints(s.Start, s.End)
}

// Translate returns the shape shifted by (dx, dy).
func (s Shape) Translate(dx, dy float64) Shape {
	s.Start = s.Start.Add(geom.Point{X: dx, Y: dy})
	s.End = s.End.Add(geom.Point{X: dx, Y: dy})
	return s
}

// Stroke is a committed freehand path with its display color.
type Stroke struct {
	Path  geom.Stroke
	Color core.Color
}
