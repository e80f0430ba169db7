package tools

import (
	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
	"github.com/ravkin/tui-sketch/internal/registry"
)

type grabKind int

const (
	grabNone grabKind = iota
	grabShape
	grabStroke
)

// Move drags a shape or stroke. Per-drag translations pass through the
// document, which clamps them so the grabbed element's bounds cannot leave
// the boundary region.
type Move struct {
	grab  grabKind
	index int
	last  geom.Point
}

// NewMove creates the move tool.
func NewMove() *Move {
	return &Move{}
}

func init() {
	registry.Register("move", func() registry.Tool {
		return NewMove()
	})
}

// ID implements registry.Tool.
func (t *Move) ID() string { return "move" }

// Title implements registry.Tool.
func (t *Move) Title() string { return "Move" }

// Press grabs the topmost element under p. Shapes take precedence over
// strokes.
func (t *Move) Press(doc *canvas.Document, p geom.Point) {
	t.last = p
	if i := doc.ShapeAt(p); i >= 0 {
		t.grab = grabShape
		t.index = i
		return
	}
	if i := doc.StrokeAt(p); i >= 0 {
		t.grab = grabStroke
		t.index = i
		return
	}
	t.grab = grabNone
}

// Drag translates the grabbed element by the pointer delta, clamped by the
// document against the boundary.
func (t *Move) Drag(doc *canvas.Document, p geom.Point) {
	if t.grab == grabNone {
		return
	}
	d := p.Sub(t.last)
	switch t.grab {
	case grabShape:
		doc.MoveShape(t.index, d.X, d.Y)
	case grabStroke:
		doc.MoveStroke(t.index, d.X, d.Y)
	}
	t.last = p
}

// Release drops the grabbed element.
func (t *Move) Release(doc *canvas.Document, p geom.Point) {
	t.Drag(doc, p)
	t.grab = grabNone
}

// Preview draws nothing; the moved element is already part of the document.
func (t *Move) Preview(_ *core.Screen) {}
