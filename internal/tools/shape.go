package tools

import (
	"math"

	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
	"github.com/ravkin/tui-sketch/internal/registry"
)

// ShapeTool rubber-bands a rectangle or line between the press position and
// the current pointer position. On release the shape is committed through
// the document, which discards shapes that do not reach the boundary region.
type ShapeTool struct {
	id     string
	title  string
	kind   canvas.ShapeKind
	color  core.Color
	active bool
	start  geom.Point
	cur    geom.Point
}

// NewRect creates the rectangle tool.
func NewRect() *ShapeTool {
	return &ShapeTool{id: "rect", title: "Rectangle", kind: canvas.ShapeRect, color: core.ColorBrightGreen}
}

// NewLine creates the line tool.
func NewLine() *ShapeTool {
	return &ShapeTool{id: "line", title: "Line", kind: canvas.ShapeLine, color: core.ColorBrightYellow}
}

func init() {
	registry.Register("rect", func() registry.Tool {
		return NewRect()
	})
	registry.Register("line", func() registry.Tool {
		return NewLine()
	})
}

// ID implements registry.Tool.
func (t *ShapeTool) ID() string { return t.id }

// Title implements registry.Tool.
func (t *ShapeTool) Title() string { return t.title }

// Press anchors the shape at p.
func (t *ShapeTool) Press(_ *canvas.Document, p geom.Point) {
	t.active = true
	t.start = p
	t.cur = p
}

// Drag updates the rubber-band endpoint.
func (t *ShapeTool) Drag(_ *canvas.Document, p geom.Point) {
	if !t.active {
		return
	}
	t.cur = p
}

// Release commits the shape, subject to the document's containment gate.
func (t *ShapeTool) Release(doc *canvas.Document, p geom.Point) {
	if !t.active {
		return
	}
	t.cur = p
	doc.AddShape(canvas.Shape{
		Kind:  t.kind,
		Start: t.start,
		End:   t.cur,
		Color: t.color,
	})
	t.active = false
}

// Preview draws the rubber-band outline.
func (t *ShapeTool) Preview(dst *core.Screen) {
	if !t.active {
		return
	}
	switch t.kind {
	case canvas.ShapeRect:
		b := geom.BoxFromPoints(t.start, t.cur)
		x, y := round(b.MinX), round(b.MinY)
		dst.DrawBox(x, y, round(b.MaxX)-x+1, round(b.MaxY)-y+1, t.color)
	case canvas.ShapeLine:
		dst.DrawLine(round(t.start.X), round(t.start.Y), round(t.cur.X), round(t.cur.Y), '*', t.color)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
