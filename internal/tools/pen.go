// Package tools implements the built-in drawing tools: pen, rect, line,
// move, and eraser. Each registers itself with the tool registry in init().
package tools

import (
	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
	"github.com/ravkin/tui-sketch/internal/registry"
)

// Pen records a freehand stroke. Points are accumulated relative to the
// press position; on release the stroke is committed through the document,
// which trims it against the active boundary.
type Pen struct {
	color  core.Color
	active bool
	path   geom.Stroke
}

// NewPen creates a pen drawing in the default stroke color.
func NewPen() *Pen {
	return &Pen{color: core.ColorBrightWhite}
}

func init() {
	registry.Register("pen", func() registry.Tool {
		return NewPen()
	})
}

// ID implements registry.Tool.
func (t *Pen) ID() string { return "pen" }

// Title implements registry.Tool.
func (t *Pen) Title() string { return "Pen" }

// SetColor changes the color used for subsequent strokes.
func (t *Pen) SetColor(c core.Color) { t.color = c }

// Press starts a new stroke anchored at p.
func (t *Pen) Press(_ *canvas.Document, p geom.Point) {
	t.active = true
	t.path = geom.Stroke{
		Origin: p,
		Points: []geom.Point{{X: 0, Y: 0}},
	}
}

// Drag appends the pointer position to the in-progress stroke.
func (t *Pen) Drag(_ *canvas.Document, p geom.Point) {
	if !t.active {
		return
	}
	rel := p.Sub(t.path.Origin)
	if last := t.path.Points[len(t.path.Points)-1]; last == rel {
		return
	}
	t.path.Points = append(t.path.Points, rel)
}

// Release commits the stroke. The document clips it against the boundary;
// a stroke entirely outside the region is silently discarded.
func (t *Pen) Release(doc *canvas.Document, p geom.Point) {
	if !t.active {
		return
	}
	t.Drag(doc, p)
	doc.AddStroke(t.path, t.color)
	t.active = false
	t.path = geom.Stroke{}
}

// Preview draws the uncommitted stroke, untrimmed; trimming happens only on
// release so the user sees exactly what they drew until they let go.
func (t *Pen) Preview(dst *core.Screen) {
	if !t.active {
		return
	}
	canvas.DrawStrokePath(dst, t.path, '•', t.color)
}
