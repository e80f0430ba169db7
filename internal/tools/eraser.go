package tools

import (
	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
	"github.com/ravkin/tui-sketch/internal/registry"
)

// Eraser removes the element under the pointer. Strokes take precedence
// over shapes so detail work is erasable without losing backdrops.
type Eraser struct{}

// NewEraser creates the eraser tool.
func NewEraser() *Eraser {
	return &Eraser{}
}

func init() {
	registry.Register("erase", func() registry.Tool {
		return NewEraser()
	})
}

// ID implements registry.Tool.
func (t *Eraser) ID() string { return "erase" }

// Title implements registry.Tool.
func (t *Eraser) Title() string { return "Eraser" }

// Press erases the topmost element under p.
func (t *Eraser) Press(doc *canvas.Document, p geom.Point) {
	t.eraseAt(doc, p)
}

// Drag keeps erasing while the pointer is held down.
func (t *Eraser) Drag(doc *canvas.Document, p geom.Point) {
	t.eraseAt(doc, p)
}

// Release implements registry.Tool.
func (t *Eraser) Release(doc *canvas.Document, p geom.Point) {
	t.eraseAt(doc, p)
}

// Preview draws nothing.
func (t *Eraser) Preview(_ *core.Screen) {}

func (t *Eraser) eraseAt(doc *canvas.Document, p geom.Point) {
	if i := doc.StrokeAt(p); i >= 0 {
		doc.RemoveStroke(i)
		return
	}
	if i := doc.ShapeAt(p); i >= 0 {
		doc.RemoveShape(i)
	}
}
