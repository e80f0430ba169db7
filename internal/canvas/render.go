package canvas

import (
	"math"

	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
)

// Style controls how the boundary collaborator draws the region.
type Style struct {
	Outline core.Color // Boundary frame color
	Tint    core.Color // Exterior tint color
}

// DefaultStyle returns the style used when configuration supplies none.
func DefaultStyle() Style {
	return Style{
		Outline: core.ColorCyan,
		Tint:    core.ColorGray,
	}
}

// Render draws the document into the screen buffer: exterior tint and
// boundary frame first, then shapes, then strokes in commit order.
func (d *Document) Render(dst *core.Screen, style Style) {
	if d.Boundary != nil {
		renderBoundary(dst, *d.Boundary, style)
	}
	for _, s := range d.Shapes {
		renderShape(dst, s)
	}
	for _, s := range d.Strokes {
		DrawStrokePath(dst, s.Path, '•', s.Color)
	}
}

// renderBoundary tints everything outside the region and frames the region
// itself. The frame sits one cell outside the closed region so cells exactly
// on the boundary remain drawable.
func renderBoundary(dst *core.Screen, r geom.Region, style Style) {
	minX, minY := cell(r.X), cell(r.Y)
	maxX, maxY := cell(r.MaxX()), cell(r.MaxY())

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if x < minX || x > maxX || y < minY || y > maxY {
				dst.SetCell(x, y, '·', style.Tint)
			}
		}
	}

	dst.DrawBox(minX-1, minY-1, maxX-minX+3, maxY-minY+3, style.Outline)
}

// renderShape draws a committed shape at cell resolution.
func renderShape(dst *core.Screen, s Shape) {
	b := s.Bounds()
	switch s.Kind {
	case ShapeRect:
		dst.DrawBox(cell(b.MinX), cell(b.MinY), cell(b.MaxX)-cell(b.MinX)+1, cell(b.MaxY)-cell(b.MinY)+1, s.Color)
	case ShapeLine:
		dst.DrawLine(cell(s.Start.X), cell(s.Start.Y), cell(s.End.X), cell(s.End.Y), '*', s.Color)
	}
}

// DrawStrokePath draws a freehand path, connecting consecutive points so the
// rendered line has no gaps between sampled positions.
func DrawStrokePath(dst *core.Screen, path geom.Stroke, r rune, c core.Color) {
	if len(path.Points) == 0 {
		return
	}
	prev := path.Absolute(0)
	dst.SetCell(cell(prev.X), cell(prev.Y), r, c)
	for i := 1; i < len(path.Points); i++ {
		cur := path.Absolute(i)
		dst.DrawLine(cell(prev.X), cell(prev.Y), cell(cur.X), cell(cur.Y), r, c)
		prev = cur
	}
}

// cell maps a canvas coordinate to its screen cell.
func cell(v float64) int {
	return int(math.Round(v))
}
