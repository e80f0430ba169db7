package canvas

import (
	"strings"
	"testing"

	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
)

func TestRenderBoundary(t *testing.T) {
	d := New("test")
	d.SetBoundary(geom.Region{X: 2, Y: 2, Width: 4, Height: 3})

	s := core.NewScreen(10, 8)
	d.Render(s, DefaultStyle())

	// Exterior is tinted, interior and the boundary cells are not.
	if got := s.GetCell(0, 0).Rune; got != '·' {
		t.Errorf("exterior cell = %q, want tint", got)
	}
	if got := s.GetCell(3, 3).Rune; got != ' ' {
		t.Errorf("interior cell = %q, want blank", got)
	}
	if got := s.GetCell(2, 2).Rune; got != ' ' {
		t.Errorf("boundary cell = %q, want blank (closed region is drawable)", got)
	}
	if got := s.GetCell(6, 5).Rune; got != ' ' {
		t.Errorf("far corner boundary cell = %q, want blank", got)
	}

	// Frame sits one cell outside the region.
	if got := s.GetCell(1, 1).Rune; got != '┌' {
		t.Errorf("frame corner = %q, want '┌'", got)
	}
	if got := s.GetCell(7, 6).Rune; got != '┘' {
		t.Errorf("frame corner = %q, want '┘'", got)
	}
	if got := s.GetCell(1, 1).Color; got != core.ColorCyan {
		t.Errorf("frame color = %v, want cyan", got)
	}
}

func TestRenderNoBoundary(t *testing.T) {
	d := New("test")

	s := core.NewScreen(6, 4)
	d.Render(s, DefaultStyle())

	if got := s.String(); strings.TrimSpace(strings.ReplaceAll(got, "\n", "")) != "" {
		t.Errorf("empty unbounded document rendered content:\n%s", got)
	}
}

func TestRenderShapes(t *testing.T) {
	d := New("test")
	d.AddShape(Shape{Kind: ShapeRect, Start: geom.Point{X: 1, Y: 1}, End: geom.Point{X: 4, Y: 3}, Color: core.ColorGreen})
	d.AddShape(Shape{Kind: ShapeLine, Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 0, Y: 3}, Color: core.ColorRed})

	s := core.NewScreen(8, 5)
	d.Render(s, DefaultStyle())

	if got := s.GetCell(1, 1).Rune; got != '┌' {
		t.Errorf("rect corner = %q, want '┌'", got)
	}
	if got := s.GetCell(4, 3).Rune; got != '┘' {
		t.Errorf("rect corner = %q, want '┘'", got)
	}
	if got := s.GetCell(0, 2); got.Rune != '*' || got.Color != core.ColorRed {
		t.Errorf("line cell = %+v, want red '*'", got)
	}
}

func TestDrawStrokePathConnectsPoints(t *testing.T) {
	s := core.NewScreen(8, 3)

	// Points sampled two cells apart; the gap must still be drawn.
	path := geom.Stroke{
		Origin: geom.Point{X: 1, Y: 1},
		Points: []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}},
	}
	DrawStrokePath(s, path, '•', core.ColorWhite)

	if got := s.Row(1); got != " •••••  " {
		t.Errorf("row = %q, want a solid run", got)
	}
}

func TestDrawStrokePathEmpty(t *testing.T) {
	s := core.NewScreen(4, 2)
	DrawStrokePath(s, geom.Stroke{}, '•', core.ColorWhite)

	if got := s.String(); strings.ContainsRune(got, '•') {
		t.Error("empty path drew something")
	}
}

func TestRenderStrokeRounding(t *testing.T) {
	d := New("test")
	d.AddStroke(geom.Stroke{
		Origin: geom.Point{X: 2.4, Y: 1.6},
		Points: []geom.Point{{X: 0, Y: 0}},
	}, core.ColorWhite)

	s := core.NewScreen(6, 4)
	d.Render(s, DefaultStyle())

	// 2.4 rounds to 2, 1.6 rounds to 2.
	if got := s.GetCell(2, 2).Rune; got != '•' {
		t.Errorf("stroke cell at rounded position = %q, want '•'", got)
	}
}
