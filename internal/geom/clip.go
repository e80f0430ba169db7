package geom

// Stroke is an ordered freehand path. Points are relative to Origin; the
// absolute position of point i is Origin + Points[i]. Order defines the
// path direction.
type Stroke struct {
	Origin Point
	Points []Point
}

// Absolute returns the absolute position of the i-th point.
func (s Stroke) Absolute(i int) Point {
	return s.Origin.Add(s.Points[i])
}

// Bounds returns the axis-aligned box enclosing every absolute point of the
// stroke. A single-point stroke yields a zero-size box at that point.
func (s Stroke) Bounds() Box {
	if len(s.Points) == 0 {
		return Box{MinX: s.Origin.X, MinY: s.Origin.Y, MaxX: s.Origin.X, MaxY: s.Origin.Y}
	}
	p := s.Absolute(0)
	b := Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	for i := 1; i < len(s.Points); i++ {
		p = s.Absolute(i)
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// ClipStroke trims the stroke to the portions inside the region and returns
// the surviving points, still relative to the stroke's origin. At every
// inside/outside transition the exact boundary crossing is inserted, so the
// trimmed path meets the region edge with no visual gap. A vertex exactly on
// the boundary counts as inside and is emitted verbatim.
//
// Transitions are detected from vertex classification only: a segment whose
// endpoints are both outside is dropped even if its chord passes through the
// region. Callers that need such excursions preserved must subdivide the
// path first.
func (r Region) ClipStroke(s Stroke) []Point {
	if len(s.Points) == 0 {
		return nil
	}

	out := make([]Point, 0, len(s.Points))
	prev := s.Absolute(0)
	prevInside := r.ContainsPoint(prev)
	if prevInside {
		out = append(out, s.Points[0])
	}

	for i := 1; i < len(s.Points); i++ {
		cur := s.Absolute(i)
		curInside := r.ContainsPoint(cur)

		switch {
		case prevInside && curInside:
			out = append(out, s.Points[i])
		case prevInside && !curInside:
			// Leaving the region: keep the exit point, drop the vertex.
			if hit, ok := r.segmentCrossing(prev, cur); ok {
				out = append(out, hit.Sub(s.Origin))
			}
		case !prevInside && curInside:
			// Entering the region: insert the entry point before the vertex.
			if hit, ok := r.segmentCrossing(prev, cur); ok {
				out = append(out, hit.Sub(s.Origin))
			}
			out = append(out, s.Points[i])
		}

		prev, prevInside = cur, curInside
	}

	return out
}

// segmentCrossing computes where the segment p1->p2 crosses the region
// boundary, parametrized as P(t) = p1 + t*(p2-p1) for t in [0,1]. Each axis
// with a nonzero delta contributes its two edge crossings; an axis parallel
// to its edge pair is skipped, which also avoids dividing by zero. The
// entry parameter tMin starts at 0 and the exit parameter tMax at 1; if they
// cross, the segment misses the rectangle. A zero-length segment never
// intersects.
//
// The returned point is at t = tMin when tMin > 0 (the segment starts
// outside and enters) and at t = tMax otherwise (the segment starts inside
// and exits). One crossing is exactly what the enter and exit transitions in
// ClipStroke need.
func (r Region) segmentCrossing(p1, p2 Point) (Point, bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	if dx == 0 && dy == 0 {
		return Point{}, false
	}

	tMin, tMax := 0.0, 1.0

	if dx != 0 {
		t1 := (r.X - p1.X) / dx
		t2 := (r.MaxX() - p1.X) / dx
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
	}
	if dy != 0 {
		t1 := (r.Y - p1.Y) / dy
		t2 := (r.MaxY() - p1.Y) / dy
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
	}

	if tMin > tMax {
		return Point{}, false
	}

	t := tMax
	if tMin > 0 {
		t = tMin
	}
	return Point{X: p1.X + t*dx, Y: p1.Y + t*dy}, true
}
