package venn

import "math"

// DefaultTolerance is the flattening tolerance used for curve hit-testing.
const DefaultTolerance = 1e-3

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for the non-zero fill rule).
// Uses a horizontal ray to the right; curves are flattened first.
func (p *Path) Winding(pt Point) int {
	var winding int
	var prev Point
	var started bool
	p.walk(DefaultTolerance, func(pt0 Point, move bool) {
		if move || !started {
			prev = pt0
			started = true
			return
		}
		winding += lineWinding(prev, pt0, pt)
		prev = pt0
	})
	return winding
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// BoundingBox returns the bounding box of the flattened path.
// An empty path yields an empty Rect.
func (p *Path) BoundingBox() Rect {
	bbox := emptyRect
	p.walk(DefaultTolerance, func(pt Point, _ bool) {
		bbox = bbox.Expand(pt)
	})
	return bbox
}

// Flatten converts the path into polygons, one per subpath. Every subpath is
// closed implicitly, as a filled region would be.
func (p *Path) Flatten(tolerance float64) [][]Point {
	var polys [][]Point
	var cur []Point
	p.walk(tolerance, func(pt Point, move bool) {
		if move && len(cur) > 0 {
			polys = append(polys, cur)
			cur = nil
		}
		cur = append(cur, pt)
	})
	if len(cur) > 0 {
		polys = append(polys, cur)
	}
	return polys
}

// walk emits the flattened vertices of the path. move is true for the first
// vertex of every subpath; unclosed subpaths are closed before the next one.
func (p *Path) walk(tolerance float64, fn func(pt Point, move bool)) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var current, start Point
	open := false
	closeSub := func() {
		if open && current != start {
			fn(start, false)
		}
		open = false
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			closeSub()
			fn(e.Point, true)
			start, current = e.Point, e.Point
			open = true
		case LineTo:
			fn(e.Point, false)
			current = e.Point
		case QuadTo:
			flattenCubic(current, current.Lerp(e.Control, 2.0/3), e.Point.Lerp(e.Control, 2.0/3), e.Point, tolerance, fn)
			current = e.Point
		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, fn)
			current = e.Point
		case Close:
			closeSub()
			current = start
		}
	}
	closeSub()
}

// flattenCubic subdivides a cubic Bezier until its control polygon is within
// tolerance of the chord, emitting the end point of every piece.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, fn func(pt Point, move bool)) {
	flattenCubicRecursive(p0, p1, p2, p3, tolerance*tolerance, 0, fn)
}

func flattenCubicRecursive(p0, p1, p2, p3 Point, tolSq float64, depth int, fn func(pt Point, move bool)) {
	if depth >= 16 || cubicFlatness(p0, p1, p2, p3) <= 16*tolSq {
		fn(p3, false)
		return
	}

	// de Casteljau split at t = 0.5
	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	flattenCubicRecursive(p0, p01, p012, mid, tolSq, depth+1, fn)
	flattenCubicRecursive(mid, p123, p23, p3, tolSq, depth+1, fn)
}

// cubicFlatness bounds the squared distance from the control points to the chord.
func cubicFlatness(p0, p1, p2, p3 Point) float64 {
	ux := 3.0*p1.X - 2.0*p0.X - p3.X
	uy := 3.0*p1.Y - 2.0*p0.Y - p3.Y
	vx := 3.0*p2.X - p0.X - 2.0*p3.X
	vy := 3.0*p2.Y - p0.Y - 2.0*p3.Y

	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}
