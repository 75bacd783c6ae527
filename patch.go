package venn

import (
	"fmt"
	"math"
)

// PatchKind identifies the shape variant held by a Patch.
type PatchKind uint8

const (
	// PatchAbsent means the region is not drawn.
	PatchAbsent PatchKind = iota
	// PatchCircle is a circle given by center and radius.
	PatchCircle
	// PatchPath is an arbitrary closed path.
	PatchPath
)

func (k PatchKind) String() string {
	switch k {
	case PatchAbsent:
		return "absent"
	case PatchCircle:
		return "circle"
	case PatchPath:
		return "path"
	default:
		return fmt.Sprintf("PatchKind(%d)", uint8(k))
	}
}

// Patch is the rendered shape of one diagram region.
// The zero value is an absent patch.
type Patch struct {
	kind   PatchKind
	center Point
	radius float64
	path   *Path
}

// Circle returns a circular patch. Negative radii are treated as their
// absolute value.
func Circle(center Point, radius float64) Patch {
	return Patch{kind: PatchCircle, center: center, radius: math.Abs(radius)}
}

// PathPatch returns a patch bounded by path. A nil path yields an absent patch.
func PathPatch(path *Path) Patch {
	if path == nil {
		return Patch{}
	}
	return Patch{kind: PatchPath, path: path}
}

// Absent returns the patch of a region that is not drawn.
func Absent() Patch {
	return Patch{}
}

// Kind returns the shape variant.
func (p Patch) Kind() PatchKind { return p.kind }

// IsAbsent reports whether no region is drawn.
func (p Patch) IsAbsent() bool { return p.kind == PatchAbsent }

// Center returns the center of a circle patch.
func (p Patch) Center() Point { return p.center }

// Radius returns the radius of a circle patch.
func (p Patch) Radius() float64 { return p.radius }

// Path returns the boundary of a path patch, or nil for other kinds.
func (p Patch) Path() *Path { return p.path }

// BoundingBox returns the bounds of the patch. Absent patches are empty.
func (p Patch) BoundingBox() Rect {
	switch p.kind {
	case PatchCircle:
		return Rect{
			Min: Pt(p.center.X-p.radius, p.center.Y-p.radius),
			Max: Pt(p.center.X+p.radius, p.center.Y+p.radius),
		}
	case PatchPath:
		return p.path.BoundingBox()
	default:
		return emptyRect
	}
}

// Outline returns the patch as a path, converting circles to Bezier curves.
// Absent patches return nil.
func (p Patch) Outline() *Path {
	switch p.kind {
	case PatchCircle:
		path := NewPath()
		path.Circle(p.center.X, p.center.Y, p.radius)
		return path
	case PatchPath:
		return p.path
	default:
		return nil
	}
}

func (p Patch) String() string {
	switch p.kind {
	case PatchCircle:
		return fmt.Sprintf("circle(center=%v, r=%g)", p.center, p.radius)
	case PatchPath:
		return fmt.Sprintf("path(%d elements)", len(p.path.elements))
	default:
		return "absent"
	}
}

// Contains reports whether pt lies within patch.
//
// Absent patches contain nothing. Circles include their boundary: the test
// compares squared distances so no square root is taken. Paths use their own
// non-zero winding test.
func Contains(patch Patch, pt Point) bool {
	switch patch.kind {
	case PatchAbsent:
		return false
	case PatchCircle:
		return pt.DistanceSquared(patch.center) <= patch.radius*patch.radius
	case PatchPath:
		return patch.path.Contains(pt)
	default:
		panic(fmt.Sprintf("venn: unknown patch kind %v", patch.kind))
	}
}
