// Package venn provides the geometry surface of a Venn diagram: region
// patches, labels and a point-in-region predicate.
//
// # Overview
//
// A diagram maps region ids to patches and labels. A patch is one of three
// shapes: a circle, an arbitrary closed path, or absent (region not drawn).
//
//	d := venn.NewLayout().
//		SetCircle("10", venn.Pt(0, 0), 1).
//		SetLabel("10", "10", venn.Pt(0, 0))
//
//	venn.Contains(d.Patch("10"), venn.Pt(0.5, 0)) // true
//	venn.Contains(d.Patch("01"), venn.Pt(0.5, 0)) // false, absent
//
// # Testing
//
// Sub-package venntest verifies a diagram against expected sample points,
// notebook runs example notebooks in a shared interpreter scope and plot
// renders diagrams with their sample points for inspection.
//
// # Logging
//
// venn is silent by default. See [SetLogger].
package venn
