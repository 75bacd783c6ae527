// Package venntest checks the rendered geometry of a Venn diagram against
// expected sample points.
//
//	err := venntest.Verify(d, venntest.Expectations{
//		venntest.Expect("10", venn.Pt(-1, 0)),
//		venntest.Expect("01", venn.Pt(1, 0)),
//		venntest.ExpectAbsent("11"),
//		venntest.Expect(venn.Outside, venn.Pt(5, 5)),
//	})
package venntest

import (
	"log/slog"
	"testing"

	"github.com/gogpu/venn"
	"github.com/stretchr/testify/require"
)

// Verify checks that diagram d matches exp, returning the first violation as
// an *AssertionError.
//
// For every expectation, in order: an absent region must have an absent
// patch. A present region (other than the outside key) must have a patch,
// and its label must lie within that patch. Each sample point is handed to
// the plotter and must be contained in the patch of its own region and in
// no other tracked region's patch.
func Verify(d venn.Diagram, exp Expectations, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = venn.Logger()
	}

	for _, e := range exp {
		if e.Absent {
			if !d.Patch(e.Region).IsAbsent() {
				return &AssertionError{Kind: FailRegionPresent, Region: e.Region}
			}
			log.Debug("region absent", slog.String("region", string(e.Region)))
			continue
		}

		if e.Region != o.outside {
			if err := checkRegion(d, e.Region); err != nil {
				return err
			}
		}

		for _, p := range e.Points {
			o.plotter.Scatter(p)
			for _, t := range exp {
				if t.Region == o.outside {
					continue
				}
				want := t.Region == e.Region
				if venn.Contains(d.Patch(t.Region), p) != want {
					return &AssertionError{
						Kind:   FailPointPlacement,
						Region: t.Region,
						Point:  p,
						Inside: want,
					}
				}
			}
		}
		log.Debug("region verified",
			slog.String("region", string(e.Region)),
			slog.Int("points", len(e.Points)))
	}
	return nil
}

func checkRegion(d venn.Diagram, id venn.RegionID) error {
	patch := d.Patch(id)
	if patch.IsAbsent() {
		return &AssertionError{Kind: FailRegionMissing, Region: id}
	}
	label := d.Label(id)
	if label == nil {
		return &AssertionError{Kind: FailLabelMissing, Region: id}
	}
	if !venn.Contains(patch, label.Position()) {
		return &AssertionError{Kind: FailLabelOutside, Region: id}
	}
	return nil
}

// AssertDiagram verifies d and stops the test at the first violation.
func AssertDiagram(t testing.TB, d venn.Diagram, exp Expectations, opts ...Option) {
	t.Helper()
	require.NoError(t, Verify(d, exp, opts...), "diagram does not match expectations")
}
