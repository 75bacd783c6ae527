package venntest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/venn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// disjoint returns a diagram with regions A at (0,0) and B at (5,5), both r=1.
func disjoint() *venn.Layout {
	return venn.NewLayout().
		SetCircle("A", venn.Pt(0, 0), 1).
		SetLabel("A", "A", venn.Pt(0, 0)).
		SetCircle("B", venn.Pt(5, 5), 1).
		SetLabel("B", "B", venn.Pt(5, 5))
}

func assertionError(t *testing.T, err error) *AssertionError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAssertion)
	var ae *AssertionError
	require.True(t, errors.As(err, &ae), "error %T is not *AssertionError", err)
	return ae
}

func TestVerifyDisjointRegions(t *testing.T) {
	err := Verify(disjoint(), Expectations{
		Expect("A", venn.Pt(0, 0)),
		Expect("B", venn.Pt(5, 5)),
	})
	assert.NoError(t, err)
}

func TestVerifyPointInWrongRegion(t *testing.T) {
	err := Verify(disjoint(), Expectations{
		Expect("A"),
		Expect("B", venn.Pt(0, 0)),
	})
	ae := assertionError(t, err)

	// (0,0) is tested against A first and is inside it.
	assert.Equal(t, FailPointPlacement, ae.Kind)
	assert.Equal(t, venn.RegionID("A"), ae.Region)
	assert.False(t, ae.Inside)
	assert.Equal(t, venn.Pt(0, 0), ae.Point)
	assert.Contains(t, err.Error(), "should not be in region \"A\"")
}

func TestVerifyPointMissingFromOwnRegion(t *testing.T) {
	err := Verify(disjoint(), Expectations{
		Expect("B", venn.Pt(0, 0)),
		Expect("A"),
	})
	ae := assertionError(t, err)

	assert.Equal(t, FailPointPlacement, ae.Kind)
	assert.Equal(t, venn.RegionID("B"), ae.Region)
	assert.True(t, ae.Inside)
	assert.Equal(t, "point (0, 0) should be in region \"B\"", err.Error())
}

func TestVerifyAbsentRegion(t *testing.T) {
	d := disjoint()
	assert.NoError(t, Verify(d, Expectations{ExpectAbsent("C")}))

	d.SetCircle("C", venn.Pt(10, 10), 1)
	ae := assertionError(t, Verify(d, Expectations{ExpectAbsent("C")}))
	assert.Equal(t, FailRegionPresent, ae.Kind)
	assert.Equal(t, venn.RegionID("C"), ae.Region)
	assert.Equal(t, `region "C" must be absent`, ae.Error())
}

func TestVerifyRegionMustExist(t *testing.T) {
	ae := assertionError(t, Verify(disjoint(), Expectations{Expect("C")}))
	assert.Equal(t, FailRegionMissing, ae.Kind)
	assert.Equal(t, `region "C" must exist`, ae.Error())
}

func TestVerifyLabelOutsideRegion(t *testing.T) {
	d := disjoint().SetLabel("B", "B", venn.Pt(0, 0))
	ae := assertionError(t, Verify(d, Expectations{
		Expect("A", venn.Pt(0, 0)),
		Expect("B", venn.Pt(5, 5)),
	}))
	assert.Equal(t, FailLabelOutside, ae.Kind)
	assert.Equal(t, venn.RegionID("B"), ae.Region)
	assert.Contains(t, ae.Error(), "label for region \"B\" must be within this region")
}

func TestVerifyLabelMissing(t *testing.T) {
	d := venn.NewLayout().SetCircle("A", venn.Pt(0, 0), 1)
	ae := assertionError(t, Verify(d, Expectations{Expect("A")}))
	assert.Equal(t, FailLabelMissing, ae.Kind)
}

func TestVerifyOutsidePoints(t *testing.T) {
	d := disjoint()
	exp := Expectations{
		Expect("A", venn.Pt(0.5, 0)),
		Expect("B", venn.Pt(5, 5.5)),
		Expect(venn.Outside, venn.Pt(2.5, 2.5), venn.Pt(-3, 0)),
	}
	assert.NoError(t, Verify(d, exp))

	exp[2] = Expect(venn.Outside, venn.Pt(5, 5))
	ae := assertionError(t, Verify(d, exp))
	assert.Equal(t, venn.RegionID("B"), ae.Region)
	assert.False(t, ae.Inside)
}

func TestVerifyCustomOutsideKey(t *testing.T) {
	d := disjoint()
	exp := Expectations{
		Expect("A", venn.Pt(0, 0)),
		Expect("none", venn.Pt(2.5, 2.5)),
	}

	// Without the option "none" is a regular region that must exist.
	ae := assertionError(t, Verify(d, exp))
	assert.Equal(t, FailRegionMissing, ae.Kind)

	assert.NoError(t, Verify(d, exp, WithOutside("none")))
}

func TestVerifyOverlappingRegionsWithPath(t *testing.T) {
	// Two squares sharing a strip; the strip is its own region "11"
	// and the single-set regions exclude it.
	left := venn.NewPath()
	left.Polygon(venn.Pt(0, 0), venn.Pt(2, 0), venn.Pt(2, 2), venn.Pt(0, 2))
	mid := venn.NewPath()
	mid.Polygon(venn.Pt(2, 0), venn.Pt(3, 0), venn.Pt(3, 2), venn.Pt(2, 2))
	right := venn.NewPath()
	right.Polygon(venn.Pt(3, 0), venn.Pt(5, 0), venn.Pt(5, 2), venn.Pt(3, 2))

	d := venn.NewLayout().
		SetPath("10", left).SetLabel("10", "10", venn.Pt(1, 1)).
		SetPath("11", mid).SetLabel("11", "11", venn.Pt(2.5, 1)).
		SetPath("01", right).SetLabel("01", "01", venn.Pt(4, 1))

	AssertDiagram(t, d, Expectations{
		Expect("10", venn.Pt(0.5, 0.5), venn.Pt(1.5, 1.5)),
		Expect("11", venn.Pt(2.5, 0.5)),
		Expect("01", venn.Pt(4.5, 1.5)),
		Expect(venn.Outside, venn.Pt(2.5, 3)),
	})
}

func TestVerifyPlotsEveryPointUntilFailure(t *testing.T) {
	var plotted []venn.Point
	plot := WithPlotter(PlotterFunc(func(p venn.Point) {
		plotted = append(plotted, p)
	}))

	err := Verify(disjoint(), Expectations{
		Expect("A", venn.Pt(0, 0), venn.Pt(0.5, 0.5)),
		Expect("B", venn.Pt(5, 5), venn.Pt(0, 0), venn.Pt(5, 5.5)),
	}, plot)
	require.Error(t, err)

	want := []venn.Point{venn.Pt(0, 0), venn.Pt(0.5, 0.5), venn.Pt(5, 5), venn.Pt(0, 0)}
	assert.Equal(t, want, plotted)
}

func TestVerifyNilPlotterIgnored(t *testing.T) {
	assert.NoError(t, Verify(disjoint(), Expectations{Expect("A", venn.Pt(0, 0))}, WithPlotter(nil)))
}

func TestVerifyFailFastOrder(t *testing.T) {
	// Both C (present) and D (missing) are wrong; C comes first.
	d := disjoint().SetCircle("C", venn.Pt(9, 9), 1)
	ae := assertionError(t, Verify(d, Expectations{
		ExpectAbsent("C"),
		Expect("D"),
	}))
	assert.Equal(t, venn.RegionID("C"), ae.Region)
}

func TestAssertionErrorMessages(t *testing.T) {
	tests := []struct {
		err  *AssertionError
		want string
	}{
		{&AssertionError{Kind: FailRegionPresent, Region: "11"}, `region "11" must be absent`},
		{&AssertionError{Kind: FailRegionMissing, Region: "11"}, `region "11" must exist`},
		{&AssertionError{Kind: FailLabelMissing, Region: "11"}, `region "11" must have a label`},
		{&AssertionError{Kind: FailLabelOutside, Region: "11"}, `label for region "11" must be within this region`},
		{&AssertionError{Kind: FailPointPlacement, Region: "11", Point: venn.Pt(1, 2), Inside: true}, `point (1, 2) should be in region "11"`},
		{&AssertionError{Kind: FailPointPlacement, Region: "11", Point: venn.Pt(1, 2)}, `point (1, 2) should not be in region "11"`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), ErrAssertion)
		})
	}
}

// recordingTB captures failures reported through testing.TB.
type recordingTB struct {
	testing.TB
	errors []string
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingTB) FailNow() { r.failed = true }

func TestAssertDiagramFails(t *testing.T) {
	rec := &recordingTB{TB: t}
	AssertDiagram(rec, disjoint(), Expectations{ExpectAbsent("A")})

	require.True(t, rec.failed, "AssertDiagram did not stop the test")
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], `region "A" must be absent`)
}

func TestExpectationsRegions(t *testing.T) {
	exp := Expectations{Expect("10"), ExpectAbsent("11"), Expect(venn.Outside)}
	assert.Equal(t, []venn.RegionID{"10", "11", ""}, exp.Regions())
}
