package venntest

import "github.com/gogpu/venn"

// Expectation states what a diagram must look like for one region.
//
// If Absent is set the region must not be drawn. Otherwise every point in
// Points must lie in this region and in no other tracked region, and, unless
// Region is the outside key, the region must exist with its label inside it.
type Expectation struct {
	Region venn.RegionID
	Points []venn.Point
	Absent bool
}

// Expectations is an ordered set of region expectations. Verification runs
// in slice order and stops at the first violation.
type Expectations []Expectation

// Expect returns an expectation that region exists and contains pts.
func Expect(region venn.RegionID, pts ...venn.Point) Expectation {
	return Expectation{Region: region, Points: pts}
}

// ExpectAbsent returns an expectation that region is not drawn.
func ExpectAbsent(region venn.RegionID) Expectation {
	return Expectation{Region: region, Absent: true}
}

// Regions returns the region ids in order.
func (e Expectations) Regions() []venn.RegionID {
	ids := make([]venn.RegionID, len(e))
	for i, x := range e {
		ids[i] = x.Region
	}
	return ids
}
