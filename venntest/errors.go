package venntest

import (
	"errors"
	"fmt"

	"github.com/gogpu/venn"
)

// ErrAssertion is matched by every verification failure.
var ErrAssertion = errors.New("venntest: diagram assertion failed")

// FailureKind classifies a verification failure.
type FailureKind uint8

const (
	// FailRegionPresent: a region expected to be absent is drawn.
	FailRegionPresent FailureKind = iota + 1
	// FailRegionMissing: a region expected to exist is absent.
	FailRegionMissing
	// FailLabelMissing: a region expected to exist has no label.
	FailLabelMissing
	// FailLabelOutside: a label lies outside its own region.
	FailLabelOutside
	// FailPointPlacement: a sample point is in the wrong region.
	FailPointPlacement
)

// AssertionError describes the first violated expectation.
type AssertionError struct {
	Kind   FailureKind
	Region venn.RegionID

	// Point and Inside are set for FailPointPlacement: Point should have
	// been inside Region when Inside is true, outside otherwise.
	Point  venn.Point
	Inside bool
}

func (e *AssertionError) Error() string {
	switch e.Kind {
	case FailRegionPresent:
		return fmt.Sprintf("region %q must be absent", e.Region)
	case FailRegionMissing:
		return fmt.Sprintf("region %q must exist", e.Region)
	case FailLabelMissing:
		return fmt.Sprintf("region %q must have a label", e.Region)
	case FailLabelOutside:
		return fmt.Sprintf("label for region %q must be within this region", e.Region)
	case FailPointPlacement:
		verb := "not be"
		if e.Inside {
			verb = "be"
		}
		return fmt.Sprintf("point %v should %s in region %q", e.Point, verb, e.Region)
	default:
		return fmt.Sprintf("region %q: assertion failed", e.Region)
	}
}

// Is reports whether target is ErrAssertion.
func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}
