// Package fixture loads diagram verification cases from YAML.
//
// A fixture lists the regions of a diagram (circle or polygon patches with
// their labels) and the expectations to check against them:
//
//	name: two disjoint sets
//	outside: ""
//	regions:
//	  - id: "10"
//	    circle: {center: [0, 0], radius: 1}
//	    label: [0, 0]
//	expect:
//	  - region: "10"
//	    points: [[0, 0]]
//	  - region: "11"
//	    absent: true
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/venn"
	"github.com/gogpu/venn/venntest"
	"gopkg.in/yaml.v3"
)

// Coord is an [x, y] pair.
type Coord [2]float64

// Point converts the coordinate to a venn.Point.
func (c Coord) Point() venn.Point { return venn.Pt(c[0], c[1]) }

// CircleSpec describes a circular patch.
type CircleSpec struct {
	Center Coord   `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// Region describes one region of the diagram. A region with neither circle
// nor polygon is listed but not drawn.
type Region struct {
	ID      string      `yaml:"id"`
	Circle  *CircleSpec `yaml:"circle,omitempty"`
	Polygon []Coord     `yaml:"polygon,omitempty"`
	Label   *Coord      `yaml:"label,omitempty"`
	Text    string      `yaml:"text,omitempty"`
}

// Expect is one expectation, checked in file order.
type Expect struct {
	Region string  `yaml:"region"`
	Points []Coord `yaml:"points,omitempty"`
	Absent bool    `yaml:"absent,omitempty"`
}

// Fixture is a diagram together with its expectations.
type Fixture struct {
	Name    string   `yaml:"name,omitempty"`
	Outside *string  `yaml:"outside,omitempty"`
	Regions []Region `yaml:"regions"`
	Expect  []Expect `yaml:"expect"`
}

// Parse decodes and validates a YAML fixture. Unknown fields are rejected.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the fixture file at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = path
	}
	return f, nil
}

// Validate checks the fixture for structural errors.
func (f *Fixture) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(f.Regions))
	for i, r := range f.Regions {
		switch {
		case r.ID == "":
			errs = append(errs, fmt.Errorf("region %d: missing id", i))
		case seen[r.ID]:
			errs = append(errs, fmt.Errorf("region %q: duplicate id", r.ID))
		}
		seen[r.ID] = true

		if r.Circle != nil && r.Polygon != nil {
			errs = append(errs, fmt.Errorf("region %q: both circle and polygon given", r.ID))
		}
		if r.Circle != nil && r.Circle.Radius < 0 {
			errs = append(errs, fmt.Errorf("region %q: negative radius %g", r.ID, r.Circle.Radius))
		}
		if r.Polygon != nil && len(r.Polygon) < 3 {
			errs = append(errs, fmt.Errorf("region %q: polygon needs at least 3 points, got %d", r.ID, len(r.Polygon)))
		}
	}
	for i, e := range f.Expect {
		if e.Absent && len(e.Points) > 0 {
			errs = append(errs, fmt.Errorf("expect %d (region %q): absent region cannot have points", i, e.Region))
		}
	}
	if len(f.Expect) == 0 {
		errs = append(errs, errors.New("no expectations"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("fixture: %w", err)
	}
	return nil
}

// OutsideKey returns the region key reserved for points outside every
// region, defaulting to venn.Outside.
func (f *Fixture) OutsideKey() venn.RegionID {
	if f.Outside == nil {
		return venn.Outside
	}
	return venn.RegionID(*f.Outside)
}

// Layout builds the diagram described by the fixture.
func (f *Fixture) Layout() *venn.Layout {
	l := venn.NewLayout()
	for _, r := range f.Regions {
		id := venn.RegionID(r.ID)
		switch {
		case r.Circle != nil:
			l.SetCircle(id, r.Circle.Center.Point(), r.Circle.Radius)
		case len(r.Polygon) > 0:
			pts := make([]venn.Point, len(r.Polygon))
			for i, c := range r.Polygon {
				pts[i] = c.Point()
			}
			path := venn.NewPath()
			path.Polygon(pts...)
			l.SetPath(id, path)
		default:
			l.SetPatch(id, venn.Absent())
		}
		if r.Label != nil {
			text := r.Text
			if text == "" {
				text = r.ID
			}
			l.SetLabel(id, text, r.Label.Point())
		}
	}
	return l
}

// Expectations converts the fixture's expectations.
func (f *Fixture) Expectations() venntest.Expectations {
	exp := make(venntest.Expectations, 0, len(f.Expect))
	for _, e := range f.Expect {
		id := venn.RegionID(e.Region)
		if e.Absent {
			exp = append(exp, venntest.ExpectAbsent(id))
			continue
		}
		pts := make([]venn.Point, len(e.Points))
		for i, c := range e.Points {
			pts[i] = c.Point()
		}
		exp = append(exp, venntest.Expect(id, pts...))
	}
	return exp
}

// Verify checks the fixture's diagram against its expectations.
func (f *Fixture) Verify(opts ...venntest.Option) error {
	opts = append([]venntest.Option{venntest.WithOutside(f.OutsideKey())}, opts...)
	return venntest.Verify(f.Layout(), f.Expectations(), opts...)
}
