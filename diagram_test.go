package venn

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestLayoutPatchAndLabel(t *testing.T) {
	l := NewLayout().
		SetCircle("10", Pt(0, 0), 1).
		SetLabel("10", "A", Pt(0.1, 0))

	if got := l.Patch("10").Kind(); got != PatchCircle {
		t.Errorf("Patch(10).Kind() = %v, want circle", got)
	}
	lbl := l.Label("10")
	if lbl == nil {
		t.Fatal("Label(10) = nil")
	}
	if got := lbl.Position(); got != Pt(0.1, 0) {
		t.Errorf("Label(10).Position() = %v, want (0.1, 0)", got)
	}

	if !l.Patch("01").IsAbsent() {
		t.Error("Patch(01) of unknown region is not absent")
	}
	if l.Label("01") != nil {
		t.Error("Label(01) of unknown region is not nil")
	}
}

func TestLayoutRegionsOrder(t *testing.T) {
	l := NewLayout()
	l.SetCircle("b", Pt(0, 0), 1)
	l.SetLabel("a", "a", Pt(0, 0))
	l.SetCircle("c", Pt(0, 0), 1)
	l.SetCircle("b", Pt(1, 1), 2)

	want := []RegionID{"b", "a", "c"}
	if got := l.Regions(); !slices.Equal(got, want) {
		t.Errorf("Regions() = %v, want %v", got, want)
	}

	l.Remove("a")
	want = []RegionID{"b", "c"}
	if got := l.Regions(); !slices.Equal(got, want) {
		t.Errorf("after Remove, Regions() = %v, want %v", got, want)
	}
	if l.Label("a") != nil {
		t.Error("Label(a) survived Remove")
	}
}

func TestLayoutSetPath(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2))
	l := NewLayout().SetPath("11", p)

	if !Contains(l.Patch("11"), Pt(1, 1)) {
		t.Error("path region does not contain (1, 1)")
	}
}

func TestLayoutDeprecatedAccessorsWarn(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	l := NewLayout().SetCircle("10", Pt(0, 0), 1).SetLabel("10", "A", Pt(0, 0))
	if l.PatchByID("10").IsAbsent() {
		t.Error("PatchByID(10) is absent")
	}
	if l.LabelByID("10") == nil {
		t.Error("LabelByID(10) = nil")
	}

	out := buf.String()
	if strings.Count(out, "category=deprecation") != 2 {
		t.Errorf("expected two deprecation warnings, got:\n%s", out)
	}
	if !strings.Contains(out, "Layout.PatchByID is deprecated") {
		t.Errorf("missing PatchByID warning in:\n%s", out)
	}
}
