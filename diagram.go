package venn

// RegionID names a logical region of a Venn diagram, e.g. "10" for the part
// of the first set outside the second.
type RegionID string

// Outside is the conventional region key for points that lie outside every
// tracked region.
const Outside RegionID = ""

// Label is a text marker identifying a region.
type Label interface {
	Position() Point
}

// TextLabel is a Label with fixed text and position.
type TextLabel struct {
	Text string
	At   Point
}

// Position returns the anchor point of the label.
func (l TextLabel) Position() Point { return l.At }

// Diagram exposes the rendered regions and labels of a Venn diagram.
//
// Patch returns an absent patch for unknown regions; Label returns nil.
type Diagram interface {
	Patch(id RegionID) Patch
	Label(id RegionID) Label
}

// Layout is a Diagram assembled from explicit patches and labels.
// It is not safe for concurrent mutation.
type Layout struct {
	order   []RegionID
	patches map[RegionID]Patch
	labels  map[RegionID]Label
}

// NewLayout creates an empty layout.
func NewLayout() *Layout {
	return &Layout{
		patches: make(map[RegionID]Patch),
		labels:  make(map[RegionID]Label),
	}
}

func (l *Layout) track(id RegionID) {
	if _, ok := l.patches[id]; ok {
		return
	}
	if _, ok := l.labels[id]; ok {
		return
	}
	l.order = append(l.order, id)
}

// SetPatch sets the patch for a region. Setting an absent patch keeps the
// region listed but undrawn.
func (l *Layout) SetPatch(id RegionID, p Patch) *Layout {
	l.track(id)
	l.patches[id] = p
	return l
}

// SetCircle sets a circular patch for a region.
func (l *Layout) SetCircle(id RegionID, center Point, radius float64) *Layout {
	return l.SetPatch(id, Circle(center, radius))
}

// SetPath sets a path patch for a region.
func (l *Layout) SetPath(id RegionID, path *Path) *Layout {
	return l.SetPatch(id, PathPatch(path))
}

// SetLabel sets the label for a region.
func (l *Layout) SetLabel(id RegionID, text string, at Point) *Layout {
	l.track(id)
	l.labels[id] = TextLabel{Text: text, At: at}
	return l
}

// Remove deletes the patch and label of a region.
func (l *Layout) Remove(id RegionID) {
	delete(l.patches, id)
	delete(l.labels, id)
	for i, r := range l.order {
		if r == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Regions returns the region ids in the order they were first added.
func (l *Layout) Regions() []RegionID {
	out := make([]RegionID, len(l.order))
	copy(out, l.order)
	return out
}

// Patch returns the patch of a region, or an absent patch.
func (l *Layout) Patch(id RegionID) Patch {
	return l.patches[id]
}

// Label returns the label of a region, or nil.
func (l *Layout) Label(id RegionID) Label {
	lbl, ok := l.labels[id]
	if !ok {
		return nil
	}
	return lbl
}

// PatchByID returns the patch of a region.
//
// Deprecated: use Patch.
func (l *Layout) PatchByID(id RegionID) Patch {
	warnDeprecated("Layout.PatchByID", "Layout.Patch")
	return l.Patch(id)
}

// LabelByID returns the label of a region.
//
// Deprecated: use Label.
func (l *Layout) LabelByID(id RegionID) Label {
	warnDeprecated("Layout.LabelByID", "Layout.Label")
	return l.Label(id)
}
