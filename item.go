package segment

import "golang.org/x/image/math/fixed"

// ClipMode selects whether a clip shape keeps or removes the region it
// covers.
type ClipMode uint8

const (
	// Clip keeps only what lies inside the shape.
	Clip ClipMode = iota
	// ClipOut keeps only what lies outside the shape.
	ClipOut
)

// String implements fmt.Stringer.
func (m ClipMode) String() string {
	switch m {
	case Clip:
		return "Clip"
	case ClipOut:
		return "ClipOut"
	default:
		return "ClipMode(?)"
	}
}

// clipItem is one rectangular clip region. Rounded rectangles are split into
// several items so that only the corner regions carry a mask.
type clipItem struct {
	rect    fixed.Rectangle26_6
	mode    ClipMode
	hasMask bool

	// Sweep state, toggled by events while the builder runs.
	activeX bool
	activeY bool
}

// appendRectItem appends a plain (hard-edged) item for r.
func appendRectItem(items []clipItem, r fixed.Rectangle26_6, mode ClipMode) []clipItem {
	return appendItem(items, r, mode, false)
}

// appendRoundedItems appends the items for a rounded rectangle.
//
// When the corners leave room for an inner rectangle the shape becomes a
// 3×3 grid: four masked corner cells, then the four edge cells and the
// center cell, all unmasked. Otherwise the whole rectangle is a single
// masked item.
func appendRoundedItems(items []clipItem, outer Rect, radii CornerRadii, mode ClipMode) []clipItem {
	inner, ok := InnerRect(outer, radii)
	if !ok {
		return appendItem(items, toFixedRect(outer), mode, true)
	}

	o, in := toFixedRect(outer), toFixedRect(inner)
	x0, x1, x2, x3 := o.Min.X, in.Min.X, in.Max.X, o.Max.X
	y0, y1, y2, y3 := o.Min.Y, in.Min.Y, in.Max.Y, o.Max.Y

	corners := [4]fixed.Rectangle26_6{
		rect26(x0, y0, x1, y1), // top left
		rect26(x2, y0, x3, y1), // top right
		rect26(x2, y2, x3, y3), // bottom right
		rect26(x0, y2, x1, y3), // bottom left
	}
	for _, r := range corners {
		items = appendItem(items, r, mode, true)
	}

	others := [5]fixed.Rectangle26_6{
		rect26(x1, y0, x2, y1), // top
		rect26(x2, y1, x3, y2), // right
		rect26(x1, y2, x2, y3), // bottom
		rect26(x0, y1, x1, y2), // left
		rect26(x1, y1, x2, y2), // center
	}
	for _, r := range others {
		items = appendItem(items, r, mode, false)
	}
	return items
}

// appendItem appends an item unless r has no area. An empty item cannot
// affect the output, and a zero-width one would see its End event sorted
// before its Begin event and stay active for the rest of the sweep.
func appendItem(items []clipItem, r fixed.Rectangle26_6, mode ClipMode, hasMask bool) []clipItem {
	if r.Empty() {
		return items
	}
	return append(items, clipItem{rect: r, mode: mode, hasMask: hasMask})
}

func rect26(x0, y0, x1, y1 fixed.Int26_6) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: x0, Y: y0},
		Max: fixed.Point26_6{X: x1, Y: y1},
	}
}
