package segment

import "math"

// CornerRadii holds the elliptical radii of each corner of a rounded
// rectangle. A corner with a zero (or negative) dimension is square.
type CornerRadii struct {
	TopLeft     Size
	TopRight    Size
	BottomRight Size
	BottomLeft  Size
}

// UniformRadii returns radii with the same circular radius r on every corner.
func UniformRadii(r float64) CornerRadii {
	s := Size{W: r, H: r}
	return CornerRadii{TopLeft: s, TopRight: s, BottomRight: s, BottomLeft: s}
}

// IsZero reports whether every corner is square.
func (c CornerRadii) IsZero() bool {
	return c.TopLeft.IsZero() && c.TopRight.IsZero() &&
		c.BottomRight.IsZero() && c.BottomLeft.IsZero()
}

// InnerRect returns the largest pixel-aligned rectangle inside outer that
// does not intersect the bounding box of any rounded corner.
//
// The inner edges are snapped outward from the corners (ceil on the left and
// top, floor on the right and bottom). The result may touch an edge of outer
// when both corners on that side are square. ok is false when the corner
// boxes of opposite sides overlap, or when outer is empty.
func InnerRect(outer Rect, radii CornerRadii) (inner Rect, ok bool) {
	if outer.IsEmpty() {
		return Rect{}, false
	}

	w, h := outer.Width(), outer.Height()

	tl, tr := corner(radii.TopLeft), corner(radii.TopRight)
	br, bl := corner(radii.BottomRight), corner(radii.BottomLeft)

	xl := math.Ceil(math.Max(tl.W, bl.W))
	xr := math.Floor(w - math.Max(tr.W, br.W))
	yt := math.Ceil(math.Max(tl.H, tr.H))
	yb := math.Floor(h - math.Max(bl.H, br.H))

	if !(xl <= xr && yt <= yb) {
		return Rect{}, false
	}

	// Snapping can push a side past outer when outer itself is not
	// pixel aligned.
	inner = R(
		math.Min(outer.Min.X+xl, outer.Max.X),
		math.Min(outer.Min.Y+yt, outer.Max.Y),
		math.Max(outer.Min.X+xr, outer.Min.X),
		math.Max(outer.Min.Y+yb, outer.Min.Y),
	)
	if inner.Max.X < inner.Min.X || inner.Max.Y < inner.Min.Y {
		return Rect{}, false
	}
	return inner, true
}

// corner maps a square corner (including NaN radii) to the zero Size.
func corner(s Size) Size {
	if s.IsZero() {
		return Size{}
	}
	return s
}
