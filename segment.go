package segment

import (
	"fmt"
	"strings"
)

// EdgeFlags marks which sides of a segment lie on the outer boundary of the
// primitive's visible area. Renderers apply anti-aliasing only on flagged
// edges; unflagged edges abut another segment.
type EdgeFlags uint8

const (
	EdgeLeft EdgeFlags = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	EdgeNone EdgeFlags = 0
	EdgeAll            = EdgeLeft | EdgeTop | EdgeRight | EdgeBottom
)

// Has reports whether all flags in f are set.
func (e EdgeFlags) Has(f EdgeFlags) bool {
	return e&f == f
}

// String returns a "|"-separated list of the set flags, e.g. "LEFT|TOP".
func (e EdgeFlags) String() string {
	if e == EdgeNone {
		return "NONE"
	}
	var parts []string
	for _, f := range []struct {
		flag EdgeFlags
		name string
	}{
		{EdgeLeft, "LEFT"},
		{EdgeTop, "TOP"},
		{EdgeRight, "RIGHT"},
		{EdgeBottom, "BOTTOM"},
	} {
		if e&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	if rest := e &^ EdgeAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// Segment is one cell of a primitive's segmentation. Within a segment the
// set of overlapping clip shapes is constant.
type Segment struct {
	// Rect is the segment's area in local primitive space.
	Rect Rect

	// HasMask is true if any clip shape active over Rect needs a
	// per-pixel clip mask sample.
	HasMask bool

	// EdgeFlags marks the sides of Rect on the outer boundary.
	EdgeFlags EdgeFlags
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("Segment{(%g,%g)-(%g,%g) mask=%t edges=%s}",
		s.Rect.Min.X, s.Rect.Min.Y, s.Rect.Max.X, s.Rect.Max.Y, s.HasMask, s.EdgeFlags)
}
