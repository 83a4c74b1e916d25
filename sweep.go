package segment

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// sweep walks the sorted y events and, for every row between two distinct
// y coordinates, the sorted x events, emitting one candidate cell between
// each pair of distinct x coordinates. It returns the number of segments
// passed to sink.
//
// All coordinates are clamped to bounds, so items reaching outside the
// bounding rect still take part but never produce cells outside it. Active
// flags are toggled after the cell to the left of (or above) the event has
// been emitted.
func sweep(items []clipItem, bounds fixed.Rectangle26_6, xs, ys []event, sink func(Segment)) int {
	if len(xs) == 0 || len(ys) == 0 {
		return 0
	}

	n := 0
	prevY := clampFixed(ys[0].coord, bounds.Min.Y, bounds.Max.Y)
	for _, ey := range ys {
		curY := clampFixed(ey.coord, bounds.Min.Y, bounds.Max.Y)

		if curY != prevY {
			prevX := clampFixed(xs[0].coord, bounds.Min.X, bounds.Max.X)
			for _, ex := range xs {
				curX := clampFixed(ex.coord, bounds.Min.X, bounds.Max.X)

				if curX != prevX {
					if seg, ok := emitSegment(items, bounds, prevX, prevY, curX, curY); ok {
						sink(seg)
						n++
					}
					prevX = curX
				}

				ex.apply(&items[ex.item].activeX)
			}
			prevY = curY
		}

		ey.apply(&items[ey.item].activeY)
	}
	return n
}

// emitSegment builds the segment for the cell [x0,x1)×[y0,y1) from the
// current active flags. ok is false when an active hard ClipOut item hides
// the whole cell.
func emitSegment(items []clipItem, bounds fixed.Rectangle26_6, x0, y0, x1, y1 fixed.Int26_6) (seg Segment, ok bool) {
	if x1 <= x0 || y1 <= y0 {
		panic(fmt.Sprintf("segment: degenerate cell (%v,%v)-(%v,%v)", x0, y0, x1, y1))
	}

	// Soft ClipOut items count towards the mask too: the mask is what
	// decides which of their pixels get removed.
	hasMask := false
	for i := range items {
		it := &items[i]
		if !it.activeX || !it.activeY {
			continue
		}
		hasMask = hasMask || it.hasMask
		if it.mode == ClipOut && !it.hasMask {
			return Segment{}, false
		}
	}

	var edges EdgeFlags
	if x0 == bounds.Min.X {
		edges |= EdgeLeft
	}
	if x1 == bounds.Max.X {
		edges |= EdgeRight
	}
	if y0 == bounds.Min.Y {
		edges |= EdgeTop
	}
	if y1 == bounds.Max.Y {
		edges |= EdgeBottom
	}

	return Segment{
		Rect:      fromFixedRect(rect26(x0, y0, x1, y1)),
		HasMask:   hasMask,
		EdgeFlags: edges,
	}, true
}
