package segment

import (
	"cmp"
	"slices"

	"golang.org/x/image/math/fixed"
)

// eventKind distinguishes the two edges of an item on one axis.
// The numeric order is the sort order at equal coordinates.
type eventKind uint8

const (
	eventEnd eventKind = iota
	eventBegin
)

// event toggles one item's active flag on one axis.
type event struct {
	coord fixed.Int26_6
	item  int // index into Builder.items
	kind  eventKind
}

// compareEvents orders by coordinate, then End before Begin. An item that
// ends where another begins is therefore released first, so the cell on
// either side of that coordinate sees disjoint active sets and no
// zero-width cell or T-junction is produced there.
func compareEvents(a, b event) int {
	if c := cmp.Compare(a.coord, b.coord); c != 0 {
		return c
	}
	return cmp.Compare(a.kind, b.kind)
}

// sortEvents sorts in place. The sort is stable so that events with equal
// keys keep item insertion order and the output order is deterministic.
func sortEvents(events []event) {
	slices.SortStableFunc(events, compareEvents)
}

// appendEvents appends the x and y events of item i.
func appendEvents(xs, ys []event, i int, r fixed.Rectangle26_6) ([]event, []event) {
	xs = append(xs,
		event{coord: r.Min.X, item: i, kind: eventBegin},
		event{coord: r.Max.X, item: i, kind: eventEnd},
	)
	ys = append(ys,
		event{coord: r.Min.Y, item: i, kind: eventBegin},
		event{coord: r.Max.Y, item: i, kind: eventEnd},
	)
	return xs, ys
}

// apply sets the item's flag on the axis the event belongs to.
func (e event) apply(active *bool) {
	*active = e.kind == eventBegin
}
