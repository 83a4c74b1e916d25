package segment

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestSortEvents(t *testing.T) {
	events := []event{
		{coord: 128, item: 0, kind: eventEnd},
		{coord: 64, item: 1, kind: eventBegin},
		{coord: 64, item: 2, kind: eventEnd},
		{coord: 0, item: 3, kind: eventBegin},
		{coord: 64, item: 4, kind: eventBegin},
		{coord: 64, item: 5, kind: eventEnd},
	}
	sortEvents(events)

	want := []struct {
		coord fixed.Int26_6
		item  int
	}{
		{0, 3},
		{64, 2}, // ends first, in insertion order
		{64, 5},
		{64, 1},
		{64, 4},
		{128, 0},
	}
	for i, w := range want {
		if events[i].coord != w.coord || events[i].item != w.item {
			t.Errorf("events[%d] = {%d item %d}, want {%d item %d}",
				i, events[i].coord, events[i].item, w.coord, w.item)
		}
	}
}

func TestAppendEvents(t *testing.T) {
	xs, ys := appendEvents(nil, nil, 7, toFixedRect(R(1, 2, 3, 4)))
	if len(xs) != 2 || len(ys) != 2 {
		t.Fatalf("got %d x and %d y events, want 2 and 2", len(xs), len(ys))
	}
	if xs[0] != (event{coord: 64, item: 7, kind: eventBegin}) ||
		xs[1] != (event{coord: 192, item: 7, kind: eventEnd}) {
		t.Errorf("x events = %+v", xs)
	}
	if ys[0] != (event{coord: 128, item: 7, kind: eventBegin}) ||
		ys[1] != (event{coord: 256, item: 7, kind: eventEnd}) {
		t.Errorf("y events = %+v", ys)
	}
}

func TestEventApply(t *testing.T) {
	active := false
	event{kind: eventBegin}.apply(&active)
	if !active {
		t.Error("Begin should activate")
	}
	event{kind: eventBegin}.apply(&active)
	if !active {
		t.Error("repeated Begin should keep the item active")
	}
	event{kind: eventEnd}.apply(&active)
	if active {
		t.Error("End should deactivate")
	}
}
