package segment

import "testing"

func TestAppendRoundedItems(t *testing.T) {
	tests := []struct {
		name       string
		outer      Rect
		radii      CornerRadii
		wantItems  int
		wantMasked int
	}{
		{"nine patch", R(0, 0, 40, 40), UniformRadii(8), 9, 4},
		{"degenerate radii", R(0, 0, 40, 40), UniformRadii(30), 1, 1},
		{"square corners", R(0, 0, 40, 40), CornerRadii{}, 1, 0},
		{"top corners only", R(0, 0, 40, 40), CornerRadii{TopLeft: Sz(5, 5), TopRight: Sz(5, 5)}, 6, 2},
		{"radii meet", R(0, 0, 10, 10), UniformRadii(5), 4, 4},
		{"empty outer", R(0, 0, 0, 10), UniformRadii(2), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := appendRoundedItems(nil, tt.outer, tt.radii, ClipOut)
			if len(items) != tt.wantItems {
				t.Fatalf("got %d items, want %d", len(items), tt.wantItems)
			}

			masked := 0
			var area float64
			for _, it := range items {
				if it.hasMask {
					masked++
				}
				if it.mode != ClipOut {
					t.Errorf("item mode = %v, want ClipOut", it.mode)
				}
				r := fromFixedRect(it.rect)
				if r.IsEmpty() {
					t.Errorf("empty item %v", r)
				}
				area += r.Area()
			}
			if masked != tt.wantMasked {
				t.Errorf("got %d masked items, want %d", masked, tt.wantMasked)
			}
			if tt.wantItems > 0 && area != tt.outer.Area() {
				t.Errorf("items cover %v, want %v", area, tt.outer.Area())
			}
		})
	}
}

func TestAppendRoundedItemsOrder(t *testing.T) {
	items := appendRoundedItems(nil, R(0, 0, 30, 30), UniformRadii(10), Clip)
	want := []Rect{
		R(0, 0, 10, 10),
		R(20, 0, 30, 10),
		R(20, 20, 30, 30),
		R(0, 20, 10, 30),
		R(10, 0, 20, 10),
		R(20, 10, 30, 20),
		R(10, 20, 20, 30),
		R(0, 10, 10, 20),
		R(10, 10, 20, 20),
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		if got := fromFixedRect(items[i].rect); got != w {
			t.Errorf("item %d = %v, want %v", i, got, w)
		}
		if wantMask := i < 4; items[i].hasMask != wantMask {
			t.Errorf("item %d hasMask = %v, want %v", i, items[i].hasMask, wantMask)
		}
	}
}

func TestAppendRectItemSkipsEmpty(t *testing.T) {
	items := appendRectItem(nil, toFixedRect(R(5, 5, 5, 9)), Clip)
	if len(items) != 0 {
		t.Errorf("got %d items for a zero-width rect, want 0", len(items))
	}
	items = appendRectItem(items, toFixedRect(R(0, 0, 1, 1)), ClipOut)
	if len(items) != 1 || items[0].hasMask {
		t.Errorf("got %+v, want one unmasked item", items)
	}
}

func TestClipModeString(t *testing.T) {
	tests := []struct {
		mode ClipMode
		want string
	}{
		{Clip, "Clip"},
		{ClipOut, "ClipOut"},
		{ClipMode(7), "ClipMode(?)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("ClipMode(%d).String() = %q, want %q", uint8(tt.mode), got, tt.want)
		}
	}
}
