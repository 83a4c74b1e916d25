package segment

import (
	"math"
	"testing"
)

func TestInnerRect(t *testing.T) {
	tests := []struct {
		name   string
		outer  Rect
		radii  CornerRadii
		want   Rect
		wantOK bool
	}{
		{"uniform", R(20, 20, 60, 60), UniformRadii(10), R(30, 30, 50, 50), true},
		{"square corners", R(0, 0, 10, 10), CornerRadii{}, R(0, 0, 10, 10), true},
		{"fractional radii snap outward", R(0, 0, 20, 20), UniformRadii(2.5), R(3, 3, 17, 17), true},
		{
			"single elliptical corner",
			R(0, 0, 10, 10),
			CornerRadii{TopLeft: Sz(4, 2)},
			R(4, 2, 10, 10),
			true,
		},
		{
			"widest corner per side wins",
			R(0, 0, 100, 50),
			CornerRadii{TopLeft: Sz(5, 5), BottomLeft: Sz(12, 3), TopRight: Sz(7, 9), BottomRight: Sz(1, 1)},
			R(12, 9, 93, 47),
			true,
		},
		{"radii meet in the middle", R(0, 0, 10, 10), UniformRadii(5), R(5, 5, 5, 5), true},
		{"radii overlap", R(0, 0, 40, 40), UniformRadii(30), Rect{}, false},
		{"unaligned outer", R(0.5, 0.5, 10.5, 10.5), CornerRadii{}, R(0.5, 0.5, 10.5, 10.5), true},
		{"snapping crosses", R(0, 0, 0.5, 0.5), UniformRadii(0.2), Rect{}, false},
		{"empty outer", R(10, 10, 10, 20), UniformRadii(1), Rect{}, false},
		{"NaN radius is square", R(0, 0, 10, 10), UniformRadii(math.NaN()), R(0, 0, 10, 10), true},
		{"negative radius is square", R(0, 0, 10, 10), UniformRadii(-3), R(0, 0, 10, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InnerRect(tt.outer, tt.radii)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("InnerRect(%v, %v) = %v, %v, want %v, %v", tt.outer, tt.radii, got, ok, tt.want, tt.wantOK)
			}
			if ok && !tt.outer.Contains(got) {
				t.Errorf("inner rect %v escapes outer %v", got, tt.outer)
			}
		})
	}
}

func TestCornerRadiiIsZero(t *testing.T) {
	tests := []struct {
		name  string
		radii CornerRadii
		want  bool
	}{
		{"zero value", CornerRadii{}, true},
		{"uniform", UniformRadii(4), false},
		{"one flat ellipse", CornerRadii{TopRight: Sz(4, 0)}, true},
		{"one corner", CornerRadii{BottomLeft: Sz(1, 2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.radii.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}
