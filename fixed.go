// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package segment

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Sweep coordinates are 26.6 fixed point (1/64 px). Equality tests on
// coordinates and on bounding edges must be exact, which float64 cannot
// guarantee after intersection and clamping.

// maxCoord bounds the magnitude of any coordinate entering the fixed-point
// domain. At 2^24 px the 26.6 value still leaves headroom in an int32 for
// differences between two coordinates.
const maxCoord = 1 << 24

// toFixed converts a float coordinate to 26.6 fixed point, rounding to the
// nearest 1/64 px. Out-of-range values saturate; NaN maps to zero.
func toFixed(v float64) fixed.Int26_6 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxCoord:
		v = maxCoord
	case v < -maxCoord:
		v = -maxCoord
	}
	return fixed.Int26_6(math.Round(v * 64))
}

// fromFixed converts a 26.6 fixed-point coordinate back to float64.
// The conversion is exact.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// toFixedRect converts r to fixed point. The result may be empty even if r
// is not, when r is thinner than 1/64 px.
func toFixedRect(r Rect) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(r.Min.X), Y: toFixed(r.Min.Y)},
		Max: fixed.Point26_6{X: toFixed(r.Max.X), Y: toFixed(r.Max.Y)},
	}
}

// fromFixedRect converts a fixed-point rectangle back to float64.
func fromFixedRect(r fixed.Rectangle26_6) Rect {
	return Rect{
		Min: Point{X: fromFixed(r.Min.X), Y: fromFixed(r.Min.Y)},
		Max: Point{X: fromFixed(r.Max.X), Y: fromFixed(r.Max.Y)},
	}
}

// clampFixed limits v to [lo, hi].
func clampFixed(v, lo, hi fixed.Int26_6) fixed.Int26_6 {
	return min(max(v, lo), hi)
}
