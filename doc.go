// Package segment splits a rectangular rendering primitive into
// axis-aligned segments according to the clip shapes applied to it.
//
// # Overview
//
// A primitive drawn through a clip chain usually needs a per-pixel clip
// mask only near curved boundaries. The segment builder cuts the primitive
// into rectangles such that, within each rectangle, the set of overlapping
// clip shapes is constant. Each segment then says whether it needs a mask
// sample (HasMask) and which of its sides lie on the outer boundary of the
// visible area (EdgeFlags), where anti-aliasing has to be applied.
//
// # Quick Start
//
//	b := segment.NewBuilder(localRect, localClipRect)
//	radii := segment.UniformRadii(8)
//	b.Push(segment.R(20, 20, 200, 120), &radii, segment.Clip)
//	b.PushRect(segment.R(60, 40, 90, 70), segment.ClipOut)
//
//	b.Build(func(s segment.Segment) {
//		// draw s.Rect, sampling the clip mask only if s.HasMask
//	})
//
// # Algorithm
//
// Clip shapes become clip items: plain rectangles map to one item, rounded
// rectangles to a nine-patch of four masked corners and five unmasked
// cells (see InnerRect). Build sorts the begin and end coordinates of every
// item on both axes and sweeps rows top to bottom, cells left to right.
// Cells covered by a hard ClipOut are dropped. All sweep arithmetic uses
// 26.6 fixed point, so boundary tests are exact and adjacent segments share
// full edges.
//
// # GPU Encoding
//
// AppendInstances packs segments into an instance buffer described by
// InstanceLayout, matching the reference WGSL shader returned by
// ShaderSource.
//
// # Caching
//
// Primitives are often rebuilt every frame with the same clip chain.
// Cache replays previous segmentations keyed by the exact builder state.
//
// # Logging
//
// The package is silent by default. Use SetLogger to enable diagnostics.
package segment
