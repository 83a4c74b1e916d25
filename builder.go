package segment

import (
	"encoding/binary"

	"golang.org/x/image/math/fixed"
)

// Builder splits a primitive into segments according to its clip shapes.
//
// A Builder is created with the primitive's local rect and local clip rect,
// receives any number of additional clip shapes through Push, and is then
// consumed by a single call to Build (or Segments). Calling Push or Build
// again after that panics.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	items []clipItem

	// bounding is the intersection of the local rect, the local clip rect
	// and every Clip-mode shape. hasBounds turns false, for good, once that
	// intersection is empty.
	bounding  fixed.Rectangle26_6
	hasBounds bool

	cull     bool
	consumed bool
}

// NewBuilder creates a Builder for a primitive with the given local rect
// and local clip rect. Both are pushed as unrounded Clip shapes.
func NewBuilder(localRect, localClipRect Rect, opts ...BuilderOption) *Builder {
	o := defaultBuilderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Builder{
		items:     make([]clipItem, 0, o.itemCapacity),
		bounding:  toFixedRect(localRect),
		hasBounds: true,
		cull:      o.cull,
	}
	b.PushRect(localRect, Clip)
	b.PushRect(localClipRect, Clip)
	return b
}

// Push adds a clip shape. radii == nil means a plain rectangle; otherwise
// the shape is a rounded rectangle and its corner regions are marked as
// needing a clip mask. Clip-mode shapes also narrow the bounding rect;
// ClipOut shapes never do.
func (b *Builder) Push(r Rect, radii *CornerRadii, mode ClipMode) {
	b.mustBeLive("Push")

	fr := toFixedRect(r)
	if mode == Clip && b.hasBounds {
		b.bounding = b.bounding.Intersect(fr)
		b.hasBounds = !b.bounding.Empty()
	}

	if radii == nil {
		b.items = appendRectItem(b.items, fr, mode)
		return
	}
	b.items = appendRoundedItems(b.items, r, *radii, mode)
}

// PushRect adds a plain rectangular clip shape.
func (b *Builder) PushRect(r Rect, mode ClipMode) {
	b.Push(r, nil, mode)
}

// BoundingRect returns the current bounding rect of the visible area, or
// false if the clip shapes pushed so far leave nothing visible.
func (b *Builder) BoundingRect() (Rect, bool) {
	if !b.hasBounds {
		return Rect{}, false
	}
	return fromFixedRect(b.bounding), true
}

// Build computes the segments and passes each one to sink, in an order
// that is deterministic for a given input but has no spatial meaning.
// The Builder is consumed.
func (b *Builder) Build(sink func(Segment)) {
	b.mustBeLive("Build")
	b.consumed = true
	defer func() { b.items = nil }()

	log := Logger()
	if !b.hasBounds {
		log.Debug("segment: empty bounding rect, nothing to build", "items", len(b.items))
		return
	}
	bounds := b.bounding

	culled := 0
	if b.cull {
		kept := b.items[:0]
		for _, it := range b.items {
			if !it.rect.Intersect(bounds).Empty() {
				kept = append(kept, it)
			}
		}
		culled = len(b.items) - len(kept)
		b.items = kept
	}

	xs := make([]event, 0, 2*len(b.items))
	ys := make([]event, 0, 2*len(b.items))
	for i := range b.items {
		xs, ys = appendEvents(xs, ys, i, b.items[i].rect)
	}
	sortEvents(xs)
	sortEvents(ys)

	n := sweep(b.items, bounds, xs, ys, sink)
	log.Debug("segment: build",
		"items", len(b.items),
		"culled", culled,
		"segments", n,
	)
}

// Segments is like Build but collects the segments into a slice.
func (b *Builder) Segments() []Segment {
	var segs []Segment
	b.Build(func(s Segment) {
		segs = append(segs, s)
	})
	return segs
}

// appendKey appends an exact encoding of everything Build depends on.
// Two builders with equal keys produce identical output.
func (b *Builder) appendKey(dst []byte) []byte {
	var flags byte
	if b.hasBounds {
		flags |= 1
	}
	if b.cull {
		flags |= 2
	}
	dst = append(dst, flags)
	if b.hasBounds {
		dst = appendRect26(dst, b.bounding)
	}
	for _, it := range b.items {
		tag := byte(it.mode) << 1
		if it.hasMask {
			tag |= 1
		}
		dst = append(dst, tag)
		dst = appendRect26(dst, it.rect)
	}
	return dst
}

func appendRect26(dst []byte, r fixed.Rectangle26_6) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(r.Min.X))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(r.Min.Y))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(r.Max.X))
	return binary.LittleEndian.AppendUint32(dst, uint32(r.Max.Y))
}

func (b *Builder) mustBeLive(op string) {
	if b.consumed {
		panic("segment: Builder." + op + " called after Build")
	}
}
