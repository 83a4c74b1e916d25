package segment

// BuilderOption configures a Builder during creation.
//
// Example:
//
//	b := segment.NewBuilder(local, clip, segment.WithItemCapacity(32))
type BuilderOption func(*builderOptions)

// defaultItemCapacity covers the two constructor rects plus one rounded
// clip split into nine items, the most common case.
const defaultItemCapacity = 12

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	itemCapacity int
	cull         bool
}

// defaultBuilderOptions returns the default builder options.
func defaultBuilderOptions() builderOptions {
	return builderOptions{
		itemCapacity: defaultItemCapacity,
		cull:         true,
	}
}

// WithItemCapacity pre-allocates room for n clip items. Values <= 0 keep
// the default.
func WithItemCapacity(n int) BuilderOption {
	return func(o *builderOptions) {
		if n > 0 {
			o.itemCapacity = n
		}
	}
}

// WithoutCulling keeps clip items that do not overlap the final bounding
// rect in the sweep. The output is identical; only the amount of work
// changes. Mostly useful for testing.
func WithoutCulling() BuilderOption {
	return func(o *builderOptions) {
		o.cull = false
	}
}
