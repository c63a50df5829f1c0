package gomap

// MapOption is an option for controlling the mapping process from Go to IR.
type MapOption interface {
	applyMap(*mapConfig)
}

type mapOptFunc func(*mapConfig)

func (f mapOptFunc) applyMap(c *mapConfig) { f(c) }

// mapConfig holds configuration for the mapping process.
type mapConfig struct {
	// TagKey is the struct tag key holding field directives.
	TagKey string

	// Enums maps integer types implementing fmt.Stringer to their names.
	Enums bool
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{
		TagKey: DefaultTagKey,
		Enums:  true,
	}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

const DefaultTagKey = "jdoc"

// MapTagKey sets the struct tag key read for directives.
func MapTagKey(key string) MapOption {
	return mapOptFunc(func(c *mapConfig) { c.TagKey = key })
}

// MapEnums controls whether integer kinds implementing fmt.Stringer are
// mapped to strings.  It is on by default.
func MapEnums(v bool) MapOption {
	return mapOptFunc(func(c *mapConfig) { c.Enums = v })
}
