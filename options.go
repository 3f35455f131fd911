package chainmap

import (
	"go.uber.org/zap"
)

// mapConfig - Optional configuration collected from Option functions
type mapConfig struct {
	logger     *zap.Logger
	valueEqual any
}

// Option - Configures optional behaviour of a HashMap at construction time
type Option func(*mapConfig)

// WithLogger - Sets a logger that receives debug events such as table resizes.
// If not given, or if nil is given, a no-op logger is used.
func WithLogger(logger *zap.Logger) Option {
	return func(c *mapConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithValueEqual - Sets the equality predicate used for values in ContainsValue, Values().Contains and the
// EntrySet operations. The type parameter must match the value type of the map being created.
// If not given, values of comparable types are compared with == and anything else with reflect.DeepEqual.
func WithValueEqual[V any](equal func(a, b V) bool) Option {
	return func(c *mapConfig) {
		if equal != nil {
			c.valueEqual = equal
		}
	}
}

// newMapConfig - Applies options on top of defaults
func newMapConfig(opts []Option) *mapConfig {
	c := &mapConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
