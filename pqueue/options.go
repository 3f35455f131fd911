package pqueue

import (
	"go.uber.org/zap"
)

// queueConfig - Optional configuration collected from Option functions
type queueConfig struct {
	logger       *zap.Logger
	elementEqual any
}

// Option - Configures optional behaviour of a PriorityQueue at construction time
type Option func(*queueConfig)

// WithLogger - Sets a logger that receives debug events such as storage growth
func WithLogger(logger *zap.Logger) Option {
	return func(c *queueConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithElementEqual - Sets the equality predicate used by Remove to find an element.
// The type parameter must match the element type of the queue being created.
func WithElementEqual[E any](equal func(a, b E) bool) Option {
	return func(c *queueConfig) {
		if equal != nil {
			c.elementEqual = equal
		}
	}
}

// newQueueConfig - Applies options on top of defaults
func newQueueConfig(opts []Option) *queueConfig {
	c := &queueConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
