package chaintable

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultCapacity is the number of buckets a table starts
	// with when WithCapacity is not given.
	DefaultCapacity = 3

	// DefaultLoadFactor is the growth threshold used when
	// WithLoadFactor is not given.
	DefaultLoadFactor = 0.75
)

type config struct {
	capacity   int
	loadFactor float64
	logger     *zap.Logger
}

// Option configures a table created by [New].
type Option func(*config)

// WithCapacity sets the initial number of buckets.
// It must be positive.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLoadFactor sets the ratio of entries to buckets at which the
// table doubles its capacity. It must be positive and finite.
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}

// WithLogger sets the logger used to report resizes and clears
// at debug level. A nil logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
	}
	for _, o := range opts {
		o(&c)
	}
	if c.capacity <= 0 {
		return config{}, errors.Wrapf(ErrInvalidArgument, "chaintable: capacity %d is not positive", c.capacity)
	}
	// !(f > 0) also catches NaN.
	if !(c.loadFactor > 0) || math.IsInf(c.loadFactor, 1) {
		return config{}, errors.Wrapf(ErrInvalidArgument, "chaintable: load factor %v is not a positive finite number", c.loadFactor)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}
