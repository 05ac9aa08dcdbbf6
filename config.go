package quadtree

import (
	"github.com/creasty/defaults"
	"github.com/pkg/errors"
)

// Proximity selects the test used by queries to decide whether a point is near
// the query center.
type Proximity string

const (
	// ProximityCompat accepts a point when the sum of its axis deltas is at
	// most radius squared, and otherwise falls back to the circle test. Small
	// radii therefore accept points outside the circle.
	ProximityCompat Proximity = "compat"
	// ProximityEuclidean accepts exactly the points inside the closed circle.
	ProximityEuclidean Proximity = "euclidean"
)

// Config holds the per-tree settings. Zero fields are replaced by their
// defaults.
type Config struct {
	// Capacity is the number of points a node buffers before it subdivides.
	Capacity int `default:"10"`
	// MaxDepth bounds subdivision. A full node at this depth rejects further
	// points with ErrMaxDepth.
	MaxDepth int `default:"24"`
	// Proximity is the query distance test.
	Proximity Proximity `default:"compat"`
}

func DefaultConfig() Config {
	var cfg Config
	defaults.MustSet(&cfg)
	return cfg
}

func (c *Config) setDefaults() error {
	if err := defaults.Set(c); err != nil {
		return errors.Wrap(err, "apply config defaults")
	}
	return nil
}

// Validate checks a config after defaults have been applied.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "capacity must be positive, got %d", c.Capacity)
	}
	if c.MaxDepth < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max depth must not be negative, got %d", c.MaxDepth)
	}
	switch c.Proximity {
	case ProximityCompat, ProximityEuclidean:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown proximity mode %q", c.Proximity)
	}
	return nil
}
