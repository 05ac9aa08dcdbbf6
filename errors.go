package quadtree

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a point lies outside the boundary of the
	// node asked to store it.
	ErrOutOfBounds = errors.New("quadtree: point out of bounds")
	// ErrMaxDepth is returned when a point lands in a full node that may not
	// subdivide any further.
	ErrMaxDepth = errors.New("quadtree: maximum depth reached")
	// ErrInvalidConfig is returned by constructors given an unusable Config.
	ErrInvalidConfig = errors.New("quadtree: invalid config")
)
