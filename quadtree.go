// Package quadtree implements a point quadtree answering "which points lie
// near this location" queries.
//
// A node buffers up to its capacity of points. When one more point arrives the
// node splits its region into four quadrants once and routes that point, and
// every later one, to the quadrant containing it. Points buffered before the
// split stay where they are.
//
// A Quadtree is not safe for concurrent use. Callers sharing a tree between
// goroutines must serialize access themselves.
package quadtree

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("module", "quadtree")
)

// settings are shared by every node of one tree.
type settings struct {
	id        string
	maxDepth  int
	proximity Proximity
}

type Quadtree struct {
	boundary Rect
	capacity int
	depth    int
	points   []Point
	children *subdivisions
	shared   *settings
}

// New creates an empty tree over boundary using DefaultConfig.
func New(boundary Rect) *Quadtree {
	cfg := DefaultConfig()
	return newTree(boundary, cfg)
}

// NewWithCapacity creates an empty tree over boundary whose nodes buffer
// capacity points. Zero capacity selects the default.
func NewWithCapacity(boundary Rect, capacity int) (*Quadtree, error) {
	return NewWithConfig(boundary, Config{Capacity: capacity})
}

func NewWithConfig(boundary Rect, cfg Config) (*Quadtree, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newTree(boundary, cfg), nil
}

func newTree(boundary Rect, cfg Config) *Quadtree {
	shared := &settings{
		id:        uuid.New().String(),
		maxDepth:  cfg.MaxDepth,
		proximity: cfg.Proximity,
	}
	log.WithFields(logrus.Fields{
		"func":      "newTree",
		"tree_id":   shared.id,
		"boundary":  boundary,
		"capacity":  cfg.Capacity,
		"max_depth": cfg.MaxDepth,
		"proximity": cfg.Proximity,
	}).Debug("tree created")
	return newNode(boundary, cfg.Capacity, 0, shared)
}

func newNode(boundary Rect, capacity, depth int, shared *settings) *Quadtree {
	return &Quadtree{
		boundary: boundary,
		capacity: capacity,
		depth:    depth,
		shared:   shared,
	}
}

// ID returns the identifier the tree is logged under.
func (q *Quadtree) ID() string {
	return q.shared.id
}

func (q *Quadtree) Boundary() Rect {
	return q.boundary
}

func (q *Quadtree) Capacity() int {
	return q.capacity
}

// Subdivided reports whether the node has split into quadrants.
func (q *Quadtree) Subdivided() bool {
	return q.children != nil
}

// Insert stores p in the tree. It fails with ErrOutOfBounds when p lies
// outside the boundary and with ErrMaxDepth when p would have to go below the
// configured maximum depth, or into a node whose quadrants float32 can no
// longer represent. On failure the point is stored nowhere.
func (q *Quadtree) Insert(p Point) error {
	l := log.WithFields(logrus.Fields{
		"func":    "Insert",
		"tree_id": q.shared.id,
		"point":   p,
	})
	l.Trace("perform insert")

	if err := q.insert(p); err != nil {
		l.WithError(err).Debug("insert rejected")
		return err
	}
	return nil
}

func (q *Quadtree) InsertXY(x, y float32, payload interface{}) error {
	return q.Insert(NewPointWithPayload(x, y, payload))
}

func (q *Quadtree) insert(p Point) error {
	if !q.boundary.Contains(p) {
		return errors.Wrapf(ErrOutOfBounds, "point %v outside %v", p, q.boundary)
	}

	if len(q.points) < q.capacity {
		q.points = append(q.points, p)
		return nil
	}

	if q.children == nil {
		if q.depth >= q.shared.maxDepth {
			return errors.Wrapf(ErrMaxDepth, "node %v at depth %d is full", q.boundary, q.depth)
		}
		if !q.boundary.splitsExactly() {
			return errors.Wrapf(ErrMaxDepth, "node %v at depth %d is too small to split", q.boundary, q.depth)
		}
		q.subdivide()
	}

	for _, child := range q.children.nodes() {
		if child.boundary.Contains(p) {
			return child.insert(p)
		}
	}

	// unreachable while quadrants tile their parent exactly
	log.WithFields(logrus.Fields{
		"func":     "insert",
		"tree_id":  q.shared.id,
		"point":    p,
		"boundary": q.boundary,
	}).Error("point rejected by every quadrant")
	return errors.Wrapf(ErrOutOfBounds, "point %v in no quadrant of %v", p, q.boundary)
}

func (q *Quadtree) subdivide() {
	log.WithFields(logrus.Fields{
		"func":     "subdivide",
		"tree_id":  q.shared.id,
		"boundary": q.boundary,
		"depth":    q.depth,
	}).Trace("subdividing node")
	q.children = newSubdivisions(q.boundary, q.capacity, q.depth, q.shared)
}

// Query returns the points near center that pass every filter. Nothing is
// returned when center lies outside the tree's boundary, whatever the radius.
// Within one node points come back in insertion order; a node's points precede
// those of its NW, NE, SW and SE quadrants.
func (q *Quadtree) Query(center Point, radius float32, filters ...Filter) []Point {
	l := log.WithFields(logrus.Fields{
		"func":          "Query",
		"tree_id":       q.shared.id,
		"center":        center,
		"radius":        radius,
		"filters_count": len(filters),
	})

	if !q.boundary.Contains(center) {
		l.Debug("query center outside boundary")
		return nil
	}

	found := q.collect(nil, center, radius, FilterList(filters))
	l.Debugf("found %d points", len(found))
	return found
}

// collect appends the matching points of q and its whole subtree to dst.
// Quadrants are visited whether or not they can hold a match.
func (q *Quadtree) collect(dst []Point, center Point, radius float32, filters FilterList) []Point {
	for _, p := range q.points {
		if p.Within(center, radius, q.shared.proximity) && filters.match(p) {
			dst = append(dst, p)
		}
	}
	if q.children != nil {
		for _, child := range q.children.nodes() {
			dst = child.collect(dst, center, radius, filters)
		}
	}
	return dst
}

// Walk calls fn for every stored point, node points first and then the NW,
// NE, SW and SE quadrants.
func (q *Quadtree) Walk(fn func(p Point)) {
	for _, p := range q.points {
		fn(p)
	}
	if q.children != nil {
		for _, child := range q.children.nodes() {
			child.Walk(fn)
		}
	}
}

// Len returns the number of points stored in the subtree rooted at q.
func (q *Quadtree) Len() int {
	n := len(q.points)
	if q.children != nil {
		for _, child := range q.children.nodes() {
			n += child.Len()
		}
	}
	return n
}

// Depth returns the depth of the deepest node below q, counted from the root
// of the tree.
func (q *Quadtree) Depth() int {
	d := q.depth
	if q.children != nil {
		for _, child := range q.children.nodes() {
			if cd := child.Depth(); cd > d {
				d = cd
			}
		}
	}
	return d
}
