// Package registry keeps the trees handed out to foreign callers behind integer
// handles and translates tree errors into the status codes of the C boundary.
package registry

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vatsimnerd/quadtree"
)

var (
	log = logrus.WithField("module", "registry")

	ErrNullHandle = errors.New("registry: null or unknown handle")
)

// Handle identifies a tree owned by a foreign caller. The zero Handle is never
// issued.
type Handle uintptr

// Status is the result of an insert as seen from C.
type Status int

const (
	StatusOK          Status = 0
	StatusNullHandle  Status = -1
	StatusOutOfBounds Status = -2
	StatusMaxDepth    Status = -3
	StatusInternal    Status = -4
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullHandle:
		return "null handle"
	case StatusOutOfBounds:
		return "out of bounds"
	case StatusMaxDepth:
		return "max depth"
	case StatusInternal:
		return "internal error"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by the registry or a tree to a Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNullHandle):
		return StatusNullHandle
	case errors.Is(err, quadtree.ErrOutOfBounds):
		return StatusOutOfBounds
	case errors.Is(err, quadtree.ErrMaxDepth):
		return StatusMaxDepth
	default:
		log.WithField("func", "StatusOf").WithError(err).Error("unexpected error")
		return StatusInternal
	}
}

// Registry maps handles to trees. The map itself is safe for concurrent use;
// the trees are not, so callers must not use one handle from two threads at
// once.
type Registry struct {
	trees map[Handle]*quadtree.Quadtree
	next  Handle
	lock  sync.RWMutex
}

func New() *Registry {
	return &Registry{
		trees: make(map[Handle]*quadtree.Quadtree),
	}
}

// Create builds a tree over boundary and returns its handle. A zero capacity
// selects the default.
func (r *Registry) Create(boundary quadtree.Rect, capacity int) (Handle, error) {
	qt, err := quadtree.NewWithCapacity(boundary, capacity)
	if err != nil {
		return 0, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.next++
	h := r.next
	r.trees[h] = qt

	log.WithFields(logrus.Fields{
		"func":    "Create",
		"handle":  h,
		"tree_id": qt.ID(),
	}).Debug("tree registered")
	return h, nil
}

// Release drops the tree behind h. It reports false for a handle that is not
// live, which includes handles already released.
func (r *Registry) Release(h Handle) bool {
	l := log.WithFields(logrus.Fields{
		"func":   "Release",
		"handle": h,
	})

	r.lock.Lock()
	defer r.lock.Unlock()
	if _, found := r.trees[h]; !found {
		l.Warn("release of unknown handle")
		return false
	}
	delete(r.trees, h)
	l.Debug("tree released")
	return true
}

func (r *Registry) Get(h Handle) (*quadtree.Quadtree, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	qt, found := r.trees[h]
	if !found {
		return nil, errors.Wrapf(ErrNullHandle, "handle %d", h)
	}
	return qt, nil
}

// Insert stores a point carrying payload in the tree behind h. The payload is
// an address or any other token chosen by the caller; it is kept as an integer
// and never dereferenced. Zero means no payload.
func (r *Registry) Insert(h Handle, x, y float32, payload uintptr) Status {
	qt, err := r.Get(h)
	if err != nil {
		return StatusOf(err)
	}

	p := quadtree.NewPoint(x, y)
	if payload != 0 {
		p.Payload = payload
	}
	return StatusOf(qt.Insert(p))
}

// Query returns the payloads of the points near (x, y). Points inserted
// without a payload contribute a zero entry.
func (r *Registry) Query(h Handle, x, y, radius float32) ([]uintptr, Status) {
	qt, err := r.Get(h)
	if err != nil {
		return nil, StatusOf(err)
	}

	points := qt.Query(quadtree.NewPoint(x, y), radius)
	payloads := make([]uintptr, len(points))
	for i, p := range points {
		if token, ok := p.Payload.(uintptr); ok {
			payloads[i] = token
		}
	}
	return payloads, StatusOK
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.trees)
}
