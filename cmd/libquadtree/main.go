// Command libquadtree builds the quadtree as a C shared library:
//
//	go build -buildmode=c-shared -o libquadtree.so ./cmd/libquadtree
//
// Trees are referred to by uintptr_t handles, 0 meaning none. Payloads passed
// to quadtree_insert_point are stored as integers, so any pointer-sized token
// works; the library never reads or frees them. The buffer returned by quadtree_query is allocated with
// malloc and belongs to the caller, who releases it with
// quadtree_free_results.
//
// The log level is read from QUADTREE_LOG_LEVEL (logrus level names).
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"math"
	"os"
	"unsafe"

	"github.com/sirupsen/logrus"
	"github.com/vatsimnerd/quadtree"
	"github.com/vatsimnerd/quadtree/internal/registry"
)

var (
	log   = logrus.WithField("module", "libquadtree")
	trees = registry.New()
)

func init() {
	level, found := os.LookupEnv("QUADTREE_LOG_LEVEL")
	if !found {
		logrus.SetLevel(logrus.WarnLevel)
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warn("ignoring QUADTREE_LOG_LEVEL")
		return
	}
	logrus.SetLevel(lvl)
}

//export quadtree_new
func quadtree_new(x, y, w, h C.float, capacity C.uint) C.uintptr_t {
	return C.uintptr_t(newTree(float32(x), float32(y), float32(w), float32(h), uint(capacity)))
}

//export quadtree_free
func quadtree_free(qt C.uintptr_t) {
	trees.Release(registry.Handle(qt))
}

//export quadtree_insert_point
func quadtree_insert_point(qt C.uintptr_t, x, y C.float, data unsafe.Pointer) C.int {
	return C.int(insertPoint(registry.Handle(qt), float32(x), float32(y), uintptr(data)))
}

//export quadtree_query
func quadtree_query(qt C.uintptr_t, x, y, r C.float, count *C.size_t) *unsafe.Pointer {
	// size_t and uintptr_t have the same width on every cgo target
	return (*unsafe.Pointer)(queryResults(registry.Handle(qt), float32(x), float32(y), float32(r), (*uintptr)(unsafe.Pointer(count))))
}

//export quadtree_free_results
func quadtree_free_results(results *unsafe.Pointer) {
	freeResults(unsafe.Pointer(results))
}

func newTree(x, y, w, h float32, capacity uint) registry.Handle {
	if capacity > math.MaxInt {
		capacity = math.MaxInt
	}
	handle, err := trees.Create(quadtree.MakeRect(x, y, w, h), int(capacity))
	if err != nil {
		log.WithError(err).Error("cannot create tree")
		return 0
	}
	return handle
}

func insertPoint(h registry.Handle, x, y float32, data uintptr) registry.Status {
	return trees.Insert(h, x, y, data)
}

// queryResults copies the payloads of the points near (x, y) into a buffer
// allocated with malloc and stores their number in *count. It returns nil and
// a zero count when nothing matches, when h is not live or when count is nil.
func queryResults(h registry.Handle, x, y, r float32, count *uintptr) unsafe.Pointer {
	if count == nil {
		log.WithField("handle", h).Warn("query without a count")
		return nil
	}
	*count = 0

	payloads, status := trees.Query(h, x, y, r)
	if status != registry.StatusOK || len(payloads) == 0 {
		return nil
	}

	buf := C.malloc(C.size_t(len(payloads)) * C.size_t(unsafe.Sizeof(uintptr(0))))
	if buf == nil {
		log.WithField("count", len(payloads)).Error("cannot allocate result buffer")
		return nil
	}
	copy(unsafe.Slice((*uintptr)(buf), len(payloads)), payloads)
	*count = uintptr(len(payloads))
	return buf
}

func freeResults(buf unsafe.Pointer) {
	C.free(buf)
}

func main() {}
