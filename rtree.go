package quadtree

import (
	"github.com/dhconnelly/rtreego"
	"github.com/sirupsen/logrus"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// ToRTree loads every stored point into a new two-dimensional rtreego tree,
// for lookups the quadtree does not answer itself such as nearest neighbours.
// The stored objects are Point values.
func (q *Quadtree) ToRTree() *rtreego.Rtree {
	objs := make([]rtreego.Spatial, 0, q.Len())
	q.Walk(func(p Point) {
		objs = append(objs, p)
	})

	log.WithFields(logrus.Fields{
		"func":    "ToRTree",
		"tree_id": q.shared.id,
	}).Debugf("loading %d points", len(objs))
	return rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, objs...)
}

// SearchRect returns the points of an rtreego tree built by ToRTree that lie
// in r and pass every filter. Unlike Query it uses the closed rectangle.
func SearchRect(tree *rtreego.Rtree, r Rect, filters ...Filter) []Point {
	spatials := tree.SearchIntersect(r.ToRTreeRect(), FilterList(filters).toRTreeGoFilterList()...)
	minX, minY := r.Min()
	maxX, maxY := r.Max()
	points := make([]Point, 0, len(spatials))
	for _, spatial := range spatials {
		p, ok := spatial.(Point)
		if !ok {
			continue
		}
		// the boxes standing in for points are slightly larger than the points
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			continue
		}
		points = append(points, p)
	}
	return points
}
