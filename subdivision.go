package quadtree

// subdivisions holds the four children of a node that has overflowed. A node
// either has no subdivisions at all or all four.
type subdivisions struct {
	nw *Quadtree
	ne *Quadtree
	sw *Quadtree
	se *Quadtree
}

// newSubdivisions builds four empty children covering the quadrants of
// boundary. Each child inherits capacity and sits one level below depth.
func newSubdivisions(boundary Rect, capacity, depth int, shared *settings) *subdivisions {
	q := boundary.quadrants()
	child := func(r Rect) *Quadtree {
		return newNode(r, capacity, depth+1, shared)
	}
	return &subdivisions{
		nw: child(q[0]),
		ne: child(q[1]),
		sw: child(q[2]),
		se: child(q[3]),
	}
}

// nodes returns the children in NW, NE, SW, SE order.
func (s *subdivisions) nodes() [4]*Quadtree {
	return [4]*Quadtree{s.nw, s.ne, s.sw, s.se}
}
