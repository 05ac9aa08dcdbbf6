package quadtree

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// Rect is an axis-aligned region described by its center (X, Y) and its
// half-extents W and H. The region spans 2*W horizontally and 2*H vertically.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

func MakeRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether p lies inside r. Low edges are open and high edges
// are closed, so a point on an edge shared by two quadrants belongs to exactly
// one of them.
func (r Rect) Contains(p Point) bool {
	return p.X > r.X-r.W &&
		p.X <= r.X+r.W &&
		p.Y > r.Y-r.H &&
		p.Y <= r.Y+r.H
}

// Min returns the low corner of r.
func (r Rect) Min() (float32, float32) {
	return r.X - r.W, r.Y - r.H
}

// Max returns the high corner of r.
func (r Rect) Max() (float32, float32) {
	return r.X + r.W, r.Y + r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("rect{center: (%g, %g), half: (%g, %g)}", r.X, r.Y, r.W, r.H)
}

func (r Rect) ToRTreeRect() rtreego.Rect {
	minX, minY := r.Min()
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(minX), float64(minY)},
		[]float64{float64(2 * r.W), float64(2 * r.H)},
	)
	if err != nil {
		// degenerate extents
		rect = rtreego.Point{float64(r.X), float64(r.Y)}.ToRect(pointTolerance)
	}
	return rect
}

// quadrants splits r into four rects of half the extents, in NW, NE, SW, SE
// order.
func (r Rect) quadrants() [4]Rect {
	w := r.W / 2
	h := r.H / 2
	return [4]Rect{
		MakeRect(r.X+w, r.Y-h, w, h),
		MakeRect(r.X-w, r.Y-h, w, h),
		MakeRect(r.X+w, r.Y+h, w, h),
		MakeRect(r.X-w, r.Y+h, w, h),
	}
}

// splitsExactly reports whether the quadrants of r share their edges with r
// and with each other when computed in float32. Once halving rounds, the
// quadrants leave gaps and r must not be split any further.
func (r Rect) splitsExactly() bool {
	minX, minY := r.Min()
	maxX, maxY := r.Max()
	for i, q := range r.quadrants() {
		loX, hiX := r.X, maxX
		if i%2 == 1 {
			loX, hiX = minX, r.X
		}
		loY, hiY := minY, r.Y
		if i >= 2 {
			loY, hiY = r.Y, maxY
		}
		qMinX, qMinY := q.Min()
		qMaxX, qMaxY := q.Max()
		if qMinX != loX || qMaxX != hiX || qMinY != loY || qMaxY != hiY {
			return false
		}
	}
	return minX < r.X && r.X < maxX && minY < r.Y && r.Y < maxY
}
