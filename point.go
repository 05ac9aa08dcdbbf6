package quadtree

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the half side of the rtreego box standing in for a point.
const pointTolerance = 0.001

// Point is a location in the plane carrying an opaque payload. The tree never
// looks inside Payload: it is stored on insert and handed back verbatim by
// queries. A nil Payload means the point carries nothing.
type Point struct {
	X       float32
	Y       float32
	Payload interface{}
}

func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

func NewPointWithPayload(x, y float32, payload interface{}) Point {
	return Point{X: x, Y: y, Payload: payload}
}

// Bounds implements rtreego.Spatial.
func (p Point) Bounds() rtreego.Rect {
	return rtreego.Point{float64(p.X), float64(p.Y)}.ToRect(pointTolerance)
}

// Within reports whether p is within radius of center according to mode.
func (p Point) Within(center Point, radius float32, mode Proximity) bool {
	dx := abs32(p.X - center.X)
	dy := abs32(p.Y - center.Y)
	r2 := radius * radius

	if mode == ProximityEuclidean {
		return dx*dx+dy*dy <= r2
	}

	// Compat: the sum of the deltas is compared against the squared radius
	// before falling through to the circle test.
	if dx+dy <= r2 {
		return true
	}
	if dx > radius {
		return false
	}
	return dx*dx+dy*dy <= r2
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
