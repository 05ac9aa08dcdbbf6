package quadtree

import "testing"

func TestWithin(t *testing.T) {
	cases := []struct {
		name      string
		p         Point
		center    Point
		radius    float32
		compat    bool
		euclidean bool
	}{
		{"same point", NewPoint(5, 5), NewPoint(5, 5), 0, true, true},
		{"inside circle", NewPoint(5, 5), NewPoint(6, 5), 2, true, true},
		{"manhattan shortcut", NewPoint(1, 1), NewPoint(10, 10), 5, true, false},
		{"far on x", NewPoint(4, 6), NewPoint(0, 0), 3, false, false},
		{"small radius inside", NewPoint(0.3, 0.1), NewPoint(0, 0), 0.5, true, true},
		{"small radius outside", NewPoint(0.4, 0.4), NewPoint(0, 0), 0.5, false, false},
		{"outside", NewPoint(1, 1), NewPoint(3, 3), 1, false, false},
	}

	for _, c := range cases {
		if got := c.p.Within(c.center, c.radius, ProximityCompat); got != c.compat {
			t.Errorf("%s: compat is expected to be %v, got %v", c.name, c.compat, got)
		}
		if got := c.p.Within(c.center, c.radius, ProximityEuclidean); got != c.euclidean {
			t.Errorf("%s: euclidean is expected to be %v, got %v", c.name, c.euclidean, got)
		}
	}
}

func TestPointBounds(t *testing.T) {
	b := NewPoint(3, 4).Bounds()
	if b.PointCoord(0) >= 3 || b.PointCoord(1) >= 4 {
		t.Errorf("bounds are expected to surround the point, got %v", b)
	}
	if b.LengthsCoord(0) <= 0 || b.LengthsCoord(1) <= 0 {
		t.Errorf("bounds are expected to have positive lengths, got %v", b)
	}
}
