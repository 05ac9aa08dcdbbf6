package quadtree

import "github.com/dhconnelly/rtreego"

// Filter narrows a query. A point is returned only if every filter accepts it.
type Filter func(p Point) bool
type FilterList []Filter

func (fl FilterList) match(p Point) bool {
	for _, f := range fl {
		if !f(p) {
			return false
		}
	}
	return true
}

func (f Filter) toRTreeGoFilter() rtreego.Filter {
	return func(results []rtreego.Spatial, object rtreego.Spatial) (refuse bool, abort bool) {
		p, ok := object.(Point)
		refuse = !ok || !f(p)
		return
	}
}

func (fl FilterList) toRTreeGoFilterList() []rtreego.Filter {
	if fl == nil {
		return []rtreego.Filter{}
	}
	filters := make([]rtreego.Filter, len(fl))
	for i := 0; i < len(fl); i++ {
		filters[i] = fl[i].toRTreeGoFilter()
	}
	return filters
}

// FltHasPayload accepts points that carry a payload.
func FltHasPayload(p Point) bool {
	return p.Payload != nil
}

// FltInside accepts points contained in r.
func FltInside(r Rect) Filter {
	return func(p Point) bool {
		return r.Contains(p)
	}
}
