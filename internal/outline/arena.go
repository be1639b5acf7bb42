package outline

import "iter"

// IntPoint is a vertex in clipper integer coordinates. Y grows downwards.
type IntPoint struct {
	X, Y int64
}

// PointRef addresses an OutPt inside an Arena.
type PointRef int

// NoPoint is the PointRef of an empty ring.
const NoPoint PointRef = -1

// OutPt is a node of an outline's circular, doubly-linked point ring.
type OutPt struct {
	Idx  int // Idx of the owning outline
	Pt   IntPoint
	Next PointRef
	Prev PointRef
}

type slot struct {
	rec  Record
	live bool
}

// Arena owns every record, point and poly-node created during one clipping
// pass.
type Arena struct {
	gen    uint32
	slots  []*slot
	points []OutPt
	root   *PolyNode
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{gen: 1, root: newRoot()}
}

// Create allocates a new slot holding initial and returns a live handle to
// it. The record starts in StateUnset with an empty point ring regardless of
// initial.
func (a *Arena) Create(initial Record) Handle {
	rec := initial
	rec.state = StateUnset
	rec.pts = NoPoint
	rec.bottomPt = NoPoint
	rec.polyNode = nil

	a.slots = append(a.slots, &slot{rec: rec, live: true})
	return Handle{arena: a, index: len(a.slots) - 1, gen: a.gen}
}

// New allocates an empty record whose Idx is its slot index.
func (a *Arena) New() Handle {
	return a.Create(Record{Idx: len(a.slots)})
}

// Len returns the number of slots, including cleared ones.
func (a *Arena) Len() int { return len(a.slots) }

// Outlines yields a handle for every live slot in creation order.
func (a *Arena) Outlines() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for i, s := range a.slots {
			if !s.live {
				continue
			}
			if !yield(Handle{arena: a, index: i, gen: a.gen}) {
				return
			}
		}
	}
}

// Point returns the ring node at ref.
func (a *Arena) Point(ref PointRef) (OutPt, bool) {
	if ref < 0 || int(ref) >= len(a.points) {
		return OutPt{}, false
	}
	return a.points[ref], true
}

// PolyTree returns the root of the result tree. The root carries no contour.
func (a *Arena) PolyTree() *PolyNode { return a.root }

// Reset discards every record, point and poly-node. Handles created before
// the reset report IsNull afterwards.
func (a *Arena) Reset() {
	a.gen++
	a.slots = nil
	a.points = nil
	a.root = newRoot()
}

// ring walks the point ring starting at head.
func (a *Arena) ring(head PointRef) []IntPoint {
	if head == NoPoint {
		return nil
	}
	var pts []IntPoint
	for ref := head; ; {
		op := a.points[ref]
		pts = append(pts, op.Pt)
		ref = op.Next
		if ref == head {
			break
		}
	}
	return pts
}

// bottomPoint returns the ring node with the greatest Y, preferring the
// smallest X on ties.
func (a *Arena) bottomPoint(head PointRef) PointRef {
	if head == NoPoint {
		return NoPoint
	}
	best := head
	for ref := a.points[head].Next; ref != head; ref = a.points[ref].Next {
		p, b := a.points[ref].Pt, a.points[best].Pt
		if p.Y > b.Y || (p.Y == b.Y && p.X < b.X) {
			best = ref
		}
	}
	return best
}
