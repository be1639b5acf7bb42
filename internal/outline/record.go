package outline

import "fmt"

// State is the lifecycle stage of an outline record.
type State int

const (
	StateUnset State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Record is one output boundary of a clipping pass. The exported fields may be
// changed freely through a Handle; the point ring and the values derived from
// it are only reachable through the lifecycle methods.
type Record struct {
	Idx    int
	IsHole bool

	// IsOpen marks an open polyline result rather than a closed polygon. It is
	// unrelated to StateOpen.
	IsOpen bool

	// FirstLeft is the nearest outline that contains this one.
	FirstLeft Handle

	state    State
	pts      PointRef
	bottomPt PointRef
	polyNode *PolyNode
}

// State returns the lifecycle stage of the record.
func (h Handle) State() (State, error) {
	rec, err := h.Ref()
	if err != nil {
		return StateUnset, err
	}
	return rec.state, nil
}

// Open starts collecting points for the outline.
func (h Handle) Open() error {
	rec, err := h.Ref()
	if err != nil {
		return err
	}
	if rec.state != StateUnset {
		return fmt.Errorf("%w: cannot open outline %d, it is %s", ErrInvalidTransition, rec.Idx, rec.state)
	}
	rec.state = StateOpen
	return nil
}

// AppendPoint adds pt at the end of the outline's point ring.
func (h Handle) AppendPoint(pt IntPoint) (PointRef, error) {
	rec, err := h.Ref()
	if err != nil {
		return NoPoint, err
	}
	if rec.state != StateOpen {
		return NoPoint, fmt.Errorf("%w: cannot append to outline %d, it is %s", ErrInvalidTransition, rec.Idx, rec.state)
	}

	a := h.arena
	ref := PointRef(len(a.points))
	if rec.pts == NoPoint {
		a.points = append(a.points, OutPt{Idx: rec.Idx, Pt: pt, Next: ref, Prev: ref})
		rec.pts = ref
		return ref, nil
	}

	head := rec.pts
	tail := a.points[head].Prev
	a.points = append(a.points, OutPt{Idx: rec.Idx, Pt: pt, Next: head, Prev: tail})
	a.points[tail].Next = ref
	a.points[head].Prev = ref
	return ref, nil
}

// Close finalizes the outline. It computes the bottom point and, when the
// ring has enough points (three for a polygon, two for a polyline), creates
// the poly-node and attaches it under the nearest closed FirstLeft ancestor,
// or under the tree root.
func (h Handle) Close() error {
	rec, err := h.Ref()
	if err != nil {
		return err
	}
	if rec.state != StateOpen {
		return fmt.Errorf("%w: cannot close outline %d, it is %s", ErrInvalidTransition, rec.Idx, rec.state)
	}

	a := h.arena
	rec.bottomPt = a.bottomPoint(rec.pts)

	contour := a.ring(rec.pts)
	minPoints := 3
	if rec.IsOpen {
		minPoints = 2
	}
	if len(contour) >= minPoints {
		node := &PolyNode{
			Contour: contour,
			Index:   rec.Idx,
			IsHole:  rec.IsHole,
			IsOpen:  rec.IsOpen,
		}
		parent := a.root
		if !rec.IsOpen {
			if fl := ParseFirstLeft(rec.FirstLeft); fl.NotNull() {
				if flRec := fl.MustRef(); flRec.state == StateClosed && flRec.polyNode != nil {
					parent = flRec.polyNode
				}
			}
		}
		parent.AddChild(node)
		rec.polyNode = node
	}

	rec.state = StateClosed
	return nil
}

// Points returns the ring's points in append order.
func (h Handle) Points() ([]IntPoint, error) {
	rec, err := h.Ref()
	if err != nil {
		return nil, err
	}
	return h.arena.ring(rec.pts), nil
}

// Head returns the first node of the point ring, or NoPoint for an empty ring.
func (h Handle) Head() (PointRef, error) {
	rec, err := h.Ref()
	if err != nil {
		return NoPoint, err
	}
	return rec.pts, nil
}

// BottomPt returns the ring node with the greatest Y. It is only defined once
// the outline is closed; an empty ring yields NoPoint.
func (h Handle) BottomPt() (PointRef, error) {
	rec, err := h.closed("bottom point")
	if err != nil {
		return NoPoint, err
	}
	return rec.bottomPt, nil
}

// PolyNode returns the result-tree node of a closed outline. It is nil when the
// ring had too few points to form a contour.
func (h Handle) PolyNode() (*PolyNode, error) {
	rec, err := h.closed("poly node")
	if err != nil {
		return nil, err
	}
	return rec.polyNode, nil
}

func (h Handle) closed(what string) (*Record, error) {
	rec, err := h.Ref()
	if err != nil {
		return nil, err
	}
	if rec.state != StateClosed {
		return nil, fmt.Errorf("%w: %s of outline %d is undefined while %s", ErrInvalidTransition, what, rec.Idx, rec.state)
	}
	return rec, nil
}
