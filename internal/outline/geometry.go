package outline

// ParseFirstLeft follows the FirstLeft chain from h past outlines whose
// point ring is empty, returning the first one that still has points, or a
// null handle.
func ParseFirstLeft(h Handle) Handle {
	// The chain cannot be longer than the arena; stop early on a cycle.
	limit := 0
	if h.arena != nil {
		limit = len(h.arena.slots)
	}
	for i := 0; i <= limit && h.NotNull(); i++ {
		rec := h.MustRef()
		if rec.pts != NoPoint {
			return h
		}
		h = rec.FirstLeft
	}
	return Handle{}
}

// Area returns the signed area of a closed contour. It is positive for a
// contour that turns counter-clockwise in Y-down coordinates.
func Area(contour []IntPoint) float64 {
	if len(contour) < 3 {
		return 0
	}
	var a float64
	prev := contour[len(contour)-1]
	for _, p := range contour {
		a += float64(prev.X+p.X) * float64(prev.Y-p.Y)
		prev = p
	}
	return a * 0.5
}

// Orientation reports whether the contour has non-negative area.
func Orientation(contour []IntPoint) bool {
	return Area(contour) >= 0
}

// Area returns the signed area of the outline's current point ring.
func (h Handle) Area() (float64, error) {
	pts, err := h.Points()
	if err != nil {
		return 0, err
	}
	return Area(pts), nil
}
