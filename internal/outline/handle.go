package outline

import "fmt"

// Handle is a nullable, identity-comparable reference to a Record in an
// Arena. The zero Handle was never created.
type Handle struct {
	arena *Arena
	index int
	gen   uint32
}

// IsCreated reports whether the handle was ever assigned a slot. It stays true
// after SetNull and after the arena is reset.
func (h Handle) IsCreated() bool { return h.arena != nil }

// IsNull reports whether the handle has no record behind it: it was never
// created, its slot was cleared, or its arena was reset.
func (h Handle) IsNull() bool {
	s := h.slot()
	return s == nil || !s.live
}

// NotNull is the negation of IsNull.
func (h Handle) NotNull() bool { return !h.IsNull() }

// SetNull clears the slot the handle refers to. Every handle aliasing the same
// slot observes the clear. It is a no-op on a null handle.
func (h Handle) SetNull() {
	s := h.slot()
	if s == nil {
		return
	}
	s.live = false
	s.rec = Record{pts: NoPoint, bottomPt: NoPoint}
}

// Equal reports whether both handles refer to the same slot.
func (h Handle) Equal(other Handle) bool { return h == other }

// Ref returns a pointer into the shared record. Writes through it are seen by
// every alias.
func (h Handle) Ref() (*Record, error) {
	if h.arena == nil {
		return nil, fmt.Errorf("%w: handle was never created", ErrNullHandle)
	}
	s := h.slot()
	if s == nil {
		return nil, fmt.Errorf("%w: slot %d belongs to a reset arena", ErrNullHandle, h.index)
	}
	if !s.live {
		return nil, fmt.Errorf("%w: slot %d was cleared", ErrNullHandle, h.index)
	}
	return &s.rec, nil
}

// MustRef is like Ref but panics on a null handle.
func (h Handle) MustRef() *Record {
	rec, err := h.Ref()
	if err != nil {
		panic(err)
	}
	return rec
}

func (h Handle) String() string {
	switch {
	case !h.IsCreated():
		return "outline(uncreated)"
	case h.IsNull():
		return fmt.Sprintf("outline(#%d, null)", h.index)
	default:
		return fmt.Sprintf("outline(#%d)", h.index)
	}
}

func (h Handle) slot() *slot {
	if h.arena == nil || h.gen != h.arena.gen || h.index >= len(h.arena.slots) {
		return nil
	}
	return h.arena.slots[h.index]
}
