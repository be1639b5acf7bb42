// Package outline holds the bookkeeping records a polygon clipping pass
// builds while it discovers output boundaries.
//
// Records live in an Arena and are addressed through Handles. A Handle is an
// index into the arena, so many records can point at the same "first left"
// ancestor, compare those pointers by identity, and clear them, without any
// record being copied. Mutating a record through one handle is visible through
// every other handle to the same slot.
//
// Each record moves through Unset -> Open -> Closed exactly once. Points can
// only be appended while Open; Close derives the bottom point and the
// poly-node that places the outline in the result tree, and both are read-only
// afterwards.
//
// Records are discarded in bulk with Arena.Reset when the pass ends. Neither
// the arena nor its handles are safe for concurrent mutation.
package outline
