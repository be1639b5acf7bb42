// Package lightshape turns shape manifests into clipped outline trees: every
// outline of a shape becomes a record in a fresh outline arena, FirstLeft
// links are wired by name, and outlines are closed containers-first so each
// poly-node lands under its parent.
package lightshape

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/shadegrid/internal/ctxlog"
	"github.com/specialistvlad/shadegrid/internal/manifest"
	"github.com/specialistvlad/shadegrid/internal/outline"
)

// Result is a built shape.
type Result struct {
	Name     string
	Arena    *outline.Arena
	Outlines map[string]outline.Handle
	Order    []string // outline names in close order
}

// Build creates and closes an outline record for every outline of s.
func Build(ctx context.Context, s *manifest.Shape) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With("shape", s.Name)
	logger.Debug("Building light shape...", "outlines", len(s.Outlines))

	specs := make(map[string]manifest.OutlineSpec, len(s.Outlines))
	res := &Result{
		Name:     s.Name,
		Arena:    outline.NewArena(),
		Outlines: make(map[string]outline.Handle, len(s.Outlines)),
	}

	for i, spec := range s.Outlines {
		if _, exists := specs[spec.Name]; exists {
			return nil, fmt.Errorf("shape '%s': outline '%s' defined twice", s.Name, spec.Name)
		}
		specs[spec.Name] = spec
		res.Outlines[spec.Name] = res.Arena.Create(outline.Record{
			Idx:    i,
			IsHole: spec.IsHole,
			IsOpen: spec.IsOpen,
		})
	}

	for _, spec := range s.Outlines {
		if spec.FirstLeft == "" {
			continue
		}
		parent, ok := res.Outlines[spec.FirstLeft]
		if !ok {
			return nil, fmt.Errorf("shape '%s': outline '%s' refers to unknown first_left '%s'", s.Name, spec.Name, spec.FirstLeft)
		}
		res.Outlines[spec.Name].MustRef().FirstLeft = parent
	}

	order, err := closeOrder(s)
	if err != nil {
		return nil, err
	}

	for _, name := range order {
		h := res.Outlines[name]
		if err := h.Open(); err != nil {
			return nil, fmt.Errorf("shape '%s': outline '%s': %w", s.Name, name, err)
		}
		for _, p := range specs[name].Points {
			if _, err := h.AppendPoint(p); err != nil {
				return nil, fmt.Errorf("shape '%s': outline '%s': %w", s.Name, name, err)
			}
		}
		if err := h.Close(); err != nil {
			return nil, fmt.Errorf("shape '%s': outline '%s': %w", s.Name, name, err)
		}
	}
	res.Order = order

	logger.Debug("Light shape built.", "poly_nodes", res.Arena.PolyTree().Total())
	return res, nil
}

// closeOrder sorts outlines so that every FirstLeft target is closed before
// the outlines that refer to it. Declaration order breaks ties.
func closeOrder(s *manifest.Shape) ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	parents := make(map[string]string, len(s.Outlines))
	for _, o := range s.Outlines {
		parents[o.Name] = o.FirstLeft
	}

	state := make(map[string]int, len(s.Outlines))
	var order []string
	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("shape '%s': first_left cycle: %s -> %s", s.Name, strings.Join(path, " -> "), name)
		}
		state[name] = visiting
		if p := parents[name]; p != "" {
			if err := visit(p, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, o := range s.Outlines {
		if err := visit(o.Name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// WriteText prints the poly-node tree, one node per line, indented by depth.
func (r *Result) WriteText(w io.Writer) error {
	names := make(map[int]string, len(r.Outlines))
	for name, h := range r.Outlines {
		names[h.MustRef().Idx] = name
	}

	if _, err := fmt.Fprintf(w, "shape %s\n", r.Name); err != nil {
		return err
	}

	var werr error
	r.Arena.PolyTree().Walk(func(n *outline.PolyNode) bool {
		kind := "polygon"
		switch {
		case n.IsOpen:
			kind = "polyline"
		case n.IsHole:
			kind = "hole"
		}
		_, werr = fmt.Fprintf(w, "%s- %s (%s, %d points, area %.1f)\n",
			strings.Repeat("  ", n.Depth()+1), names[n.Index], kind, len(n.Contour), outline.Area(n.Contour))
		return werr == nil
	})
	return werr
}
