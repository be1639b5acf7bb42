package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/shadegrid/internal/outline"
)

// Shape is a named light shape made of outlines.
type Shape struct {
	Name     string
	Origin   string
	Outlines []OutlineSpec
}

// OutlineSpec describes one outline of a shape.
type OutlineSpec struct {
	Name      string
	Points    []outline.IntPoint
	FirstLeft string // name of the containing outline, empty for none
	IsHole    bool
	IsOpen    bool
}

// hclShapeBody is the decode target of a `shape` block body.
type hclShapeBody struct {
	Outlines []*hclOutline `hcl:"outline,block"`
}

type hclOutline struct {
	Name      string    `hcl:"name,label"`
	Points    [][]int64 `hcl:"points"`
	FirstLeft string    `hcl:"first_left,optional"`
	Hole      bool      `hcl:"hole,optional"`
	Open      bool      `hcl:"open,optional"`
}

func parseShape(block *hcl.Block) (*Shape, hcl.Diagnostics) {
	var raw hclShapeBody
	diags := gohcl.DecodeBody(block.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, diags
	}

	s := &Shape{Name: block.Labels[0]}
	names := make(map[string]struct{}, len(raw.Outlines))
	for _, o := range raw.Outlines {
		if _, exists := names[o.Name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate outline definition",
				Detail:   fmt.Sprintf("An outline named '%s' has already been defined in shape '%s'.", o.Name, s.Name),
				Subject:  &block.DefRange,
			})
			continue
		}
		names[o.Name] = struct{}{}

		spec := OutlineSpec{Name: o.Name, FirstLeft: o.FirstLeft, IsHole: o.Hole, IsOpen: o.Open}
		for i, p := range o.Points {
			if len(p) != 2 {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid outline point",
					Detail:   fmt.Sprintf("Point %d of outline '%s' has %d coordinates; each point must be [x, y].", i, o.Name, len(p)),
					Subject:  &block.DefRange,
				})
				continue
			}
			spec.Points = append(spec.Points, outline.IntPoint{X: p[0], Y: p[1]})
		}
		s.Outlines = append(s.Outlines, spec)
	}

	for _, o := range s.Outlines {
		if o.FirstLeft == "" {
			continue
		}
		if _, ok := names[o.FirstLeft]; !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown first_left outline",
				Detail:   fmt.Sprintf("Outline '%s' in shape '%s' refers to '%s', which is not defined.", o.Name, s.Name, o.FirstLeft),
				Subject:  &block.DefRange,
			})
		}
	}

	return s, diags
}
