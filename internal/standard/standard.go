package standard

import (
	"context"

	d "github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/registry"
)

// contexts returns the built-in context descriptors.
func contexts() []*d.ContextDescriptor {
	return []*d.ContextDescriptor{
		{
			Version: 1,
			Name:    "DefaultContextDescriptor",
			Entries: []d.ContextEntry{
				{FieldName: "BaseColor", Primitive: d.TypeFloat, Precision: "fixed", Height: 1, Length: 1},
			},
		},
		{
			Version: 1,
			Name:    "MaterialPropertyContext",
		},
	}
}

// nodes is the ordered list of standard function nodes.
var nodes = []func() node{
	add,
	squareRoot,
	floor,
	degreesToRadians,
	sine,
	sphereMask,
	all,
}

// Candidates returns a fresh copy of the standard definitions in registration
// order: contexts first, then function nodes.
func Candidates() []registry.Candidate {
	var out []registry.Candidate
	for _, c := range contexts() {
		out = append(out, registry.Candidate{
			Descriptor: c,
			Source:     registry.SourceStandard,
			Origin:     "standard",
		})
	}
	for _, build := range nodes {
		n := build()
		ui := d.ParseUIStrings(n.strings, n.hints)
		out = append(out, registry.Candidate{
			Descriptor: n.fn,
			Source:     registry.SourceStandard,
			UI:         &ui,
			Origin:     "standard",
		})
	}
	return out
}

// NewDefaultRegistry creates a registry holding only the standard
// definitions. afterRegistered, if non-nil, sees every registration.
func NewDefaultRegistry(ctx context.Context, afterRegistered registry.RegisteredFunc) (*registry.Registry, error) {
	reg := registry.New()
	if err := reg.RegisterFromCandidates(ctx, Candidates(), afterRegistered); err != nil {
		return nil, err
	}
	return reg, nil
}
