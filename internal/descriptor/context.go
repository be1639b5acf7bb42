package descriptor

import (
	"fmt"
	"strings"
)

// ContextEntry is a single field a context exposes to the graph.
type ContextEntry struct {
	FieldName string
	Primitive TypeTag // bool, int or float
	Precision string  // fixed, single, half or any
	Height    int     // rows, 1 to 4
	Length    int     // columns, 1 to 4
}

// ContextDescriptor is the registry record for a context node, the fixed
// endpoint that function graphs write into.
type ContextDescriptor struct {
	Version int
	Name    string
	Entries []ContextEntry
}

// Key implements Descriptor.
func (c *ContextDescriptor) Key() Key { return NewKey(c.Name, c.Version) }

// Kind implements Descriptor.
func (c *ContextDescriptor) Kind() Kind { return KindContext }

var precisions = map[string]struct{}{"fixed": {}, "single": {}, "half": {}, "any": {}}

// Validate implements Descriptor.
func (c *ContextDescriptor) Validate() error {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name cannot be empty")
	}
	if c.Version <= 0 {
		errs = append(errs, fmt.Sprintf("version must be positive, got %d", c.Version))
	}

	seen := make(map[string]struct{}, len(c.Entries))
	for _, e := range c.Entries {
		if _, exists := seen[e.FieldName]; exists {
			errs = append(errs, fmt.Sprintf("entry '%s' is declared more than once", e.FieldName))
			continue
		}
		seen[e.FieldName] = struct{}{}

		switch e.Primitive {
		case TypeBool, TypeInt, TypeFloat:
		default:
			errs = append(errs, fmt.Sprintf("entry '%s' has unsupported primitive %q", e.FieldName, e.Primitive))
		}
		if _, ok := precisions[e.Precision]; !ok {
			errs = append(errs, fmt.Sprintf("entry '%s' has unsupported precision %q", e.FieldName, e.Precision))
		}
		if e.Height < 1 || e.Height > 4 || e.Length < 1 || e.Length > 4 {
			errs = append(errs, fmt.Sprintf("entry '%s' has shape %dx%d, both sides must be 1 to 4", e.FieldName, e.Height, e.Length))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: context '%s':\n- %s", ErrInvalidDescriptor, c.Key(), strings.Join(errs, "\n- "))
	}
	return nil
}
