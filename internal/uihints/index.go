// Package uihints indexes the presentation metadata of registered nodes by
// descriptor key. It is fed by the registry's registration callback and
// answers the lookups a node browser needs: by key, by category and by
// search term.
package uihints

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/registry"
)

// ErrUnknownParameter is returned when UI metadata names a parameter the
// function does not declare.
var ErrUnknownParameter = errors.New("tooltip for undeclared parameter")

// Entry is the indexed metadata for one key.
type Entry struct {
	Key    descriptor.Key
	Kind   descriptor.Kind
	Source registry.SourceKind
	UI     descriptor.UIDescriptor
}

// Index holds UI metadata in registration order.
type Index struct {
	order   []descriptor.Key
	entries map[descriptor.Key]*Entry
}

// New creates an empty Index.
func New() *Index {
	return &Index{entries: make(map[descriptor.Key]*Entry)}
}

// Record is a registry.RegisteredFunc. Candidates without UI metadata get a
// display name derived from the key.
func (x *Index) Record(key descriptor.Key, c registry.Candidate) error {
	if _, exists := x.entries[key]; exists {
		return fmt.Errorf("ui metadata for %s already indexed", key)
	}

	var ui descriptor.UIDescriptor
	if c.UI != nil {
		ui = *c.UI
	}
	if ui.DisplayName == "" {
		ui.DisplayName = key.Name
	}

	if fd, ok := c.Descriptor.(*descriptor.FunctionDescriptor); ok {
		for name := range ui.ParameterTooltips {
			if _, declared := fd.Parameter(name); !declared {
				return fmt.Errorf("%w: %s has no parameter '%s'", ErrUnknownParameter, key, name)
			}
		}
	}

	x.entries[key] = &Entry{Key: key, Kind: c.Descriptor.Kind(), Source: c.Source, UI: ui}
	x.order = append(x.order, key)
	return nil
}

// Lookup returns the metadata indexed under key.
func (x *Index) Lookup(key descriptor.Key) (Entry, bool) {
	e, ok := x.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of indexed keys.
func (x *Index) Len() int { return len(x.order) }

// ByCategory returns the keys whose category path starts with path, e.g.
// ("Math") or ("Math", "Basic"). Matching is case-insensitive.
func (x *Index) ByCategory(path ...string) []descriptor.Key {
	var out []descriptor.Key
	for _, key := range x.order {
		cats := x.entries[key].UI.Categories
		if len(path) > len(cats) {
			continue
		}
		if slices.EqualFunc(path, cats[:len(path)], strings.EqualFold) {
			out = append(out, key)
		}
	}
	return out
}

// Search returns the keys whose name, display name or synonyms contain term,
// case-insensitively, in registration order.
func (x *Index) Search(term string) []descriptor.Key {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var out []descriptor.Key
	for _, key := range x.order {
		e := x.entries[key]
		candidates := append([]string{key.Name, e.UI.DisplayName}, e.UI.Synonyms...)
		if slices.ContainsFunc(candidates, func(s string) bool {
			return strings.Contains(strings.ToLower(s), term)
		}) {
			out = append(out, key)
		}
	}
	return out
}
