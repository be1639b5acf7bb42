// Package catalog renders the contents of a registry, together with the UI
// metadata indexed for each key, as text or JSON.
package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/registry"
	"github.com/specialistvlad/shadegrid/internal/uihints"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Parameter is one function port.
type Parameter struct {
	Name      string    `cty:"name"`
	Type      string    `cty:"type"`
	Direction string    `cty:"direction"`
	Default   []float64 `cty:"default"`
	Tooltip   string    `cty:"tooltip"`
}

// Field is one context entry.
type Field struct {
	Name      string `cty:"name"`
	Primitive string `cty:"primitive"`
	Precision string `cty:"precision"`
	Height    int    `cty:"height"`
	Length    int    `cty:"length"`
}

// Entry is the catalog line for one registered key.
type Entry struct {
	Key         string      `cty:"key"`
	Name        string      `cty:"name"`
	Version     int         `cty:"version"`
	Kind        string      `cty:"kind"`
	Source      string      `cty:"source"`
	DisplayName string      `cty:"display_name"`
	Tooltip     string      `cty:"tooltip"`
	Categories  []string    `cty:"categories"`
	Synonyms    []string    `cty:"synonyms"`
	Parameters  []Parameter `cty:"parameters"`
	Fields      []Field     `cty:"fields"`
	References  []string    `cty:"references"`
}

// Build lists every registered descriptor in registration order. hints may
// be nil, in which case entries carry no UI metadata and an unknown source.
func Build(reg *registry.Registry, hints *uihints.Index) []Entry {
	entries := []Entry{}
	for key, d := range reg.Enumerate() {
		e := Entry{
			Key:        key.String(),
			Name:       key.Name,
			Version:    key.Version,
			Kind:       d.Kind().String(),
			Source:     "unknown",
			Categories: []string{},
			Synonyms:   []string{},
			Parameters: []Parameter{},
			Fields:     []Field{},
			References: []string{},
		}

		var ui descriptor.UIDescriptor
		if hints != nil {
			if he, ok := hints.Lookup(key); ok {
				ui = he.UI
				e.Source = he.Source.String()
			}
		}
		e.DisplayName = ui.DisplayName
		e.Tooltip = ui.Tooltip
		e.Categories = append(e.Categories, ui.Categories...)
		e.Synonyms = append(e.Synonyms, ui.Synonyms...)

		switch v := d.(type) {
		case *descriptor.FunctionDescriptor:
			for _, p := range v.Parameters {
				e.Parameters = append(e.Parameters, Parameter{
					Name:      p.Name,
					Type:      string(p.Type),
					Direction: p.Direction.String(),
					Default:   append([]float64{}, p.Default...),
					Tooltip:   ui.ParameterTooltips[p.Name],
				})
			}
			e.References = append(e.References, v.References()...)
		case *descriptor.ContextDescriptor:
			for _, f := range v.Entries {
				e.Fields = append(e.Fields, Field{
					Name:      f.FieldName,
					Primitive: string(f.Primitive),
					Precision: f.Precision,
					Height:    f.Height,
					Length:    f.Length,
				})
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// WriteJSON writes entries as a JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	ty, err := gocty.ImpliedType(entries)
	if err != nil {
		return fmt.Errorf("failed to infer catalog type: %w", err)
	}
	val, err := gocty.ToCtyValue(entries, ty)
	if err != nil {
		return fmt.Errorf("failed to convert catalog: %w", err)
	}
	out, err := ctyjson.Marshal(val, ty)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// WriteText writes one header line per entry followed by its ports or fields.
func WriteText(w io.Writer, entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s (%s, %s)", e.Key, e.Kind, e.Source)
		if e.DisplayName != "" && e.DisplayName != e.Name {
			fmt.Fprintf(&b, " %q", e.DisplayName)
		}
		if len(e.Categories) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(e.Categories, "/"))
		}
		b.WriteByte('\n')

		for _, p := range e.Parameters {
			fmt.Fprintf(&b, "  %-3s %s: %s", p.Direction, p.Name, p.Type)
			if len(p.Default) > 0 {
				fmt.Fprintf(&b, " = %v", p.Default)
			}
			b.WriteByte('\n')
		}
		for _, f := range e.Fields {
			fmt.Fprintf(&b, "  %s: %s %s %dx%d\n", f.Name, f.Primitive, f.Precision, f.Height, f.Length)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
