package manifest

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/hclutil"
	"github.com/specialistvlad/shadegrid/internal/registry"
)

var contextBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "entry", LabelNames: []string{"name"}},
	},
}

var entryBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "primitive", Required: true},
		{Name: "precision"},
		{Name: "height"},
		{Name: "length"},
	},
}

// parseContext decodes a `context` block into a registry candidate.
func parseContext(block *hcl.Block) (*registry.Candidate, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	content, contentDiags := block.Body.Content(contextBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}

	cd := &descriptor.ContextDescriptor{Name: block.Labels[0]}
	diags = append(diags, gohcl.DecodeExpression(content.Attributes["version"].Expr, nil, &cd.Version)...)

	seen := make(map[string]struct{})
	for _, eb := range content.Blocks.OfType("entry") {
		name := eb.Labels[0]
		if _, exists := seen[name]; exists {
			diags = append(diags, duplicate("entry", name, eb))
			continue
		}
		seen[name] = struct{}{}

		entry, entryDiags := parseEntry(name, eb)
		diags = append(diags, entryDiags...)
		if !entryDiags.HasErrors() {
			cd.Entries = append(cd.Entries, entry)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	if err := cd.Validate(); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid context definition",
			Detail:   err.Error(),
			Subject:  &block.DefRange,
		})
		return nil, diags
	}

	return &registry.Candidate{Descriptor: cd, Source: registry.SourceManifest}, diags
}

func parseEntry(name string, block *hcl.Block) (descriptor.ContextEntry, hcl.Diagnostics) {
	entry := descriptor.ContextEntry{FieldName: name, Precision: "any", Height: 1, Length: 1}

	content, diags := block.Body.Content(entryBodySchema)
	if diags.HasErrors() {
		return entry, diags
	}

	primitive, primDiags := hclutil.Keyword(content.Attributes["primitive"],
		string(descriptor.TypeBool), string(descriptor.TypeInt), string(descriptor.TypeFloat))
	diags = append(diags, primDiags...)
	entry.Primitive = descriptor.TypeTag(primitive)

	if attr, exists := content.Attributes["precision"]; exists {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &entry.Precision)...)
	}
	if attr, exists := content.Attributes["height"]; exists {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &entry.Height)...)
	}
	if attr, exists := content.Attributes["length"]; exists {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &entry.Length)...)
	}

	return entry, diags
}
