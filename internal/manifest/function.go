package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/hclutil"
	"github.com/specialistvlad/shadegrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// functionBodySchema is the HCL schema for the body of a `function` block.
var functionBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version", Required: true},
		{Name: "body", Required: true},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "parameter", LabelNames: []string{"name"}},
		{Type: "ui"},
	},
}

// parameterBodySchema is the HCL schema for the body of a `parameter` block.
var parameterBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type", Required: true},
		{Name: "direction"},
		{Name: "default"},
	},
}

var typeKeywords = []string{
	string(descriptor.TypeBool),
	string(descriptor.TypeInt),
	string(descriptor.TypeFloat),
	string(descriptor.TypeVector),
	string(descriptor.TypeMatrix),
}

// parseFunction decodes a `function` block into a registry candidate.
func parseFunction(block *hcl.Block) (*registry.Candidate, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	content, contentDiags := block.Body.Content(functionBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}

	fd := &descriptor.FunctionDescriptor{Name: block.Labels[0]}
	diags = append(diags, gohcl.DecodeExpression(content.Attributes["version"].Expr, nil, &fd.Version)...)
	diags = append(diags, gohcl.DecodeExpression(content.Attributes["body"].Expr, nil, &fd.Body)...)

	seen := make(map[string]struct{})
	for _, pb := range content.Blocks.OfType("parameter") {
		name := pb.Labels[0]
		if _, exists := seen[name]; exists {
			diags = append(diags, duplicate("parameter", name, pb))
			continue
		}
		seen[name] = struct{}{}

		p, paramDiags := parseParameter(name, pb)
		diags = append(diags, paramDiags...)
		if paramDiags.HasErrors() {
			continue
		}
		fd.Parameters = append(fd.Parameters, p)
	}

	var ui *descriptor.UIDescriptor
	uiBlock, uiDiags := hclutil.FindUniqueBlock(content.Blocks, "ui")
	diags = append(diags, uiDiags...)
	if uiBlock != nil {
		var decodeDiags hcl.Diagnostics
		ui, decodeDiags = parseUI(uiBlock)
		diags = append(diags, decodeDiags...)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	// Structural invariants (references, default widths) are reported with the
	// block's location so the user can find the offending definition.
	if err := fd.Validate(); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid function definition",
			Detail:   err.Error(),
			Subject:  &block.DefRange,
		})
		return nil, diags
	}

	return &registry.Candidate{
		Descriptor: fd,
		Source:     registry.SourceManifest,
		UI:         ui,
	}, diags
}

func parseParameter(name string, block *hcl.Block) (descriptor.ParameterDescriptor, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	p := descriptor.ParameterDescriptor{Name: name, Direction: descriptor.In}

	content, contentDiags := block.Body.Content(parameterBodySchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return p, diags
	}

	typeName, typeDiags := hclutil.Keyword(content.Attributes["type"], typeKeywords...)
	diags = append(diags, typeDiags...)
	if typeDiags.HasErrors() {
		return p, diags
	}
	p.Type = descriptor.TypeTag(typeName)

	if attr, exists := content.Attributes["direction"]; exists {
		dirName, dirDiags := hclutil.Keyword(attr, "in", "out")
		diags = append(diags, dirDiags...)
		if dirDiags.HasErrors() {
			return p, diags
		}
		dir, err := descriptor.ParseDirection(dirName)
		if err != nil {
			// Unreachable given the keyword check above.
			return p, append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid parameter direction",
				Detail:   err.Error(),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
		p.Direction = dir
	}

	if attr, exists := content.Attributes["default"]; exists {
		values, defaultDiags := decodeDefault(attr)
		diags = append(diags, defaultDiags...)
		p.Default = values
	}

	return p, diags
}

// decodeDefault accepts a single number or a list of numbers.
func decodeDefault(attr *hcl.Attribute) ([]float64, hcl.Diagnostics) {
	// A nil eval context is used because defaults must be literal values.
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	invalid := func(detail string) hcl.Diagnostics {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid default value",
			Detail:   detail,
			Subject:  attr.Expr.Range().Ptr(),
		})
	}

	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, invalid("The default value must be a known number or list of numbers.")
	}
	if val.Type().Equals(cty.Number) {
		val = cty.ListVal([]cty.Value{val})
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, invalid(fmt.Sprintf("The default value must be a number or a list of numbers: %s.", err))
	}
	if list.LengthInt() == 0 {
		return nil, invalid("The default value list cannot be empty.")
	}

	var out []float64
	if err := gocty.FromCtyValue(list, &out); err != nil {
		return nil, invalid(fmt.Sprintf("The default value could not be read: %s.", err))
	}
	return out, diags
}

// hclUI is the decode target of a `ui` block.
type hclUI struct {
	DisplayName       string             `hcl:"display_name,optional"`
	Tooltip           string             `hcl:"tooltip,optional"`
	Category          []string           `hcl:"category,optional"`
	Synonyms          []string           `hcl:"synonyms,optional"`
	ParameterTooltips map[string]string  `hcl:"parameter_tooltips,optional"`
	Hints             map[string]float64 `hcl:"hints,optional"`
}

func parseUI(block *hcl.Block) (*descriptor.UIDescriptor, hcl.Diagnostics) {
	var raw hclUI
	diags := gohcl.DecodeBody(block.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, diags
	}
	return &descriptor.UIDescriptor{
		DisplayName:       raw.DisplayName,
		Tooltip:           raw.Tooltip,
		Categories:        raw.Category,
		Synonyms:          raw.Synonyms,
		ParameterTooltips: raw.ParameterTooltips,
		Hints:             raw.Hints,
	}, diags
}

func duplicate(kind, name string, block *hcl.Block) *hcl.Diagnostic {
	return hclutil.DuplicateLabel(kind, name, block)
}
