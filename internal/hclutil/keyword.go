package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// Keyword reads a bare identifier such as `vector` or `in` from an attribute
// expression, and checks it against the allowed set. Quoted strings are
// rejected so that keywords stay visually distinct from values.
func Keyword(attr *hcl.Attribute, allowed ...string) (string, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	// We expect a simple identifier, not a complex expression.
	// AbsTraversalForExpr is the right tool to validate this structure.
	traversal, travDiags := hcl.AbsTraversalForExpr(attr.Expr)
	if travDiags.HasErrors() || len(traversal) != 1 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid keyword",
			Detail:   fmt.Sprintf("The '%s' attribute must be a bare keyword, one of: %v.", attr.Name, allowed),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return "", diags
	}

	name := traversal.RootName()
	for _, a := range allowed {
		if a == name {
			return name, diags
		}
	}

	diags = append(diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unsupported keyword",
		Detail:   fmt.Sprintf("The keyword '%s' is not valid for '%s'. Supported keywords are: %v.", name, attr.Name, allowed),
		Subject:  attr.Expr.Range().Ptr(),
	})
	return "", diags
}
