package descriptor

import (
	"strings"
)

// UIDescriptor is the presentation metadata for a registered node. It is keyed
// by the same Key as the descriptor it decorates but is never stored in the
// registry itself.
type UIDescriptor struct {
	DisplayName string
	Tooltip     string
	Categories  []string
	Synonyms    []string

	// ParameterTooltips maps a parameter name to its tooltip.
	ParameterTooltips map[string]string

	// Hints holds numeric presentation switches such as `Preview.Exists`.
	Hints map[string]float64
}

// ParseUIStrings builds a UIDescriptor from the flat string table form:
//
//	"Category"               -> "Math, Basic"
//	"DisplayName"            -> "Square Root"
//	"Name.Synonyms"          -> "sqrt, root"
//	"Tooltip"                -> "..."
//	"Parameters.<P>.Tooltip" -> "..."
//
// Unknown entries are ignored.
func ParseUIStrings(strs map[string]string, hints map[string]float64) UIDescriptor {
	ui := UIDescriptor{
		ParameterTooltips: make(map[string]string),
		Hints:             make(map[string]float64, len(hints)),
	}
	for k, v := range hints {
		ui.Hints[k] = v
	}

	for k, v := range strs {
		switch k {
		case "Category":
			ui.Categories = splitList(v)
		case "DisplayName":
			ui.DisplayName = v
		case "Name.Synonyms":
			ui.Synonyms = splitList(v)
		case "Tooltip":
			ui.Tooltip = v
		default:
			rest, ok := strings.CutPrefix(k, "Parameters.")
			if !ok {
				continue
			}
			if name, ok := strings.CutSuffix(rest, ".Tooltip"); ok && name != "" {
				ui.ParameterTooltips[name] = v
			}
		}
	}
	return ui
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
