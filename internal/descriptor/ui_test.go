package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUIStrings(t *testing.T) {
	ui := ParseUIStrings(map[string]string{
		"Category":               "Math, Basic",
		"Name.Synonyms":          "Addition, Sum, +, plus",
		"Tooltip":                "returns the sum of A and B",
		"DisplayName":            "Add",
		"Parameters.A.Tooltip":   "Input A",
		"Parameters.Out.Tooltip": "A + B",
		"Parameters..Tooltip":    "ignored",
		"Something.Else":         "ignored",
	}, map[string]float64{"Preview.Exists": 0})

	assert.Equal(t, "Add", ui.DisplayName)
	assert.Equal(t, "returns the sum of A and B", ui.Tooltip)
	assert.Equal(t, []string{"Math", "Basic"}, ui.Categories)
	assert.Equal(t, []string{"Addition", "Sum", "+", "plus"}, ui.Synonyms)
	assert.Equal(t, map[string]string{"A": "Input A", "Out": "A + B"}, ui.ParameterTooltips)

	hint, ok := ui.Hints["Preview.Exists"]
	require.True(t, ok)
	assert.Zero(t, hint)
}

func TestContextDescriptor_Validate(t *testing.T) {
	valid := &ContextDescriptor{
		Version: 1,
		Name:    "DefaultContextDescriptor",
		Entries: []ContextEntry{{FieldName: "BaseColor", Primitive: TypeFloat, Precision: "fixed", Height: 1, Length: 1}},
	}
	require.NoError(t, valid.Validate())
	assert.Equal(t, KindContext, valid.Kind())

	invalid := &ContextDescriptor{
		Version: 1,
		Name:    "Broken",
		Entries: []ContextEntry{
			{FieldName: "A", Primitive: TypeVector, Precision: "fixed", Height: 1, Length: 1},
			{FieldName: "B", Primitive: TypeFloat, Precision: "double", Height: 1, Length: 5},
		},
	}
	err := invalid.Validate()
	require.ErrorIs(t, err, ErrInvalidDescriptor)
	assert.Contains(t, err.Error(), "unsupported primitive")
	assert.Contains(t, err.Error(), "unsupported precision")
	assert.Contains(t, err.Error(), "shape 1x5")
}
