package standard

import (
	"context"
	"testing"

	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_AllValid(t *testing.T) {
	for _, c := range Candidates() {
		t.Run(c.Descriptor.Key().String(), func(t *testing.T) {
			require.NoError(t, c.Descriptor.Validate())
			assert.Equal(t, registry.SourceStandard, c.Source)
			if c.Descriptor.Kind() == descriptor.KindFunction {
				require.NotNil(t, c.UI, "standard functions carry UI strings")
				assert.NotEmpty(t, c.UI.Tooltip)
				assert.NotEmpty(t, c.UI.Categories)
			}
		})
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	var seen []descriptor.Key
	reg, err := NewDefaultRegistry(context.Background(), func(key descriptor.Key, _ registry.Candidate) error {
		seen = append(seen, key)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, len(Candidates()), reg.Len())
	assert.Len(t, seen, reg.Len())
	assert.Equal(t, descriptor.NewKey("DefaultContextDescriptor", 1), seen[0])

	mask, err := reg.LookupFunction(descriptor.NewKey("SphereMask", 1))
	require.NoError(t, err)
	center, ok := mask.Parameter("Center")
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, center.Default)

	all, err := reg.LookupFunction(descriptor.NewKey("All", 1))
	require.NoError(t, err)
	assert.Equal(t, descriptor.TypeBool, all.Outputs()[0].Type)
}

func TestCandidates_FreshCopies(t *testing.T) {
	first := Candidates()
	first[2].Descriptor.(*descriptor.FunctionDescriptor).Body = "mutated"

	second := Candidates()
	assert.Equal(t, "Out = A + B;", second[2].Descriptor.(*descriptor.FunctionDescriptor).Body)
}
