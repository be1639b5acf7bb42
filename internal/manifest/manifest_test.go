package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/outline"
	"github.com/specialistvlad/shadegrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*Manifest, hcl.Diagnostics) {
	t.Helper()
	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), diags.Error())
	return ParseFile(context.Background(), file, "test.hcl")
}

func TestParseFile_Function(t *testing.T) {
	// --- Arrange ---
	src := `
function "Lerp" {
  version = 2
  body    = "Out = lerp(A, B, T);"

  parameter "A" {
    type    = vector
    default = [0, 0, 0, 0]
  }
  parameter "B" {
    type      = vector
    direction = in
    default   = [1, 1, 1, 1]
  }
  parameter "T" {
    type    = float
    default = 0.5
  }
  parameter "Out" {
    type      = vector
    direction = out
  }

  ui {
    display_name       = "Linear Interpolate"
    tooltip            = "blends between A and B"
    category           = ["Math", "Interpolation"]
    synonyms           = ["mix"]
    parameter_tooltips = { T = "blend factor" }
    hints              = { "Preview.Exists" = 1 }
  }
}
`

	// --- Act ---
	m, diags := parse(t, src)

	// --- Assert ---
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, m.Candidates, 1)

	c := m.Candidates[0]
	assert.Equal(t, registry.SourceManifest, c.Source)
	assert.Equal(t, "test.hcl:2", c.Origin)

	fd, ok := c.Descriptor.(*descriptor.FunctionDescriptor)
	require.True(t, ok)
	assert.Equal(t, descriptor.NewKey("Lerp", 2), fd.Key())
	assert.Equal(t, "Out = lerp(A, B, T);", fd.Body)
	require.Len(t, fd.Parameters, 4)

	assert.Equal(t, descriptor.NewParameter("A", descriptor.TypeVector, descriptor.In, 0, 0, 0, 0), fd.Parameters[0])
	assert.Equal(t, descriptor.NewParameter("B", descriptor.TypeVector, descriptor.In, 1, 1, 1, 1), fd.Parameters[1])
	assert.Equal(t, descriptor.NewParameter("T", descriptor.TypeFloat, descriptor.In, 0.5), fd.Parameters[2])
	assert.Equal(t, descriptor.NewParameter("Out", descriptor.TypeVector, descriptor.Out), fd.Parameters[3])

	require.NotNil(t, c.UI)
	assert.Equal(t, "Linear Interpolate", c.UI.DisplayName)
	assert.Equal(t, []string{"Math", "Interpolation"}, c.UI.Categories)
	assert.Equal(t, []string{"mix"}, c.UI.Synonyms)
	assert.Equal(t, map[string]string{"T": "blend factor"}, c.UI.ParameterTooltips)
	assert.Equal(t, map[string]float64{"Preview.Exists": 1}, c.UI.Hints)
}

func TestParseFile_Context(t *testing.T) {
	src := `
context "SurfaceContext" {
  version = 1
  entry "Albedo" {
    primitive = float
    precision = "fixed"
    length    = 3
  }
  entry "Alpha" {
    primitive = float
  }
}
`
	m, diags := parse(t, src)
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, m.Candidates, 1)

	cd, ok := m.Candidates[0].Descriptor.(*descriptor.ContextDescriptor)
	require.True(t, ok)
	assert.Equal(t, descriptor.NewKey("SurfaceContext", 1), cd.Key())
	assert.Equal(t, []descriptor.ContextEntry{
		{FieldName: "Albedo", Primitive: descriptor.TypeFloat, Precision: "fixed", Height: 1, Length: 3},
		{FieldName: "Alpha", Primitive: descriptor.TypeFloat, Precision: "any", Height: 1, Length: 1},
	}, cd.Entries)
}

func TestParseFile_Shape(t *testing.T) {
	src := `
shape "lamp" {
  outline "outer" {
    points = [[0, 0], [100, 0], [100, 100], [0, 100]]
  }
  outline "cutout" {
    first_left = "outer"
    hole       = true
    points     = [[40, 40], [60, 40], [60, 60]]
  }
  outline "wire" {
    open   = true
    points = [[0, 0], [5, 5]]
  }
}
`
	m, diags := parse(t, src)
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Empty(t, m.Candidates)
	require.Len(t, m.Shapes, 1)

	s := m.Shapes[0]
	assert.Equal(t, "lamp", s.Name)
	require.Len(t, s.Outlines, 3)
	assert.Equal(t, OutlineSpec{
		Name:      "cutout",
		FirstLeft: "outer",
		IsHole:    true,
		Points:    []outline.IntPoint{{X: 40, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}},
	}, s.Outlines[1])
	assert.True(t, s.Outlines[2].IsOpen)
}

func TestParseFile_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		expectErr string
	}{
		{
			name:      "missing body",
			src:       `function "A" { version = 1 }`,
			expectErr: `The argument "body" is required`,
		},
		{
			name: "unsupported type keyword",
			src: `function "A" {
  version = 1
  body = "Out = In;"
  parameter "In" { type = texture }
  parameter "Out" {
    type = float
    direction = out
  }
}`,
			expectErr: "Unsupported keyword",
		},
		{
			name: "undeclared reference",
			src: `function "A" {
  version = 1
  body = "Out = In * Scale;"
  parameter "In" { type = float }
  parameter "Out" {
    type = float
    direction = out
  }
}`,
			expectErr: "body references 'Scale'",
		},
		{
			name: "duplicate parameter",
			src: `function "A" {
  version = 1
  body = "Out = In;"
  parameter "In" { type = float }
  parameter "In" { type = float }
}`,
			expectErr: "Duplicate parameter definition",
		},
		{
			name: "non numeric default",
			src: `function "A" {
  version = 1
  body = ""
  parameter "In" {
    type = float
    default = "big"
  }
}`,
			expectErr: "Invalid default value",
		},
		{
			name: "duplicate ui block",
			src: `function "A" {
  version = 1
  body = ""
  ui {}
  ui {}
}`,
			expectErr: `Duplicate "ui" block`,
		},
		{
			name: "bad point",
			src: `shape "s" {
  outline "o" { points = [[1, 2, 3]] }
}`,
			expectErr: "Invalid outline point",
		},
		{
			name: "unknown first_left",
			src: `shape "s" {
  outline "o" {
    first_left = "ghost"
    points = [[1, 2]]
  }
}`,
			expectErr: "Unknown first_left outline",
		},
		{
			name: "duplicate shape",
			src: `shape "s" {}
shape "s" {}`,
			expectErr: "Duplicate shape definition",
		},
		{
			name:      "unknown top level block",
			src:       `runner "x" {}`,
			expectErr: "Unsupported block type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, diags := parse(t, tc.src)
			require.True(t, diags.HasErrors())
			assert.Nil(t, m)
			assert.Contains(t, diags.Error(), tc.expectErr)
		})
	}
}

func TestParseFile_Nil(t *testing.T) {
	_, diags := ParseFile(context.Background(), nil, "missing.hcl")
	require.True(t, diags.HasErrors())
}

func TestLoad(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	files := map[string]string{
		"b_shapes.hcl": `shape "square" {
  outline "o" { points = [[0, 0], [1, 0], [1, 1]] }
}`,
		"a_math.hcl": `function "Negate" {
  version = 1
  body = "Out = -In;"
  parameter "In" { type = float }
  parameter "Out" {
    type = float
    direction = out
  }
}`,
		"readme.md": "not a manifest",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	// --- Act ---
	m, err := Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, m.Candidates, 1)
	assert.Equal(t, descriptor.NewKey("Negate", 1), m.Candidates[0].Descriptor.Key())
	assert.Equal(t, filepath.Join(dir, "a_math.hcl")+":1", m.Candidates[0].Origin)
	require.Len(t, m.Shapes, 1)
	assert.Equal(t, "square", m.Shapes[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.hcl"), []byte(`function "A" {`), 0o600))
		_, err := Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL file")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})

	t.Run("empty directory", func(t *testing.T) {
		m, err := Load(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, m.Candidates)
		assert.Empty(t, m.Shapes)
	})
}
