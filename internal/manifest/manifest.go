package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/shadegrid/internal/ctxlog"
	"github.com/specialistvlad/shadegrid/internal/fsutil"
	"github.com/specialistvlad/shadegrid/internal/registry"
)

// Manifest is everything loaded from a set of HCL files.
type Manifest struct {
	Candidates []registry.Candidate
	Shapes     []*Shape
}

// rootSchema defines the top-level blocks a manifest file may contain.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "function", LabelNames: []string{"name"}},
		{Type: "context", LabelNames: []string{"name"}},
		{Type: "shape", LabelNames: []string{"name"}},
	},
}

// Load reads every .hcl file under the given paths. Files are processed in
// lexical order so the resulting candidate list is deterministic.
func Load(ctx context.Context, paths ...string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	m := &Manifest{}
	parser := hclparse.NewParser()

	for _, root := range paths {
		logger.Debug("Loading manifests from path...", "path", root)

		filePaths, err := fsutil.FindFilesByExtension(root, ".hcl")
		if err != nil {
			logger.Error("Failed to walk manifest path", "path", root, "error", err)
			return nil, err
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path", "path", root)
			continue
		}
		logger.Debug("Found HCL files to load", "files", filePaths)

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
			}

			fm, diags := ParseFile(ctx, hclFile, filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to process manifest %s: %w", filePath, diags)
			}
			m.Candidates = append(m.Candidates, fm.Candidates...)
			m.Shapes = append(m.Shapes, fm.Shapes...)
			logger.Debug("Successfully loaded definitions from HCL file", "file", filePath)
		}
	}

	logger.Info("Manifests loaded.", "candidates", len(m.Candidates), "shapes", len(m.Shapes))
	return m, nil
}

// ParseFile decodes a single parsed HCL file.
func ParseFile(ctx context.Context, hclFile *hcl.File, filePath string) (*Manifest, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing manifest definitions from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	content, diags := hclFile.Body.Content(rootSchema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	m := &Manifest{}
	shapeNames := make(map[string]struct{})

	for _, block := range content.Blocks {
		origin := fmt.Sprintf("%s:%d", filePath, block.DefRange.Start.Line)

		switch block.Type {
		case "function":
			c, diags := parseFunction(block)
			allDiags = append(allDiags, diags...)
			if diags.HasErrors() {
				continue // Skip this block but continue parsing others
			}
			c.Origin = origin
			m.Candidates = append(m.Candidates, *c)

		case "context":
			c, diags := parseContext(block)
			allDiags = append(allDiags, diags...)
			if diags.HasErrors() {
				continue
			}
			c.Origin = origin
			m.Candidates = append(m.Candidates, *c)

		case "shape":
			s, diags := parseShape(block)
			allDiags = append(allDiags, diags...)
			if diags.HasErrors() {
				continue
			}
			if _, exists := shapeNames[s.Name]; exists {
				allDiags = append(allDiags, duplicate("shape", s.Name, block))
				continue
			}
			shapeNames[s.Name] = struct{}{}
			s.Origin = origin
			m.Shapes = append(m.Shapes, s)
		}
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed manifest", "candidates", len(m.Candidates), "shapes", len(m.Shapes))
	return m, allDiags
}
