package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/shadegrid/internal/descriptor"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefsPath   string // manifest file or directory
	ShapesPath string // shape-only manifests
	NoStandard bool   // skip the compiled-in definitions

	LogFormat    string
	LogLevel     string
	OutputFormat string // catalog format, text or json

	// Render, when set, prints the body of the function with this key
	// instead of the catalog. Bindings rename its parameters.
	Render   string
	Bindings map[string]string

	PublishURL string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DefsPath == "" && cfg.NoStandard {
		return nil, errors.New("nothing to register: DefsPath is required when the standard definitions are disabled")
	}

	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", cfg.OutputFormat)
	}

	if cfg.Render != "" {
		if _, err := descriptor.ParseKey(cfg.Render); err != nil {
			return nil, fmt.Errorf("invalid render key: %w", err)
		}
	} else if len(cfg.Bindings) > 0 {
		return nil, errors.New("bindings require a render key")
	}

	return &cfg, nil
}
