package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/shadegrid/internal/ctxlog"
	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/manifest"
	"github.com/specialistvlad/shadegrid/internal/publish"
	"github.com/specialistvlad/shadegrid/internal/registry"
	"github.com/specialistvlad/shadegrid/internal/standard"
	"github.com/specialistvlad/shadegrid/internal/uihints"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	hints    *uihints.Index
	shapes   []*manifest.Shape
}

// NewApp builds the registry from the standard definitions and the configured
// manifests. Any load or registration failure is returned; the registry is
// never left half-built for the caller.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var candidates []registry.Candidate
	if !cfg.NoStandard {
		candidates = append(candidates, standard.Candidates()...)
		logger.Debug("Standard definitions selected.", "count", len(candidates))
	}

	var shapes []*manifest.Shape
	if cfg.DefsPath != "" {
		m, err := manifest.Load(ctx, cfg.DefsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load definitions: %w", err)
		}
		candidates = append(candidates, m.Candidates...)
		shapes = append(shapes, m.Shapes...)
	}
	if cfg.ShapesPath != "" {
		m, err := manifest.Load(ctx, cfg.ShapesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load shapes: %w", err)
		}
		if len(m.Candidates) > 0 {
			return nil, fmt.Errorf("shape manifests in %s may only contain shape blocks, found %d definitions", cfg.ShapesPath, len(m.Candidates))
		}
		shapes = append(shapes, m.Shapes...)
	}

	hints := uihints.New()
	var onRegistered registry.RegisteredFunc = hints.Record
	if cfg.PublishURL != "" {
		pub, err := publish.Connect(ctx, publish.Options{URL: cfg.PublishURL})
		if err != nil {
			return nil, fmt.Errorf("failed to connect publisher: %w", err)
		}
		defer pub.Close()
		onRegistered = chain(hints.Record, pub.Publish)
	}

	reg := registry.New()
	if err := reg.RegisterFromCandidates(ctx, candidates, onRegistered); err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}
	logger.Debug("Registry built.", "descriptors", reg.Len(), "ui_entries", hints.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		hints:    hints,
		shapes:   shapes,
	}, nil
}

// chain runs the callbacks in order and stops at the first error.
func chain(fns ...registry.RegisteredFunc) registry.RegisteredFunc {
	return func(key descriptor.Key, c registry.Candidate) error {
		for _, fn := range fns {
			if err := fn(key, c); err != nil {
				return err
			}
		}
		return nil
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Hints returns the UI metadata indexed while the registry was built.
func (a *App) Hints() *uihints.Index {
	return a.hints
}
