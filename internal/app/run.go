package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/shadegrid/internal/catalog"
	"github.com/specialistvlad/shadegrid/internal/ctxlog"
	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/lightshape"
)

// Run writes the requested output: a rendered function body when a render
// key is configured, the catalog otherwise, followed by any light shapes.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Render != "" {
		if err := a.render(); err != nil {
			return err
		}
	} else if err := a.writeCatalog(); err != nil {
		return err
	}

	for _, s := range a.shapes {
		res, err := lightshape.Build(ctx, s)
		if err != nil {
			return fmt.Errorf("failed to build shape %s: %w", s.Origin, err)
		}
		if err := res.WriteText(a.outW); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) render() error {
	key, err := descriptor.ParseKey(a.config.Render)
	if err != nil {
		return err
	}
	fd, err := a.registry.LookupFunction(key)
	if err != nil {
		return fmt.Errorf("cannot render: %w", err)
	}
	for name := range a.config.Bindings {
		if _, ok := fd.Parameter(name); !ok {
			return fmt.Errorf("cannot render %s: binding for undeclared parameter '%s'", key, name)
		}
	}
	_, err = fmt.Fprintln(a.outW, fd.Render(a.config.Bindings))
	return err
}

func (a *App) writeCatalog() error {
	entries := catalog.Build(a.registry, a.hints)
	a.logger.Info("Writing catalog.", "entries", len(entries), "format", a.config.OutputFormat)
	if a.config.OutputFormat == "json" {
		return catalog.WriteJSON(a.outW, entries)
	}
	return catalog.WriteText(a.outW, entries)
}
