package registry

import (
	"context"
	"fmt"

	"github.com/specialistvlad/shadegrid/internal/ctxlog"
	"github.com/specialistvlad/shadegrid/internal/descriptor"
)

// SourceKind tells where a candidate definition came from.
type SourceKind int

const (
	// SourceStandard marks definitions compiled into the binary.
	SourceStandard SourceKind = iota
	// SourceManifest marks definitions loaded from an HCL manifest.
	SourceManifest
)

func (s SourceKind) String() string {
	switch s {
	case SourceStandard:
		return "standard"
	case SourceManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

// Candidate is a definition offered for registration together with its
// auxiliary metadata.
type Candidate struct {
	Descriptor descriptor.Descriptor
	Source     SourceKind

	// UI is optional presentation metadata keyed by the same descriptor key.
	UI *descriptor.UIDescriptor

	// Origin describes where the candidate was defined, e.g. a manifest path.
	Origin string
}

// RegisteredFunc is invoked once for each successful registration. Returning
// an error stops RegisterFromCandidates.
type RegisteredFunc func(key descriptor.Key, c Candidate) error

// RegisterFromCandidates registers candidates in order. After each successful
// registration onRegistered (if non-nil) is called synchronously. The first
// registration or callback error aborts the remaining candidates and is
// returned; entries registered before the failure stay in place.
func (r *Registry) RegisterFromCandidates(ctx context.Context, candidates []Candidate, onRegistered RegisteredFunc) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registering candidates...", "count", len(candidates))

	for i, c := range candidates {
		if c.Descriptor == nil {
			return fmt.Errorf("candidate %d (%s): descriptor is nil", i, c.Origin)
		}

		key, err := r.Register(c.Descriptor)
		if err != nil {
			return fmt.Errorf("failed to register candidate %s from %s: %w", key, c.Origin, err)
		}

		if onRegistered == nil {
			continue
		}
		if err := onRegistered(key, c); err != nil {
			return fmt.Errorf("registration callback failed for %s: %w", key, err)
		}
	}

	logger.Info("Registry loaded successfully.", "descriptors_registered", r.Len())
	return nil
}
