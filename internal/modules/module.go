// Package modules holds the four analysis modules. Each module is
// polymorphic over the same capability: given a parsed claim, produce a
// result of per-entity findings with deterministic external links and,
// when enabled, synthetic placeholder records.
package modules

import (
	"context"

	"github.com/truthscan/truthscan/internal/imaging"
	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/synth"
)

// Module is a single analysis capability
type Module interface {
	// Name returns the module's report tag
	Name() model.ModuleName

	// Produce builds the module result for the claim's entities and
	// date range
	Produce(ctx context.Context, claim *model.Claim) (*model.ModuleResult, error)
}

// PageFetcher retrieves a page body for live lookups
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Registry holds the four modules in fixed report order
type Registry struct {
	modules []Module
}

// NewRegistry wires the standard module set. fetcher may be nil to
// disable live social lookups; images may be nil to disable placeholder
// files.
func NewRegistry(cfg *model.Config, fetcher PageFetcher, images *imaging.Writer) *Registry {
	gen := synth.NewGenerator(nil)

	return &Registry{
		modules: []Module{
			NewSatelliteModule(images),
			NewFlightModule(cfg.Synthetic, gen),
			NewMilitaryModule(cfg.Synthetic, gen),
			NewSocialModule(cfg.Synthetic, cfg.Social, fetcher, gen),
		},
	}
}

// Modules returns the modules in report order: satellite, flight,
// military, social
func (r *Registry) Modules() []Module {
	return r.modules
}

// Register appends a custom module
func (r *Registry) Register(m Module) {
	r.modules = append(r.modules, m)
}
