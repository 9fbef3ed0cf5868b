package modules

import (
	"context"
	"fmt"
	"os"

	"github.com/truthscan/truthscan/internal/imaging"
	"github.com/truthscan/truthscan/internal/model"
)

// SatelliteModule links each nuclear site to free satellite imagery
// browsers. Links are constructed deterministically from coordinates.
type SatelliteModule struct {
	images *imaging.Writer // nil disables placeholder files
}

// NewSatelliteModule creates the satellite imagery module
func NewSatelliteModule(images *imaging.Writer) *SatelliteModule {
	return &SatelliteModule{images: images}
}

// Name returns the module's report tag
func (m *SatelliteModule) Name() model.ModuleName {
	return model.ModuleSatellite
}

// Produce emits one finding per nuclear site in the claim
func (m *SatelliteModule) Produce(ctx context.Context, claim *model.Claim) (*model.ModuleResult, error) {
	result := &model.ModuleResult{Module: model.ModuleSatellite, Findings: []model.Finding{}}

	for _, site := range claim.EntitiesOfKind(model.EntityNuclearSite) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		sources := satelliteSources(site)

		finding := model.Finding{
			Entity:      site.Name,
			Kind:        site.Kind,
			Coordinates: site.Coordinates,
			DateRange:   claim.DateRange,
			Sources:     sources,
			Tips: []string{
				"Look for new craters, debris, fire damage, or structural changes",
			},
		}

		if m.images != nil {
			path, err := m.images.WriteSitePlaceholder(site, claim.DateRange, sources)
			if err != nil {
				// Placeholder files are best-effort, the report still stands
				fmt.Fprintf(os.Stderr, "Warning: placeholder image for %s: %v\n", site.Name, err)
			} else {
				finding.Image = path
			}
		}

		result.Findings = append(result.Findings, finding)
	}

	return result, nil
}

// satelliteSources builds the deterministic imagery links for a site
func satelliteSources(site model.Entity) []model.SourceLink {
	return []model.SourceLink{
		{
			Name:  "Sentinel Hub (free)",
			URL:   fmt.Sprintf("https://apps.sentinel-hub.com/eo-browser/?zoom=13&lat=%g&lng=%g&themeId=DEFAULT-THEME", site.Lat(), site.Lng()),
			Notes: "10m resolution imagery, requires manual review",
		},
		{
			Name:  "Google Maps Satellite",
			URL:   fmt.Sprintf("https://www.google.com/maps/@%g,%g,1000m/data=!3m1!1e3", site.Lat(), site.Lng()),
			Notes: "Historical imagery may be available through time slider",
		},
	}
}
