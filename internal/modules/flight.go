package modules

import (
	"context"

	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/synth"
)

// FlightModule links each monitored area to free flight tracking
// services and, when enabled, fabricates sample flight records
type FlightModule struct {
	cfg model.SyntheticConfig
	gen *synth.Generator
}

// NewFlightModule creates the flight data module
func NewFlightModule(cfg model.SyntheticConfig, gen *synth.Generator) *FlightModule {
	return &FlightModule{cfg: cfg, gen: gen}
}

// Name returns the module's report tag
func (m *FlightModule) Name() model.ModuleName {
	return model.ModuleFlight
}

// Produce emits one finding per flight area in the claim
func (m *FlightModule) Produce(ctx context.Context, claim *model.Claim) (*model.ModuleResult, error) {
	result := &model.ModuleResult{Module: model.ModuleFlight, Findings: []model.Finding{}}

	for _, area := range claim.EntitiesOfKind(model.EntityFlightArea) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		finding := model.Finding{
			Entity:    area.Name,
			Kind:      area.Kind,
			Bounds:    area.Bounds,
			DateRange: claim.DateRange,
			Sources:   flightSources(),
			Tips: []string{
				"Look for unusual flight patterns or military aircraft",
				"Search for no-fly zones or airspace restrictions",
				"Monitor periods of no civilian traffic",
				"Check for helicopters or special operations aircraft",
			},
		}

		if m.cfg.Enabled {
			finding.Flights = m.gen.Flights(m.cfg.RecordsPer, claim.Days)
		}

		result.Findings = append(result.Findings, finding)
	}

	return result, nil
}

// flightSources lists the free flight tracking alternatives. The links
// are fixed: the services are map interfaces without stable deep links.
func flightSources() []model.SourceLink {
	return []model.SourceLink{
		{
			Name:  "ADS-B Exchange",
			URL:   "https://globe.adsbexchange.com/",
			Notes: "Filter for military aircraft using ICAO ranges or 'Military' filter",
		},
		{
			Name:  "Flightradar24 Free Tier",
			URL:   "https://www.flightradar24.com/",
			Notes: "Limited history but shows current military transponders",
		},
		{
			Name:  "RadarBox Free",
			URL:   "https://www.radarbox.com/",
			Notes: "Some military flights visible when transponders active",
		},
	}
}
