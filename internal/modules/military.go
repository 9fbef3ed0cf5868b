package modules

import (
	"context"
	"fmt"
	"net/url"

	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/synth"
)

// MilitaryModule links each air base to free OSINT databases and, when
// enabled, fabricates sample activity records
type MilitaryModule struct {
	cfg model.SyntheticConfig
	gen *synth.Generator
}

// NewMilitaryModule creates the military movements module
func NewMilitaryModule(cfg model.SyntheticConfig, gen *synth.Generator) *MilitaryModule {
	return &MilitaryModule{cfg: cfg, gen: gen}
}

// Name returns the module's report tag
func (m *MilitaryModule) Name() model.ModuleName {
	return model.ModuleMilitary
}

// Produce emits one finding per air base in the claim
func (m *MilitaryModule) Produce(ctx context.Context, claim *model.Claim) (*model.ModuleResult, error) {
	result := &model.ModuleResult{Module: model.ModuleMilitary, Findings: []model.Finding{}}

	for _, base := range claim.EntitiesOfKind(model.EntityAirBase) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		finding := model.Finding{
			Entity:      base.Name,
			Kind:        base.Kind,
			Operator:    base.Operator,
			Coordinates: base.Coordinates,
			DateRange:   claim.DateRange,
			Sources:     militarySources(base),
			Tips: []string{
				"Look for increased aircraft deployments",
				"Monitor changes in alert status",
				"Check for unusual troop movements",
				"Note changes in vehicle counts from satellite imagery",
			},
		}

		if m.cfg.Enabled {
			finding.Activities = m.gen.Activities(base.Name, m.cfg.RecordsPer, claim.Days)
		}

		result.Findings = append(result.Findings, finding)
	}

	return result, nil
}

// militarySources builds the OSINT database links for a base. The GDELT
// query is derived deterministically from the base name.
func militarySources(base model.Entity) []model.SourceLink {
	query := fmt.Sprintf("%s military activity", base.Name)
	return []model.SourceLink{
		{
			Name:  "GDELT Project",
			URL:   "https://www.gdeltproject.org/search/results.php?query=" + url.QueryEscape(query),
			Notes: fmt.Sprintf("Free event database, query: %q", query),
		},
		{
			Name:  "LiveUAMap",
			URL:   "https://liveuamap.com/",
			Notes: "Partially free, region: Asia",
		},
		{
			Name:  "Bellingcat's OSINT Toolkit",
			URL:   "https://docs.google.com/document/d/1BfLPJpRtyq4RFtHJoNpvWQjmGnyVkfE2HYoICKOGguA/edit",
			Notes: "Free resource collection",
		},
	}
}
