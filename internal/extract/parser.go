package extract

import (
	"strings"
	"time"

	"github.com/truthscan/truthscan/internal/model"
)

// ClaimParser matches a claim string against the gazetteer and derives
// search terms. No fuzzy matching, no NLP: case-insensitive substring
// matching only.
type ClaimParser struct {
	gazetteer *Gazetteer

	// topicKinds expands generic topic keywords into whole entity
	// categories, e.g. "nuclear sites" pulls in every nuclear site
	topicKinds map[string][]model.EntityKind
}

// NewClaimParser creates a parser over the default gazetteer
func NewClaimParser() *ClaimParser {
	return NewClaimParserWithGazetteer(DefaultGazetteer())
}

// NewClaimParserWithGazetteer creates a parser over a custom gazetteer
func NewClaimParserWithGazetteer(g *Gazetteer) *ClaimParser {
	return &ClaimParser{
		gazetteer: g,
		topicKinds: map[string][]model.EntityKind{
			"nuclear":   {model.EntityNuclearSite},
			"strike":    {model.EntityAirBase, model.EntityFlightArea},
			"airstrike": {model.EntityAirBase, model.EntityFlightArea},
			"attack":    {model.EntityAirBase},
			"military":  {model.EntityAirBase},
			"air base":  {model.EntityAirBase},
			"airbase":   {model.EntityAirBase},
			"flight":    {model.EntityFlightArea},
			"aircraft":  {model.EntityFlightArea},
			"airspace":  {model.EntityFlightArea},
			"border":    {model.EntityFlightArea},
		},
	}
}

// Parse matches the claim against the gazetteer and returns the derived
// claim. The returned entity set is never empty: when nothing matches
// (including the empty claim) the full default gazetteer is used. The
// fallback is a design choice, not an error.
func (p *ClaimParser) Parse(claimText string, days int, now time.Time) *model.Claim {
	lower := strings.ToLower(claimText)

	matched := p.matchEntities(lower)

	fallback := len(matched) == 0
	if fallback {
		matched = p.gazetteer.All()
	}

	return &model.Claim{
		Text:        claimText,
		Days:        days,
		DateRange:   model.NewDateRange(now, days),
		Entities:    matched,
		SearchTerms: p.deriveSearchTerms(claimText, lower, fallback),
		Fallback:    fallback,
	}
}

// matchEntities returns gazetteer entries whose name or keywords appear
// in the claim, plus whole categories pulled in by topic keywords.
// Order follows the gazetteer; each entity appears at most once.
func (p *ClaimParser) matchEntities(lower string) []model.Entity {
	wantKinds := make(map[model.EntityKind]bool)
	for topic, kinds := range p.topicKinds {
		if strings.Contains(lower, topic) {
			for _, k := range kinds {
				wantKinds[k] = true
			}
		}
	}

	// A region mention widens the net to the area's flight corridors
	for _, region := range p.gazetteer.Regions {
		if entityMentioned(lower, region) {
			wantKinds[model.EntityFlightArea] = true
		}
	}

	var matched []model.Entity
	seen := make(map[string]bool)
	for _, e := range p.gazetteer.All() {
		if seen[e.Name] {
			continue
		}
		if entityMentioned(lower, e) || wantKinds[e.Kind] {
			matched = append(matched, e)
			seen[e.Name] = true
		}
	}
	return matched
}

// entityMentioned checks the entity name and its keyword aliases as
// case-insensitive substrings of the claim
func entityMentioned(lower string, e model.Entity) bool {
	if lower == "" {
		return false
	}
	if strings.Contains(lower, strings.ToLower(e.Name)) {
		return true
	}
	for _, kw := range e.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// deriveSearchTerms builds social media search terms. Claims in the
// default theater (or the empty fallback) use the fixed term list;
// otherwise terms are derived from the claim words.
func (p *ClaimParser) deriveSearchTerms(claimText, lower string, fallback bool) []string {
	if fallback {
		return append([]string(nil), defaultSearchTerms...)
	}

	for _, region := range p.gazetteer.Regions {
		if entityMentioned(lower, region) {
			return append([]string(nil), defaultSearchTerms...)
		}
	}

	// Generic terms from the claim itself
	terms := []string{strings.TrimSpace(claimText)}
	if words := significantWords(lower); len(words) >= 2 {
		terms = append(terms, strings.Join(words[:2], " ")+" claim verification")
	}
	return terms
}

// stopwords excluded from derived search terms
var stopwords = map[string]bool{
	"the": true, "and": true, "that": true, "with": true, "from": true,
	"this": true, "have": true, "near": true, "over": true, "into": true,
}

// significantWords returns claim words longer than three characters,
// excluding stopwords, in order of appearance
func significantWords(lower string) []string {
	var out []string
	for _, w := range strings.Fields(lower) {
		w = strings.Trim(w, ".,!?\"'()")
		if len(w) > 3 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}
