// Package synth fabricates clearly-marked placeholder records used when
// live data sources are unavailable. Values come from fixed templates and
// ranges; there is no seeding or reproducibility guarantee.
package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/truthscan/truthscan/internal/model"
)

// Generator produces synthetic flight, military, and social records
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator. A nil source uses the default
// time-seeded source.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{
		rng: rand.New(src),
		now: time.Now(),
	}
}

// militaryAircraft are common types in the monitored theater
var militaryAircraft = []string{
	"C-130", "F-16", "MiG-29", "Su-30MKI", "Mi-17", "CH-47", "P-8I", "E-2C",
}

// Flights generates count synthetic flight records within the window.
// Exactly one record (the first) shows an unusual pattern, the rest are
// routine context.
func (g *Generator) Flights(count, days int) []model.FlightRecord {
	flights := make([]model.FlightRecord, 0, count)
	for i := 0; i < count; i++ {
		unusual := i == 0

		f := model.FlightRecord{
			Date:      g.dateWithin(days),
			Aircraft:  militaryAircraft[g.rng.Intn(len(militaryAircraft))],
			Synthetic: true,
		}
		if unusual {
			f.Altitude = 5000 + g.rng.Intn(5001)
			f.Speed = 200 + g.rng.Intn(151)
			f.Pattern = "Unusual circling pattern"
			f.Transponder = "Intermittent"
			f.Notes = "Unusual activity - requires verification"
		} else {
			f.Altitude = 15000 + g.rng.Intn(20001)
			f.Speed = 350 + g.rng.Intn(151)
			f.Pattern = "Standard transit"
			f.Transponder = "Active"
			f.Notes = "Normal military movement"
		}
		flights = append(flights, f)
	}
	return flights
}

// activityTypes with significance and selection weights, skewed towards
// routine activity
var activityTypes = []struct {
	Type         string
	Significance string
	Weight       float64
}{
	{"Normal operations", "Low", 0.40},
	{"Training exercise", "Low", 0.30},
	{"Increased readiness", "Medium", 0.15},
	{"Alert status change", "Medium", 0.10},
	{"Unusual deployment", "High", 0.05},
}

// Activities generates count synthetic military activity records for the
// named base
func (g *Generator) Activities(baseName string, count, days int) []model.ActivityRecord {
	activities := make([]model.ActivityRecord, 0, count)
	for i := 0; i < count; i++ {
		at := g.pickActivity()
		activities = append(activities, model.ActivityRecord{
			Date:         g.dateWithin(days),
			Type:         at.Type,
			Significance: at.Significance,
			Description:  fmt.Sprintf("%s observed at %s", at.Type, baseName),
			Confidence:   "Medium - requires verification",
			Synthetic:    true,
		})
	}
	return activities
}

// pickActivity draws an activity type by weight
func (g *Generator) pickActivity() struct {
	Type         string
	Significance string
	Weight       float64
} {
	r := g.rng.Float64()
	acc := 0.0
	for _, at := range activityTypes {
		acc += at.Weight
		if r < acc {
			return at
		}
	}
	return activityTypes[len(activityTypes)-1]
}

// Post templates keyed by theme. Placeholders are filled from the
// variable table below.
var postTemplates = map[string][]string{
	"conflict": {
		"Reports of {intensity} tensions between India and Pakistan near {location}. #IndoPak",
		"Military analysts watching {location} border situation closely. No confirmation of strikes. #IndoPak",
		"{official} denies reports of conflict escalation between India and Pakistan.",
		"Unconfirmed reports of {activity} near {location}. Awaiting official statement.",
		"Satellite imagery shows no evidence of {claimed_activity} at {location} despite online rumors.",
	},
	"nuclear": {
		"Pakistan's nuclear facilities remain under normal operations. Claims of attacks are unverified.",
		"Security increased at {location} nuclear site, but no incidents reported. Standard procedure.",
		"Misinformation spreading about Pakistani nuclear facilities. No evidence of any strikes.",
		"Analysts confirm no unusual activity at {location} based on available satellite imagery.",
		"{official} statement: 'All nuclear facilities secure and operational. Dismiss false reports.'",
	},
	"military": {
		"Military movements observed near {location}, consistent with routine {exercise_type} exercises.",
		"Indian Air Force denies conducting any operations across Pakistani airspace.",
		"Pakistan military on heightened alert near {location}, but no conflict reported.",
		"Defense analysts: Claims of airstrikes lack credible evidence. Likely misinformation.",
		"Routine troop rotations misinterpreted as conflict preparation. Situation normal.",
	},
}

var postVariables = map[string][]string{
	"intensity":        {"growing", "moderate", "concerning", "limited", "alleged"},
	"official":         {"Pakistani Foreign Ministry", "Indian Defense Ministry", "Military spokesperson", "Intelligence sources", "ISPR"},
	"activity":         {"troop movements", "surveillance flights", "radar activity", "military exercises", "border patrols"},
	"claimed_activity": {"airstrikes", "missile impacts", "drone operations", "special forces activity", "artillery fire"},
	"exercise_type":    {"defense", "readiness", "annual", "counter-terrorism", "joint forces"},
	"location":         {"Kahuta", "Sargodha", "Kamra", "Chashma", "Karachi nuclear plant"},
}

// Posts generates count synthetic social media posts themed after the
// search term
func (g *Generator) Posts(searchTerm string, count, days int) []model.SocialPost {
	templates := postTemplates[themeFor(searchTerm)]

	posts := make([]model.SocialPost, 0, count)
	for i := 0; i < count; i++ {
		content := templates[g.rng.Intn(len(templates))]
		for name, options := range postVariables {
			placeholder := "{" + name + "}"
			for strings.Contains(content, placeholder) {
				content = strings.Replace(content, placeholder, options[g.rng.Intn(len(options))], 1)
			}
		}

		posts = append(posts, model.SocialPost{
			Platform:  "Twitter (synthetic)",
			User:      fmt.Sprintf("Synthetic_User_%04d", 1000+g.rng.Intn(9000)),
			Content:   content,
			Date:      g.dateWithin(days),
			Source:    "Algorithmically generated for analysis",
			Synthetic: true,
		})
	}
	return posts
}

// themeFor picks the template category for a search term
func themeFor(term string) string {
	lower := strings.ToLower(term)
	if strings.Contains(lower, "nuclear") {
		return "nuclear"
	}
	for _, kw := range []string{"military", "airstrike", "alert"} {
		if strings.Contains(lower, kw) {
			return "military"
		}
	}
	return "conflict"
}

// dateWithin returns a random date within the last days days
func (g *Generator) dateWithin(days int) string {
	if days < 0 {
		days = 0
	}
	back := 0
	if days > 0 {
		back = g.rng.Intn(days + 1)
	}
	return g.now.AddDate(0, 0, -back).Format("2006-01-02")
}
