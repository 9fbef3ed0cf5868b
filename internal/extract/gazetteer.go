package extract

import "github.com/truthscan/truthscan/internal/model"

// Gazetteer is the static lookup table of named entities used for
// claim matching. Entries are matched case-insensitively as substrings;
// the Keywords field adds aliases beyond the display name.
type Gazetteer struct {
	NuclearSites []model.Entity
	AirBases     []model.Entity
	FlightAreas  []model.Entity
	Regions      []model.Entity
}

// All returns every entry in fixed order: nuclear sites, air bases,
// flight areas, regions
func (g *Gazetteer) All() []model.Entity {
	var all []model.Entity
	all = append(all, g.NuclearSites...)
	all = append(all, g.AirBases...)
	all = append(all, g.FlightAreas...)
	all = append(all, g.Regions...)
	return all
}

// DefaultGazetteer returns the built-in South Asia theater gazetteer
func DefaultGazetteer() *Gazetteer {
	return &Gazetteer{
		NuclearSites: []model.Entity{
			{
				Name:        "Kahuta (Khan Research Laboratories)",
				Kind:        model.EntityNuclearSite,
				Coordinates: []float64{33.591, 73.382},
				Keywords:    []string{"kahuta", "khan research"},
			},
			{
				Name:        "Khushab Nuclear Complex",
				Kind:        model.EntityNuclearSite,
				Coordinates: []float64{32.033, 72.2},
				Keywords:    []string{"khushab"},
			},
			{
				Name:        "Chashma Nuclear Power Plant",
				Kind:        model.EntityNuclearSite,
				Coordinates: []float64{32.392, 71.458},
				Keywords:    []string{"chashma"},
			},
			{
				Name:        "Karachi Nuclear Power Plant (KANUPP)",
				Kind:        model.EntityNuclearSite,
				Coordinates: []float64{24.842, 66.792},
				Keywords:    []string{"karachi nuclear", "kanupp"},
			},
			{
				Name:        "Kundian Nuclear Complex",
				Kind:        model.EntityNuclearSite,
				Coordinates: []float64{32.448, 71.478},
				Keywords:    []string{"kundian"},
			},
		},
		AirBases: []model.Entity{
			{
				Name:        "Sargodha Air Base",
				Kind:        model.EntityAirBase,
				Operator:    "Pakistani Air Force",
				Coordinates: []float64{32.0493, 72.6719},
				Keywords:    []string{"sargodha"},
			},
			{
				Name:        "Kamra Air Base",
				Kind:        model.EntityAirBase,
				Operator:    "Pakistani Air Force",
				Coordinates: []float64{33.8709, 72.4007},
				Keywords:    []string{"kamra"},
			},
			{
				Name:        "Masroor Air Base",
				Kind:        model.EntityAirBase,
				Operator:    "Pakistani Air Force",
				Coordinates: []float64{24.8897, 66.9381},
				Keywords:    []string{"masroor"},
			},
			{
				Name:        "Pathankot Air Base",
				Kind:        model.EntityAirBase,
				Operator:    "Indian Air Force",
				Coordinates: []float64{32.2346, 75.6343},
				Keywords:    []string{"pathankot"},
			},
			{
				Name:        "Adampur Air Base",
				Kind:        model.EntityAirBase,
				Operator:    "Indian Air Force",
				Coordinates: []float64{31.4336, 75.7686},
				Keywords:    []string{"adampur"},
			},
		},
		FlightAreas: []model.Entity{
			{
				Name:     "Kahuta Region",
				Kind:     model.EntityFlightArea,
				Bounds:   "33.5-33.7,73.3-73.5",
				Keywords: []string{"kahuta"},
			},
			{
				Name:     "Rawalpindi Air Base",
				Kind:     model.EntityFlightArea,
				Bounds:   "33.6-33.65,73.0-73.1",
				Keywords: []string{"rawalpindi"},
			},
			{
				Name:     "Indian Border Area (Punjab)",
				Kind:     model.EntityFlightArea,
				Bounds:   "32.0-33.0,74.5-75.0",
				Keywords: []string{"punjab", "border"},
			},
		},
		Regions: []model.Entity{
			{
				Name:     "India",
				Kind:     model.EntityRegion,
				Keywords: []string{"india", "indian"},
			},
			{
				Name:     "Pakistan",
				Kind:     model.EntityRegion,
				Keywords: []string{"pakistan", "pakistani"},
			},
			{
				Name:     "Kashmir",
				Kind:     model.EntityRegion,
				Keywords: []string{"kashmir", "loc", "line of control"},
			},
		},
	}
}

// defaultSearchTerms are used when the claim matches the South Asia
// theater (or nothing at all)
var defaultSearchTerms = []string{
	"India Pakistan conflict",
	"Pakistan nuclear facility",
	"Indian airstrike Pakistan",
	"Pakistan military alert",
	"India Pakistan border tension",
}
