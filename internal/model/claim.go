package model

import "time"

// Claim represents the assertion under investigation, together with the
// entities and search terms derived from it
type Claim struct {
	Text        string    `json:"text"`               // The claim text itself
	Days        int       `json:"days"`               // Lookback window in days
	DateRange   DateRange `json:"date_range"`         // Window of interest derived from --days
	Entities    []Entity  `json:"entities"`           // Gazetteer entries matched by the claim
	SearchTerms []string  `json:"search_terms"`       // Social media search terms
	Fallback    bool      `json:"fallback,omitempty"` // True when no entity matched and defaults were used
}

// EntitiesOfKind returns the matched entities of the given kind, in gazetteer order
func (c *Claim) EntitiesOfKind(kind EntityKind) []Entity {
	var out []Entity
	for _, e := range c.Entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// DateRange is the inclusive analysis window, formatted as YYYY-MM-DD
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewDateRange builds the window ending now and starting days ago
func NewDateRange(now time.Time, days int) DateRange {
	if days < 0 {
		days = 0
	}
	return DateRange{
		Start: now.AddDate(0, 0, -days).Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	}
}

// EntityKind categorizes gazetteer entries
type EntityKind string

const (
	EntityNuclearSite EntityKind = "nuclear_site" // Nuclear research or power facility
	EntityAirBase     EntityKind = "air_base"     // Military air base
	EntityFlightArea  EntityKind = "flight_area"  // Geographic area monitored for flights
	EntityRegion      EntityKind = "region"       // Country or border region
)

// Entity is a named gazetteer entry matched against a claim
type Entity struct {
	Name        string     `json:"name"`
	Kind        EntityKind `json:"kind"`
	Coordinates []float64  `json:"coordinates,omitempty"` // [lat, lng]
	Bounds      string     `json:"bounds,omitempty"`      // "lat1-lat2,lng1-lng2" for flight areas
	Operator    string     `json:"operator,omitempty"`    // e.g. "Pakistani Air Force"
	Keywords    []string   `json:"-"`                     // Extra match terms, never serialized
}

// Lat returns the latitude, or 0 if coordinates are absent
func (e Entity) Lat() float64 {
	if len(e.Coordinates) >= 2 {
		return e.Coordinates[0]
	}
	return 0
}

// Lng returns the longitude, or 0 if coordinates are absent
func (e Entity) Lng() float64 {
	if len(e.Coordinates) >= 2 {
		return e.Coordinates[1]
	}
	return 0
}
