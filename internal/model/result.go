package model

// ModuleName identifies one of the four analysis modules
type ModuleName string

const (
	ModuleSatellite ModuleName = "satellite"
	ModuleFlight    ModuleName = "flight"
	ModuleMilitary  ModuleName = "military"
	ModuleSocial    ModuleName = "social"
)

// ModuleNames lists the modules in report order
func ModuleNames() []ModuleName {
	return []ModuleName{ModuleSatellite, ModuleFlight, ModuleMilitary, ModuleSocial}
}

// SourceLink is a deterministic external link constructed from an entity
type SourceLink struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Notes string `json:"notes,omitempty"`
}

// Finding is one entity's worth of module output: real links plus any
// synthetic records. Exactly one finding per entity per module.
type Finding struct {
	Entity      string       `json:"entity"`
	Kind        EntityKind   `json:"kind,omitempty"`
	Coordinates []float64    `json:"coordinates,omitempty"`
	Bounds      string       `json:"bounds,omitempty"`
	Operator    string       `json:"operator,omitempty"`
	DateRange   DateRange    `json:"date_range"`
	Sources     []SourceLink `json:"sources,omitempty"`
	Tips        []string     `json:"analysis_tips,omitempty"`
	Image       string       `json:"placeholder_image,omitempty"` // Path of the generated placeholder PNG

	Flights    []FlightRecord   `json:"flights,omitempty"`
	Activities []ActivityRecord `json:"activities,omitempty"`
	Posts      []SocialPost     `json:"posts,omitempty"`

	NoData bool `json:"no_data,omitempty"` // Live lookup failed and synthetic data was disabled
}

// FlightRecord is a single observed or synthetic flight
type FlightRecord struct {
	Date        string `json:"date"`
	Aircraft    string `json:"aircraft_type"`
	Altitude    int    `json:"altitude"`
	Speed       int    `json:"speed"`
	Pattern     string `json:"pattern"`
	Transponder string `json:"transponder"`
	Notes       string `json:"notes,omitempty"`
	Synthetic   bool   `json:"synthetic"`
}

// ActivityRecord is a single observed or synthetic military activity
type ActivityRecord struct {
	Date         string `json:"date"`
	Type         string `json:"type"`
	Significance string `json:"significance"`
	Description  string `json:"description"`
	Confidence   string `json:"confidence,omitempty"`
	Synthetic    bool   `json:"synthetic"`
}

// SocialPost is a single scraped or synthetic social media post
type SocialPost struct {
	Platform  string `json:"platform"`
	User      string `json:"user"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Source    string `json:"source,omitempty"`
	Synthetic bool   `json:"synthetic"`
}

// ModuleResult holds one module's findings. Each result belongs to exactly
// one module.
type ModuleResult struct {
	Module   ModuleName `json:"module"`
	Findings []Finding  `json:"findings"`
	Partial  bool       `json:"partial,omitempty"` // Some entities failed and were degraded
}

// EntityCount returns the number of findings (one per entity)
func (r *ModuleResult) EntityCount() int {
	if r == nil {
		return 0
	}
	return len(r.Findings)
}

// PostCount returns the total posts across all findings
func (r *ModuleResult) PostCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, f := range r.Findings {
		n += len(f.Posts)
	}
	return n
}

// HasSynthetic reports whether any record in the result carries the
// synthetic flag
func (r *ModuleResult) HasSynthetic() bool {
	if r == nil {
		return false
	}
	for _, f := range r.Findings {
		for _, fl := range f.Flights {
			if fl.Synthetic {
				return true
			}
		}
		for _, a := range f.Activities {
			if a.Synthetic {
				return true
			}
		}
		for _, p := range f.Posts {
			if p.Synthetic {
				return true
			}
		}
	}
	return false
}

// Links returns every source URL in the result, in finding order
func (r *ModuleResult) Links() []string {
	if r == nil {
		return nil
	}
	var urls []string
	for _, f := range r.Findings {
		for _, s := range f.Sources {
			urls = append(urls, s.URL)
		}
	}
	return urls
}
