package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewDateRange(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	dr := NewDateRange(now, 7)
	if dr.End != "2026-08-31" {
		t.Errorf("end = %s", dr.End)
	}
	if dr.Start != "2026-08-24" {
		t.Errorf("start = %s", dr.Start)
	}

	same := NewDateRange(now, 0)
	if same.Start != same.End {
		t.Errorf("zero-day range should collapse: %s..%s", same.Start, same.End)
	}
}

func TestReportResultSlots(t *testing.T) {
	r := NewReport("test claim", DateRange{Start: "2026-08-24", End: "2026-08-31"},
		time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))

	if r.Tool != ToolName || r.Version != ToolVersion {
		t.Errorf("identity = %s %s", r.Tool, r.Version)
	}
	if r.AnalysisDate != "2026-08-31 12:00:00" {
		t.Errorf("analysis date = %s", r.AnalysisDate)
	}

	for _, name := range ModuleNames() {
		if r.Result(name) != nil {
			t.Errorf("fresh report has result for %s", name)
		}
	}

	res := &ModuleResult{Module: ModuleFlight, Findings: []Finding{{Entity: "x"}}}
	r.SetResult(res)
	if r.Result(ModuleFlight) != res {
		t.Error("SetResult did not land in the flight slot")
	}
	if r.Result(ModuleSatellite) != nil {
		t.Error("SetResult leaked into another slot")
	}

	r.SetResult(nil) // no-op
	if r.Result(ModuleFlight) != res {
		t.Error("nil SetResult cleared a slot")
	}
}

func TestReportHasSynthetic(t *testing.T) {
	r := NewReport("c", DateRange{}, time.Now())
	if r.HasSynthetic() {
		t.Error("empty report flagged synthetic")
	}

	r.SetResult(&ModuleResult{Module: ModuleSocial, Findings: []Finding{
		{Entity: "t", Posts: []SocialPost{{Content: "x", Synthetic: true}}},
	}})
	if !r.HasSynthetic() {
		t.Error("synthetic post not detected")
	}
}

func TestModuleResultNilSafe(t *testing.T) {
	var r *ModuleResult
	if r.EntityCount() != 0 || r.PostCount() != 0 || r.HasSynthetic() || r.Links() != nil {
		t.Error("nil result accessors should return zero values")
	}
}

func TestModuleResultCounts(t *testing.T) {
	r := &ModuleResult{Module: ModuleSocial, Findings: []Finding{
		{Entity: "a", Posts: []SocialPost{{Content: "1"}, {Content: "2"}}},
		{Entity: "b", Posts: []SocialPost{{Content: "3"}}},
		{Entity: "c", NoData: true},
	}}
	if r.EntityCount() != 3 {
		t.Errorf("EntityCount = %d", r.EntityCount())
	}
	if r.PostCount() != 3 {
		t.Errorf("PostCount = %d", r.PostCount())
	}
}

func TestModuleResultLinks(t *testing.T) {
	r := &ModuleResult{Module: ModuleSatellite, Findings: []Finding{
		{Entity: "a", Sources: []SourceLink{{URL: "https://one"}, {URL: "https://two"}}},
		{Entity: "b", Sources: []SourceLink{{URL: "https://three"}}},
	}}
	links := r.Links()
	want := []string{"https://one", "https://two", "https://three"}
	if len(links) != len(want) {
		t.Fatalf("links = %v", links)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("link %d = %q, want %q", i, links[i], want[i])
		}
	}
}

func TestReportJSONKeys(t *testing.T) {
	r := NewReport("c", DateRange{Start: "2026-08-24", End: "2026-08-31"}, time.Now())
	for _, name := range ModuleNames() {
		r.SetResult(&ModuleResult{Module: name, Findings: []Finding{}})
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		`"tool"`, `"claim"`, `"date_range"`, `"analysis_date"`,
		`"satellite_analysis"`, `"flight_data"`, `"military_movements"`, `"social_media"`,
	} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing key %s", key)
		}
	}
	if strings.Contains(string(data), `"assessment"`) {
		t.Error("empty assessment should be omitted")
	}
}

func TestEntityAccessors(t *testing.T) {
	e := Entity{Name: "x", Coordinates: []float64{33.591, 73.382}}
	if e.Lat() != 33.591 || e.Lng() != 73.382 {
		t.Errorf("lat/lng = %v/%v", e.Lat(), e.Lng())
	}

	var empty Entity
	if empty.Lat() != 0 || empty.Lng() != 0 {
		t.Error("missing coordinates should read as zero")
	}
}

func TestEntitiesOfKind(t *testing.T) {
	c := Claim{Entities: []Entity{
		{Name: "a", Kind: EntityNuclearSite},
		{Name: "b", Kind: EntityAirBase},
		{Name: "c", Kind: EntityNuclearSite},
	}}
	sites := c.EntitiesOfKind(EntityNuclearSite)
	if len(sites) != 2 || sites[0].Name != "a" || sites[1].Name != "c" {
		t.Errorf("sites = %v", sites)
	}
	if got := c.EntitiesOfKind(EntityFlightArea); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}
