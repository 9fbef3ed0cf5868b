package modules

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/truthscan/truthscan/internal/extract"
	"github.com/truthscan/truthscan/internal/model"
	"github.com/truthscan/truthscan/internal/synth"
)

func testClaim(t *testing.T, text string) *model.Claim {
	t.Helper()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	return extract.NewClaimParser().Parse(text, 7, now)
}

func TestSatelliteModule_OneFindingPerSite(t *testing.T) {
	claim := testClaim(t, "India strikes Pakistan nuclear sites")
	mod := NewSatelliteModule(nil)

	result, err := mod.Produce(context.Background(), claim)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	sites := claim.EntitiesOfKind(model.EntityNuclearSite)
	if len(result.Findings) != len(sites) {
		t.Fatalf("expected %d findings, got %d", len(sites), len(result.Findings))
	}
	for i, f := range result.Findings {
		if f.Entity != sites[i].Name {
			t.Errorf("finding %d entity = %q, want %q", i, f.Entity, sites[i].Name)
		}
		if len(f.Sources) != 2 {
			t.Errorf("finding %d: expected 2 imagery sources, got %d", i, len(f.Sources))
		}
	}
}

func TestSatelliteModule_LinkFormats(t *testing.T) {
	claim := testClaim(t, "explosion reported near Khushab")
	mod := NewSatelliteModule(nil)

	result, err := mod.Produce(context.Background(), claim)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if len(result.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(result.Findings))
	}

	sources := result.Findings[0].Sources
	wantSentinel := "https://apps.sentinel-hub.com/eo-browser/?zoom=13&lat=32.033&lng=72.2&themeId=DEFAULT-THEME"
	if sources[0].URL != wantSentinel {
		t.Errorf("sentinel URL = %q, want %q", sources[0].URL, wantSentinel)
	}
	wantMaps := "https://www.google.com/maps/@32.033,72.2,1000m/data=!3m1!1e3"
	if sources[1].URL != wantMaps {
		t.Errorf("maps URL = %q, want %q", sources[1].URL, wantMaps)
	}
}

func TestSatelliteModule_Deterministic(t *testing.T) {
	claim := testClaim(t, "India strikes Pakistan nuclear sites")
	mod := NewSatelliteModule(nil)

	first, err := mod.Produce(context.Background(), claim)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := mod.Produce(context.Background(), claim)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	firstLinks := first.Links()
	secondLinks := second.Links()
	if len(firstLinks) != len(secondLinks) {
		t.Fatalf("link counts differ: %d vs %d", len(firstLinks), len(secondLinks))
	}
	for i := range firstLinks {
		if firstLinks[i] != secondLinks[i] {
			t.Errorf("link %d differs: %q vs %q", i, firstLinks[i], secondLinks[i])
		}
	}
}

func TestFlightModule(t *testing.T) {
	claim := testClaim(t, "airstrikes reported over Punjab border")
	syn := model.SyntheticConfig{Enabled: true, RecordsPer: 5}
	mod := NewFlightModule(syn, synth.NewGenerator(rand.NewSource(1)))

	result, err := mod.Produce(context.Background(), claim)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	areas := claim.EntitiesOfKind(model.EntityFlightArea)
	if len(result.Findings) != len(areas) {
		t.Fatalf("expected %d findings, got %d", len(areas), len(result.Findings))
	}
	for _, f := range result.Findings {
		if len(f.Sources) != 3 {
			t.Errorf("%s: expected 3 tracker links, got %d", f.Entity, len(f.Sources))
		}
		if len(f.Flights) != 5 {
			t.Errorf("%s: expected 5 synthetic flights, got %d", f.Entity, len(f.Flights))
		}
		for _, fl := range f.Flights {
			if !fl.Synthetic {
				t.Errorf("%s: flight record not flagged synthetic", f.Entity)
			}
		}
	}
}

func TestFlightModule_NoSynthetic(t *testing.T) {
	claim := testClaim(t, "airstrikes reported over Punjab border")
	mod := NewFlightModule(model.SyntheticConfig{Enabled: false}, synth.NewGenerator(rand.NewSource(1)))

	result, err := mod.Produce(context.Background(), claim)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if result.HasSynthetic() {
		t.Error("disabled synthetic data still produced flagged records")
	}
	for _, f := range result.Findings {
		if len(f.Flights) != 0 {
			t.Errorf("%s: expected no flight records, got %d", f.Entity, len(f.Flights))
		}
	}
}

func TestMilitaryModule(t *testing.T) {
	claim := testClaim(t, "attack on Sargodha")
	syn := model.SyntheticConfig{Enabled: true, RecordsPer: 3}
	mod := NewMilitaryModule(syn, synth.NewGenerator(rand.NewSource(2)))

	result, err := mod.Produce(context.Background(), claim)
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	bases := claim.EntitiesOfKind(model.EntityAirBase)
	if len(result.Findings) != len(bases) {
		t.Fatalf("expected %d findings, got %d", len(bases), len(result.Findings))
	}
	for _, f := range result.Findings {
		if len(f.Sources) != 3 {
			t.Errorf("%s: expected 3 OSINT links, got %d", f.Entity, len(f.Sources))
		}
		if !strings.Contains(f.Sources[0].URL, "gdeltproject.org") {
			t.Errorf("%s: first link should be GDELT, got %q", f.Entity, f.Sources[0].URL)
		}
		if strings.ContainsAny(f.Sources[0].URL, " ") {
			t.Errorf("%s: GDELT query not escaped: %q", f.Entity, f.Sources[0].URL)
		}
		if len(f.Activities) != 3 {
			t.Errorf("%s: expected 3 activity records, got %d", f.Entity, len(f.Activities))
		}
	}
}

func TestModuleContextCancellation(t *testing.T) {
	claim := testClaim(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mods := []Module{
		NewSatelliteModule(nil),
		NewFlightModule(model.SyntheticConfig{}, synth.NewGenerator(rand.NewSource(1))),
		NewMilitaryModule(model.SyntheticConfig{}, synth.NewGenerator(rand.NewSource(1))),
		NewSocialModule(model.SyntheticConfig{}, model.SocialConfig{}, nil, synth.NewGenerator(rand.NewSource(1))),
	}
	for _, mod := range mods {
		if _, err := mod.Produce(ctx, claim); err == nil {
			t.Errorf("%s: expected context error", mod.Name())
		}
	}
}

func TestRegistry_AllModulesPresent(t *testing.T) {
	cfg := model.DefaultConfig()
	reg := NewRegistry(cfg, nil, nil)

	mods := reg.Modules()
	names := model.ModuleNames()
	if len(mods) != len(names) {
		t.Fatalf("expected %d modules, got %d", len(names), len(mods))
	}
	for i, mod := range mods {
		if mod.Name() != names[i] {
			t.Errorf("module %d = %s, want %s", i, mod.Name(), names[i])
		}
	}
}
