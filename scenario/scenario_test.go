package scenario

import (
	"strings"
	"testing"
)

func TestLoadKnownScenarios(t *testing.T) {
	for _, name := range Names {
		cfgs, ok := Load(name, 100)
		if !ok {
			t.Errorf("Load(%q) reported unknown", name)
		}
		if len(cfgs) == 0 {
			t.Errorf("Load(%q) returned no bodies", name)
		}
	}
}

func TestLoadUnknownScenarioIsNoop(t *testing.T) {
	cfgs, ok := Load("not_a_real_scenario", 100)
	if ok || cfgs != nil {
		t.Fatalf("expected unknown scenario to report ok=false, got ok=%v cfgs=%v", ok, cfgs)
	}
}

func TestSunEarthHasOneFixedBody(t *testing.T) {
	cfgs, _ := Load("sun_earth", 100)
	fixedCount := 0
	for _, c := range cfgs {
		if c.Fixed {
			fixedCount++
		}
	}
	if fixedCount != 1 {
		t.Fatalf("sun_earth should have exactly one fixed body, got %d", fixedCount)
	}
}

func TestFigureEightIsThreeEqualMassBodies(t *testing.T) {
	cfgs, _ := Load("figure_eight", 100)
	if len(cfgs) != 3 {
		t.Fatalf("figure_eight should have 3 bodies, got %d", len(cfgs))
	}
	for _, c := range cfgs {
		if c.Mass != 100.0 {
			t.Errorf("figure_eight body %s mass = %f, want 100", c.Name, c.Mass)
		}
	}
}

func TestAsteroidBeltHasExpectedCount(t *testing.T) {
	cfgs, _ := Load("asteroid_belt", 100)
	asteroids := 0
	for _, c := range cfgs {
		if strings.HasPrefix(c.Name, "Asteroid ") {
			asteroids++
		}
	}
	if asteroids != 200 {
		t.Fatalf("expected 200 asteroids, got %d", asteroids)
	}
	if len(cfgs) != 200+5+1 {
		t.Fatalf("expected sun+4 inner planets+200 asteroids+jupiter = 206, got %d", len(cfgs))
	}
}
