package procedural

import (
	"testing"
)

func TestGenerateSystemHasFixedStarAndNPlanets(t *testing.T) {
	cfgs := GenerateSystem(100, 5000, 6, 20, 200)
	if len(cfgs) != 7 {
		t.Fatalf("expected 1 star + 6 planets = 7, got %d", len(cfgs))
	}
	if !cfgs[0].Fixed {
		t.Fatal("first body should be the fixed star")
	}
	for _, c := range cfgs[1:] {
		if c.Fixed {
			t.Fatalf("planet %s should not be fixed", c.Name)
		}
		if c.Mass <= 0 {
			t.Fatalf("planet %s has non-positive mass %f", c.Name, c.Mass)
		}
	}
}

func TestGalaxyCollisionCapsParticleCount(t *testing.T) {
	cfgs := GalaxyCollision(100, 10000)
	// 2 cores + 2 * min(10000, 500) particles.
	want := 2 + 2*maxGalaxyParticles
	if len(cfgs) != want {
		t.Fatalf("GalaxyCollision body count = %d, want %d (cap not applied)", len(cfgs), want)
	}
}

func TestGalaxyCollisionBelowCapUsesRequestedCount(t *testing.T) {
	cfgs := GalaxyCollision(100, 50)
	want := 2 + 2*50
	if len(cfgs) != want {
		t.Fatalf("GalaxyCollision body count = %d, want %d", len(cfgs), want)
	}
}
