package body

import (
	"testing"

	"github.com/saagar210/OrbitForge/vector3"
)

func TestNewClampsMassAndRadius(t *testing.T) {
	b := New(1, Config{Mass: -5, Radius: -1})
	if b.Mass != MinMass {
		t.Fatalf("mass = %f, want floor %f", b.Mass, MinMass)
	}
	if b.Radius != MinRadius {
		t.Fatalf("radius = %f, want floor %f", b.Radius, MinRadius)
	}
}

func TestFixedBodyCoercesToStar(t *testing.T) {
	b := New(1, Config{Mass: 1, Radius: 1, Fixed: true})
	if b.Kind != Star {
		t.Fatalf("kind = %s, want star", b.Kind)
	}
	p := New(2, Config{Mass: 1, Radius: 1, Fixed: false})
	if p.Kind != Planet {
		t.Fatalf("kind = %s, want planet", p.Kind)
	}
}

func TestTrailEvictsOldest(t *testing.T) {
	b := New(1, Config{Mass: 1, Radius: 1})
	for i := 0; i < MaxTrailPoints+50; i++ {
		b.Position = vector3.New(float64(i), 0, 0)
		b.RecordTrail()
	}
	trail := b.Trail()
	if len(trail) != MaxTrailPoints {
		t.Fatalf("trail length = %d, want %d", len(trail), MaxTrailPoints)
	}
	if trail[0].X != 50 {
		t.Fatalf("oldest retained sample x = %f, want 50 (first 50 evicted)", trail[0].X)
	}
}

func TestHasThrust(t *testing.T) {
	fuel, maxFuel := 100.0, 100.0
	sc := New(1, Config{Mass: 1, Radius: 1, Kind: Spacecraft, Fuel: &fuel, MaxFuel: &maxFuel})
	if sc.HasThrust() {
		t.Fatal("zero thrust should not count as thrusting")
	}
	sc.Thrust = vector3.New(1, 0, 0)
	if !sc.HasThrust() {
		t.Fatal("nonzero thrust with fuel should count as thrusting")
	}
	sc.Fuel = 0
	if sc.HasThrust() {
		t.Fatal("no fuel should not count as thrusting")
	}
}

func TestNewDistinguishesUnsetFuelFromExplicitZero(t *testing.T) {
	unset := New(1, Config{Mass: 1, Radius: 1, Kind: Spacecraft})
	if unset.Fuel != DefaultFuel || unset.MaxFuel != DefaultFuel {
		t.Fatalf("unset fuel should default to %f, got fuel=%f maxFuel=%f", DefaultFuel, unset.Fuel, unset.MaxFuel)
	}

	zero := 0.0
	exhausted := New(2, Config{Mass: 1, Radius: 1, Kind: Spacecraft, Fuel: &zero, MaxFuel: &zero})
	if exhausted.Fuel != 0 || exhausted.MaxFuel != 0 {
		t.Fatalf("explicit zero fuel should not be defaulted, got fuel=%f maxFuel=%f", exhausted.Fuel, exhausted.MaxFuel)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(1, Config{Mass: 1, Radius: 1})
	b.RecordTrail()
	clone := b.Clone()
	clone.RecordTrail()
	if len(b.Trail()) == len(clone.Trail()) {
		t.Fatal("clone's trail mutation leaked into the original")
	}
}
