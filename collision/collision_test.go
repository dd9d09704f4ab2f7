package collision

import (
	"math"
	"testing"

	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/vector3"
)

func TestNonOverlappingBodiesUnaffected(t *testing.T) {
	a := body.New(1, body.Config{Mass: 1, Radius: 1, Position: vector3.New(0, 0, 0)})
	b := body.New(2, body.Config{Mass: 1, Radius: 1, Position: vector3.New(100, 0, 0)})
	bodies, events := Resolve([]*body.Body{a, b})
	if len(bodies) != 2 || len(events) != 0 {
		t.Fatalf("expected no collision, got %d bodies %d events", len(bodies), len(events))
	}
}

func TestOverlapMergesConservingMassMomentumVolume(t *testing.T) {
	a := body.New(1, body.Config{
		Mass: 8, Radius: 8,
		Position: vector3.New(0, 0, 0),
		Velocity: vector3.New(1, 0, 0),
	})
	b := body.New(2, body.Config{
		Mass: 2, Radius: 8,
		Position: vector3.New(4, 0, 0),
		Velocity: vector3.New(-1, 0, 0),
	})
	preMomentum := a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass))

	bodies, events := Resolve([]*body.Body{a, b})
	if len(bodies) != 1 {
		t.Fatalf("expected merge to leave 1 body, got %d", len(bodies))
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 collision event, got %d", len(events))
	}

	survivor := bodies[0]
	if survivor.Mass != 10 {
		t.Fatalf("combined mass = %f, want 10", survivor.Mass)
	}
	if events[0].CombinedMass != 10 {
		t.Fatalf("event combined mass = %f, want 10", events[0].CombinedMass)
	}
	if events[0].SurvivorID != 1 || events[0].AbsorbedID != 2 {
		t.Fatalf("expected body 1 (heavier) to survive, got survivor=%d absorbed=%d", events[0].SurvivorID, events[0].AbsorbedID)
	}

	postMomentum := survivor.Velocity.Scale(survivor.Mass)
	if math.Abs(postMomentum.X-preMomentum.X) > 1e-9 {
		t.Fatalf("momentum not conserved: pre=%+v post=%+v", preMomentum, postMomentum)
	}

	wantRadius := math.Cbrt(8*8*8 + 8*8*8)
	if math.Abs(survivor.Radius-wantRadius) > 1e-9 {
		t.Fatalf("radius = %f, want %f (volume conservation)", survivor.Radius, wantRadius)
	}
}

func TestTieBrokenByLowerIndex(t *testing.T) {
	a := body.New(5, body.Config{Mass: 4, Radius: 4, Position: vector3.New(0, 0, 0)})
	b := body.New(6, body.Config{Mass: 4, Radius: 4, Position: vector3.New(1, 0, 0)})
	bodies, events := Resolve([]*body.Body{a, b})
	if events[0].SurvivorID != a.ID {
		t.Fatalf("expected lower-index body to survive a tie, got survivor=%d", events[0].SurvivorID)
	}
	if bodies[0].ID != a.ID {
		t.Fatalf("expected survivor to remain in slice")
	}
}

func TestAbsorbedFixednessPropagates(t *testing.T) {
	a := body.New(1, body.Config{Mass: 100, Radius: 4, Position: vector3.New(0, 0, 0)})
	fixed := body.New(2, body.Config{Mass: 1, Radius: 4, Position: vector3.New(1, 0, 0), Fixed: true})
	bodies, _ := Resolve([]*body.Body{a, fixed})
	if !bodies[0].IsFixed {
		t.Fatal("survivor should become fixed when absorbing a fixed body")
	}
}

func TestChainedOverlapsAccumulateOnOneSurvivor(t *testing.T) {
	a := body.New(1, body.Config{Mass: 3, Radius: 5, Position: vector3.New(0, 0, 0)})
	b := body.New(2, body.Config{Mass: 1, Radius: 5, Position: vector3.New(2, 0, 0)})
	c := body.New(3, body.Config{Mass: 1, Radius: 5, Position: vector3.New(4, 0, 0)})
	bodies, events := Resolve([]*body.Body{a, b, c})
	if len(bodies) != 1 {
		t.Fatalf("expected all three to merge into one, got %d bodies", len(bodies))
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 chained collision events, got %d", len(events))
	}
	if bodies[0].Mass != 5 {
		t.Fatalf("combined mass = %f, want 5", bodies[0].Mass)
	}
}
