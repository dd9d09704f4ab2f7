// Package body defines the per-entity record integrated by the engine: a
// massive point with optional fixed kinematics, spacecraft thrust, and a
// bounded trail of recent positions for rendering.
package body

import (
	"math"

	"github.com/saagar210/OrbitForge/vector3"
)

const (
	// MinMass is the floor applied to any constructed or updated body mass.
	MinMass = 0.01
	// MinRadius is the floor applied to any constructed or updated body radius.
	MinRadius = 0.5
	// MaxTrailPoints bounds the FIFO trail ring per body.
	MaxTrailPoints = 500
	// DefaultFuel is the fuel level assigned to new spacecraft and used when
	// a persisted snapshot omits fuel fields.
	DefaultFuel = 100.0
)

// Kind tags the role a Body plays; it only affects which fields are
// meaningful (thrust/fuel for Spacecraft) and display defaults.
type Kind uint8

const (
	// Planet is the default kind for any non-fixed, non-thrusting body.
	Planet Kind = iota
	// Star is assigned to bodies that are fixed at construction time.
	Star
	// Spacecraft bodies may carry thrust and consume fuel.
	Spacecraft
)

func (k Kind) String() string {
	switch k {
	case Star:
		return "star"
	case Spacecraft:
		return "spacecraft"
	default:
		return "planet"
	}
}

// TrailPoint is one sample recorded into a Body's trail.
type TrailPoint struct {
	X, Y, Z float64
	Speed   float64
}

// Body is a mutable point mass integrated by the engine.
type Body struct {
	ID    uint32
	Name  string
	Color string

	Position     vector3.Vector3
	Velocity     vector3.Vector3
	Acceleration vector3.Vector3

	Mass   float64
	Radius float64

	IsFixed bool
	Kind    Kind

	Thrust  vector3.Vector3
	Fuel    float64
	MaxFuel float64

	trail []TrailPoint
}

// Config groups the constructor arguments for New; fields left at their
// zero value take the documented defaults (Kind defaults to Planet and is
// coerced to Star when Fixed is set). Fuel and MaxFuel are pointers so a
// nil field (genuinely unspecified) can be told apart from an explicit
// zero (a spacecraft that is actually out of fuel); a nil field defaults
// to DefaultFuel, a non-nil zero is kept as zero.
type Config struct {
	Name, Color        string
	Position, Velocity vector3.Vector3
	Mass, Radius       float64
	Fixed              bool
	Kind               Kind
	Fuel, MaxFuel      *float64
}

// New constructs a Body, clamping mass and radius to their floors and
// applying the Star-coercion and fuel-default rules of the data model.
func New(id uint32, cfg Config) *Body {
	mass := math.Max(cfg.Mass, MinMass)
	radius := math.Max(cfg.Radius, MinRadius)

	kind := cfg.Kind
	if cfg.Fixed {
		kind = Star
	}

	maxFuel := DefaultFuel
	if cfg.MaxFuel != nil {
		maxFuel = *cfg.MaxFuel
	}
	fuel := DefaultFuel
	if cfg.Fuel != nil {
		fuel = *cfg.Fuel
	}

	return &Body{
		ID:       id,
		Name:     cfg.Name,
		Color:    cfg.Color,
		Position: cfg.Position,
		Velocity: cfg.Velocity,
		Mass:     mass,
		Radius:   radius,
		IsFixed:  cfg.Fixed,
		Kind:     kind,
		Fuel:     fuel,
		MaxFuel:  maxFuel,
	}
}

// SetMass clamps and assigns a new mass.
func (b *Body) SetMass(m float64) {
	b.Mass = math.Max(m, MinMass)
}

// SetRadius clamps and assigns a new radius.
func (b *Body) SetRadius(r float64) {
	b.Radius = math.Max(r, MinRadius)
}

// RecordTrail appends the current position and speed to the trail, evicting
// the oldest sample once MaxTrailPoints is exceeded.
func (b *Body) RecordTrail() {
	b.trail = append(b.trail, TrailPoint{
		X:     b.Position.X,
		Y:     b.Position.Y,
		Z:     b.Position.Z,
		Speed: b.Velocity.Magnitude(),
	})
	if len(b.trail) > MaxTrailPoints {
		b.trail = b.trail[len(b.trail)-MaxTrailPoints:]
	}
}

// Trail returns the recorded trail points, oldest first.
func (b *Body) Trail() []TrailPoint {
	return b.trail
}

// ClearTrail empties the trail without affecting any other state.
func (b *Body) ClearTrail() {
	b.trail = nil
}

// HasThrust reports whether this body's thrust is large enough and it has
// fuel left to apply it, per the integrator's thrust-integration step.
func (b *Body) HasThrust() bool {
	return b.Kind == Spacecraft && b.Fuel > 0 && b.Thrust.Magnitude() > 0.001
}

// Clone returns a deep copy, used by the predictor to fork state without
// aliasing trails or mutable fields with the live body.
func (b *Body) Clone() *Body {
	clone := *b
	clone.trail = append([]TrailPoint(nil), b.trail...)
	return &clone
}
