// Package engine owns the simulation state and exposes the command surface
// that an external dispatcher (out of scope for this module) would wrap in
// a lock and route RPCs to: pause/speed/theta controls, body mutators,
// scenario and procedural loaders, the orbit predictor, and persistence.
package engine

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/google/uuid"

	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/collision"
	"github.com/saagar210/OrbitForge/integrator"
	"github.com/saagar210/OrbitForge/procedural"
	"github.com/saagar210/OrbitForge/scenario"
	"github.com/saagar210/OrbitForge/vector3"
)

const (
	DefaultDT              = 0.016
	DefaultG               = 100.0
	DefaultSoftening       = 10.0
	DefaultTheta           = 0.5
	DefaultSpeedMultiplier = 1.0

	minSpeedMultiplier = 0.25
	maxSpeedMultiplier = 8.0
	minTheta           = 0.0
	maxTheta           = 2.0

	maxGalaxyParticlesDefault = 300
	maxGalaxyParticlesCap     = 500
	maxPredictSteps           = 2000
)

// GPUBackend narrows gpu.Kernel to the one method the integrator needs, so
// this package never imports the WebGPU bindings directly.
type GPUBackend = integrator.GPUBackend

// Recorder receives tick-level observations; metrics.Registry satisfies
// this structurally. A nil Recorder (the default) disables all reporting.
type Recorder interface {
	ObserveTick(backend integrator.Backend, bodyCount int, substeps int)
	ObserveCollisions(n int)
}

// State owns the live body set and simulation parameters. It is not
// internally synchronized: callers driving a concurrent tick loop must
// serialize Step and command calls themselves, per spec.md §5.
type State struct {
	bodies []*body.Body

	Tick            uint64
	DT              float64
	G               float64
	Softening       float64
	Paused          bool
	SpeedMultiplier float64
	Theta           float64
	DirectThreshold int
	GPUThreshold    int
	nextID          uint32

	gpu      GPUBackend
	gpuKnown bool

	RunID uuid.UUID

	logger   kitlog.Logger
	recorder Recorder
}

// New returns a State with spec-mandated defaults and an empty body set.
func New(logger kitlog.Logger) *State {
	if logger == nil {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	}
	s := &State{
		DT:              DefaultDT,
		G:               DefaultG,
		Softening:       DefaultSoftening,
		SpeedMultiplier: DefaultSpeedMultiplier,
		Theta:           DefaultTheta,
		DirectThreshold: integrator.DefaultDirectThreshold,
		GPUThreshold:    integrator.DefaultGPUThreshold,
		nextID:          1,
		RunID:           uuid.New(),
		logger:          kitlog.With(logger, "subsys", "engine"),
	}
	return s
}

// SetGPU installs (or clears, with nil) the GPU backend used by force
// evaluation. Called once at startup by the driver after a best-effort
// probe; absence is logged once by the caller, not here.
func (s *State) SetGPU(gpu GPUBackend) {
	s.gpu = gpu
	s.gpuKnown = true
}

// SetRecorder installs a metrics sink; pass nil to disable reporting.
func (s *State) SetRecorder(r Recorder) {
	s.recorder = r
}

// Bodies returns the live body slice; callers must not retain it across a
// Step call, since collisions may reallocate it.
func (s *State) Bodies() []*body.Body {
	return s.bodies
}

// BodyCount reports the current live body count.
func (s *State) BodyCount() int {
	return len(s.bodies)
}

func (s *State) allocateID() uint32 {
	id := s.nextID
	s.nextID++
	return id
}

// primeAccelerations recomputes every body's acceleration without
// advancing position or velocity; required after any mutation that changes
// the body set or masses, per spec.md §3 invariant 4.
func (s *State) primeAccelerations() {
	accels := integrator.ComputeAccelerations(s.bodies, s.G, s.Softening, s.Theta, s.gpu, s.DirectThreshold, s.GPUThreshold)
	for i, b := range s.bodies {
		b.Acceleration = accels[i]
	}
}

// TogglePause flips and returns the new paused flag.
func (s *State) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// SetSpeed clamps and applies a new speed multiplier, returning the
// clamped value.
func (s *State) SetSpeed(multiplier float64) float64 {
	s.SpeedMultiplier = clamp(multiplier, minSpeedMultiplier, maxSpeedMultiplier)
	return s.SpeedMultiplier
}

// SetTheta clamps and applies a new Barnes-Hut opening angle.
func (s *State) SetTheta(theta float64) {
	s.Theta = clamp(theta, minTheta, maxTheta)
}

// ClearSimulation empties the body set and resets tick and id allocation.
func (s *State) ClearSimulation() {
	s.bodies = nil
	s.Tick = 0
	s.nextID = 1
}

// AddBody appends a new body built from cfg, clamping mass/radius and
// re-priming accelerations, and returns its allocated id.
func (s *State) AddBody(cfg body.Config) uint32 {
	id := s.allocateID()
	s.bodies = append(s.bodies, body.New(id, cfg))
	s.primeAccelerations()
	return id
}

func (s *State) addBodies(cfgs []body.Config) {
	for _, cfg := range cfgs {
		s.bodies = append(s.bodies, body.New(s.allocateID(), cfg))
	}
	s.primeAccelerations()
}

func (s *State) findBody(id uint32) *body.Body {
	for _, b := range s.bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// RemoveBody deletes the body with the given id; a no-op if absent.
func (s *State) RemoveBody(id uint32) {
	for i, b := range s.bodies {
		if b.ID == id {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			s.primeAccelerations()
			return
		}
	}
}

// BodyUpdate carries the optional fields accepted by UpdateBody; a nil
// field leaves the corresponding body field untouched.
type BodyUpdate struct {
	Mass   *float64
	Radius *float64
	Color  *string
	Name   *string
	Fixed  *bool
}

// UpdateBody applies any non-nil fields of u to the body with the given
// id, clamping mass/radius; a no-op if the id is absent.
func (s *State) UpdateBody(id uint32, u BodyUpdate) {
	b := s.findBody(id)
	if b == nil {
		return
	}
	if u.Mass != nil {
		b.SetMass(*u.Mass)
	}
	if u.Radius != nil {
		b.SetRadius(*u.Radius)
	}
	if u.Color != nil {
		b.Color = *u.Color
	}
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Fixed != nil {
		b.IsFixed = *u.Fixed
	}
	s.primeAccelerations()
}

// UpdateBodyVelocity overwrites the velocity of the body with the given
// id; a no-op if absent.
func (s *State) UpdateBodyVelocity(id uint32, v vector3.Vector3) {
	b := s.findBody(id)
	if b == nil {
		return
	}
	b.Velocity = v
}

// SetSpacecraftThrust applies a thrust vector, but only to bodies of kind
// Spacecraft; a no-op for any other kind or an absent id.
func (s *State) SetSpacecraftThrust(id uint32, thrust vector3.Vector3) {
	b := s.findBody(id)
	if b == nil || b.Kind != body.Spacecraft {
		return
	}
	b.Thrust = thrust
}

// LoadScenario dispatches to the named built-in scenario; unknown names
// are a no-op, matching spec.md §6.
func (s *State) LoadScenario(name string) bool {
	cfgs, ok := scenario.Load(name, s.G)
	if !ok {
		return false
	}
	s.ClearSimulation()
	s.addBodies(cfgs)
	s.logger.Log("level", "info", "subsys", "scenario", "name", name, "bodies", len(cfgs))
	return true
}

// LoadScenarioPack replaces the state with the bodies and global
// parameters described by pack, per SPEC_FULL.md §4.15.
func (s *State) LoadScenarioPack(pack *scenario.Pack) {
	s.ClearSimulation()
	if pack.DT > 0 {
		s.DT = pack.DT
	}
	if pack.G > 0 {
		s.G = pack.G
	}
	if pack.Softening > 0 {
		s.Softening = pack.Softening
	}
	s.Theta = clamp(pack.Theta, minTheta, maxTheta)
	if pack.SpeedMultiplier > 0 {
		s.SpeedMultiplier = clamp(pack.SpeedMultiplier, minSpeedMultiplier, maxSpeedMultiplier)
	}
	s.addBodies(pack.Configs())
}

// GenerateSystem procedurally populates the state with a star and
// planetCount planets.
func (s *State) GenerateSystem(starMass float64, planetCount int, minSpacing, maxRadius float64) {
	s.ClearSimulation()
	s.addBodies(procedural.GenerateSystem(s.G, starMass, planetCount, minSpacing, maxRadius))
}

// LoadGalaxyCollision procedurally populates two colliding galaxies; count
// defaults to 300 and is capped at 500 per galaxy.
func (s *State) LoadGalaxyCollision(count int) {
	if count <= 0 {
		count = maxGalaxyParticlesDefault
	}
	if count > maxGalaxyParticlesCap {
		count = maxGalaxyParticlesCap
	}
	s.ClearSimulation()
	s.addBodies(procedural.GalaxyCollision(s.G, count))
}

// Step advances the simulation by one tick: ceil(SpeedMultiplier)
// velocity-Verlet substeps, a collision pass after each, and a trail
// sample on even ticks. It returns the collision events produced.
func (s *State) Step() []collision.Event {
	if s.Paused {
		return nil
	}

	var allEvents []collision.Event
	substeps := 0

	s.bodies = integrator.Step(s.bodies, integrator.Params{
		DT:              s.DT,
		G:               s.G,
		Softening:       s.Softening,
		SpeedMultiplier: s.SpeedMultiplier,
		Theta:           s.Theta,
		GPU:             s.gpu,
		DirectThreshold: s.DirectThreshold,
		GPUThreshold:    s.GPUThreshold,
	}, func(bodies []*body.Body) []*body.Body {
		substeps++
		remaining, events := collision.Resolve(bodies)
		if len(events) > 0 {
			allEvents = append(allEvents, events...)
			for _, e := range events {
				s.logger.Log("level", "info", "subsys", "collision", "run", s.RunID,
					"absorbed", e.AbsorbedID, "survivor", e.SurvivorID, "mass", e.CombinedMass)
			}
		}
		return remaining
	})

	integrator.RecordTrails(s.bodies, s.Tick)
	s.Tick++

	if s.recorder != nil {
		backend := integrator.SelectBackend(len(s.bodies), s.gpu != nil, s.DirectThreshold, s.GPUThreshold)
		s.recorder.ObserveTick(backend, len(s.bodies), substeps)
		if len(allEvents) > 0 {
			s.recorder.ObserveCollisions(len(allEvents))
		}
	}

	return allEvents
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// String satisfies fmt.Stringer for log/debug contexts, matching the
// teacher's habit of giving long-lived domain types a readable form.
func (s *State) String() string {
	return fmt.Sprintf("State{tick=%d bodies=%d run=%s}", s.Tick, len(s.bodies), s.RunID)
}
