// Package integrator advances a set of bodies one tick using velocity-Verlet
// substepping, selecting among the direct, Barnes-Hut, and GPU force
// backends by population size on every force evaluation.
package integrator

import (
	"math"

	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/octree"
	"github.com/saagar210/OrbitForge/vector3"
)

const (
	// DefaultDirectThreshold is the population above which Barnes-Hut
	// replaces direct summation when Params.DirectThreshold is unset.
	DefaultDirectThreshold = 50
	// DefaultGPUThreshold is the population above which the GPU backend is
	// preferred, provided one is available, when Params.GPUThreshold is
	// unset.
	DefaultGPUThreshold = 500
	// fuelBurnRate is the hardcoded, unit-unspecified thrust fuel burn
	// constant named in the source material's open questions.
	fuelBurnRate = 0.1
)

// GPUBackend is satisfied by gpu.Kernel; it is narrowed here so this package
// does not import cgo/WebGPU bindings directly and can be exercised in pure
// CPU test builds with a stub.
type GPUBackend interface {
	ComputeAccelerations(positions []vector3.Vector3, masses []float64, g, softeningSq float64) ([]vector3.Vector3, error)
}

// Params bundles the scalar simulation parameters the integrator needs on
// every tick; it mirrors the subset of engine.State relevant to
// force evaluation and substepping. DirectThreshold and GPUThreshold are
// the config-driven backend-selection cutoffs; zero means "use the
// package default."
type Params struct {
	DT              float64
	G               float64
	Softening       float64
	SpeedMultiplier float64
	Theta           float64
	GPU             GPUBackend
	DirectThreshold int
	GPUThreshold    int
}

// Backend identifies which force kernel produced a given acceleration set,
// surfaced for diagnostics and tests.
type Backend int

const (
	Direct Backend = iota
	BarnesHut
	GPU
)

// SelectBackend implements the population-based force-backend decision; it
// is exported so callers (and tests) can predict which path a given body
// count will take without running a full step. directThreshold and
// gpuThreshold of zero fall back to DefaultDirectThreshold and
// DefaultGPUThreshold respectively.
func SelectBackend(n int, gpuAvailable bool, directThreshold, gpuThreshold int) Backend {
	if directThreshold <= 0 {
		directThreshold = DefaultDirectThreshold
	}
	if gpuThreshold <= 0 {
		gpuThreshold = DefaultGPUThreshold
	}
	if n > gpuThreshold && gpuAvailable {
		return GPU
	}
	if n > directThreshold {
		return BarnesHut
	}
	return Direct
}

// ComputeAccelerations fills and returns one acceleration per body using the
// backend selected for len(bodies), honoring fixed bodies (zero
// acceleration, but still a gravity source). directThreshold and
// gpuThreshold behave as in SelectBackend.
func ComputeAccelerations(bodies []*body.Body, g, softening float64, theta float64, gpu GPUBackend, directThreshold, gpuThreshold int) []vector3.Vector3 {
	n := len(bodies)
	accels := make([]vector3.Vector3, n)
	if n == 0 {
		return accels
	}

	softeningSq := softening * softening
	backend := SelectBackend(n, gpu != nil, directThreshold, gpuThreshold)

	if backend == GPU {
		positions := make([]vector3.Vector3, n)
		masses := make([]float64, n)
		for i, b := range bodies {
			positions[i] = b.Position
			masses[i] = b.Mass
		}
		gpuAccels, err := gpu.ComputeAccelerations(positions, masses, g, softeningSq)
		if err != nil || len(gpuAccels) != n {
			backend = BarnesHut
		} else {
			accels = gpuAccels
		}
	}

	switch backend {
	case BarnesHut:
		positions := make([]vector3.Vector3, n)
		masses := make([]float64, n)
		for i, b := range bodies {
			positions[i] = b.Position
			masses[i] = b.Mass
		}
		root := octree.Build(positions, masses)
		for i := range bodies {
			accels[i] = root.ComputeAcceleration(positions[i], i, g, softeningSq, theta)
		}
	case Direct:
		directAccelerations(bodies, g, softeningSq, accels)
	}

	for i, b := range bodies {
		if b.IsFixed {
			accels[i] = vector3.Zero
		}
	}
	return accels
}

func directAccelerations(bodies []*body.Body, g, softeningSq float64, out []vector3.Vector3) {
	n := len(bodies)
	for i := 0; i < n; i++ {
		if bodies[i].IsFixed {
			continue
		}
		accel := vector3.Zero
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := bodies[j].Position.Sub(bodies[i].Position)
			distSq := d.MagnitudeSquared() + softeningSq
			dist := math.Sqrt(distSq)
			forceMag := g * bodies[j].Mass / distSq
			accel.AddMut(d.Scale(forceMag / dist))
		}
		out[i] = accel
	}
}

// CollisionFunc runs one collision pass over bodies, mutating the slice in
// place (it is implemented by collision.Resolve; threaded through as a
// function value so this package stays free of an import cycle).
type CollisionFunc func(bodies []*body.Body) []*body.Body

// Step advances bodies by one tick: `ceil(speedMultiplier)` velocity-Verlet
// substeps each of size `dt*speedMultiplier/substeps`, running the
// collision pass after every substep when resolve is non-nil. It returns
// the (possibly shrunk) body slice.
func Step(bodies []*body.Body, p Params, resolve CollisionFunc) []*body.Body {
	substeps := int(math.Ceil(p.SpeedMultiplier))
	if substeps < 1 {
		substeps = 1
	}
	h := p.DT * p.SpeedMultiplier / float64(substeps)

	for s := 0; s < substeps; s++ {
		drift(bodies, h)

		aOld := make([]vector3.Vector3, len(bodies))
		for i, b := range bodies {
			aOld[i] = b.Acceleration
		}

		accels := ComputeAccelerations(bodies, p.G, p.Softening, p.Theta, p.GPU, p.DirectThreshold, p.GPUThreshold)
		for i, b := range bodies {
			b.Acceleration = accels[i]
		}

		applyThrust(bodies, h)
		kick(bodies, aOld, h)

		if resolve != nil {
			bodies = resolve(bodies)
		}
	}

	return bodies
}

func drift(bodies []*body.Body, h float64) {
	for _, b := range bodies {
		if b.IsFixed {
			continue
		}
		b.Position = b.Position.
			Add(b.Velocity.Scale(h)).
			Add(b.Acceleration.Scale(0.5 * h * h))
	}
}

func applyThrust(bodies []*body.Body, h float64) {
	for _, b := range bodies {
		if !b.HasThrust() {
			continue
		}
		b.Acceleration.AddMut(b.Thrust.Scale(1.0 / b.Mass))
		burn := b.Thrust.Magnitude() * h * fuelBurnRate
		b.Fuel = math.Max(0, b.Fuel-burn)
	}
}

func kick(bodies []*body.Body, aOld []vector3.Vector3, h float64) {
	for i, b := range bodies {
		if b.IsFixed {
			continue
		}
		avg := aOld[i].Add(b.Acceleration).Scale(0.5 * h)
		b.Velocity.AddMut(avg)
	}
}

// RecordTrails appends a trail sample to every non-fixed body, matching the
// once-per-even-tick cadence applied after a full Step call.
func RecordTrails(bodies []*body.Body, tick uint64) {
	if tick%2 != 0 {
		return
	}
	for _, b := range bodies {
		if !b.IsFixed {
			b.RecordTrail()
		}
	}
}
