package engine

import "github.com/saagar210/OrbitForge/body"

// Energy holds the instantaneous kinetic, potential, and total energy of a
// Frame, computed on demand per spec.md §4.8.
type Energy struct {
	Kinetic   float64
	Potential float64
	Total     float64
}

// Frame is a point-in-time snapshot of the simulation, safe to retain or
// serialize independently of the live State.
type Frame struct {
	Bodies          []*body.Body
	Tick            uint64
	Paused          bool
	SpeedMultiplier float64
	Energy          Energy
}

// ToFrame deep-copies the live bodies and computes energy, matching
// spec.md §4.8's to_frame contract: the result never aliases live state.
func (s *State) ToFrame() Frame {
	bodies := make([]*body.Body, len(s.bodies))
	for i, b := range s.bodies {
		bodies[i] = b.Clone()
	}
	return Frame{
		Bodies:          bodies,
		Tick:            s.Tick,
		Paused:          s.Paused,
		SpeedMultiplier: s.SpeedMultiplier,
		Energy:          s.computeEnergy(),
	}
}

// computeEnergy sums kinetic energy over all bodies and potential energy
// over all unordered pairs, using the unsoftened 0.001-floored separation
// named in spec.md §4.8.
func (s *State) computeEnergy() Energy {
	var ke, pe float64
	for _, b := range s.bodies {
		v := b.Velocity.Magnitude()
		ke += 0.5 * b.Mass * v * v
	}
	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			dist := s.bodies[i].Position.Sub(s.bodies[j].Position).Magnitude()
			if dist < 0.001 {
				dist = 0.001
			}
			pe -= s.G * s.bodies[i].Mass * s.bodies[j].Mass / dist
		}
	}
	return Energy{Kinetic: ke, Potential: pe, Total: ke + pe}
}
