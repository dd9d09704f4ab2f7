package engine

import (
	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/integrator"
	"github.com/saagar210/OrbitForge/vector3"
)

// PredictOrbit forks the live state, clears trails, and advances the fork
// `steps` (capped at 2000) Verlet substeps at the base DT with no collision
// resolution and no speed-multiplier substepping. It returns the target
// body's position at every step, stopping early if the body disappears
// from the fork. The live state is never mutated.
func (s *State) PredictOrbit(bodyID uint32, steps int) []vector3.Vector3 {
	if steps > maxPredictSteps {
		steps = maxPredictSteps
	}
	if steps <= 0 {
		return nil
	}

	fork := make([]*body.Body, len(s.bodies))
	for i, b := range s.bodies {
		clone := b.Clone()
		clone.ClearTrail()
		fork[i] = clone
	}

	params := integrator.Params{
		DT:              s.DT,
		G:               s.G,
		Softening:       s.Softening,
		SpeedMultiplier: 1.0,
		Theta:           s.Theta,
		GPU:             s.gpu,
		DirectThreshold: s.DirectThreshold,
		GPUThreshold:    s.GPUThreshold,
	}

	positions := make([]vector3.Vector3, 0, steps)
	for i := 0; i < steps; i++ {
		fork = integrator.Step(fork, params, nil)

		var target *body.Body
		for _, b := range fork {
			if b.ID == bodyID {
				target = b
				break
			}
		}
		if target == nil {
			break
		}
		positions = append(positions, target.Position)
	}

	return positions
}
