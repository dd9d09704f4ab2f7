// Package collision implements perfectly-inelastic merging of overlapping
// bodies: mass, momentum, and volume are conserved; kinetic energy is not.
package collision

import (
	"math"

	"github.com/saagar210/OrbitForge/body"
)

// Event records one merge for downstream reporting; AbsorbedID no longer
// identifies a live body once emitted.
type Event struct {
	AbsorbedID   uint32
	SurvivorID   uint32
	Position     [3]float64
	CombinedMass float64
}

// Resolve scans all unordered pairs once, merging any whose centers are
// closer than the sum of their radii, and returns the surviving bodies
// along with the events produced. Bodies are mutated in place; the
// returned slice has absorbed entries removed (scanned high-to-low so
// indices stay stable during removal).
func Resolve(bodies []*body.Body) ([]*body.Body, []Event) {
	n := len(bodies)
	if n < 2 {
		return bodies, nil
	}

	absorbed := make([]bool, n)
	var events []Event

	for i := 0; i < n; i++ {
		if absorbed[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if absorbed[j] {
				continue
			}
			bi, bj := bodies[i], bodies[j]
			dist := bi.Position.Sub(bj.Position).Magnitude()
			if dist >= bi.Radius+bj.Radius {
				continue
			}

			survivorIdx, absorbedIdx := i, j
			if bj.Mass > bi.Mass {
				survivorIdx, absorbedIdx = j, i
			}
			survivor, absorbedBody := bodies[survivorIdx], bodies[absorbedIdx]

			merge(survivor, absorbedBody)
			absorbed[absorbedIdx] = true

			events = append(events, Event{
				AbsorbedID:   absorbedBody.ID,
				SurvivorID:   survivor.ID,
				Position:     [3]float64{survivor.Position.X, survivor.Position.Y, survivor.Position.Z},
				CombinedMass: survivor.Mass,
			})

			if absorbedIdx == i {
				break
			}
		}
	}

	for i := n - 1; i >= 0; i-- {
		if absorbed[i] {
			bodies = append(bodies[:i], bodies[i+1:]...)
		}
	}

	return bodies, events
}

// merge folds absorbed into survivor in place: mass-weighted position and
// momentum-conserving velocity, volume-conserving radius, and fixedness
// propagation, then sets survivor.Mass to the combined mass.
func merge(survivor, absorbed *body.Body) {
	ms, ma := survivor.Mass, absorbed.Mass
	total := ms + ma

	survivor.Position = survivor.Position.Scale(ms / total).Add(absorbed.Position.Scale(ma / total))
	survivor.Velocity = survivor.Velocity.Scale(ms / total).Add(absorbed.Velocity.Scale(ma / total))
	survivor.Radius = math.Cbrt(math.Pow(survivor.Radius, 3) + math.Pow(absorbed.Radius, 3))

	if absorbed.IsFixed {
		survivor.IsFixed = true
	}

	survivor.Mass = total
}
