package engine

import (
	"encoding/json"

	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/vector3"
)

// bodySnapshot is the on-wire shape of one body; field names and defaults
// match spec.md §6's persistence format.
type bodySnapshot struct {
	ID       uint32  `json:"id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
	Mass     float64 `json:"mass"`
	Radius   float64 `json:"radius"`
	IsFixed  bool    `json:"is_fixed"`
	Kind     string  `json:"kind,omitempty"`
	Thrust   [3]float64 `json:"thrust"`
	Fuel     *float64 `json:"fuel,omitempty"`
	MaxFuel  *float64 `json:"max_fuel,omitempty"`
}

// snapshot is the on-wire shape of an exported simulation; the GPU handle
// is transient and intentionally absent.
type snapshot struct {
	Bodies          []bodySnapshot `json:"bodies"`
	Tick            uint64         `json:"tick"`
	DT              float64        `json:"dt"`
	G               float64        `json:"g"`
	Softening       float64        `json:"softening"`
	Paused          bool           `json:"paused"`
	SpeedMultiplier float64        `json:"speed_multiplier"`
	NextID          uint32         `json:"next_id"`
	Theta           float64        `json:"theta,omitempty"`
}

func kindToString(k body.Kind) string {
	switch k {
	case body.Star:
		return "star"
	case body.Spacecraft:
		return "spacecraft"
	default:
		return "planet"
	}
}

// ExportState serializes the live state to JSON, per spec.md §6.
func (s *State) ExportState() ([]byte, error) {
	snap := snapshot{
		Bodies:          make([]bodySnapshot, len(s.bodies)),
		Tick:            s.Tick,
		DT:              s.DT,
		G:               s.G,
		Softening:       s.Softening,
		Paused:          s.Paused,
		SpeedMultiplier: s.SpeedMultiplier,
		NextID:          s.nextID,
		Theta:           s.Theta,
	}
	for i, b := range s.bodies {
		fuel, maxFuel := b.Fuel, b.MaxFuel
		snap.Bodies[i] = bodySnapshot{
			ID:       b.ID,
			Name:     b.Name,
			Color:    b.Color,
			Position: [3]float64{b.Position.X, b.Position.Y, b.Position.Z},
			Velocity: [3]float64{b.Velocity.X, b.Velocity.Y, b.Velocity.Z},
			Mass:     b.Mass,
			Radius:   b.Radius,
			IsFixed:  b.IsFixed,
			Kind:     kindToString(b.Kind),
			Thrust:   [3]float64{b.Thrust.X, b.Thrust.Y, b.Thrust.Z},
			Fuel:     &fuel,
			MaxFuel:  &maxFuel,
		}
	}
	return json.Marshal(snap)
}

// ImportState replaces the live state from a serialized snapshot, keeping
// the current GPU handle, reconciling next_id to exceed every imported
// body id, and re-priming accelerations. Missing theta defaults to 0.5;
// missing kind defaults to Planet; a JSON-absent fuel or max_fuel field
// defaults to 100.0, while a JSON-present zero is kept as an exhausted
// tank. A decode failure leaves the state unchanged and returns the error.
func (s *State) ImportState(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	bodies := make([]*body.Body, len(snap.Bodies))
	maxID := uint32(0)
	for i, bs := range snap.Bodies {
		kind := body.Planet
		switch bs.Kind {
		case "star":
			kind = body.Star
		case "spacecraft":
			kind = body.Spacecraft
		}
		b := body.New(bs.ID, body.Config{
			Name:     bs.Name,
			Color:    bs.Color,
			Position: vector3.New(bs.Position[0], bs.Position[1], bs.Position[2]),
			Velocity: vector3.New(bs.Velocity[0], bs.Velocity[1], bs.Velocity[2]),
			Mass:     bs.Mass,
			Radius:   bs.Radius,
			Fixed:    bs.IsFixed,
			Kind:     kind,
			Fuel:     bs.Fuel,
			MaxFuel:  bs.MaxFuel,
		})
		b.Thrust = vector3.New(bs.Thrust[0], bs.Thrust[1], bs.Thrust[2])
		bodies[i] = b
		if bs.ID > maxID {
			maxID = bs.ID
		}
	}

	theta := snap.Theta
	if theta == 0 {
		theta = DefaultTheta
	}

	s.bodies = bodies
	s.Tick = snap.Tick
	if snap.DT > 0 {
		s.DT = snap.DT
	}
	if snap.G > 0 {
		s.G = snap.G
	}
	if snap.Softening > 0 {
		s.Softening = snap.Softening
	}
	s.Paused = snap.Paused
	if snap.SpeedMultiplier > 0 {
		s.SpeedMultiplier = clamp(snap.SpeedMultiplier, minSpeedMultiplier, maxSpeedMultiplier)
	}
	s.Theta = clamp(theta, minTheta, maxTheta)
	s.nextID = maxID + 1
	if snap.NextID > s.nextID {
		s.nextID = snap.NextID
	}

	s.primeAccelerations()
	return nil
}
