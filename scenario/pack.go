package scenario

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/vector3"
)

// PackBody is one body entry in a YAML scenario pack. Field names follow the
// persistence format except that fixedness is "fixed" (the persistence
// format uses "is_fixed"); ids, thrust and fuel are not read from a pack.
type PackBody struct {
	Name     string  `yaml:"name"`
	Color    string  `yaml:"color"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
	Mass     float64 `yaml:"mass"`
	Radius   float64 `yaml:"radius"`
	Fixed    bool    `yaml:"fixed"`
	Kind     string  `yaml:"kind"`
}

// Pack is a YAML scenario document: a body list plus the dt, g, softening,
// theta and speed_multiplier parameters of the persistence format.
type Pack struct {
	DT              float64    `yaml:"dt"`
	G               float64    `yaml:"g"`
	Softening       float64    `yaml:"softening"`
	Theta           float64    `yaml:"theta"`
	SpeedMultiplier float64    `yaml:"speed_multiplier"`
	Bodies          []PackBody `yaml:"bodies"`
}

// LoadPack unmarshals a scenario pack from r.
func LoadPack(r io.Reader) (*Pack, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, err
	}
	return &pack, nil
}

func kindFromString(s string) body.Kind {
	switch s {
	case "star":
		return body.Star
	case "spacecraft":
		return body.Spacecraft
	default:
		return body.Planet
	}
}

// Configs converts the pack's body list to body.Config values, letting the
// caller's body.New apply the standard clamping rules.
func (p *Pack) Configs() []body.Config {
	cfgs := make([]body.Config, len(p.Bodies))
	for i, b := range p.Bodies {
		cfgs[i] = body.Config{
			Name:     b.Name,
			Color:    b.Color,
			Position: vector3.New(b.Position[0], b.Position[1], b.Position[2]),
			Velocity: vector3.New(b.Velocity[0], b.Velocity[1], b.Velocity[2]),
			Mass:     b.Mass,
			Radius:   b.Radius,
			Fixed:    b.Fixed,
			Kind:     kindFromString(b.Kind),
		}
	}
	return cfgs
}
