// Package scenario provides deterministic named initial conditions plus a
// YAML scenario-pack loader. Functions return body configurations only; the
// caller (engine.State) owns id allocation and accelerations priming.
package scenario

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/rotation"
	"github.com/saagar210/OrbitForge/vector3"
)

// Names lists every built-in scenario recognized by Load.
var Names = []string{
	"sun_earth", "inner_solar", "outer_solar", "full_solar",
	"inclined_solar", "binary_star", "figure_eight", "asteroid_belt",
}

// Load returns the body set for a named built-in scenario. ok is false for
// an unrecognized name, matching the command surface's "unknown name =
// no-op" rule.
func Load(name string, g float64) ([]body.Config, bool) {
	switch name {
	case "sun_earth":
		return sunEarth(g), true
	case "inner_solar":
		return innerSolar(g), true
	case "outer_solar":
		return outerSolar(g), true
	case "full_solar":
		return fullSolar(g), true
	case "inclined_solar":
		return inclinedSolar(g), true
	case "binary_star":
		return binaryStar(g), true
	case "figure_eight":
		return figureEight(g), true
	case "asteroid_belt":
		return asteroidBelt(g), true
	default:
		return nil, false
	}
}

func planet(name string, orbitRadius, mass, radius float64, color string, sunMass, g float64) body.Config {
	v := math.Sqrt(g * sunMass / orbitRadius)
	return body.Config{
		Name:     name,
		Color:    color,
		Position: vector3.New(orbitRadius, 0, 0),
		Velocity: vector3.New(0, v, 0),
		Mass:     mass,
		Radius:   radius,
	}
}

// planetInclined places a planet on a circular orbit and tilts its velocity
// out of the reference plane by inclination, about the line of nodes. The
// position stays in-plane; only the velocity picks up the out-of-plane
// component, matching a node-crossing body whose orbital plane is tilted
// relative to a shared z=0 reference plane. Both rotations are built from
// rotation.R1/rotation.R3/rotation.MxV33 rather than raw trigonometry.
func planetInclined(name string, orbitRadius, mass, radius float64, color string, sunMass, g, inclination, startAngle float64) body.Config {
	v := math.Sqrt(g * sunMass / orbitRadius)

	pos := rotation.MxV33(rotation.R3(-startAngle), [3]float64{orbitRadius, 0, 0})

	tilted := rotation.MxV33(rotation.R1(-inclination), [3]float64{0, v, 0})
	vel := rotation.MxV33(rotation.R3(-startAngle), tilted)

	return body.Config{
		Name:     name,
		Color:    color,
		Position: vector3.New(pos[0], pos[1], pos[2]),
		Velocity: vector3.New(vel[0], vel[1], vel[2]),
		Mass:     mass,
		Radius:   radius,
	}
}

func sun(mass, radius float64) body.Config {
	return body.Config{
		Name:     "Sun",
		Color:    "#FFD700",
		Position: vector3.Zero,
		Velocity: vector3.Zero,
		Mass:     mass,
		Radius:   radius,
		Fixed:    true,
	}
}

func sunEarth(g float64) []body.Config {
	const sunMass, orbitRadius = 50000.0, 250.0
	v := math.Sqrt(g * sunMass / orbitRadius)
	return []body.Config{
		sun(sunMass, 20.0),
		{
			Name:     "Earth",
			Color:    "#4A90D9",
			Position: vector3.New(orbitRadius, 0, 0),
			Velocity: vector3.New(0, v, 0),
			Mass:     1.0,
			Radius:   8.0,
		},
	}
}

func innerSolar(g float64) []body.Config {
	const sunMass = 50000.0
	return []body.Config{
		sun(sunMass, 20.0),
		planet("Mercury", 150.0, 0.055, 4.0, "#B5B5B5", sunMass, g),
		planet("Venus", 220.0, 0.815, 7.0, "#E8CDA0", sunMass, g),
		planet("Earth", 300.0, 1.0, 8.0, "#4A90D9", sunMass, g),
		planet("Mars", 400.0, 0.107, 5.0, "#C1440E", sunMass, g),
	}
}

func outerSolar(g float64) []body.Config {
	const sunMass = 50000.0
	return []body.Config{
		sun(sunMass, 20.0),
		planet("Jupiter", 500.0, 317.8, 16.0, "#C88B3A", sunMass, g),
		planet("Saturn", 700.0, 95.2, 14.0, "#EAD6B8", sunMass, g),
		planet("Uranus", 950.0, 14.5, 10.0, "#72B2C4", sunMass, g),
		planet("Neptune", 1200.0, 17.1, 10.0, "#3B5BA5", sunMass, g),
	}
}

func fullSolar(g float64) []body.Config {
	const sunMass = 50000.0
	return []body.Config{
		sun(sunMass, 20.0),
		planet("Mercury", 120.0, 0.055, 3.0, "#B5B5B5", sunMass, g),
		planet("Venus", 180.0, 0.815, 6.0, "#E8CDA0", sunMass, g),
		planet("Earth", 250.0, 1.0, 7.0, "#4A90D9", sunMass, g),
		planet("Mars", 340.0, 0.107, 4.5, "#C1440E", sunMass, g),
		planet("Jupiter", 500.0, 317.8, 14.0, "#C88B3A", sunMass, g),
		planet("Saturn", 680.0, 95.2, 12.0, "#EAD6B8", sunMass, g),
		planet("Uranus", 900.0, 14.5, 9.0, "#72B2C4", sunMass, g),
		planet("Neptune", 1100.0, 17.1, 9.0, "#3B5BA5", sunMass, g),
	}
}

func inclinedSolar(g float64) []body.Config {
	const sunMass = 50000.0
	pi := math.Pi
	return []body.Config{
		sun(sunMass, 20.0),
		planetInclined("Mercury", 150.0, 0.055, 4.0, "#B5B5B5", sunMass, g, 0.12, 0.0),
		planetInclined("Venus", 220.0, 0.815, 7.0, "#E8CDA0", sunMass, g, 0.06, pi*0.5),
		planetInclined("Earth", 300.0, 1.0, 8.0, "#4A90D9", sunMass, g, 0.0, pi),
		planetInclined("Mars", 400.0, 0.107, 5.0, "#C1440E", sunMass, g, 0.03, pi*1.3),
		planetInclined("Jupiter", 550.0, 317.8, 14.0, "#C88B3A", sunMass, g, 0.02, pi*0.7),
		planetInclined("Saturn", 720.0, 95.2, 12.0, "#EAD6B8", sunMass, g, 0.04, pi*1.8),
		planetInclined("Uranus", 950.0, 14.5, 10.0, "#72B2C4", sunMass, g, 0.14, pi*0.3),
		planetInclined("Neptune", 1200.0, 17.1, 10.0, "#3B5BA5", sunMass, g, 0.03, pi*1.1),
	}
}

func binaryStar(g float64) []body.Config {
	const starMass, separation = 25000.0, 200.0
	v := math.Sqrt(g * starMass / (2.0 * separation))
	testR := 600.0
	testV := math.Sqrt(g * (starMass * 2.0) / testR)
	return []body.Config{
		{
			Name: "Star A", Color: "#FFD700",
			Position: vector3.New(-separation, 0, 0), Velocity: vector3.New(0, -v, 0),
			Mass: starMass, Radius: 18.0,
		},
		{
			Name: "Star B", Color: "#FF6B35",
			Position: vector3.New(separation, 0, 0), Velocity: vector3.New(0, v, 0),
			Mass: starMass, Radius: 18.0,
		},
		{
			Name: "Test Particle", Color: "#FFFFFF",
			Position: vector3.New(testR, 0, 0), Velocity: vector3.New(0, testV, 0),
			Mass: 0.01, Radius: 4.0,
		},
	}
}

// figureEight uses the Chenciner-Montgomery three-body solution (G=1, m=1),
// scaled to this engine's chosen G and body mass per spec.md §4.9.
func figureEight(g float64) []body.Config {
	const mass, scale = 100.0, 200.0
	vFactor := math.Sqrt(g * mass / scale)
	return []body.Config{
		{
			Name: "Body A", Color: "#FF4444",
			Position: vector3.New(-0.97000436*scale, 0.24308753*scale, 0),
			Velocity: vector3.New(0.4662036850*vFactor, 0.4323657300*vFactor, 0),
			Mass:     mass, Radius: 8.0,
		},
		{
			Name: "Body B", Color: "#44FF44",
			Position: vector3.New(0.97000436*scale, -0.24308753*scale, 0),
			Velocity: vector3.New(0.4662036850*vFactor, 0.4323657300*vFactor, 0),
			Mass:     mass, Radius: 8.0,
		},
		{
			Name: "Body C", Color: "#4444FF",
			Position: vector3.New(0, 0, 0),
			Velocity: vector3.New(-0.93240737*vFactor, -0.86473146*vFactor, 0),
			Mass:     mass, Radius: 8.0,
		},
	}
}

func asteroidBelt(g float64) []body.Config {
	const sunMass = 50000.0
	cfgs := []body.Config{
		sun(sunMass, 20.0),
		planet("Mercury", 120.0, 0.055, 3.0, "#B5B5B5", sunMass, g),
		planet("Venus", 180.0, 0.815, 6.0, "#E8CDA0", sunMass, g),
		planet("Earth", 250.0, 1.0, 7.0, "#4A90D9", sunMass, g),
		planet("Mars", 340.0, 0.107, 4.5, "#C1440E", sunMass, g),
	}

	const innerRadius, outerRadius = 380.0, 460.0
	const count = 200
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < count; i++ {
		r := innerRadius + rng.Float64()*(outerRadius-innerRadius)
		angle := rng.Float64() * 2 * math.Pi
		v := math.Sqrt(g * sunMass / r)
		perturb := 1.0 + (rng.Float64()-0.5)*0.02
		incl := (rng.Float64() - 0.5) * 0.1

		cfgs = append(cfgs, body.Config{
			Name:  asteroidName(i),
			Color: "#888888",
			Position: vector3.New(r*math.Cos(angle), r*math.Sin(angle), 0),
			Velocity: vector3.New(
				-v*math.Sin(angle)*perturb,
				v*math.Cos(angle)*perturb*math.Cos(incl),
				v*math.Sin(incl)*perturb,
			),
			Mass:   0.001,
			Radius: 1.0,
		})
	}

	cfgs = append(cfgs, planet("Jupiter", 500.0, 317.8, 14.0, "#C88B3A", sunMass, g))
	return cfgs
}

func asteroidName(i int) string {
	return "Asteroid " + strconv.Itoa(i)
}
