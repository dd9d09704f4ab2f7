// Package procedural builds randomized initial conditions: star/planet
// systems and colliding-galaxy particle clouds.
package procedural

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/saagar210/OrbitForge/body"
	"github.com/saagar210/OrbitForge/rotation"
	"github.com/saagar210/OrbitForge/vector3"
)

var planetNames = [...]string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon",
	"Zeta", "Eta", "Theta", "Iota", "Kappa",
	"Lambda", "Mu", "Nu", "Xi", "Omicron",
	"Pi", "Rho", "Sigma", "Tau", "Upsilon",
}

// GenerateSystem places a fixed central star and planetCount planets at
// increasing, jittered orbital radii with log-uniform masses, per
// spec.md §4.10.
func GenerateSystem(g, starMass float64, planetCount int, minSpacing, maxRadius float64) []body.Config {
	starRadius := clamp(math.Cbrt(starMass/1000.0), 8.0, 30.0)
	hue := 30 + rand.Intn(30)
	starColor := fmt.Sprintf("hsl(%d, 80%%, 70%%)", hue)

	cfgs := make([]body.Config, 0, planetCount+1)
	cfgs = append(cfgs, body.Config{
		Name:   "Star",
		Color:  starColor,
		Mass:   starMass,
		Radius: starRadius,
		Fixed:  true,
	})

	spacingStep := 0.0
	if planetCount > 1 {
		spacingStep = (maxRadius - minSpacing) / float64(planetCount-1)
	}

	orbitRadius := minSpacing
	for i := 0; i < planetCount; i++ {
		name := "Planet"
		if i < len(planetNames) {
			name = planetNames[i]
		}

		jitter := (rand.Float64()*0.3 - 0.15) * spacingStep
		r := math.Max(orbitRadius+jitter, minSpacing)

		massExp := -1.0 + rand.Float64()*4.0
		mass := math.Pow(10, massExp)
		radius := clamp(math.Cbrt(mass)*3.0, 2.0, 18.0)

		h := rand.Intn(360)
		s := 40 + rand.Intn(40)
		l := 50 + rand.Intn(30)
		color := fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)

		v := math.Sqrt(g * starMass / r)
		angle := rand.Float64() * 2 * math.Pi
		inclination := rand.Float64()*0.3 - 0.15

		pos := rotation.MxV33(rotation.R3(-angle), [3]float64{r, 0, 0})
		tilted := rotation.MxV33(rotation.R1(-inclination), [3]float64{0, v, 0})
		vel := rotation.MxV33(rotation.R3(-angle), tilted)

		cfgs = append(cfgs, body.Config{
			Name:     name,
			Color:    color,
			Position: vector3.New(pos[0], pos[1], pos[2]),
			Velocity: vector3.New(vel[0], vel[1], vel[2]),
			Mass:     mass,
			Radius:   radius,
		})

		orbitRadius += spacingStep
	}

	return cfgs
}

// maxGalaxyParticles caps particles-per-galaxy passed to GalaxyCollision.
const maxGalaxyParticles = 500

// GalaxyCollision builds two particle discs orbiting massive cores on a
// collision course, per spec.md §4.10.
func GalaxyCollision(g float64, particlesPerGalaxy int) []body.Config {
	n := particlesPerGalaxy
	if n > maxGalaxyParticles {
		n = maxGalaxyParticles
	}

	center1, bulkVel1, coreMass1 := vector3.New(-400, 0, 0), vector3.New(30, 5, 0), 100000.0
	center2, bulkVel2, coreMass2 := vector3.New(400, 0, 0), vector3.New(-30, -5, 0), 80000.0

	cfgs := []body.Config{
		{
			Name: "Galaxy A Core", Color: "#FFD700",
			Position: center1, Velocity: bulkVel1,
			Mass: coreMass1, Radius: 15.0,
		},
	}
	cfgs = append(cfgs, generateDisc(g, center1, bulkVel1, coreMass1, n, "A")...)

	cfgs = append(cfgs, body.Config{
		Name: "Galaxy B Core", Color: "#FF6B35",
		Position: center2, Velocity: bulkVel2,
		Mass: coreMass2, Radius: 13.0,
	})
	cfgs = append(cfgs, generateDisc(g, center2, bulkVel2, coreMass2, n, "B")...)

	return cfgs
}

func generateDisc(g float64, center, bulkVel vector3.Vector3, coreMass float64, count int, prefix string) []body.Config {
	const minR, maxR = 30.0, 300.0
	color := "#8888FF"
	if prefix != "A" {
		color = "#FF8888"
	}

	cfgs := make([]body.Config, count)
	for i := 0; i < count; i++ {
		u := rand.Float64()
		r := minR + (maxR-minR)*math.Sqrt(u)
		angle := rand.Float64() * 2 * math.Pi
		zScatter := (rand.Float64() - 0.5) * 20.0

		px := center.X + r*math.Cos(angle)
		py := center.Y + r*math.Sin(angle)
		pz := center.Z + zScatter

		v := math.Sqrt(g * coreMass / r)
		vx := bulkVel.X - v*math.Sin(angle)
		vy := bulkVel.Y + v*math.Cos(angle)
		vz := bulkVel.Z

		cfgs[i] = body.Config{
			Name:     fmt.Sprintf("%s%d", prefix, i),
			Color:    color,
			Position: vector3.New(px, py, pz),
			Velocity: vector3.New(vx, vy, vz),
			Mass:     0.01,
			Radius:   1.0 + rand.Float64()*0.5,
		}
	}
	return cfgs
}

func clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}
