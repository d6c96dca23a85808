package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// featureSphereClearance keeps random grid spheres away from the large
// feature spheres so they don't overlap
const featureSphereClearance = 0.9

// NewRandomSphereScene creates the demo scene: a large ground sphere, a grid
// of small randomized spheres and three large feature spheres. The layout is
// deterministic; material parameters come from the supplied random source.
func NewRandomSphereScene(random *rand.Rand) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   1.5, // 3:2
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := NewScene(cameraConfig)

	groundMaterial := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial))

	featurePoint := core.NewVec3(4, 0.2, 0)

	for a := -3; a < 3; a++ {
		for b := -3; b < 3; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(featurePoint).Length() <= featureSphereClearance {
				continue
			}

			var sphereMaterial material.Material
			switch {
			case chooseMat < 0.8:
				// Diffuse with a random albedo
				albedo := core.RandomVec3(0, 1, random).MultiplyVec(core.RandomVec3(0, 1, random))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				// Metal with a bright albedo and mild fuzz
				albedo := core.RandomVec3(0.5, 1, random)
				fuzz := 0.5 * random.Float64()
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				// Glass
				sphereMaterial = material.NewDielectric(1.5)
			}

			s.World.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
