package material

import (
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// Scatter toward a random point on the unit sphere sitting on the surface,
	// approximating a cosine distribution around the normal
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// Degenerate case: the random vector nearly cancelled the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: scatterDirection},
		Attenuation: l.Albedo,
	}, true
}
