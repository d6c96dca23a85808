package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// minHitDistance biases intersection tests away from the ray origin to
// suppress self-intersection artifacts (shadow acne).
const minHitDistance = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        30,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() *geometry.List
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// backgroundGradient returns the ambient sky color for a ray that hit nothing
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the color for a given ray, recursing on scattered rays.
// Depth strictly decreases on each bounce, so recursion is bounded by the
// configured maximum depth.
func (rt *Raytracer) rayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetWorld().Hit(r, minHitDistance, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, random))
}

// samplePixel takes the configured number of jittered samples for pixel (i, j)
// and returns the finalized 8-bit color
func (rt *Raytracer) samplePixel(i, j int, random *rand.Rand) RGB {
	camera := rt.scene.GetCamera()
	colorAccum := core.Vec3{}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter within the pixel footprint. The denominators guard against
		// division by zero for 1-pixel-wide or 1-pixel-tall images.
		s := (float64(i) + random.Float64()) / float64(max(1, rt.width-1))
		t := (float64(j) + random.Float64()) / float64(max(1, rt.height-1))

		ray := camera.GetRay(s, t, random)
		colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth, random))
	}

	// Average, gamma-correct and scale to [0,255]
	colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)

	return RGB{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
	}
}
