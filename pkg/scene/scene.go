package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Scene holds the world geometry, camera and sky colors for a render.
// It owns its shapes; materials are shared by pointer, so several spheres
// may reference one immutable material instance. Read-only once built and
// safe to share across render workers.
type Scene struct {
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	World        *geometry.List
	TopColor     core.Vec3
	BottomColor  core.Vec3
}

// NewScene creates an empty scene with the given camera configuration
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		World:        geometry.NewList(),
		TopColor:     core.NewVec3(0.5, 0.7, 1.0), // Light blue zenith
		BottomColor:  core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld returns the shape aggregate
func (s *Scene) GetWorld() *geometry.List {
	return s.World
}
