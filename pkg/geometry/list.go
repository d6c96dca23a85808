package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// List is an ordered collection of shapes queried as a single unit
type List struct {
	Shapes []Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends shapes to the list
func (l *List) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit tests the ray against every member and reports the closest hit.
// The search window narrows to the closest t found so far, so the nearest
// surface wins regardless of member order.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
