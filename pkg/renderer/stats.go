package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Workers      int           // Number of worker goroutines used
	Elapsed      time.Duration // Wall-clock render time
}
