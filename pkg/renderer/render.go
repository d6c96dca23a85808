package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// rowBand is a half-open range [start, end) of image rows owned by one worker
type rowBand struct {
	start, end int
}

// rowBands partitions height rows into contiguous non-overlapping bands.
// The first height%workers bands take one extra row, so every row is
// assigned even when the division is uneven.
func rowBands(height, workers int) []rowBand {
	if workers > height {
		workers = height
	}

	bands := make([]rowBand, 0, workers)
	base := height / workers
	remainder := height % workers

	row := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < remainder {
			size++
		}
		bands = append(bands, rowBand{start: row, end: row + size})
		row += size
	}

	return bands
}

// Render renders the full image using numWorkers parallel workers, each
// shading its own band of rows into a disjoint region of the shared buffer.
// Each worker draws from its own generator seeded from baseSeed, so a fixed
// seed and worker count reproduce the image exactly. A nil logger disables
// progress output.
func (rt *Raytracer) Render(numWorkers int, baseSeed int64, logger core.Logger) (*Image, RenderStats) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := NewImage(rt.width, rt.height)
	bands := rowBands(rt.height, numWorkers)

	// Completed-row counter shared across workers; atomic because every
	// worker bumps it
	var rowsDone atomic.Int64
	logEvery := int64(max(1, rt.height/10))

	start := time.Now()

	var wg sync.WaitGroup
	for bandIndex, band := range bands {
		wg.Add(1)
		go func(band rowBand, random *rand.Rand) {
			defer wg.Done()
			rt.renderBand(img, band, random, func() {
				done := rowsDone.Add(1)
				if logger != nil && done%logEvery == 0 {
					logger.Printf("rendered %d/%d rows", done, rt.height)
				}
			})
		}(band, rand.New(rand.NewSource(baseSeed+int64(bandIndex))))
	}
	wg.Wait()

	stats := RenderStats{
		TotalPixels:  rt.width * rt.height,
		TotalSamples: rt.width * rt.height * rt.config.SamplesPerPixel,
		Workers:      len(bands),
		Elapsed:      time.Since(start),
	}

	return img, stats
}

// renderBand shades every pixel in the worker's row band. Row j counts up
// from the bottom of the scene; the buffer stores the top visual row first.
func (rt *Raytracer) renderBand(img *Image, band rowBand, random *rand.Rand, rowDone func()) {
	for j := band.start; j < band.end; j++ {
		for i := 0; i < rt.width; i++ {
			img.Set(i, rt.height-1-j, rt.samplePixel(i, j, random))
		}
		rowDone()
	}
}
