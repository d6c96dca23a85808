package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

func TestRowBands_Coverage(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		workers int
	}{
		{"even division", 100, 4},
		{"uneven division", 100, 7},
		{"single worker", 50, 1},
		{"more workers than rows", 5, 8},
		{"remainder of one", 11, 2},
		{"prime height", 13, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := rowBands(tt.height, tt.workers)

			// Bands must be contiguous, non-overlapping, and cover every row
			covered := make([]int, tt.height)
			row := 0
			for i, band := range bands {
				if band.start != row {
					t.Errorf("Band %d starts at %d, expected %d", i, band.start, row)
				}
				if band.end <= band.start {
					t.Errorf("Band %d is empty: [%d, %d)", i, band.start, band.end)
				}
				for r := band.start; r < band.end; r++ {
					covered[r]++
				}
				row = band.end
			}

			if row != tt.height {
				t.Errorf("Bands end at row %d, expected %d", row, tt.height)
			}

			for r, count := range covered {
				if count != 1 {
					t.Errorf("Row %d covered %d times, expected exactly once", r, count)
				}
			}

			if tt.workers <= tt.height && len(bands) != tt.workers {
				t.Errorf("Expected %d bands, got %d", tt.workers, len(bands))
			}
			if tt.workers > tt.height && len(bands) != tt.height {
				t.Errorf("Expected bands capped at %d rows, got %d", tt.height, len(bands))
			}
		})
	}
}

func TestRowBands_RemainderSpread(t *testing.T) {
	// 11 rows over 3 workers: the first two bands take the extra rows
	bands := rowBands(11, 3)

	sizes := make([]int, len(bands))
	for i, band := range bands {
		sizes[i] = band.end - band.start
	}

	expected := []int{4, 4, 3}
	for i := range expected {
		if sizes[i] != expected[i] {
			t.Errorf("Band %d: expected %d rows, got %d (all sizes %v)", i, expected[i], sizes[i], sizes)
		}
	}
}

func renderTestImage(t *testing.T, workers int, seed int64) *Image {
	t.Helper()

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.1,
			material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(0.2, 0, -1), 0.05,
			material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.1)),
		geometry.NewSphere(core.NewVec3(-0.2, 0, -1), 0.05,
			material.NewDielectric(1.5)),
	)

	rt := NewRaytracer(newTestScene(world), 16, 12)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 4, MaxDepth: 5})

	img, _ := rt.Render(workers, seed, nil)
	return img
}

func TestRender_FixedSeedIsReproducible(t *testing.T) {
	first := renderTestImage(t, 3, 42)
	second := renderTestImage(t, 3, 42)

	var buf1, buf2 bytes.Buffer
	if err := first.WritePPM(&buf1); err != nil {
		t.Fatalf("Unexpected encode error: %v", err)
	}
	if err := second.WritePPM(&buf2); err != nil {
		t.Fatalf("Unexpected encode error: %v", err)
	}

	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("Two renders with the same seed and worker count should be byte-identical")
	}
}

func TestRender_Stats(t *testing.T) {
	world := geometry.NewList()
	rt := NewRaytracer(newTestScene(world), 8, 6)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 3, MaxDepth: 2})

	_, stats := rt.Render(2, 1, nil)

	if stats.TotalPixels != 48 {
		t.Errorf("Expected 48 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 48*3 {
		t.Errorf("Expected %d samples, got %d", 48*3, stats.TotalSamples)
	}
	if stats.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", stats.Workers)
	}
	if stats.Elapsed <= 0 {
		t.Errorf("Expected positive elapsed time, got %v", stats.Elapsed)
	}
}

func TestRender_EveryPixelWritten(t *testing.T) {
	// An empty scene renders pure sky, which is never fully black anywhere,
	// so an unwritten (zero) pixel would betray a partitioning bug
	world := geometry.NewList()
	rt := NewRaytracer(newTestScene(world), 9, 7) // 7 rows over 3 workers leaves a remainder
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 1, MaxDepth: 2})

	img, _ := rt.Render(3, 7, nil)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.At(x, y) == (RGB{}) {
				t.Errorf("Pixel (%d,%d) was never written", x, y)
			}
		}
	}
}

func TestRender_OnePixelImage(t *testing.T) {
	// A 1x1 render must not divide by zero when jittering inside the pixel;
	// a NaN sample would collapse the sky to a zero pixel
	world := geometry.NewList()
	rt := NewRaytracer(newTestScene(world), 1, 1)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 4, MaxDepth: 2})

	img, _ := rt.Render(1, 42, nil)

	if img.At(0, 0) == (RGB{}) {
		t.Errorf("Expected a sky-colored pixel, got %v", img.At(0, 0))
	}
}

type captureLogger struct {
	lines int
}

func (l *captureLogger) Printf(format string, args ...interface{}) {
	l.lines++
}

func TestRender_ProgressLogging(t *testing.T) {
	world := geometry.NewList()
	rt := NewRaytracer(newTestScene(world), 4, 20)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 1, MaxDepth: 2})

	logger := &captureLogger{}
	rt.Render(2, 1, logger)

	if logger.lines == 0 {
		t.Error("Expected progress output through the logger")
	}
}
