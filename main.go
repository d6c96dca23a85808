package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// config holds every render parameter settable from the command line
type config struct {
	width           int
	aspectRatio     float64
	samplesPerPixel int
	maxDepth        int
	workers         int
	seed            int64
	output          string
	format          string
}

func parseFlags() (config, bool) {
	cfg := config{}
	flag.IntVar(&cfg.width, "width", 300, "Image width in pixels")
	flag.Float64Var(&cfg.aspectRatio, "aspect", 1.5, "Aspect ratio (width / height)")
	flag.IntVar(&cfg.samplesPerPixel, "samples", 10, "Samples per pixel")
	flag.IntVar(&cfg.maxDepth, "depth", 30, "Maximum ray bounce depth")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "Number of render workers")
	flag.Int64Var(&cfg.seed, "seed", 0, "Random seed (0 = time-based)")
	flag.StringVar(&cfg.output, "output", "image.ppm", "Output file path")
	flag.StringVar(&cfg.format, "format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	return cfg, *help
}

// height derives the image height from the width and aspect ratio
func (cfg config) height() int {
	return int(float64(cfg.width) / cfg.aspectRatio)
}

func (cfg config) validate() error {
	if cfg.width <= 0 {
		return fmt.Errorf("width must be positive, got %d", cfg.width)
	}
	if cfg.aspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", cfg.aspectRatio)
	}
	if cfg.height() <= 0 {
		return fmt.Errorf("derived height is zero for width %d and aspect ratio %g", cfg.width, cfg.aspectRatio)
	}
	if cfg.samplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", cfg.samplesPerPixel)
	}
	if cfg.maxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", cfg.maxDepth)
	}
	if cfg.format != "ppm" && cfg.format != "png" {
		return fmt.Errorf("unknown format %q, want 'ppm' or 'png'", cfg.format)
	}
	return nil
}

// writeImage persists the finished buffer in the configured format
func writeImage(img *renderer.Image, output, format string) error {
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	switch format {
	case "png":
		err = png.Encode(file, img.RGBA())
	default:
		err = img.WritePPM(file)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	return file.Close()
}

func main() {
	cfg, help := parseFlags()

	if help {
		fmt.Println("Sphere Tracer")
		fmt.Println("Usage: sphere-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if err := cfg.validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d, %d workers, seed %d",
		cfg.width, cfg.height(), cfg.samplesPerPixel, cfg.maxDepth, cfg.workers, seed)

	demoScene := scene.NewRandomSphereScene(rand.New(rand.NewSource(seed)))

	raytracer := renderer.NewRaytracer(demoScene, cfg.width, cfg.height())
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.samplesPerPixel,
		MaxDepth:        cfg.maxDepth,
	})

	img, stats := raytracer.Render(cfg.workers, seed, logger)

	logger.Printf("Render completed in %v (%d pixels, %d samples, %d workers)",
		stats.Elapsed, stats.TotalPixels, stats.TotalSamples, stats.Workers)

	if err := writeImage(img, cfg.output, cfg.format); err != nil {
		logger.Fatalf("Error writing output: %v", err)
	}

	logger.Printf("Render saved as %s", cfg.output)
}
