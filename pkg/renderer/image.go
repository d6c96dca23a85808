package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// RGB is one finalized pixel: gamma-corrected channels scaled to [0,255]
type RGB struct {
	R, G, B uint8
}

// Image is a row-major grid of finalized pixel colors, top visual row first.
// Dimensions are fixed at construction; each cell is written exactly once by
// exactly one render worker.
type Image struct {
	Width  int
	Height int
	pixels []RGB
}

// NewImage creates an image buffer with the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		pixels: make([]RGB, width*height),
	}
}

// Set stores the color for pixel (x, y), with y counting down from the top
func (img *Image) Set(x, y int, c RGB) {
	img.pixels[y*img.Width+x] = c
}

// At returns the color of pixel (x, y)
func (img *Image) At(x, y int) RGB {
	return img.pixels[y*img.Width+x]
}

// WritePPM encodes the image in the plain-text P3 pixel-map format:
// a three-line header followed by one "r g b" line per pixel in row-major
// order from the top visual row down
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
				return fmt.Errorf("writing pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}

// RGBA converts the buffer to a standard library image for PNG encoding
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return out
}
