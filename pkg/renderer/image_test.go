package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestImage_SetAndAt(t *testing.T) {
	img := NewImage(3, 2)

	c := RGB{R: 10, G: 20, B: 30}
	img.Set(2, 1, c)

	if got := img.At(2, 1); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}

	if got := img.At(0, 0); got != (RGB{}) {
		t.Errorf("Untouched pixel should be zero, got %v", got)
	}
}

func TestImage_WritePPM_Format(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, RGB{255, 0, 0})
	img.Set(1, 0, RGB{0, 255, 0})
	img.Set(0, 1, RGB{0, 0, 255})
	img.Set(1, 1, RGB{128, 128, 128})

	var buf bytes.Buffer
	if err := img.WritePPM(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// Exactly a 3-line header followed by one line per pixel
	if len(lines) != 3+4 {
		t.Fatalf("Expected 7 lines for a 2x2 image, got %d: %q", len(lines), lines)
	}

	if lines[0] != "P3" {
		t.Errorf("Expected magic 'P3', got %q", lines[0])
	}
	if lines[1] != "2 2" {
		t.Errorf("Expected dimensions '2 2', got %q", lines[1])
	}
	if lines[2] != "255" {
		t.Errorf("Expected max value '255', got %q", lines[2])
	}

	expectedPixels := []string{"255 0 0", "0 255 0", "0 0 255", "128 128 128"}
	for i, expected := range expectedPixels {
		if lines[3+i] != expected {
			t.Errorf("Pixel line %d: expected %q, got %q", i, expected, lines[3+i])
		}
	}
}

func TestImage_WritePPM_ValuesInRange(t *testing.T) {
	img := NewImage(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, RGB{R: uint8(x * 60), G: uint8(y * 80), B: 200})
		}
	}

	var buf bytes.Buffer
	if err := img.WritePPM(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, line := range lines[3:] {
		var r, g, b int
		if _, err := fmt.Sscanf(line, "%d %d %d", &r, &g, &b); err != nil {
			t.Fatalf("Pixel line %q is not three integers: %v", line, err)
		}
		for _, v := range []int{r, g, b} {
			if v < 0 || v > 255 {
				t.Errorf("Channel value %d outside [0,255] in line %q", v, line)
			}
		}
	}
}

func TestImage_RGBA(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, RGB{10, 20, 30})
	img.Set(1, 0, RGB{40, 50, 60})

	rgba := img.RGBA()

	bounds := rgba.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 1 {
		t.Fatalf("Expected 2x1 bounds, got %v", bounds)
	}

	c := rgba.RGBAAt(0, 0)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("Expected (10,20,30,255), got %v", c)
	}

	c = rgba.RGBAAt(1, 0)
	if c.R != 40 || c.G != 50 || c.B != 60 || c.A != 255 {
		t.Errorf("Expected (40,50,60,255), got %v", c)
	}
}
