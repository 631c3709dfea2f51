package blitpass

import (
	"errors"
	"image"
	"path/filepath"
	"testing"
)

func TestNewPixmap_InvalidDimensions(t *testing.T) {
	tests := []struct{ w, h int }{
		{0, 10},
		{10, 0},
		{-1, 10},
		{10, -1},
	}
	for _, tt := range tests {
		if _, err := NewPixmap(tt.w, tt.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewPixmap(%d, %d): got %v, want ErrInvalidDimensions", tt.w, tt.h, err)
		}
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	p := newTestPixmap(t, 4, 4)

	p.SetPixel(1, 2, ColorF32{R: 1, G: 0.5, A: 1})
	got := p.GetPixel(1, 2)
	want := ColorU8{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("GetPixel(1,2) = %+v, want %+v", got, want)
	}

	// Out of bounds: writes ignored, reads transparent.
	p.SetPixel(-1, 0, ColorF32{R: 1})
	p.SetPixel(4, 0, ColorF32{R: 1})
	if got := p.GetPixel(-1, 0); got != (ColorU8{}) {
		t.Errorf("GetPixel(-1,0) = %+v, want zero", got)
	}
}

func TestPixmap_SetPixelQuantizationClamps(t *testing.T) {
	p := newTestPixmap(t, 1, 1)
	p.SetPixel(0, 0, ColorF32{R: 1.5, G: -0.5, B: 0.5, A: 2})
	got := p.GetPixel(0, 0)
	want := ColorU8{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("quantized pixel = %+v, want %+v", got, want)
	}
}

func TestPixmap_Clear(t *testing.T) {
	p := newTestPixmap(t, 3, 3)
	p.Clear(ColorF32{R: 1, A: 1})
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := p.GetPixel(x, y); got != (ColorU8{R: 255, A: 255}) {
				t.Fatalf("pixel (%d,%d) = %+v after Clear", x, y, got)
			}
		}
	}
}

func TestPixmap_ToImageCopies(t *testing.T) {
	p := newTestPixmap(t, 2, 2)
	p.SetPixel(0, 0, ColorF32{R: 1, A: 1})

	img := p.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if img.Pix[0] != 255 || img.Pix[3] != 255 {
		t.Errorf("pixel (0,0) = %v", img.Pix[:4])
	}

	// ToImage returns a copy, not a view.
	img.Pix[0] = 7
	if p.GetPixel(0, 0).R != 255 {
		t.Error("mutating the image changed the pixmap")
	}
}

func TestPixmap_ImageInterface(t *testing.T) {
	p := newTestPixmap(t, 2, 2)
	p.SetPixel(1, 1, ColorF32{G: 1, A: 1})

	var img image.Image = p
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0 || g != 0xffff || b != 0 || a != 0xffff {
		t.Errorf("At(1,1) = (%d, %d, %d, %d), want green", r, g, b, a)
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	p := newTestPixmap(t, 4, 4)
	p.Clear(ColorF32{B: 1, A: 1})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}
