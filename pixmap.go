package blitpass

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular 8-bit RGBA pixel buffer, the CPU render target
// of the pass. Stored colors are post-transform values; quantization to
// 8 bits (with its implied clamp to [0,1]) is the only place the pass
// narrows its output range.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Returns ErrInvalidDimensions for zero or negative width or height.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel, quantizing to 8 bits.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c ColorF32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	u := F32ToU8(c)
	i := (y*p.width + x) * 4
	p.data[i+0] = u.R
	p.data[i+1] = u.G
	p.data[i+2] = u.B
	p.data[i+3] = u.A
}

// SetPixelU8 sets the color of a single pixel from already-quantized
// components. Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixelU8(x, y int, c ColorU8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the stored color of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) ColorU8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return ColorU8{}
	}
	i := (y*p.width + x) * 4
	return ColorU8{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c ColorF32) {
	u := F32ToU8(c)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = u.R
		p.data[i+1] = u.G
		p.data[i+2] = u.B
		p.data[i+3] = u.A
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
