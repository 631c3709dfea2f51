package blitpass

import "image"

// Texture is a CPU-side 2D texture sampled by the reference fragment
// stage. Texels are stored as float32 RGBA, row-major. The pass only
// reads textures; ownership and mutation stay with the host.
//
// Channel values are expected to be non-negative (nominally [0,1]).
// Negative values are out of contract for the gamma transform.
type Texture struct {
	width  int
	height int
	data   []float32 // RGBA, 4 floats per texel, row-major

	// src is retained when the texture was built from an 8-bit image.
	// The renderer uses it for the LUT fast path under nearest sampling.
	src *image.RGBA
}

// NewTexture creates a texture with the given dimensions, initialized to
// transparent black. Dimensions are clamped to a minimum of 1.
func NewTexture(width, height int) *Texture {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Texture{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}
}

// NewTextureFromImage creates a texture from an *image.RGBA. Each 8-bit
// component is mapped to float32 [0,1] without any color space conversion:
// the pass applies its transform uncritically to whatever is present.
// The image is referenced, not copied; the caller must not mutate it while
// a render is in flight.
func NewTextureFromImage(img *image.RGBA) *Texture {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	t := NewTexture(w, h)
	t.src = img

	for y := 0; y < h; y++ {
		row := img.Pix[(y+bounds.Min.Y-img.Rect.Min.Y)*img.Stride:]
		for x := 0; x < w; x++ {
			pi := (x + bounds.Min.X - img.Rect.Min.X) * 4
			ti := (y*w + x) * 4
			t.data[ti+0] = float32(row[pi+0]) / 255.0
			t.data[ti+1] = float32(row[pi+1]) / 255.0
			t.data[ti+2] = float32(row[pi+2]) / 255.0
			t.data[ti+3] = float32(row[pi+3]) / 255.0
		}
	}
	return t
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// Texel returns the texel at (x, y). Coordinates outside the texture
// return transparent black; address-mode handling happens in Sample,
// not here.
func (t *Texture) Texel(x, y int) ColorF32 {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return ColorF32{}
	}
	i := (y*t.width + x) * 4
	return ColorF32{R: t.data[i], G: t.data[i+1], B: t.data[i+2], A: t.data[i+3]}
}

// SetTexel sets the texel at (x, y). Out-of-bounds coordinates are ignored.
// Values are stored as given: no clamping, no conversion.
func (t *Texture) SetTexel(x, y int, c ColorF32) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	i := (y*t.width + x) * 4
	t.data[i+0] = c.R
	t.data[i+1] = c.G
	t.data[i+2] = c.B
	t.data[i+3] = c.A

	// The retained 8-bit source no longer matches; drop the fast path.
	t.src = nil
}

// Fill sets every texel to the given color.
func (t *Texture) Fill(c ColorF32) {
	for i := 0; i < len(t.data); i += 4 {
		t.data[i+0] = c.R
		t.data[i+1] = c.G
		t.data[i+2] = c.B
		t.data[i+3] = c.A
	}
	t.src = nil
}
