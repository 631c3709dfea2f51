package blitpass

import "math"

// FilterMode selects how texels are combined when a texture coordinate
// falls between texel centers.
type FilterMode uint8

const (
	// FilterNearest selects the single nearest texel.
	FilterNearest FilterMode = iota

	// FilterLinear blends the four surrounding texels bilinearly.
	FilterLinear
)

// String returns a human-readable name for the filter mode.
func (m FilterMode) String() string {
	switch m {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// AddressMode selects how texture coordinates outside [0,1] are resolved.
// Out-of-range coordinates are never an error: the result is defined (if
// possibly surprising) by the configured mode.
type AddressMode uint8

const (
	// AddressClampToEdge clamps coordinates to the edge texel.
	AddressClampToEdge AddressMode = iota

	// AddressRepeat tiles the texture.
	AddressRepeat

	// AddressMirrorRepeat tiles the texture, mirroring every other tile.
	AddressMirrorRepeat
)

// String returns a human-readable name for the address mode.
func (m AddressMode) String() string {
	switch m {
	case AddressClampToEdge:
		return "ClampToEdge"
	case AddressRepeat:
		return "Repeat"
	case AddressMirrorRepeat:
		return "MirrorRepeat"
	default:
		return "Unknown"
	}
}

// Sampler is the sampling-state configuration for texture reads:
// filtering plus per-axis address modes. It is plain external
// configuration owned by the host; the pass only reads through it.
type Sampler struct {
	MagFilter    FilterMode
	AddressModeU AddressMode
	AddressModeV AddressMode
}

// DefaultSampler returns a sampler matching the WebGPU descriptor
// defaults: clamp-to-edge addressing with nearest filtering.
func DefaultSampler() Sampler {
	return Sampler{
		MagFilter:    FilterNearest,
		AddressModeU: AddressClampToEdge,
		AddressModeV: AddressClampToEdge,
	}
}

// Sample reads the texture at the given normalized coordinate through the
// sampler, mirroring GPU sampling of an unmipped 2D texture. Out-of-range
// coordinates resolve per the sampler's address modes.
func Sample(tex *Texture, s Sampler, uv Vec2) ColorF32 {
	if s.MagFilter == FilterLinear {
		return sampleLinear(tex, s, uv)
	}
	return sampleNearest(tex, s, uv)
}

func sampleNearest(tex *Texture, s Sampler, uv Vec2) ColorF32 {
	x := resolveTexel(floorToInt(uv.X*float32(tex.width)), tex.width, s.AddressModeU)
	y := resolveTexel(floorToInt(uv.Y*float32(tex.height)), tex.height, s.AddressModeV)
	return tex.Texel(x, y)
}

func sampleLinear(tex *Texture, s Sampler, uv Vec2) ColorF32 {
	// Texel-space position with the half-texel center offset.
	tx := uv.X*float32(tex.width) - 0.5
	ty := uv.Y*float32(tex.height) - 0.5

	x0 := floorToInt(tx)
	y0 := floorToInt(ty)
	fx := tx - float32(x0)
	fy := ty - float32(y0)

	x0r := resolveTexel(x0, tex.width, s.AddressModeU)
	x1r := resolveTexel(x0+1, tex.width, s.AddressModeU)
	y0r := resolveTexel(y0, tex.height, s.AddressModeV)
	y1r := resolveTexel(y0+1, tex.height, s.AddressModeV)

	c00 := tex.Texel(x0r, y0r)
	c10 := tex.Texel(x1r, y0r)
	c01 := tex.Texel(x0r, y1r)
	c11 := tex.Texel(x1r, y1r)

	return ColorF32{
		R: lerp(lerp(c00.R, c10.R, fx), lerp(c01.R, c11.R, fx), fy),
		G: lerp(lerp(c00.G, c10.G, fx), lerp(c01.G, c11.G, fx), fy),
		B: lerp(lerp(c00.B, c10.B, fx), lerp(c01.B, c11.B, fx), fy),
		A: lerp(lerp(c00.A, c10.A, fx), lerp(c01.A, c11.A, fx), fy),
	}
}

// resolveTexel maps a texel index onto [0, n) per the address mode.
func resolveTexel(i, n int, mode AddressMode) int {
	switch mode {
	case AddressRepeat:
		m := i % n
		if m < 0 {
			m += n
		}
		return m
	case AddressMirrorRepeat:
		period := 2 * n
		m := i % period
		if m < 0 {
			m += period
		}
		if m >= n {
			m = period - 1 - m
		}
		return m
	default: // AddressClampToEdge
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

func floorToInt(v float32) int {
	return int(math.Floor(float64(v)))
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
