package blitpass

// ColorF32 represents a color with float32 components.
// RGB components are nominally in [0,1] but are not clamped anywhere in
// the pass; values outside that range flow through the gamma transform
// unchanged in meaning. Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
// Alpha is always linear (never gamma-encoded).
type ColorU8 struct {
	R, G, B, A uint8
}

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component is clamped to [0,1] and mapped to uint8 [0,255]
// with rounding. Clamping happens only at this 8-bit quantization boundary,
// never inside the pass itself.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
