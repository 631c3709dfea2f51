package blitpass

// SampleAndCorrect is the fragment stage of the pass: sample the texture
// at the interpolated coordinate, apply the x^2.2 transform to RGB, and
// pass alpha through. This is the whole per-pixel computation; the pass
// composes it with the coverage geometry of FullscreenVertex.
func SampleAndCorrect(tex *Texture, s Sampler, uv Vec2) ColorF32 {
	return GammaEncode(Sample(tex, s, uv))
}
