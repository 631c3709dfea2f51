package blitpass

import "testing"

func TestSampleAndCorrect(t *testing.T) {
	tex := NewTexture(1, 1)
	tex.SetTexel(0, 0, ColorF32{R: 0.5, G: 0.25, B: 1, A: 0.75})
	s := DefaultSampler()
	uv := Vec2{0.5, 0.5}

	got := SampleAndCorrect(tex, s, uv)
	want := GammaEncode(Sample(tex, s, uv))
	if got != want {
		t.Errorf("SampleAndCorrect = %+v, want %+v", got, want)
	}
	if got.A != 0.75 {
		t.Errorf("alpha = %v, want 0.75 (passthrough)", got.A)
	}
	if got.B != 1 {
		t.Errorf("B = %v, want 1 (fixed point)", got.B)
	}
}
