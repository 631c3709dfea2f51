package blitpass

import (
	"math"
	"testing"
)

func TestGammaEncodeChannel_FixedPoints(t *testing.T) {
	if got := GammaEncodeChannel(0); got != 0 {
		t.Errorf("GammaEncodeChannel(0) = %v, want 0", got)
	}
	if got := GammaEncodeChannel(1); got != 1 {
		t.Errorf("GammaEncodeChannel(1) = %v, want 1", got)
	}
}

func TestGammaEncodeChannel_MidGray(t *testing.T) {
	// 0.5^2.2 ~= 0.21764: mid-tones darken under the encoding exponent.
	got := GammaEncodeChannel(0.5)
	want := float32(0.217638)
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("GammaEncodeChannel(0.5) = %v, want ~%v", got, want)
	}
}

func TestGammaEncodeChannel_Monotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		v := float32(i) / 100
		got := GammaEncodeChannel(v)
		if got < prev {
			t.Fatalf("GammaEncodeChannel not monotonic at %v: %v < %v", v, got, prev)
		}
		prev = got
	}
}

func TestGammaEncodeChannel_NoClamping(t *testing.T) {
	// Values above 1 pass through the power law unclamped.
	got := GammaEncodeChannel(2.0)
	want := float32(math.Pow(2.0, 2.2))
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("GammaEncodeChannel(2) = %v, want %v (no clamp)", got, want)
	}
}

func TestGammaEncode_AlphaPassthrough(t *testing.T) {
	tests := []float32{0, 0.25, 0.5, 1, 1.5}
	for _, alpha := range tests {
		c := GammaEncode(ColorF32{R: 0.5, G: 0.5, B: 0.5, A: alpha})
		if c.A != alpha {
			t.Errorf("alpha = %v after encode, want %v (passthrough)", c.A, alpha)
		}
	}
}

func TestGammaEncode_ChannelsIndependent(t *testing.T) {
	c := GammaEncode(ColorF32{R: 0.2, G: 0.5, B: 0.8, A: 1})
	if c.R != GammaEncodeChannel(0.2) || c.G != GammaEncodeChannel(0.5) || c.B != GammaEncodeChannel(0.8) {
		t.Errorf("GammaEncode channels not independent: %+v", c)
	}
}

func TestSRGBConversion_RoundTrip(t *testing.T) {
	for i := 0; i <= 64; i++ {
		v := float32(i) / 64
		back := LinearToSRGB(SRGBToLinear(v))
		if math.Abs(float64(back-v)) > 1e-5 {
			t.Errorf("sRGB round trip at %v: got %v", v, back)
		}
	}
}

func TestGammaEncodeFast_MatchesPow(t *testing.T) {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		want := GammaEncodeChannel(float32(i) / 255.0)
		got := GammaEncodeFast(v)
		if math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("GammaEncodeFast(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestGammaEncodeFastU8_MatchesQuantizedPow(t *testing.T) {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		want := clampAndRound(GammaEncodeChannel(float32(i) / 255.0))
		got := GammaEncodeFastU8(v)
		if got != want {
			t.Errorf("GammaEncodeFastU8(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestGammaEncodeFastU8_Endpoints(t *testing.T) {
	if got := GammaEncodeFastU8(0); got != 0 {
		t.Errorf("GammaEncodeFastU8(0) = %d, want 0", got)
	}
	if got := GammaEncodeFastU8(255); got != 255 {
		t.Errorf("GammaEncodeFastU8(255) = %d, want 255", got)
	}
}
