package blitpass

import "math"

// GammaExponent is the fixed exponent of the pass's color transform.
//
// Note the direction: x^2.2 is the encoding exponent, the inverse of the
// conventional sRGB-to-linear decode (x^(1/2.2)). Applied to an already
// sRGB-encoded signal it darkens mid-tones. The value is kept literal for
// compatibility with the shader; do not "fix" the direction here without
// also changing shaders/blit_gamma.wgsl.
const GammaExponent = 2.2

// GammaEncodeChannel applies the x^2.2 transform to a single channel.
// No clamping is performed. Negative inputs are out of contract: raising
// a negative value to a non-integer power yields NaN.
func GammaEncodeChannel(v float32) float32 {
	return float32(math.Pow(float64(v), GammaExponent))
}

// GammaEncode applies the x^2.2 transform to the RGB channels of a color.
// Alpha passes through unmodified. 0 and 1 are fixed points.
func GammaEncode(c ColorF32) ColorF32 {
	return ColorF32{
		R: GammaEncodeChannel(c.R),
		G: GammaEncodeChannel(c.G),
		B: GammaEncodeChannel(c.B),
		A: c.A,
	}
}

// SRGBToLinear converts an sRGB component to linear using the piecewise
// sRGB EOTF. Input and output are in range [0,1].
//
// The pass itself never calls this: its transform is the literal x^2.2 of
// GammaEncode. The EOTF/OETF pair is provided for hosts that want the
// conventional decode direction instead.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB using the piecewise
// sRGB OETF. Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}
