// Package blitpass gamma lookup tables.
//
// The tables provide O(1) application of the x^2.2 transform to 8-bit
// texel data, replacing a math.Pow call per channel with an array lookup.
// This matters on the CPU reference path, where the transform runs once
// per covered pixel per channel.

package blitpass

import "math"

// gammaEncodeLUT maps an 8-bit channel value to (v/255)^2.2.
// Pre-computed 256 entries, 1KB memory cost.
var gammaEncodeLUT [256]float32

// gammaEncodeU8LUT maps an 8-bit channel value directly to the quantized
// 8-bit result of the transform. Used by the renderer's 8-bit fast path
// when sampling is nearest-neighbor (texel values pass through unblended,
// so the full transform collapses to one table lookup per channel).
var gammaEncodeU8LUT [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		v := math.Pow(float64(i)/255.0, GammaExponent)
		gammaEncodeLUT[i] = float32(v)

		q := int(v*255.0 + 0.5)
		if q < 0 {
			q = 0
		}
		if q > 255 {
			q = 255
		}
		//nolint:gosec // G115: q is clamped to [0,255] range
		gammaEncodeU8LUT[i] = uint8(q)
	}
}

// GammaEncodeFast applies the x^2.2 transform to an 8-bit channel value
// using the lookup table, returning the float32 result in [0,1].
//
// This is ~20x faster than computing with math.Pow for each pixel and is
// exact for 8-bit inputs (the table enumerates the whole domain).
func GammaEncodeFast(v uint8) float32 {
	return gammaEncodeLUT[v]
}

// GammaEncodeFastU8 applies the x^2.2 transform to an 8-bit channel value
// and quantizes back to 8 bits in a single table lookup.
func GammaEncodeFastU8(v uint8) uint8 {
	return gammaEncodeU8LUT[v]
}
