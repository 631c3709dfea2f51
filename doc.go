// Package blitpass implements a gamma-correcting full-screen blit pass.
//
// # Overview
//
// blitpass draws a source texture onto a render target using a single
// oversized triangle generated procedurally in the vertex stage (no vertex
// or index buffers), then applies a fixed x^2.2 power-law gamma transform
// to the sampled RGB channels in the fragment stage. Alpha passes through
// unchanged. It is the "blit + color-correct" stage of a larger pipeline:
// the host supplies a bound texture, a bound sampler, and a draw of exactly
// 3 vertices.
//
// # Quick Start
//
//	import "github.com/gogpu/blitpass"
//
//	tex := blitpass.NewTextureFromImage(src) // src is *image.RGBA
//	target, err := blitpass.NewPixmap(1280, 720)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := blitpass.NewRenderer()
//	defer r.Close()
//	if err := r.Render(target, tex, blitpass.DefaultSampler()); err != nil {
//	    log.Fatal(err)
//	}
//	img := target.ToImage() // gamma-corrected result
//
// # Architecture
//
// The pass exists in two equivalent renditions:
//
//   - CPU reference: pure per-invocation functions ([FullscreenVertex],
//     [SampleAndCorrect]) dispatched in parallel over the target by
//     [Renderer]. Used for testing and hosts without a GPU.
//   - GPU: the embedded WGSL shader (shaders/blit_gamma.wgsl), hosted on
//     gogpu/wgpu by the backend/native package.
//
// Both renditions share the same two fixed lookup tables and the same
// numeric semantics; the CPU path mirrors the shader exactly.
//
// # Gamma direction
//
// The transform raises channels to the 2.2 power, which is the encoding
// direction: it darkens mid-tones rather than linearizing an sRGB signal.
// This matches the shader this pass ships with; see [GammaEncode].
//
// # Coordinate System
//
// Texture coordinates have their origin at the top-left with y increasing
// downward. The vertex-stage tables are co-designed so that interpolated
// coordinates reproduce exactly [0,1] x [0,1] over the visible viewport.
package blitpass
