// Copyright 2026 The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blitpass

import (
	"log/slog"

	"github.com/gogpu/blitpass/internal/parallel"
)

// rowsPerBand is the scanline band height handed to each worker task.
// Small enough for load balancing, large enough to amortize scheduling.
const rowsPerBand = 32

// Renderer executes the pass on the CPU: it rasterizes the fullscreen
// triangle over a pixmap, interpolates texture coordinates, and runs the
// sample-and-correct fragment stage for every covered pixel.
//
// Renderer matches the GPU semantics of backend/native pixel for pixel
// (modulo float rounding) and serves as the reference implementation.
//
// A Renderer owns a worker pool; call Close when done with it.
// Render is safe for concurrent use on distinct targets.
type Renderer struct {
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer with one worker per CPU.
func NewRenderer() *Renderer {
	return NewRendererWithWorkers(0)
}

// NewRendererWithWorkers creates a renderer with the given worker count.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewRendererWithWorkers(workers int) *Renderer {
	pool := parallel.NewWorkerPool(workers)
	Logger().Debug("blitpass: renderer created", slog.Int("workers", pool.Workers()))
	return &Renderer{pool: pool}
}

// Close shuts down the renderer's worker pool. Renders after Close fail
// with ErrRendererClosed. Close is safe to call multiple times.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render executes the pass: every pixel of dst covered by the fullscreen
// triangle (all of them, by construction) is overwritten with the
// gamma-transformed sample of tex. The output is deterministic: identical
// inputs produce byte-identical pixmaps regardless of worker count.
//
// dst and tex must not be mutated while Render is in flight.
func (r *Renderer) Render(dst *Pixmap, tex *Texture, s Sampler) error {
	if dst == nil {
		return ErrNilTarget
	}
	if tex == nil {
		return ErrNilTexture
	}
	if !r.pool.IsRunning() {
		return ErrRendererClosed
	}

	tri := newScreenTriangle(FullscreenVertex(0), FullscreenVertex(1), FullscreenVertex(2))

	height := dst.height
	if height <= rowsPerBand {
		r.renderRows(dst, tex, s, tri, 0, height)
		return nil
	}

	numBands := (height + rowsPerBand - 1) / rowsPerBand
	work := make([]func(), 0, numBands)
	for band := 0; band < numBands; band++ {
		y0 := band * rowsPerBand
		y1 := y0 + rowsPerBand
		if y1 > height {
			y1 = height
		}
		work = append(work, func() {
			r.renderRows(dst, tex, s, tri, y0, y1)
		})
	}
	r.pool.ExecuteAll(work)
	return nil
}

// renderRows rasterizes scanlines [y0, y1) of dst. Rows are disjoint
// between tasks, so no synchronization is needed on the pixel buffer.
func (r *Renderer) renderRows(dst *Pixmap, tex *Texture, s Sampler, tri screenTriangle, y0, y1 int) {
	if s.MagFilter == FilterNearest && tex.src != nil {
		r.renderRowsLUT(dst, tex, s, tri, y0, y1)
		return
	}

	w := dst.width
	h := dst.height
	for y := y0; y < y1; y++ {
		// Pixel centers, mapped through the viewport transform: NDC y
		// points up while pixmap rows grow down, hence the flip.
		ndcY := 1.0 - (2.0*float32(y)+1.0)/float32(h)
		for x := 0; x < w; x++ {
			ndcX := (2.0*float32(x)+1.0)/float32(w) - 1.0

			w0, w1, w2, inside := tri.barycentric(Vec2{X: ndcX, Y: ndcY})
			if !inside {
				// Not covered; the pixel keeps its previous contents.
				continue
			}

			uv := tri.interpolate(w0, w1, w2)
			dst.SetPixel(x, y, SampleAndCorrect(tex, s, uv))
		}
	}
}

// renderRowsLUT is the 8-bit fast path: with nearest filtering the sampled
// texel reaches the fragment stage unblended, so the whole transform
// collapses to one table lookup per channel on the source image bytes.
func (r *Renderer) renderRowsLUT(dst *Pixmap, tex *Texture, s Sampler, tri screenTriangle, y0, y1 int) {
	img := tex.src
	bounds := img.Bounds()
	tw := tex.width
	th := tex.height

	w := dst.width
	h := dst.height
	for y := y0; y < y1; y++ {
		ndcY := 1.0 - (2.0*float32(y)+1.0)/float32(h)
		for x := 0; x < w; x++ {
			ndcX := (2.0*float32(x)+1.0)/float32(w) - 1.0

			w0, w1, w2, inside := tri.barycentric(Vec2{X: ndcX, Y: ndcY})
			if !inside {
				continue
			}

			uv := tri.interpolate(w0, w1, w2)
			tx := resolveTexel(floorToInt(uv.X*float32(tw)), tw, s.AddressModeU)
			ty := resolveTexel(floorToInt(uv.Y*float32(th)), th, s.AddressModeV)

			pi := img.PixOffset(bounds.Min.X+tx, bounds.Min.Y+ty)
			dst.SetPixelU8(x, y, ColorU8{
				R: gammaEncodeU8LUT[img.Pix[pi+0]],
				G: gammaEncodeU8LUT[img.Pix[pi+1]],
				B: gammaEncodeU8LUT[img.Pix[pi+2]],
				A: img.Pix[pi+3], // alpha passes through
			})
		}
	}
}

// screenTriangle is the rasterizer's view of the fullscreen triangle:
// NDC positions, per-vertex attributes, and the precomputed inverse of
// the doubled triangle area used for barycentric normalization.
type screenTriangle struct {
	p0, p1, p2 Vec2
	t0, t1, t2 Vec2
	invArea    float32
}

func newScreenTriangle(v0, v1, v2 VertexOutput) screenTriangle {
	p0 := Vec2{X: v0.Position.X, Y: v0.Position.Y}
	p1 := Vec2{X: v1.Position.X, Y: v1.Position.Y}
	p2 := Vec2{X: v2.Position.X, Y: v2.Position.Y}
	return screenTriangle{
		p0: p0, p1: p1, p2: p2,
		t0: v0.TexCoords, t1: v1.TexCoords, t2: v2.TexCoords,
		invArea: 1.0 / edgeFunc(p0, p1, p2),
	}
}

// edgeFunc is the signed doubled area of triangle (a, b, p); positive
// when p lies to the left of the edge a->b in counter-clockwise winding.
func edgeFunc(a, b, p Vec2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// barycentric returns the normalized barycentric weights of p, and
// whether p is inside the triangle (edges inclusive).
func (t screenTriangle) barycentric(p Vec2) (w0, w1, w2 float32, inside bool) {
	w0 = edgeFunc(t.p1, t.p2, p) * t.invArea
	w1 = edgeFunc(t.p2, t.p0, p) * t.invArea
	w2 = edgeFunc(t.p0, t.p1, p) * t.invArea
	inside = w0 >= 0 && w1 >= 0 && w2 >= 0
	return
}

// interpolate computes the texture coordinate at the given barycentric
// weights, the affine interpolation a hardware rasterizer performs for a
// w=1 triangle.
func (t screenTriangle) interpolate(w0, w1, w2 float32) Vec2 {
	return Vec2{
		X: w0*t.t0.X + w1*t.t1.X + w2*t.t2.X,
		Y: w0*t.t0.Y + w1*t.t1.Y + w2*t.t2.Y,
	}
}
