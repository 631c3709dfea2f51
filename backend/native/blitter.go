// Copyright 2026 The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/blitpass"
)

// gpuTimeout bounds fence waits on submitted work.
const gpuTimeout = 5 * time.Second

// Blitter owns the GPU objects of the gamma blit pass: the compiled
// shader module, the source bind group layout, the pipeline layout, a
// default sampler, and a per-target-format pipeline cache.
//
// A Blitter is bound to one device/queue pair for its lifetime. Blit and
// Render serialize command encoding internally; the Blitter is safe for
// concurrent use.
type Blitter struct {
	device hal.Device
	queue  hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout

	// sampler is the pass default: clamp-to-edge, nearest. Callers can
	// bind their own via CreateSourceBindGroup.
	sampler hal.Sampler

	mu sync.Mutex

	// pipelines caches one render pipeline per target format. The
	// pipelines differ only in the color target format; shader, layout,
	// and fixed-function state are shared.
	pipelines map[gputypes.TextureFormat]hal.RenderPipeline
}

// NewBlitter compiles the pass shader and creates the shared GPU objects
// on the given device. Pipelines are created lazily per target format.
func NewBlitter(device hal.Device, queue hal.Queue) (*Blitter, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	if queue == nil {
		return nil, ErrNilHALQueue
	}

	b := &Blitter{
		device:    device,
		queue:     queue,
		pipelines: make(map[gputypes.TextureFormat]hal.RenderPipeline),
	}
	if err := b.createResources(); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}

// createResources compiles the shader and creates the layouts and the
// default sampler.
func (b *Blitter) createResources() error {
	spirv, err := CompileShaderToSPIRV(blitpass.ShaderSource())
	if err != nil {
		return fmt.Errorf("compile blit_gamma shader: %w", err)
	}

	shader, err := b.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "blit_gamma_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create blit_gamma shader module: %w", err)
	}
	b.shader = shader

	// Bind group layout:
	//   Binding 0: source texture (texture_2d<f32>, fragment)
	//   Binding 1: sampler (filtering, fragment)
	bindLayout, err := b.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "blit_gamma_bind_layout",
		Entries: sourceBindGroupLayoutEntries(),
	})
	if err != nil {
		return fmt.Errorf("create blit_gamma bind group layout: %w", err)
	}
	b.bindLayout = bindLayout

	pipeLayout, err := b.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "blit_gamma_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{b.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create blit_gamma pipeline layout: %w", err)
	}
	b.pipeLayout = pipeLayout

	sampler, err := b.device.CreateSampler(defaultSamplerDescriptor())
	if err != nil {
		return fmt.Errorf("create blit_gamma sampler: %w", err)
	}
	b.sampler = sampler

	return nil
}

// sourceBindGroupLayoutEntries returns the layout entries of the pass's
// source bind group. Both bindings have fragment-only visibility.
func sourceBindGroupLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    blitpass.TextureBinding,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    blitpass.SamplerBinding,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// defaultSamplerDescriptor matches the descriptor defaults the CPU
// reference sampler mirrors: clamp-to-edge addressing, nearest filtering.
func defaultSamplerDescriptor() *hal.SamplerDescriptor {
	return &hal.SamplerDescriptor{
		Label:        "blit_gamma_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	}
}

// pipelineFor returns the render pipeline for the given target format,
// creating and caching it on first use.
func (b *Blitter) pipelineFor(format gputypes.TextureFormat) (hal.RenderPipeline, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.pipelines[format]; ok {
		return p, nil
	}

	pipeline, err := b.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "blit_gamma_pipeline",
		Layout: b.pipeLayout,
		Vertex: hal.VertexState{
			Module:     b.shader,
			EntryPoint: blitpass.VertexEntryPoint,
			// No vertex buffers: positions come from the vertex index.
		},
		Fragment: &hal.FragmentState{
			Module:     b.shader,
			EntryPoint: blitpass.FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format: format,
					// Blend nil: source replaces destination.
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create blit_gamma pipeline for format %v: %w", format, err)
	}
	b.pipelines[format] = pipeline
	blitpass.Logger().Debug("native: blit pipeline created", slog.Int("format", int(format)))
	return pipeline, nil
}

// CreateSourceBindGroup builds the bind group for a source texture view.
// If sampler is nil, the blitter's default sampler (clamp-to-edge,
// nearest) is bound. The caller owns the returned bind group and must
// destroy it with DestroyBindGroup.
func (b *Blitter) CreateSourceBindGroup(view hal.TextureView, sampler hal.Sampler) (hal.BindGroup, error) {
	if view == nil {
		return nil, ErrNilTarget
	}
	if sampler == nil {
		sampler = b.sampler
	}

	bg, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "blit_gamma_bind",
		Layout: b.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: blitpass.TextureBinding, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: blitpass.SamplerBinding, Resource: gputypes.SamplerBinding{
				Sampler: sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create blit_gamma bind group: %w", err)
	}
	return bg, nil
}

// DestroyBindGroup releases a bind group created by CreateSourceBindGroup.
func (b *Blitter) DestroyBindGroup(bg hal.BindGroup) {
	if bg != nil {
		b.device.DestroyBindGroup(bg)
	}
}

// UploadSource uploads an 8-bit RGBA image as a sampleable texture on
// the blitter's device. The caller owns the returned texture and view;
// release them with DestroySource.
func (b *Blitter) UploadSource(img *image.RGBA) (hal.Texture, hal.TextureView, error) {
	return CreateSourceTexture(b.device, b.queue, img)
}

// DestroySource releases a texture and view returned by UploadSource.
func (b *Blitter) DestroySource(tex hal.Texture, view hal.TextureView) {
	if view != nil {
		b.device.DestroyTextureView(view)
	}
	if tex != nil {
		b.device.DestroyTexture(tex)
	}
}

// Blit encodes and submits the pass against the given target view: one
// render pass that clears the target to opaque black and draws the three
// fullscreen vertices with the source bind group. Blocks until the GPU
// signals completion.
func (b *Blitter) Blit(target hal.TextureView, format gputypes.TextureFormat, bindGroup hal.BindGroup) error {
	if target == nil {
		return ErrNilTarget
	}

	pipeline, err := b.pipelineFor(format)
	if err != nil {
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blit_gamma_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blit_gamma"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "blit_gamma_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	rp.SetPipeline(pipeline)
	rp.SetBindGroup(blitpass.BindGroupIndex, bindGroup, nil)
	rp.Draw(blitpass.VertexCount, blitpass.InstanceCount, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	return b.submitAndWait(cmdBuf)
}

// Render runs the whole pass offscreen: upload src, blit into an
// RGBA8Unorm target of the given dimensions, and read the result back.
// This is the GPU counterpart of Renderer.Render in the parent package
// and is mainly useful for verification and headless tooling.
func (b *Blitter) Render(src *image.RGBA, width, height int) (*image.RGBA, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("native: invalid target size %dx%d", width, height)
	}

	srcTex, srcView, err := CreateSourceTexture(b.device, b.queue, src)
	if err != nil {
		return nil, err
	}
	defer func() {
		b.device.DestroyTextureView(srcView)
		b.device.DestroyTexture(srcTex)
	}()

	w, h := uint32(width), uint32(height) //nolint:gosec // dimensions validated above

	targetTex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "blit_gamma_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create target texture: %w", err)
	}
	defer b.device.DestroyTexture(targetTex)

	targetView, err := b.device.CreateTextureView(targetTex, &hal.TextureViewDescriptor{
		Label:         "blit_gamma_target_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("create target view: %w", err)
	}
	defer b.device.DestroyTextureView(targetView)

	bindGroup, err := b.CreateSourceBindGroup(srcView, nil)
	if err != nil {
		return nil, err
	}
	defer b.DestroyBindGroup(bindGroup)

	if err := b.Blit(targetView, gputypes.TextureFormatRGBA8Unorm, bindGroup); err != nil {
		return nil, err
	}

	return b.readback(targetTex, w, h)
}

// readback copies a rendered RGBA8 texture into CPU memory.
func (b *Blitter) readback(tex hal.Texture, w, h uint32) (*image.RGBA, error) {
	// WebGPU (and DX12) requires BytesPerRow aligned to 256 bytes.
	bytesPerRow := w * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "blit_gamma_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer b.device.DestroyBuffer(stagingBuf)

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "blit_gamma_readback_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create readback encoder: %w", err)
	}
	if err := encoder.BeginEncoding("blit_gamma_readback"); err != nil {
		return nil, fmt.Errorf("begin readback encoding: %w", err)
	}

	// The render pass left the texture in render-attachment layout;
	// the copy needs transfer-source.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	encoder.CopyTextureToBuffer(tex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end readback encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	if err := b.submitAndWait(cmdBuf); err != nil {
		return nil, err
	}

	readbackData := make([]byte, stagingSize)
	if err := b.queue.ReadBuffer(stagingBuf, 0, readbackData); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	for row := uint32(0); row < h; row++ {
		srcOff := int(row) * int(alignedBytesPerRow)
		dstOff := int(row) * img.Stride
		copy(img.Pix[dstOff:dstOff+int(bytesPerRow)], readbackData[srcOff:srcOff+int(bytesPerRow)])
	}
	return img, nil
}

// submitAndWait submits a command buffer and blocks on its fence.
func (b *Blitter) submitAndWait(cmdBuf hal.CommandBuffer) error {
	fence, err := b.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer b.device.DestroyFence(fence)

	if err := b.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := b.device.Wait(fence, 1, gpuTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// Destroy releases all GPU resources held by the blitter, in reverse
// creation order. Safe to call multiple times.
func (b *Blitter) Destroy() {
	if b.device == nil {
		return
	}
	b.mu.Lock()
	for format, p := range b.pipelines {
		b.device.DestroyRenderPipeline(p)
		delete(b.pipelines, format)
	}
	b.mu.Unlock()

	if b.sampler != nil {
		b.device.DestroySampler(b.sampler)
		b.sampler = nil
	}
	if b.pipeLayout != nil {
		b.device.DestroyPipelineLayout(b.pipeLayout)
		b.pipeLayout = nil
	}
	if b.bindLayout != nil {
		b.device.DestroyBindGroupLayout(b.bindLayout)
		b.bindLayout = nil
	}
	if b.shader != nil {
		b.device.DestroyShaderModule(b.shader)
		b.shader = nil
	}
}
