// Copyright 2026 The gogpu Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native executes the gamma blit pass on a GPU through the
// gogpu/wgpu HAL.
//
// The package owns the GPU-side objects of the pass: the compiled shader
// module, the bind group layout for the source texture and sampler, the
// per-format render pipeline cache, and a default sampler. The Blitter
// encodes a single render pass that clears the target and draws the
// fullscreen triangle with the sample-and-correct fragment shader.
//
// Two entry points exist for obtaining a device:
//
//   - InitDevice opens a standalone Vulkan device for offscreen use.
//   - NewBlitterFromProvider borrows the device and queue from a gogpu
//     windowing context, so the pass can render into surface textures.
//
// The CPU renderer in the parent package produces byte-identical output
// for the same source and sampler state; use it where no GPU is
// available or for verification.
package native
