package blitpass

import (
	_ "embed"
	"fmt"
	"strings"
)

// Embedded WGSL shader source, compiled into the binary at build time.
//
//go:embed shaders/blit_gamma.wgsl
var blitGammaShaderSource string

// Entry points of the pass's shader module. The host wires these names
// into the render pipeline descriptor.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Binding contract of the pass. Hosts must bind a 2D float-sampleable
// texture view at TextureBinding and a filtering sampler at
// SamplerBinding, both in group BindGroupIndex with fragment visibility.
const (
	BindGroupIndex uint32 = 0
	TextureBinding uint32 = 0
	SamplerBinding uint32 = 1
)

// Draw contract: a single non-instanced draw of the three fullscreen
// vertices, with no vertex buffers bound.
const (
	VertexCount   uint32 = 3
	InstanceCount uint32 = 1
)

// ShaderSource returns the WGSL source of the pass's shader module.
// The same source backs both entry points.
func ShaderSource() string {
	return blitGammaShaderSource
}

// ValidateShaderSource checks that the embedded WGSL source is present
// and still carries the entry points and bindings the host contract
// depends on. It guards against the source and the Go-side constants
// drifting apart; it is not a WGSL parser.
func ValidateShaderSource() error {
	src := blitGammaShaderSource
	if src == "" {
		return fmt.Errorf("blitpass: embedded shader source is empty")
	}

	required := []string{
		"fn " + VertexEntryPoint,
		"fn " + FragmentEntryPoint,
		"@group(0) @binding(0)",
		"@group(0) @binding(1)",
		"texture_2d<f32>",
		"sampler",
		"textureSample",
	}
	for _, want := range required {
		if !strings.Contains(src, want) {
			return fmt.Errorf("blitpass: shader source missing %q", want)
		}
	}
	return nil
}
