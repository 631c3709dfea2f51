package blitpass

import (
	"strings"
	"testing"
)

func TestShaderSource(t *testing.T) {
	src := ShaderSource()
	if src == "" {
		t.Fatal("shader source is empty")
	}
	if len(src) < 100 {
		t.Errorf("shader source suspiciously short: %d bytes", len(src))
	}
}

func TestShaderSource_Contract(t *testing.T) {
	src := ShaderSource()

	required := []string{
		"@vertex",
		"@fragment",
		"vs_main",
		"fs_main",
		"@builtin(vertex_index)",
		"@group(0) @binding(0)",
		"@group(0) @binding(1)",
		"texture_2d<f32>",
		"sampler",
		"textureSample",
	}
	for _, want := range required {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

func TestShaderSource_FullscreenTriangle(t *testing.T) {
	src := ShaderSource()

	// The oversized-triangle positions must match the CPU vertex table.
	positions := []string{
		"vec2<f32>(-1.0, -1.0)",
		"vec2<f32>(3.0, -1.0)",
		"vec2<f32>(-1.0, 3.0)",
	}
	for _, want := range positions {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing vertex position %q", want)
		}
	}
}

func TestShaderSource_GammaTransform(t *testing.T) {
	src := ShaderSource()
	if !strings.Contains(src, "pow(") {
		t.Error("shader source missing pow()")
	}
	if !strings.Contains(src, "2.2") {
		t.Error("shader source missing the 2.2 exponent")
	}
}

func TestValidateShaderSource(t *testing.T) {
	if err := ValidateShaderSource(); err != nil {
		t.Errorf("ValidateShaderSource() = %v", err)
	}
}

func TestShaderContractConstants(t *testing.T) {
	if VertexEntryPoint != "vs_main" || FragmentEntryPoint != "fs_main" {
		t.Errorf("entry points = %q/%q", VertexEntryPoint, FragmentEntryPoint)
	}
	if BindGroupIndex != 0 || TextureBinding != 0 || SamplerBinding != 1 {
		t.Errorf("binding contract = group %d, texture %d, sampler %d",
			BindGroupIndex, TextureBinding, SamplerBinding)
	}
	if VertexCount != 3 || InstanceCount != 1 {
		t.Errorf("draw contract = %d vertices, %d instances", VertexCount, InstanceCount)
	}
}
