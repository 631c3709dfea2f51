package native

import (
	"fmt"

	"github.com/gogpu/naga"
)

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice
// suitable for hal.ShaderSource.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
