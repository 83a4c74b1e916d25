package segment

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/segment.wgsl
var segmentShaderWGSL string

// ShaderSource returns the WGSL source of the reference segment shader.
// Its vertex inputs follow InstanceLayout; entry points are vs_main and
// fs_main, drawn as a 4-vertex triangle strip per instance.
func ShaderSource() string {
	return segmentShaderWGSL
}

// CompileShader compiles the segment shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(segmentShaderWGSL)
	if err != nil {
		Logger().Warn("segment: shader compilation failed", "err", err)
		return nil, fmt.Errorf("segment: compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("segment: compile shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}
