// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package segment

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gogpu/gputypes"
)

// Per-segment GPU instance layout (little-endian):
//
//	offset  0: rect   vec4<f32>  min.x, min.y, max.x, max.y
//	offset 16: flags  u32        bits 0-3 EdgeFlags, bit 4 has-mask
const (
	// InstanceStride is the size in bytes of one encoded segment.
	InstanceStride = 20

	// InstanceMaskBit is set in the flags word of masked segments.
	InstanceMaskBit = 1 << 4
)

// ErrShortBuffer is returned when decoding from fewer than InstanceStride
// bytes.
var ErrShortBuffer = errors.New("segment: buffer shorter than one instance")

// InstanceLayout returns the vertex buffer layout of the instance buffer
// produced by AppendInstances, stepping once per instance.
// It matches the inputs of the shader returned by ShaderSource.
func InstanceLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: InstanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0}, // rect
				{Format: gputypes.VertexFormatUint32, Offset: 16, ShaderLocation: 1},   // flags
			},
		},
	}
}

// AppendInstances appends the GPU encoding of segs to dst and returns the
// extended buffer.
func AppendInstances(dst []byte, segs ...Segment) []byte {
	for i := range segs {
		s := &segs[i]
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(s.Rect.Min.X)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(s.Rect.Min.Y)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(s.Rect.Max.X)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(s.Rect.Max.Y)))
		dst = binary.LittleEndian.AppendUint32(dst, instanceFlags(s))
	}
	return dst
}

// DecodeInstance decodes the first instance in buf.
func DecodeInstance(buf []byte) (Segment, error) {
	if len(buf) < InstanceStride {
		return Segment{}, ErrShortBuffer
	}
	f := func(off int) float64 {
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])))
	}
	flags := binary.LittleEndian.Uint32(buf[16:])
	return Segment{
		Rect:      R(f(0), f(4), f(8), f(12)),
		HasMask:   flags&InstanceMaskBit != 0,
		EdgeFlags: EdgeFlags(flags) & EdgeAll,
	}, nil
}

func instanceFlags(s *Segment) uint32 {
	flags := uint32(s.EdgeFlags & EdgeAll)
	if s.HasMask {
		flags |= InstanceMaskBit
	}
	return flags
}
