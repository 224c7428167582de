// Package gpu packs meshfx vertex streams into the interleaved buffers a
// GPU renderer uploads, and describes their layout with gputypes.
//
// Packing happens on the CPU; creating buffers and pipelines is left to the
// host renderer.
//
// Usage:
//
//	bufs := gpu.Pack(vs)
//	desc.Vertex.Buffers = []gputypes.VertexBufferLayout{gpu.VertexLayout()}
//	desc.Primitive = gpu.Primitive()
package gpu

import "github.com/gogpu/gputypes"

// VertexStride is the size in bytes of one packed vertex.
const VertexStride = 64

// Attribute byte offsets within a packed vertex.
const (
	offsetPosition = 0
	offsetNormal   = 12
	offsetColor    = 24
	offsetTangent  = 40
	offsetUV       = 56
)

// Shader locations of the packed vertex attributes.
const (
	LocationPosition uint32 = iota
	LocationNormal
	LocationColor
	LocationTangent
	LocationUV
)

// VertexLayout returns the buffer layout matching Pack's vertex data.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: offsetPosition, ShaderLocation: LocationPosition},
			{Format: gputypes.VertexFormatFloat32x3, Offset: offsetNormal, ShaderLocation: LocationNormal},
			{Format: gputypes.VertexFormatFloat32x4, Offset: offsetColor, ShaderLocation: LocationColor},
			{Format: gputypes.VertexFormatFloat32x4, Offset: offsetTangent, ShaderLocation: LocationTangent},
			{Format: gputypes.VertexFormatFloat32x2, Offset: offsetUV, ShaderLocation: LocationUV},
		},
	}
}

// Primitive returns the primitive state for packed streams: an indexed
// triangle list. UI meshes mix windings, so nothing is culled.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}
