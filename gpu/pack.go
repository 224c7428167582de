package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/meshfx"
)

// maxUint16Vertices is the largest vertex count addressable by 16-bit indices.
const maxUint16Vertices = 1 << 16

// Buffers holds a packed vertex stream.
type Buffers struct {
	// Vertices holds VertexStride bytes per vertex, little endian.
	Vertices []byte

	// Indices holds the triangle list in IndexFormat, little endian.
	Indices []byte

	// IndexFormat is Uint16 when every index fits, otherwise Uint32.
	IndexFormat gputypes.IndexFormat

	// VertexCount and IndexCount are the element counts of each buffer.
	VertexCount int
	IndexCount  int
}

// Pack serializes vs into GPU-ready buffers.
func Pack(vs *meshfx.VertexStream) Buffers {
	n := vs.VertexCount()
	b := Buffers{
		Vertices:    make([]byte, n*VertexStride),
		VertexCount: n,
	}

	for i := 0; i < n; i++ {
		v := vs.Vertex(i)
		buf := b.Vertices[i*VertexStride : (i+1)*VertexStride]
		putFloats(buf[offsetPosition:], v.Position.X, v.Position.Y, v.Position.Z)
		putFloats(buf[offsetNormal:], v.Normal.X, v.Normal.Y, v.Normal.Z)
		putFloats(buf[offsetColor:], v.Color.R, v.Color.G, v.Color.B, v.Color.A)
		putFloats(buf[offsetTangent:], v.Tangent.X, v.Tangent.Y, v.Tangent.Z, v.Tangent.W)
		putFloats(buf[offsetUV:], v.UV.X, v.UV.Y)
	}

	indices := vs.Indices()
	b.IndexCount = len(indices)
	if n <= maxUint16Vertices {
		b.IndexFormat = gputypes.IndexFormatUint16
		b.Indices = make([]byte, len(indices)*2)
		for i, idx := range indices {
			binary.LittleEndian.PutUint16(b.Indices[i*2:], uint16(idx))
		}
		return b
	}

	b.IndexFormat = gputypes.IndexFormatUint32
	b.Indices = make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(b.Indices[i*4:], idx)
	}
	return b
}

func putFloats(buf []byte, vals ...float32) {
	for i, f := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}
