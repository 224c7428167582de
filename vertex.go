package meshfx

import "fmt"

// Vertex is one entry of a UI mesh.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	Color    RGBA
	// Tangent is an auxiliary slot. GradientFill can write its result here
	// instead of into Color when a shader consumes it separately.
	Tangent Vec4
	UV      Vec2
}

// DefaultNormal is the normal upstream UI tessellation assigns to a flat
// mesh facing the camera.
var DefaultNormal = Vec3{Z: -1}

// lerpVertex interpolates every attribute between a and b. Color is set to
// white so the ramp pass alone decides the color of synthesized vertices.
func lerpVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		Position: a.Position.Lerp(b.Position, t),
		Normal:   a.Normal.Lerp(b.Normal, t),
		Color:    White,
		Tangent:  a.Tangent.Lerp(b.Tangent, t),
		UV:       a.UV.Lerp(b.UV, t),
	}
}

// VertexStream is a mutable mesh: an ordered vertex list plus a triangle
// list of indices into it. Every index is always below VertexCount.
//
// The zero value is an empty stream ready to use. A stream is not safe for
// concurrent use; the caller holds exclusive access while an effect runs.
type VertexStream struct {
	vertices []Vertex
	indices  []uint32
}

// NewVertexStream creates a stream with room for the given number of
// vertices and triangles.
func NewVertexStream(vertexCap, triangleCap int) *VertexStream {
	return &VertexStream{
		vertices: make([]Vertex, 0, vertexCap),
		indices:  make([]uint32, 0, triangleCap*3),
	}
}

// Clear removes all vertices and triangles, keeping the allocated capacity.
func (s *VertexStream) Clear() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

// VertexCount returns the number of vertices.
func (s *VertexStream) VertexCount() int {
	return len(s.vertices)
}

// TriangleCount returns the number of triangles.
func (s *VertexStream) TriangleCount() int {
	return len(s.indices) / 3
}

// AddVert appends a vertex.
func (s *VertexStream) AddVert(v Vertex) {
	s.vertices = append(s.vertices, v)
}

// AddTriangle appends a triangle. Index order defines winding.
// It panics if any index does not refer to an existing vertex.
func (s *VertexStream) AddTriangle(a, b, c int) {
	n := len(s.vertices)
	if a < 0 || a >= n || b < 0 || b >= n || c < 0 || c >= n {
		panic(fmt.Sprintf("meshfx: triangle (%d, %d, %d) out of range for %d vertices", a, b, c, n))
	}
	s.indices = append(s.indices, uint32(a), uint32(b), uint32(c))
}

// AddQuad appends four vertices and the two triangles (0,1,2) and (2,3,0)
// covering them, the layout upstream image and text tessellation emits.
func (s *VertexStream) AddQuad(q [4]Vertex) {
	base := len(s.vertices)
	s.vertices = append(s.vertices, q[:]...)
	s.AddTriangle(base, base+1, base+2)
	s.AddTriangle(base+2, base+3, base)
}

// AddTriangleStream appends every three consecutive vertices as a triangle.
// Trailing vertices that do not form a full triangle are ignored.
func (s *VertexStream) AddTriangleStream(verts []Vertex) {
	for i := 0; i+2 < len(verts); i += 3 {
		base := len(s.vertices)
		s.vertices = append(s.vertices, verts[i], verts[i+1], verts[i+2])
		s.indices = append(s.indices, uint32(base), uint32(base+1), uint32(base+2))
	}
}

// Vertex returns the vertex at index i.
func (s *VertexStream) Vertex(i int) Vertex {
	return s.vertices[i]
}

// SetVertex overwrites the vertex at index i.
func (s *VertexStream) SetVertex(i int, v Vertex) {
	s.vertices[i] = v
}

// Triangle returns the three vertex indices of triangle i.
func (s *VertexStream) Triangle(i int) [3]int {
	j := i * 3
	return [3]int{int(s.indices[j]), int(s.indices[j+1]), int(s.indices[j+2])}
}

// Vertices returns a copy of the vertex list.
func (s *VertexStream) Vertices() []Vertex {
	out := make([]Vertex, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Indices returns a copy of the flat triangle index list.
func (s *VertexStream) Indices() []uint32 {
	out := make([]uint32, len(s.indices))
	copy(out, s.indices)
	return out
}

// Stream appends the triangle-expanded vertex list to dst and returns it:
// three vertices per triangle, in triangle order. Vertices that no triangle
// references are not included.
func (s *VertexStream) Stream(dst []Vertex) []Vertex {
	for _, idx := range s.indices {
		dst = append(dst, s.vertices[idx])
	}
	return dst
}
