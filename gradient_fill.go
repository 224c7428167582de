package meshfx

// Zoom and offset limits. Setters clamp into these ranges.
const (
	MinZoom   = 0.1
	MaxZoom   = 10
	MinOffset = -1
	MaxOffset = 1
)

// GradientFill colors a mesh with a Ramp sampled by vertex position.
//
// Per call it computes the mesh bounds, optionally re-tessellates the mesh
// so ramp keys fall on vertices, then blends the ramp color at every vertex
// into the vertex color (or the tangent slot). Linear shapes split the
// incoming triangles at each ramp key inside the visible window; Diamond
// and Radial replace the topology with a fan around their center.
//
// Every setter marks the owner's vertices dirty.
type GradientFill struct {
	effectBase

	shape          Shape
	blend          BlendMode
	modifyVertices bool
	modifyTangents bool
	offset         float32
	zoom           float32
	ramp           Ramp
}

// NewGradientFill creates a gradient attached to owner. owner may be nil.
//
// Defaults: horizontal shape, multiply blend, re-tessellation on, color
// output, zero offset, unit zoom and the black-to-white DefaultRamp.
func NewGradientFill(owner Graphic, opts ...GradientOption) *GradientFill {
	g := &GradientFill{
		effectBase:     effectBase{owner: owner},
		shape:          ShapeHorizontal,
		blend:          BlendMultiply,
		modifyVertices: true,
		zoom:           1,
		ramp:           DefaultRamp(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Shape returns the gradient shape.
func (g *GradientFill) Shape() Shape { return g.shape }

// SetShape sets the gradient shape.
func (g *GradientFill) SetShape(s Shape) {
	g.shape = s
	g.markDirty()
}

// BlendMode returns the blend mode.
func (g *GradientFill) BlendMode() BlendMode { return g.blend }

// SetBlendMode sets how the ramp combines with existing vertex colors.
func (g *GradientFill) SetBlendMode(m BlendMode) {
	g.blend = m
	g.markDirty()
}

// ModifyVertices reports whether the mesh is re-tessellated.
func (g *GradientFill) ModifyVertices() bool { return g.modifyVertices }

// SetModifyVertices turns re-tessellation on or off. Turn it off for
// meshes that are already dense, such as text.
func (g *GradientFill) SetModifyVertices(v bool) {
	g.modifyVertices = v
	g.markDirty()
}

// ModifyTangents reports whether results go to the tangent slot.
func (g *GradientFill) ModifyTangents() bool { return g.modifyTangents }

// SetModifyTangents selects the tangent slot instead of the vertex color
// as the output channel.
func (g *GradientFill) SetModifyTangents(v bool) {
	g.modifyTangents = v
	g.markDirty()
}

// Offset returns the ramp offset.
func (g *GradientFill) Offset() float32 { return g.offset }

// SetOffset slides the ramp window. The value is clamped to [-1, 1].
func (g *GradientFill) SetOffset(v float32) {
	g.offset = clampOffset(v)
	g.markDirty()
}

// Zoom returns the ramp zoom.
func (g *GradientFill) Zoom() float32 { return g.zoom }

// SetZoom magnifies the ramp around its center. The value is clamped to
// [0.1, 10].
func (g *GradientFill) SetZoom(v float32) {
	g.zoom = clampZoom(v)
	g.markDirty()
}

// Ramp returns the color ramp.
func (g *GradientFill) Ramp() Ramp { return g.ramp }

// SetRamp replaces the color ramp.
func (g *GradientFill) SetRamp(r Ramp) {
	g.ramp = r
	g.markDirty()
}

// ModifyMesh implements MeshEffect.
func (g *GradientFill) ModifyMesh(vs *VertexStream) {
	if !g.IsActive() || vs.VertexCount() == 0 {
		return
	}

	tris := vs.Stream(nil)
	src := tris
	if len(src) == 0 {
		src = vs.Vertices()
	}
	bounds := Bounds(src)
	z := src[0].Position.Z
	w := window{zoom: g.zoom, offset: g.offset}

	if g.modifyVertices && len(tris) >= 3 {
		g.retessellate(vs, tris, bounds, z, w)
	}

	s := newSampler(g.shape, bounds, z, w)
	for i := range vs.vertices {
		v := &vs.vertices[i]
		c := g.blend.Blend(v.Color, g.ramp.Evaluate(s.sample(v)))
		if g.modifyTangents {
			v.Tangent = c.Vec4()
		} else {
			v.Color = c
		}
	}
}

func (g *GradientFill) retessellate(vs *VertexStream, tris []Vertex, bounds Rect, z float32, w window) {
	log := Logger()
	switch g.shape {
	case ShapeHorizontal, ShapeVertical:
		ax := axisOf(g.shape)
		stops := findStops(g.ramp, ax, bounds, w)
		if len(stops) == 0 {
			return
		}
		n := splitAtStops(vs, tris, ax, stops)
		log.Debug("meshfx: split at gradient stops",
			"shape", g.shape,
			"stops", len(stops),
			"split", n,
			"triangles", vs.TriangleCount())
	case ShapeDiamond:
		buildDiamondFan(vs, tris, diamondCenter(bounds, z))
		log.Debug("meshfx: diamond fan", "rim", len(tris))
	case ShapeRadial:
		buildRadialFan(vs, bounds, z, tris[0].Normal)
		log.Debug("meshfx: radial fan", "segments", radialSegments)
	}
}

func clampZoom(v float32) float32 {
	return min(max(v, MinZoom), MaxZoom)
}

func clampOffset(v float32) float32 {
	return min(max(v, MinOffset), MaxOffset)
}
