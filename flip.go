package meshfx

// MirrorFlip mirrors a mesh across the center lines of its graphic's
// rectangle. It leaves topology, colors and UVs alone, and applying it
// twice restores the original positions.
//
// The mirror center comes from the RectTransform, not from the mesh
// bounds. A nil RectTransform mirrors across the origin.
type MirrorFlip struct {
	effectBase

	rt         RectTransform
	horizontal bool
	vertical   bool
}

// NewMirrorFlip creates a flip attached to owner, mirroring across the
// center of rt.
func NewMirrorFlip(owner Graphic, rt RectTransform, opts ...FlipOption) *MirrorFlip {
	f := &MirrorFlip{
		effectBase: effectBase{owner: owner},
		rt:         rt,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Horizontal reports whether X is mirrored.
func (f *MirrorFlip) Horizontal() bool { return f.horizontal }

// SetHorizontal turns horizontal mirroring on or off.
func (f *MirrorFlip) SetHorizontal(v bool) {
	f.horizontal = v
	f.markDirty()
}

// Vertical reports whether Y is mirrored.
func (f *MirrorFlip) Vertical() bool { return f.vertical }

// SetVertical turns vertical mirroring on or off.
func (f *MirrorFlip) SetVertical(v bool) {
	f.vertical = v
	f.markDirty()
}

// ModifyMesh implements MeshEffect.
func (f *MirrorFlip) ModifyMesh(vs *VertexStream) {
	if !f.IsActive() || (!f.horizontal && !f.vertical) {
		return
	}

	var c Vec2
	if f.rt != nil {
		c = f.rt.Rect().Center()
	}
	for i := range vs.vertices {
		p := &vs.vertices[i].Position
		if f.horizontal {
			p.X = 2*c.X - p.X
		}
		if f.vertical {
			p.Y = 2*c.Y - p.Y
		}
	}
}

func (*MirrorFlip) leadsPipeline() {}
