package meshfx

// RaycastFilter decides whether a screen point hits a graphic.
type RaycastFilter interface {
	IsRaycastLocationValid(point Vec2, camera any) bool
}

// EmptyGraphic is an invisible graphic that still receives every raycast.
// It produces an empty mesh and tracks its own dirty and enabled state, so
// it can own effects directly.
type EmptyGraphic struct {
	disabled bool
	dirty    bool
}

// NewEmptyGraphic returns an enabled graphic whose mesh needs a first build.
func NewEmptyGraphic() *EmptyGraphic {
	return &EmptyGraphic{dirty: true}
}

// IsRaycastLocationValid implements RaycastFilter. It always returns true.
func (*EmptyGraphic) IsRaycastLocationValid(Vec2, any) bool { return true }

// PopulateMesh fills vs with the graphic's own geometry, which is nothing.
func (*EmptyGraphic) PopulateMesh(vs *VertexStream) {
	vs.Clear()
}

// SetVerticesDirty implements Graphic.
func (g *EmptyGraphic) SetVerticesDirty() { g.dirty = true }

// IsActive implements Graphic.
func (g *EmptyGraphic) IsActive() bool { return !g.disabled }

// SetEnabled enables or disables the graphic and marks it dirty.
func (g *EmptyGraphic) SetEnabled(enabled bool) {
	g.disabled = !enabled
	g.dirty = true
}

// Dirty reports whether the mesh must be rebuilt.
func (g *EmptyGraphic) Dirty() bool { return g.dirty }

// ClearDirty marks the mesh as up to date without rebuilding it.
func (g *EmptyGraphic) ClearDirty() { g.dirty = false }

// Rebuild repopulates vs and runs p over it if the graphic is dirty.
// It reports whether a rebuild happened. p may be nil.
func (g *EmptyGraphic) Rebuild(vs *VertexStream, p *Pipeline) bool {
	if !g.dirty {
		return false
	}
	g.PopulateMesh(vs)
	if p != nil {
		p.Apply(vs)
	}
	g.ClearDirty()
	return true
}
