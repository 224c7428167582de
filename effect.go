package meshfx

// MeshEffect is a post-processing stage over a tessellated UI mesh.
//
// The host calls ModifyMesh once per redraw with exclusive access to the
// stream. An effect may rewrite vertex attributes and replace the triangle
// list; it keeps no state between calls other than its configuration.
type MeshEffect interface {
	// IsActive reports whether the effect and its owner are enabled.
	IsActive() bool

	// ModifyMesh rewrites vs in place.
	ModifyMesh(vs *VertexStream)
}

// Graphic is the renderable that owns an effect and caches its mesh.
type Graphic interface {
	// SetVerticesDirty invalidates the cached mesh so the host rebuilds it
	// and reruns its effects on the next redraw.
	SetVerticesDirty()

	// IsActive reports whether the graphic is enabled.
	IsActive() bool
}

// RectTransform supplies the local-space rectangle of a graphic.
type RectTransform interface {
	Rect() Rect
}

// RectFunc adapts a function to the RectTransform interface.
type RectFunc func() Rect

// Rect implements RectTransform.
func (f RectFunc) Rect() Rect { return f() }

// effectBase carries the owner link and enabled flag shared by all effects.
// A nil owner is treated as an always-active graphic that ignores dirty
// notifications.
type effectBase struct {
	owner    Graphic
	disabled bool
}

// IsActive reports whether the effect is enabled and its owner is active.
func (e *effectBase) IsActive() bool {
	if e.disabled {
		return false
	}
	return e.owner == nil || e.owner.IsActive()
}

// Enabled reports whether the effect itself is enabled.
func (e *effectBase) Enabled() bool {
	return !e.disabled
}

// SetEnabled enables or disables the effect and marks the owner dirty.
func (e *effectBase) SetEnabled(enabled bool) {
	e.disabled = !enabled
	e.markDirty()
}

// Owner returns the graphic the effect is attached to.
func (e *effectBase) Owner() Graphic {
	return e.owner
}

func (e *effectBase) markDirty() {
	if e.owner != nil {
		e.owner.SetVerticesDirty()
	}
}

// leader is implemented by effects that must run before all others.
type leader interface {
	leadsPipeline()
}

// Pipeline runs a graphic's effects in a fixed order.
//
// Effects that reposition vertices without reading colors (MirrorFlip) are
// kept ahead of all other effects; everything else runs in the order added.
type Pipeline struct {
	effects []MeshEffect
	leading int
}

// NewPipeline creates a pipeline from the given effects.
func NewPipeline(effects ...MeshEffect) *Pipeline {
	p := &Pipeline{}
	for _, e := range effects {
		p.Add(e)
	}
	return p
}

// Add appends an effect to the pipeline. Nil effects are ignored.
func (p *Pipeline) Add(e MeshEffect) {
	if e == nil {
		return
	}
	if _, ok := e.(leader); !ok {
		p.effects = append(p.effects, e)
		return
	}
	p.effects = append(p.effects, nil)
	copy(p.effects[p.leading+1:], p.effects[p.leading:])
	p.effects[p.leading] = e
	p.leading++
}

// Effects returns the effects in execution order.
func (p *Pipeline) Effects() []MeshEffect {
	out := make([]MeshEffect, len(p.effects))
	copy(out, p.effects)
	return out
}

// Len returns the number of effects.
func (p *Pipeline) Len() int {
	return len(p.effects)
}

// Apply runs every active effect on vs, in order.
func (p *Pipeline) Apply(vs *VertexStream) {
	log := Logger()
	for i, e := range p.effects {
		if !e.IsActive() {
			log.Debug("meshfx: skipping inactive effect", "index", i)
			continue
		}
		e.ModifyMesh(vs)
		log.Debug("meshfx: effect applied",
			"index", i,
			"vertices", vs.VertexCount(),
			"triangles", vs.TriangleCount())
	}
}
