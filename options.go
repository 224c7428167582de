package meshfx

// GradientOption configures a GradientFill during creation.
// Options do not mark the owner dirty.
//
// Example:
//
//	g := meshfx.NewGradientFill(graphic,
//	    meshfx.WithShape(meshfx.ShapeRadial),
//	    meshfx.WithBlendMode(meshfx.BlendOverride),
//	    meshfx.WithZoom(2))
type GradientOption func(*GradientFill)

// WithShape sets the gradient shape.
func WithShape(s Shape) GradientOption {
	return func(g *GradientFill) {
		g.shape = s
	}
}

// WithBlendMode sets the blend mode.
func WithBlendMode(m BlendMode) GradientOption {
	return func(g *GradientFill) {
		g.blend = m
	}
}

// WithModifyVertices turns re-tessellation on or off.
func WithModifyVertices(v bool) GradientOption {
	return func(g *GradientFill) {
		g.modifyVertices = v
	}
}

// WithModifyTangents writes results to the tangent slot instead of color.
func WithModifyTangents(v bool) GradientOption {
	return func(g *GradientFill) {
		g.modifyTangents = v
	}
}

// WithOffset sets the ramp offset, clamped to [-1, 1].
func WithOffset(v float32) GradientOption {
	return func(g *GradientFill) {
		g.offset = clampOffset(v)
	}
}

// WithZoom sets the ramp zoom, clamped to [0.1, 10].
func WithZoom(v float32) GradientOption {
	return func(g *GradientFill) {
		g.zoom = clampZoom(v)
	}
}

// WithRamp sets the color ramp.
func WithRamp(r Ramp) GradientOption {
	return func(g *GradientFill) {
		g.ramp = r
	}
}

// FlipOption configures a MirrorFlip during creation.
type FlipOption func(*MirrorFlip)

// WithHorizontal mirrors X.
func WithHorizontal(v bool) FlipOption {
	return func(f *MirrorFlip) {
		f.horizontal = v
	}
}

// WithVertical mirrors Y.
func WithVertical(v bool) FlipOption {
	return func(f *MirrorFlip) {
		f.vertical = v
	}
}
