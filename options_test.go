package meshfx

import "testing"

func TestGradientOptions(t *testing.T) {
	r := threeKeyRamp(0.3, Green)
	g := NewGradientFill(nil,
		WithShape(ShapeDiamond),
		WithBlendMode(BlendAdd),
		WithModifyVertices(false),
		WithModifyTangents(true),
		WithOffset(0.25),
		WithZoom(4),
		WithRamp(r))

	if g.Shape() != ShapeDiamond {
		t.Errorf("Shape() = %v, want Diamond", g.Shape())
	}
	if g.BlendMode() != BlendAdd {
		t.Errorf("BlendMode() = %v, want Add", g.BlendMode())
	}
	if g.ModifyVertices() {
		t.Error("ModifyVertices() = true, want false")
	}
	if !g.ModifyTangents() {
		t.Error("ModifyTangents() = false, want true")
	}
	if g.Offset() != 0.25 || g.Zoom() != 4 {
		t.Errorf("Offset() = %v, Zoom() = %v, want 0.25, 4", g.Offset(), g.Zoom())
	}
	if got := g.Ramp().Evaluate(0.3); got != Green {
		t.Errorf("Ramp().Evaluate(0.3) = %v, want green", got)
	}
}

func TestOptionsClamp(t *testing.T) {
	tests := []struct {
		name       string
		opt        GradientOption
		zoom, offs float32
	}{
		{"zoom low", WithZoom(-1), MinZoom, 0},
		{"zoom high", WithZoom(11), MaxZoom, 0},
		{"offset low", WithOffset(-1.5), 1, MinOffset},
		{"offset high", WithOffset(2), 1, MaxOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGradientFill(nil, tt.opt)
			if g.Zoom() != tt.zoom || g.Offset() != tt.offs {
				t.Errorf("zoom %v offset %v, want %v %v", g.Zoom(), g.Offset(), tt.zoom, tt.offs)
			}
		})
	}
}

func TestFlipOptions(t *testing.T) {
	f := NewMirrorFlip(nil, nil, WithHorizontal(true))
	if !f.Horizontal() || f.Vertical() {
		t.Errorf("Horizontal() = %v, Vertical() = %v", f.Horizontal(), f.Vertical())
	}
	f = NewMirrorFlip(nil, nil, WithHorizontal(true), WithHorizontal(false), WithVertical(true))
	if f.Horizontal() || !f.Vertical() {
		t.Errorf("later options should win: Horizontal() = %v, Vertical() = %v", f.Horizontal(), f.Vertical())
	}
}
