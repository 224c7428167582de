package meshfx

import "testing"

func TestMirrorFlip(t *testing.T) {
	rt := RectFunc(func() Rect { return Rect{X: 0, Y: 0, Width: 10, Height: 10} })
	tests := []struct {
		name       string
		horizontal bool
		vertical   bool
		want       Vec3
	}{
		{"none", false, false, V3(1, 2, 3)},
		{"horizontal", true, false, V3(9, 2, 3)},
		{"vertical", false, true, V3(1, 8, 3)},
		{"both", true, true, V3(9, 8, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := &VertexStream{}
			vs.AddVert(Vertex{Position: V3(1, 2, 3), Color: Red, UV: V2(0.1, 0.2)})

			f := NewMirrorFlip(nil, rt, WithHorizontal(tt.horizontal), WithVertical(tt.vertical))
			f.ModifyMesh(vs)

			v := vs.Vertex(0)
			if v.Position != tt.want {
				t.Errorf("position = %v, want %v", v.Position, tt.want)
			}
			if v.Color != Red || v.UV != V2(0.1, 0.2) {
				t.Errorf("flip touched color or uv: %+v", v)
			}
		})
	}
}

func TestMirrorFlipInvolution(t *testing.T) {
	rt := RectFunc(func() Rect { return Rect{X: -3, Y: 7, Width: 21, Height: 4} })
	vs := quadStream(-3, 7, 21, 4, White)
	before := vs.Vertices()
	indices := vs.Indices()

	f := NewMirrorFlip(nil, rt, WithHorizontal(true), WithVertical(true))
	f.ModifyMesh(vs)
	f.ModifyMesh(vs)

	for i, v := range vs.Vertices() {
		if !v.Position.Approx(before[i].Position, testEpsilon) {
			t.Errorf("vertex %d = %v after two flips, want %v", i, v.Position, before[i].Position)
		}
	}
	for i, idx := range vs.Indices() {
		if idx != indices[i] {
			t.Errorf("index %d changed from %d to %d", i, indices[i], idx)
		}
	}
}

func TestMirrorFlipUsesRectNotBounds(t *testing.T) {
	// The mesh occupies only the left half of the rect.
	rt := RectFunc(func() Rect { return Rect{X: 0, Y: 0, Width: 20, Height: 10} })
	vs := quadStream(0, 0, 10, 10, White)

	NewMirrorFlip(nil, rt, WithHorizontal(true)).ModifyMesh(vs)
	b := Bounds(vs.Vertices())
	if b.X != 10 || b.Width != 10 {
		t.Errorf("flipped bounds = %+v, want x 10 width 10", b)
	}
}

func TestMirrorFlipNilRect(t *testing.T) {
	vs := &VertexStream{}
	vs.AddVert(Vertex{Position: V3(1, 2, 0)})

	NewMirrorFlip(nil, nil, WithHorizontal(true)).ModifyMesh(vs)
	if got := vs.Vertex(0).Position; got != V3(-1, 2, 0) {
		t.Errorf("position = %v, want (-1, 2, 0)", got)
	}
}

func TestMirrorFlipInactive(t *testing.T) {
	rt := RectFunc(func() Rect { return Rect{Width: 10, Height: 10} })
	owner := &countingGraphic{inactive: true}
	vs := &VertexStream{}
	vs.AddVert(Vertex{Position: V3(1, 2, 0)})

	NewMirrorFlip(owner, rt, WithHorizontal(true)).ModifyMesh(vs)
	if got := vs.Vertex(0).Position; got != V3(1, 2, 0) {
		t.Errorf("inactive flip moved vertex to %v", got)
	}
}

func TestMirrorFlipSettersMarkDirty(t *testing.T) {
	owner := &countingGraphic{}
	f := NewMirrorFlip(owner, nil)

	f.SetHorizontal(true)
	f.SetVertical(true)
	if owner.dirty != 2 {
		t.Errorf("dirty count = %d, want 2", owner.dirty)
	}
	if !f.Horizontal() || !f.Vertical() {
		t.Errorf("Horizontal() = %v, Vertical() = %v", f.Horizontal(), f.Vertical())
	}
}
