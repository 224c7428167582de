package meshfx

import "github.com/chewxy/math32"

const testEpsilon = 1e-4

// countingGraphic records dirty notifications.
type countingGraphic struct {
	dirty    int
	inactive bool
}

func (g *countingGraphic) SetVerticesDirty() { g.dirty++ }
func (g *countingGraphic) IsActive() bool    { return !g.inactive }

// testQuad returns the corners of an axis-aligned quad, starting at the
// bottom-left and going through top-left, with UVs spanning [0, 1]².
func testQuad(x, y, w, h float32, c RGBA) [4]Vertex {
	corner := func(px, py, u, v float32) Vertex {
		return Vertex{
			Position: V3(px, py, 0),
			Normal:   DefaultNormal,
			Color:    c,
			UV:       V2(u, v),
		}
	}
	return [4]Vertex{
		corner(x, y, 0, 0),
		corner(x, y+h, 0, 1),
		corner(x+w, y+h, 1, 1),
		corner(x+w, y, 1, 0),
	}
}

// threeKeyRamp is black at 0, c at t and white at 1, fully opaque.
func threeKeyRamp(t float32, c RGBA) Ramp {
	return NewRamp(
		[]ColorKey{{Time: 0, Color: Black}, {Time: t, Color: c}, {Time: 1, Color: White}},
		[]AlphaKey{{Time: 0, Alpha: 1}, {Time: 1, Alpha: 1}},
	)
}

func colorsApprox(a, b RGBA, eps float32) bool {
	return math32.Abs(a.R-b.R) < eps &&
		math32.Abs(a.G-b.G) < eps &&
		math32.Abs(a.B-b.B) < eps &&
		math32.Abs(a.A-b.A) < eps
}

// signedArea returns twice the signed area of triangle i of vs.
func signedArea(vs *VertexStream, i int) float32 {
	t := vs.Triangle(i)
	a := vs.Vertex(t[0]).Position
	b := vs.Vertex(t[1]).Position
	c := vs.Vertex(t[2]).Position
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// totalArea sums the signed triangle areas of vs.
func totalArea(vs *VertexStream) float32 {
	var sum float32
	for i := 0; i < vs.TriangleCount(); i++ {
		sum += signedArea(vs, i) / 2
	}
	return sum
}

// onSegment reports whether p lies on the segment a-b.
func onSegment(p, a, b Vec2, eps float32) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	cross := ab.X*ap.Y - ab.Y*ap.X
	if math32.Abs(cross) > eps*ab.Length() {
		return false
	}
	dot := ab.X*ap.X + ab.Y*ap.Y
	return dot >= -eps && dot <= ab.X*ab.X+ab.Y*ab.Y+eps
}
