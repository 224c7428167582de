package meshfx

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestBuildRadialFan(t *testing.T) {
	vs := &VertexStream{}
	vs.AddQuad(testQuad(0, 0, 1, 1, Red))

	bounds := Rect{X: -50, Y: -50, Width: 100, Height: 100}
	buildRadialFan(vs, bounds, 2, DefaultNormal)

	if vs.VertexCount() != radialSegments+1 {
		t.Fatalf("VertexCount() = %d, want %d", vs.VertexCount(), radialSegments+1)
	}
	if vs.TriangleCount() != radialSegments {
		t.Fatalf("TriangleCount() = %d, want %d", vs.TriangleCount(), radialSegments)
	}

	center := vs.Vertex(radialSegments)
	if center.Position != V3(0, 0, 2) || center.UV != fanCenterUV || center.Color != White {
		t.Errorf("center vertex = %+v", center)
	}

	rim0 := vs.Vertex(0)
	if !rim0.Position.Approx(V3(50, 0, 2), testEpsilon) {
		t.Errorf("rim 0 position = %v, want (50, 0, 2)", rim0.Position)
	}
	if !rim0.UV.Approx(V2(1, 0.5), testEpsilon) {
		t.Errorf("rim 0 uv = %v, want (1, 0.5)", rim0.UV)
	}
	quarter := vs.Vertex(radialSegments / 4)
	if !quarter.Position.Approx(V3(0, 50, 2), 1e-3) {
		t.Errorf("rim %d position = %v, want (0, 50, 2)", radialSegments/4, quarter.Position)
	}

	for i := 0; i < vs.TriangleCount(); i++ {
		tri := vs.Triangle(i)
		if tri[2] != radialSegments {
			t.Errorf("triangle %d = %v does not end at the center", i, tri)
		}
		if signedArea(vs, i) <= 0 {
			t.Errorf("triangle %d has inconsistent winding", i)
		}
	}
	if got := vs.Triangle(radialSegments - 1); got != [3]int{radialSegments - 1, 0, radialSegments} {
		t.Errorf("closing triangle = %v", got)
	}

	// A regular 64-gon inscribed in a circle of radius 50.
	want := 0.5 * radialSegments * 2500 * math32.Sin(2*math32.Pi/radialSegments)
	if got := totalArea(vs); math32.Abs(got-want) > 0.5 {
		t.Errorf("fan area = %v, want %v", got, want)
	}
}

func TestBuildRadialFanOffCenter(t *testing.T) {
	vs := &VertexStream{}
	buildRadialFan(vs, Rect{X: 0, Y: 10, Width: 20, Height: 20}, 0, DefaultNormal)

	if got := vs.Vertex(radialSegments).Position; got != V3(10, 20, 0) {
		t.Errorf("center = %v, want (10, 20, 0)", got)
	}
	for i := 0; i < radialSegments; i++ {
		p := vs.Vertex(i).Position
		if d := p.Distance(V3(10, 20, 0)); math32.Abs(d-10) > 1e-3 {
			t.Errorf("rim %d at distance %v from center, want 10", i, d)
		}
	}
}

func TestBuildDiamondFan(t *testing.T) {
	src := &VertexStream{}
	src.AddQuad(testQuad(0, 0, 10, 10, Red))
	rim := src.Stream(nil)

	vs := &VertexStream{}
	buildDiamondFan(vs, rim, V3(2.5, 2.5, 0))

	if vs.VertexCount() != len(rim)+1 {
		t.Fatalf("VertexCount() = %d, want %d", vs.VertexCount(), len(rim)+1)
	}
	if vs.TriangleCount() != len(rim) {
		t.Fatalf("TriangleCount() = %d, want %d", vs.TriangleCount(), len(rim))
	}
	for i, v := range rim {
		if vs.Vertex(i) != v {
			t.Errorf("rim vertex %d = %v, want %v", i, vs.Vertex(i), v)
		}
	}

	n := len(rim)
	center := vs.Vertex(n)
	if center.Position != V3(2.5, 2.5, 0) || center.Color != White || center.Normal != DefaultNormal {
		t.Errorf("center vertex = %+v", center)
	}
	if got := vs.Triangle(0); got != [3]int{0, 1, n} {
		t.Errorf("first triangle = %v", got)
	}
	if got := vs.Triangle(n - 1); got != [3]int{n - 1, 0, n} {
		t.Errorf("closing triangle = %v", got)
	}
}
