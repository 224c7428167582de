package meshfx

import "github.com/chewxy/math32"

// radialSegments is the number of rim vertices of the regenerated radial
// fan, independent of the incoming mesh.
const radialSegments = 64

// fanCenterUV is the UV assigned to a regenerated fan center.
var fanCenterUV = Vec2{X: 0.5, Y: 0.5}

// buildDiamondFan replaces the topology of vs with a fan around center whose
// rim is the triangle-expanded vertex list rim, in order.
func buildDiamondFan(vs *VertexStream, rim []Vertex, center Vec3) {
	vs.Clear()
	for _, v := range rim {
		vs.AddVert(v)
	}
	n := len(rim)
	vs.AddVert(Vertex{
		Position: center,
		Normal:   rim[0].Normal,
		Color:    White,
		UV:       fanCenterUV,
	})

	for i := 1; i < n; i++ {
		vs.AddTriangle(i-1, i, n)
	}
	vs.AddTriangle(n-1, 0, n)
}

// buildRadialFan replaces vs with a radialSegments-sided fan approximating
// the ellipse inscribed in bounds. Rim UVs place each vertex on the unit
// circle mapped to [0, 1]². z and normal come from the first source vertex.
func buildRadialFan(vs *VertexStream, bounds Rect, z float32, normal Vec3) {
	vs.Clear()

	c := bounds.Center()
	rx, ry := bounds.Width/2, bounds.Height/2
	for i := 0; i < radialSegments; i++ {
		angle := float32(i) * 2 * math32.Pi / radialSegments
		cos, sin := math32.Cos(angle), math32.Sin(angle)
		vs.AddVert(Vertex{
			Position: Vec3{X: c.X + cos*rx, Y: c.Y + sin*ry, Z: z},
			Normal:   normal,
			Color:    White,
			UV:       Vec2{X: (cos + 1) * 0.5, Y: (sin + 1) * 0.5},
		})
	}
	vs.AddVert(Vertex{
		Position: Vec3{X: c.X, Y: c.Y, Z: z},
		Normal:   normal,
		Color:    White,
		UV:       fanCenterUV,
	})

	for i := 1; i < radialSegments; i++ {
		vs.AddTriangle(i-1, i, radialSegments)
	}
	vs.AddTriangle(radialSegments-1, 0, radialSegments)
}
