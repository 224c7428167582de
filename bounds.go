package meshfx

// Rect is an axis-aligned rectangle in mesh space.
type Rect struct {
	X, Y          float32 // minimum corner
	Width, Height float32
}

// Min returns the minimum corner.
func (r Rect) Min() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Max returns the maximum corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Bounds returns the bounding rectangle of the vertex positions.
// It returns the zero Rect for an empty slice.
func Bounds(verts []Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}

	left, bottom := verts[0].Position.X, verts[0].Position.Y
	right, top := left, bottom
	for i := 1; i < len(verts); i++ {
		p := verts[i].Position
		left = min(left, p.X)
		right = max(right, p.X)
		bottom = min(bottom, p.Y)
		top = max(top, p.Y)
	}

	return Rect{X: left, Y: bottom, Width: right - left, Height: top - bottom}
}
