package meshfx

import (
	"strings"

	"github.com/chewxy/math32"
)

// Shape selects how a vertex position maps to a ramp coordinate.
type Shape uint8

const (
	// ShapeHorizontal runs the ramp left to right across the mesh bounds.
	ShapeHorizontal Shape = iota

	// ShapeVertical runs the ramp bottom to top across the mesh bounds.
	ShapeVertical

	// ShapeRadial runs the ramp outward from the bounds center along
	// ellipses inscribed in the bounds.
	ShapeRadial

	// ShapeDiamond runs the ramp outward from a center point by Euclidean
	// distance, normalized by the bounds height.
	ShapeDiamond
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeHorizontal:
		return "Horizontal"
	case ShapeVertical:
		return "Vertical"
	case ShapeRadial:
		return "Radial"
	case ShapeDiamond:
		return "Diamond"
	default:
		return "Unknown"
	}
}

// linear reports whether the shape samples along a single axis.
func (s Shape) linear() bool {
	return s == ShapeHorizontal || s == ShapeVertical
}

// ParseShape returns the shape with the given case-insensitive name.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return ShapeHorizontal, nil
	case "vertical":
		return ShapeVertical, nil
	case "radial":
		return ShapeRadial, nil
	case "diamond":
		return ShapeDiamond, nil
	}
	return 0, ErrUnknownShape
}

// axis is the sampling direction of a linear shape.
type axis uint8

const (
	axisX axis = iota
	axisY
)

func axisOf(s Shape) axis {
	if s == ShapeVertical {
		return axisY
	}
	return axisX
}

func (a axis) coord(v *Vertex) float32 {
	if a == axisY {
		return v.Position.Y
	}
	return v.Position.X
}

// span returns the minimum and extent of r along the axis.
func (a axis) span(r Rect) (lo, extent float32) {
	if a == axisY {
		return r.Y, r.Height
	}
	return r.X, r.Width
}

// window holds the zoom/offset view onto the ramp.
type window struct {
	zoom   float32
	offset float32
}

// zoomOffset is how far the ramp window shrinks in from each end when
// zoom magnifies it around its center.
func (w window) zoomOffset() float32 {
	return (1 - 1/w.zoom) * 0.5
}

// invScale returns 1/extent/zoom, or 0 for a degenerate extent so the
// gradient flattens instead of dividing by zero.
func (w window) invScale(extent float32) float32 {
	if extent == 0 {
		return 0
	}
	return 1 / extent / w.zoom
}

// sampler maps a vertex to its ramp coordinate. One is built per
// ModifyMesh call from the shape and the mesh bounds.
type sampler interface {
	sample(v *Vertex) float32
}

type linearSampler struct {
	axis   axis
	min    float32
	scale  float32
	offset float32
}

func (s linearSampler) sample(v *Vertex) float32 {
	return (s.axis.coord(v)-s.min)*s.scale - s.offset
}

type diamondSampler struct {
	center Vec3
	scale  float32
	offset float32
}

func (s diamondSampler) sample(v *Vertex) float32 {
	return v.Position.Distance(s.center)*s.scale - s.offset
}

type radialSampler struct {
	center Vec2
	sx, sy float32
	offset float32
}

func (s radialSampler) sample(v *Vertex) float32 {
	dx := math32.Abs(v.Position.X-s.center.X) * s.sx
	dy := math32.Abs(v.Position.Y-s.center.Y) * s.sy
	return math32.Sqrt(dx*dx+dy*dy)*2 - s.offset
}

// diamondCenter returns the fan center used by ShapeDiamond: both
// coordinates are half the bounds center Y, at depth z.
//
// TODO(meshfx): confirm with product whether the center should be the
// bounds center; this formula only matches it for square meshes with the
// minimum corner at the origin.
func diamondCenter(r Rect, z float32) Vec3 {
	radius := r.Center().Y / 2
	return Vec3{X: radius, Y: radius, Z: z}
}

func newSampler(shape Shape, bounds Rect, z float32, w window) sampler {
	switch shape {
	case ShapeDiamond:
		return diamondSampler{
			center: diamondCenter(bounds, z),
			scale:  w.invScale(bounds.Height),
			offset: w.offset,
		}
	case ShapeRadial:
		return radialSampler{
			center: bounds.Center(),
			sx:     w.invScale(bounds.Width),
			sy:     w.invScale(bounds.Height),
			offset: w.offset,
		}
	default:
		ax := axisOf(shape)
		lo, extent := ax.span(bounds)
		zo := w.zoomOffset()
		return linearSampler{
			axis:   ax,
			min:    lo,
			scale:  w.invScale(extent),
			offset: w.offset*(1-zo) - zo,
		}
	}
}
