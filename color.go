package meshfx

import (
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a straight-alpha color with float32 channels nominally in [0, 1].
//
// Arithmetic does not clamp: an additive blend may push channels above 1,
// and the value is kept as-is until it is converted to fixed point.
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Add returns the per-channel sum of two colors.
func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Mul returns the per-channel product of two colors.
func (c RGBA) Mul(o RGBA) RGBA {
	return RGBA{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Vec4 reinterprets the color as a vector for the tangent slot.
func (c RGBA) Vec4() Vec4 {
	return Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// NRGBA converts the color to 8-bit fixed point, clamping each channel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, err := parseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	return fromColorful(colorful.Hsl(h, s, l).Clamped(), 1)
}

func parseHex(hex string) (RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	alpha := float32(1)
	switch len(hex) {
	case 3, 6:
	case 4:
		a, err := strconv.ParseUint(hex[3:], 16, 8)
		if err != nil {
			return RGBA{}, ErrInvalidColor
		}
		alpha = float32(a*17) / 255
		hex = hex[:3]
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return RGBA{}, ErrInvalidColor
		}
		alpha = float32(a) / 255
		hex = hex[:6]
	default:
		return RGBA{}, ErrInvalidColor
	}

	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return RGBA{}, ErrInvalidColor
	}
	return fromColorful(c, alpha), nil
}

func fromColorful(c colorful.Color, alpha float32) RGBA {
	return RGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
