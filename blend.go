package meshfx

import "strings"

// BlendMode selects how a ramp color combines with a vertex's existing color.
type BlendMode uint8

const (
	// BlendOverride replaces the vertex color with the ramp color.
	BlendOverride BlendMode = iota

	// BlendAdd sums vertex and ramp colors per channel, without clamping.
	BlendAdd

	// BlendMultiply multiplies vertex and ramp colors per channel.
	BlendMultiply
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendOverride:
		return "Override"
	case BlendAdd:
		return "Add"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}

// Blend combines the existing color a with the ramp color b.
func (m BlendMode) Blend(a, b RGBA) RGBA {
	switch m {
	case BlendAdd:
		return a.Add(b)
	case BlendMultiply:
		return a.Mul(b)
	default:
		return b
	}
}

// ParseBlendMode returns the blend mode with the given case-insensitive name.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "override":
		return BlendOverride, nil
	case "add":
		return BlendAdd, nil
	case "multiply":
		return BlendMultiply, nil
	}
	return 0, ErrUnknownBlendMode
}
