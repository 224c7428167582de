package meshfx

import "sort"

// ColorKey is an RGB keyframe of a Ramp. The key's alpha is ignored;
// opacity comes from the ramp's alpha keys.
type ColorKey struct {
	Time  float32 // Position in the ramp, 0.0 to 1.0
	Color RGBA
}

// AlphaKey is an opacity keyframe of a Ramp.
type AlphaKey struct {
	Time  float32 // Position in the ramp, 0.0 to 1.0
	Alpha float32
}

// Ramp is a piecewise-linear color/alpha gradient over [0, 1].
//
// Color and alpha are keyed independently. Between two keys each channel is
// interpolated linearly; outside the key range the nearest end key is used.
// A Ramp is immutable once built.
type Ramp struct {
	colors []ColorKey
	alphas []AlphaKey
}

// NewRamp builds a ramp from color and alpha keys. Key times are clamped to
// [0, 1] and the keys sorted; keys with equal times keep their given order.
func NewRamp(colors []ColorKey, alphas []AlphaKey) Ramp {
	r := Ramp{
		colors: make([]ColorKey, len(colors)),
		alphas: make([]AlphaKey, len(alphas)),
	}
	for i, k := range colors {
		k.Time = clamp01(k.Time)
		r.colors[i] = k
	}
	for i, k := range alphas {
		k.Time = clamp01(k.Time)
		r.alphas[i] = k
	}

	sort.SliceStable(r.colors, func(i, j int) bool {
		return r.colors[i].Time < r.colors[j].Time
	})
	sort.SliceStable(r.alphas, func(i, j int) bool {
		return r.alphas[i].Time < r.alphas[j].Time
	})
	return r
}

// DefaultRamp returns the opaque black-to-white ramp.
func DefaultRamp() Ramp {
	return NewRamp(
		[]ColorKey{{Time: 0, Color: Black}, {Time: 1, Color: White}},
		[]AlphaKey{{Time: 0, Alpha: 1}, {Time: 1, Alpha: 1}},
	)
}

// ColorKeys returns a copy of the sorted color keys.
func (r Ramp) ColorKeys() []ColorKey {
	out := make([]ColorKey, len(r.colors))
	copy(out, r.colors)
	return out
}

// AlphaKeys returns a copy of the sorted alpha keys.
func (r Ramp) AlphaKeys() []AlphaKey {
	out := make([]AlphaKey, len(r.alphas))
	copy(out, r.alphas)
	return out
}

// Evaluate returns the ramp color at t. Values of t outside [0, 1] clamp to
// the end keys. A ramp without color keys is white; without alpha keys it
// is opaque.
func (r Ramp) Evaluate(t float32) RGBA {
	t = clamp01(t)
	c := r.colorAt(t)
	c.A = r.alphaAt(t)
	return c
}

func (r Ramp) colorAt(t float32) RGBA {
	keys := r.colors
	switch len(keys) {
	case 0:
		return White
	case 1:
		return keys[0].Color
	}

	idx := sort.Search(len(keys), func(i int) bool {
		return keys[i].Time >= t
	})
	if idx == 0 {
		return keys[0].Color
	}
	if idx >= len(keys) {
		return keys[len(keys)-1].Color
	}

	k1, k2 := keys[idx-1], keys[idx]
	if k2.Time == t {
		return k2.Color
	}
	return k1.Color.Lerp(k2.Color, (t-k1.Time)/(k2.Time-k1.Time))
}

func (r Ramp) alphaAt(t float32) float32 {
	keys := r.alphas
	switch len(keys) {
	case 0:
		return 1
	case 1:
		return keys[0].Alpha
	}

	idx := sort.Search(len(keys), func(i int) bool {
		return keys[i].Time >= t
	})
	if idx == 0 {
		return keys[0].Alpha
	}
	if idx >= len(keys) {
		return keys[len(keys)-1].Alpha
	}

	k1, k2 := keys[idx-1], keys[idx]
	if k2.Time == t {
		return k2.Alpha
	}
	return k1.Alpha + (k2.Alpha-k1.Alpha)*(t-k1.Time)/(k2.Time-k1.Time)
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
