package meshfx

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ParseRamp builds a Ramp from a comma-separated list of stops, e.g.
//
//	"red 0%, #00ff0080 40%, navy"
//
// Each stop is a color followed by an optional position, written as a
// percentage or a number in [0, 1]. Colors are CSS names or hex in any
// form Hex accepts. Stops without a position are spread evenly between
// their positioned neighbours; the first defaults to 0 and the last to 1.
// Every stop contributes both a color key and an alpha key.
func ParseRamp(s string) (Ramp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ramp{}, ErrEmptyRamp
	}

	parts := strings.Split(s, ",")
	colors := make([]RGBA, len(parts))
	times := make([]float32, len(parts))
	known := make([]bool, len(parts))

	for i, part := range parts {
		fields := strings.Fields(part)
		if len(fields) == 0 || len(fields) > 2 {
			return Ramp{}, &RampSyntaxError{Index: i, Token: strings.TrimSpace(part), Err: ErrInvalidStop}
		}

		c, err := parseColor(fields[0])
		if err != nil {
			return Ramp{}, &RampSyntaxError{Index: i, Token: fields[0], Err: err}
		}
		colors[i] = c

		if len(fields) == 2 {
			t, err := parsePosition(fields[1])
			if err != nil {
				return Ramp{}, &RampSyntaxError{Index: i, Token: fields[1], Err: err}
			}
			times[i] = t
			known[i] = true
		}
	}

	fillPositions(times, known)

	ck := make([]ColorKey, len(colors))
	ak := make([]AlphaKey, len(colors))
	for i, c := range colors {
		ck[i] = ColorKey{Time: times[i], Color: RGB(c.R, c.G, c.B)}
		ak[i] = AlphaKey{Time: times[i], Alpha: c.A}
	}
	return NewRamp(ck, ak), nil
}

func parseColor(s string) (RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[cases.Fold().String(s)]; ok {
		return FromColor(c), nil
	}
	if s == "transparent" {
		return Transparent, nil
	}
	return parseHex(s)
}

func parsePosition(s string) (float32, error) {
	scale := 1.0
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		s = pct
		scale = 0.01
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, ErrInvalidStop
	}
	v *= scale
	if v < 0 || v > 1 {
		return 0, ErrInvalidStop
	}
	return float32(v), nil
}

// fillPositions assigns evenly spaced times to stops without one.
func fillPositions(times []float32, known []bool) {
	n := len(times)
	if !known[0] {
		times[0], known[0] = 0, true
	}
	if n > 1 && !known[n-1] {
		times[n-1], known[n-1] = 1, true
	}

	prev := 0
	for i := 1; i < n; i++ {
		if !known[i] {
			continue
		}
		if gap := i - prev; gap > 1 {
			step := (times[i] - times[prev]) / float32(gap)
			for j := prev + 1; j < i; j++ {
				times[j] = times[prev] + step*float32(j-prev)
			}
		}
		prev = i
	}
}
