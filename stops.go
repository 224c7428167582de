package meshfx

import "sort"

// stopMergeDistance is the mesh-space distance below which two stops
// collapse into one. Closer cuts would only add sliver triangles.
const stopMergeDistance = 2

// findStops returns the mesh-space coordinates along ax at which a ramp key
// falls strictly inside the visible ramp window, ascending. A stop closer
// than stopMergeDistance to the previous kept stop is dropped.
func findStops(r Ramp, ax axis, bounds Rect, w window) []float32 {
	zo := w.zoomOffset()
	shift := w.offset * (1 - zo)
	start := zo - shift
	end := 1 - zo - shift

	var stops []float32
	add := func(t float32) bool {
		if t >= end {
			return false
		}
		if t > start {
			stops = append(stops, (t-start)*w.zoom)
		}
		return true
	}
	for _, k := range r.colors {
		if !add(k.Time) {
			break
		}
	}
	for _, k := range r.alphas {
		if !add(k.Time) {
			break
		}
	}
	if len(stops) == 0 {
		return nil
	}

	sort.Slice(stops, func(i, j int) bool { return stops[i] < stops[j] })

	lo, size := ax.span(bounds)
	merged := stops[:0]
	for _, s := range stops {
		s = s*size + lo
		if n := len(merged); n > 0 && s-merged[n-1] < stopMergeDistance {
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
