package meshfx

import "sort"

// maxClipVerts bounds the polygon produced by clipping a triangle to a slab
// between two parallel lines (at most five vertices).
const maxClipVerts = 8

// splitAtStops rebuilds vs from tris, a triangle-expanded vertex list, so
// that no triangle crosses any of the ascending stops along ax.
//
// Each triangle is clipped to the slabs between consecutive stops it spans
// and every non-empty piece is emitted as a triangle fan. Clipping keeps
// vertex order, so each piece has the winding of its source triangle.
// Triangles that no stop crosses are copied unchanged. It returns the
// number of source triangles that were split.
func splitAtStops(vs *VertexStream, tris []Vertex, ax axis, stops []float32) int {
	vs.Clear()

	var bufA, bufB [maxClipVerts]Vertex
	split := 0
	for i := 0; i+2 < len(tris); i += 3 {
		tri := tris[i : i+3]

		lo, hi := ax.coord(&tri[0]), ax.coord(&tri[0])
		for j := 1; j < 3; j++ {
			c := ax.coord(&tri[j])
			lo = min(lo, c)
			hi = max(hi, c)
		}

		first := sort.Search(len(stops), func(k int) bool { return stops[k] > lo })
		last := first
		for last < len(stops) && stops[last] < hi {
			last++
		}
		cuts := stops[first:last]
		if len(cuts) == 0 {
			vs.AddTriangleStream(tri)
			continue
		}
		split++

		for k := 0; k <= len(cuts); k++ {
			poly := append(bufA[:0], tri...)
			if k > 0 {
				poly = clipPolygon(bufB[:0], poly, ax, cuts[k-1], true)
			}
			if k < len(cuts) {
				dst := bufA[:0]
				if k == 0 {
					dst = bufB[:0]
				}
				poly = clipPolygon(dst, poly, ax, cuts[k], false)
			}
			emitFan(vs, poly)
		}
	}
	return split
}

// clipPolygon appends to dst the part of the convex polygon src on one side
// of the line where the ax coordinate equals cut: at or above it when above
// is true, otherwise at or below. dst must not share storage with src.
func clipPolygon(dst, src []Vertex, ax axis, cut float32, above bool) []Vertex {
	sign := float32(1)
	if !above {
		sign = -1
	}

	n := len(src)
	for i := 0; i < n; i++ {
		p, q := src[i], src[(i+1)%n]
		dp := sign * (ax.coord(&p) - cut)
		dq := sign * (ax.coord(&q) - cut)

		if dp >= 0 {
			dst = append(dst, p)
		}
		if (dp > 0 && dq < 0) || (dp < 0 && dq > 0) {
			dst = append(dst, cutVertex(p, q, ax, cut, dp/(dp-dq)))
		}
	}
	return dst
}

// cutVertex interpolates the point at parameter t along the edge p→q and
// snaps its ax coordinate to cut.
func cutVertex(p, q Vertex, ax axis, cut, t float32) Vertex {
	v := lerpVertex(p, q, t)
	if ax == axisY {
		v.Position.Y = cut
	} else {
		v.Position.X = cut
	}
	return v
}

// emitFan appends a convex polygon to vs as a triangle fan around its first
// vertex. Polygons with fewer than three vertices are dropped.
func emitFan(vs *VertexStream, poly []Vertex) {
	if len(poly) < 3 {
		return
	}
	base := vs.VertexCount()
	for _, v := range poly {
		vs.AddVert(v)
	}
	for j := 1; j+1 < len(poly); j++ {
		vs.AddTriangle(base, base+j, base+j+1)
	}
}
