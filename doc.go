// Package meshfx provides mesh post-processing effects for retained-mode
// UI rendering.
//
// # Overview
//
// A host UI toolkit tessellates its widgets, images and text into a flat
// mesh: a list of vertices and a list of triangles. Before the mesh goes to
// the renderer, the host runs the graphic's effects over it. Each effect
// implements [MeshEffect] and rewrites the [VertexStream] in place.
//
// Two effects are provided:
//   - [GradientFill] colors the mesh with a [Ramp] laid out horizontally,
//     vertically, radially or as a diamond, optionally re-tessellating the
//     mesh so ramp keys land on vertices instead of being smeared across a
//     triangle.
//   - [MirrorFlip] mirrors vertex positions across the center of the
//     graphic's rectangle.
//
// # Quick Start
//
//	vs := meshfx.DefaultPool.Get()
//	defer meshfx.DefaultPool.Put(vs)
//	vs.AddQuad(quad) // from upstream tessellation
//
//	ramp, _ := meshfx.ParseRamp("navy 0%, gold 50%, white 100%")
//	fill := meshfx.NewGradientFill(graphic,
//	    meshfx.WithShape(meshfx.ShapeVertical),
//	    meshfx.WithRamp(ramp))
//
//	p := meshfx.NewPipeline(fill)
//	p.Apply(vs)
//
// # Coordinate System
//
// Mesh space is the graphic's local space: X increases right, Y increases
// up. A flat UI mesh keeps Z constant.
//
// # Invalidation
//
// Effects never cache geometry. Every setter calls the owner's
// [Graphic.SetVerticesDirty] so the host rebuilds the mesh and reruns the
// pipeline on the next redraw.
//
// # Concurrency
//
// Effects and streams are single-threaded. The host owns the stream for
// the duration of ModifyMesh and must not change an effect's configuration
// while it runs.
package meshfx
