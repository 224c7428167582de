// Command meshfxdemo runs meshfx effects over a quad and prints the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/meshfx"
	"github.com/gogpu/meshfx/gpu"
	"github.com/gogpu/meshfx/preset"
)

func main() {
	var (
		width      = flag.Float64("width", 100, "quad width")
		height     = flag.Float64("height", 100, "quad height")
		presetPath = flag.String("preset", "", "YAML or TOML preset file")
		shape      = flag.String("shape", "horizontal", "gradient shape: horizontal, vertical, radial, diamond")
		blend      = flag.String("blend", "override", "blend mode: override, add, multiply")
		ramp       = flag.String("ramp", "black 0%, red 50%, white 100%", "color ramp stops")
		zoom       = flag.Float64("zoom", 1, "ramp zoom [0.1, 10]")
		offset     = flag.Float64("offset", 0, "ramp offset [-1, 1]")
		noSplit    = flag.Bool("no-split", false, "disable re-tessellation")
		flipH      = flag.Bool("flip-h", false, "mirror horizontally")
		flipV      = flag.Bool("flip-v", false, "mirror vertically")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		meshfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rect := meshfx.Rect{
		X:      float32(-*width / 2),
		Y:      float32(-*height / 2),
		Width:  float32(*width),
		Height: float32(*height),
	}
	graphic := meshfx.NewEmptyGraphic()
	rt := meshfx.RectFunc(func() meshfx.Rect { return rect })

	var (
		pipeline *meshfx.Pipeline
		err      error
	)
	if *presetPath != "" {
		pipeline, err = loadPreset(*presetPath, graphic, rt)
	} else {
		pipeline, err = flagPipeline(graphic, rt, *shape, *blend, *ramp,
			float32(*zoom), float32(*offset), !*noSplit, *flipH, *flipV)
	}
	if err != nil {
		log.Fatalf("Failed to configure effects: %v", err)
	}

	vs := meshfx.DefaultPool.Get()
	defer meshfx.DefaultPool.Put(vs)
	vs.AddQuad(quad(rect))
	pipeline.Apply(vs)

	printMesh(os.Stdout, vs)

	bufs := gpu.Pack(vs)
	log.Printf("Packed %d vertices (%d bytes), %d indices as %v\n",
		bufs.VertexCount, len(bufs.Vertices), bufs.IndexCount, bufs.IndexFormat)
}

func loadPreset(path string, owner meshfx.Graphic, rt meshfx.RectTransform) (*meshfx.Pipeline, error) {
	p, err := preset.Load(path)
	if err != nil {
		return nil, err
	}
	return p.Pipeline(owner, rt)
}

func flagPipeline(owner meshfx.Graphic, rt meshfx.RectTransform, shape, blend, ramp string,
	zoom, offset float32, split, flipH, flipV bool,
) (*meshfx.Pipeline, error) {
	s, err := meshfx.ParseShape(shape)
	if err != nil {
		return nil, err
	}
	m, err := meshfx.ParseBlendMode(blend)
	if err != nil {
		return nil, err
	}
	r, err := meshfx.ParseRamp(ramp)
	if err != nil {
		return nil, err
	}

	fill := meshfx.NewGradientFill(owner,
		meshfx.WithShape(s),
		meshfx.WithBlendMode(m),
		meshfx.WithRamp(r),
		meshfx.WithZoom(zoom),
		meshfx.WithOffset(offset),
		meshfx.WithModifyVertices(split),
	)
	flip := meshfx.NewMirrorFlip(owner, rt,
		meshfx.WithHorizontal(flipH),
		meshfx.WithVertical(flipV),
	)
	return meshfx.NewPipeline(fill, flip), nil
}

// quad returns the four corners of r, clockwise from bottom-left,
// as upstream image tessellation emits them.
func quad(r meshfx.Rect) [4]meshfx.Vertex {
	lo, hi := r.Min(), r.Max()
	corner := func(x, y, u, v float32) meshfx.Vertex {
		return meshfx.Vertex{
			Position: meshfx.V3(x, y, 0),
			Normal:   meshfx.DefaultNormal,
			Color:    meshfx.White,
			UV:       meshfx.V2(u, v),
		}
	}
	return [4]meshfx.Vertex{
		corner(lo.X, lo.Y, 0, 0),
		corner(lo.X, hi.Y, 0, 1),
		corner(hi.X, hi.Y, 1, 1),
		corner(hi.X, lo.Y, 1, 0),
	}
}

func printMesh(w io.Writer, vs *meshfx.VertexStream) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tx\ty\tu\tv\tcolor")
	for i := 0; i < vs.VertexCount(); i++ {
		v := vs.Vertex(i)
		c := v.Color.NRGBA()
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.3f\t%.3f\t#%02x%02x%02x%02x\n",
			i, v.Position.X, v.Position.Y, v.UV.X, v.UV.Y, c.R, c.G, c.B, c.A)
	}
	tw.Flush()

	fmt.Fprintf(w, "%d triangles\n", vs.TriangleCount())
	for i := 0; i < vs.TriangleCount(); i++ {
		t := vs.Triangle(i)
		fmt.Fprintf(w, "  %d: %d %d %d\n", i, t[0], t[1], t[2])
	}
}
