// Command ggcompose runs every composition operation on generated inputs
// and writes the results as PNG files.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	compose "github.com/gogpu/gg-compose"
)

func main() {
	var (
		size    = flag.Int("size", 256, "canvas edge in pixels")
		outDir  = flag.String("out", "out", "output directory")
		input   = flag.String("input", "", "optional PNG or JPEG used as the source image")
		workers = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		compose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	e := compose.New(
		compose.WithWorkers(*workers),
		compose.WithMinSize(*size),
		compose.WithSeed(7),
		compose.WithObserver(compose.ObserverFunc(func(p compose.Progress) {
			if p.Err != nil {
				log.Printf("%s %d/%d failed: %v", p.Op, p.Done, p.Total, p.Err)
			}
		})),
	)
	defer e.Close()

	d := demo{e: e, dir: *outDir, size: *size}
	if *input != "" {
		src, err := compose.Load(*input)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", *input, err)
		}
		d.src = src
	} else {
		d.src = d.generate()
	}

	d.transform()
	d.blend()
	d.channels()
	d.colorTheory()
	d.stereogram()
	d.crop()
	d.stack()

	log.Printf("Results saved to %s (%dx%d)", *outDir, *size, *size)
}

type demo struct {
	e    *compose.Engine
	dir  string
	size int
	src  *compose.Buffer
}

func (d *demo) save(name string, b *compose.Buffer) {
	path := filepath.Join(d.dir, name+".png")
	if err := compose.Save(b, path); err != nil {
		log.Fatalf("Failed to save %s: %v", path, err)
	}
}

func (d *demo) saveAll(prefix string, outs []compose.Output, err error) {
	if err != nil {
		log.Printf("%s: %v", prefix, err)
	}
	for i, o := range outs {
		if o.Image != nil {
			d.save(fmt.Sprintf("%s_%02d", prefix, i), o.Image)
		}
	}
}

// generate builds a source image from generated shapes.
func (d *demo) generate() *compose.Buffer {
	shapes, err := d.e.Shape(compose.ShapeParams{
		Kind:  []compose.ShapeKind{compose.ShapeCircle, compose.ShapePolygon},
		Sides: []int{6},
		Color: []compose.Color{{R: 240, G: 80, B: 40, A: 255}, {R: 40, G: 120, B: 240, A: 200}},
		Size:  []compose.Vec2{{0.8, 0.8}, {0.5, 0.5}},
		Angle: []float64{0, 15},
	})
	if err != nil {
		log.Fatalf("Failed to generate shapes: %v", err)
	}
	out, err := d.e.Blend(compose.BlendParams{
		A:    []*compose.Buffer{shapes[0].Image},
		B:    []*compose.Buffer{shapes[1].Image},
		Func: []compose.BlendMode{compose.BlendScreen},
	})
	if err != nil {
		log.Fatalf("Failed to blend shapes: %v", err)
	}
	d.save("source", out[0].Image)
	return out[0].Image
}

func (d *demo) transform() {
	outs, err := d.e.Transform(compose.TransformParams{
		Images:     []*compose.Buffer{d.src},
		Angle:      []float64{0, 30, 0, 0, 0, 0},
		Scale:      []compose.Vec2{{1, 1}, {0.7, 0.7}, {1, 1}},
		Edge:       []compose.EdgeMode{compose.EdgeClip, compose.EdgeWrap, compose.EdgeMirror},
		Mirror:     []compose.MirrorMode{compose.MirrorNone, compose.MirrorNone, compose.MirrorX},
		Tile:       []compose.Size{{1, 1}, {1, 1}, {1, 1}, {3, 3}, {1, 1}},
		Projection: []compose.Projection{compose.ProjectionNormal, compose.ProjectionNormal, compose.ProjectionNormal, compose.ProjectionNormal, compose.ProjectionPerspective, compose.ProjectionFisheye},
		Corners:    []compose.Quad{{{0.1, 0}, {0.9, 0.1}, {1, 1}, {0, 0.9}}},
	})
	d.saveAll("transform", outs, err)
}

func (d *demo) blend() {
	overlay, _ := d.e.Constant(compose.ConstantParams{
		Color: []compose.Color{{R: 30, G: 160, B: 90, A: 255}},
		WH:    []compose.Size{{d.size, d.size}},
	})
	outs, err := d.e.Blend(compose.BlendParams{
		A:     []*compose.Buffer{d.src},
		B:     []*compose.Buffer{overlay[0].Image},
		Func:  compose.BlendModes(),
		Alpha: []float64{0.75},
	})
	d.saveAll("blend", outs, err)
}

func (d *demo) channels() {
	planes, err := d.e.Split(compose.SplitParams{Images: []*compose.Buffer{d.src}})
	if err != nil {
		log.Printf("split: %v", err)
		return
	}
	p := planes[0]
	merged, err := d.e.Merge(compose.MergeParams{
		R: []*compose.Buffer{p[2]}, G: []*compose.Buffer{p[0]}, B: []*compose.Buffer{p[1]}, A: []*compose.Buffer{p[3]},
	})
	d.saveAll("merge", merged, err)

	swapped, err := d.e.Swap(compose.SwapParams{
		A:         []*compose.Buffer{d.src},
		Selectors: [][4]compose.Selector{{compose.BlueA, compose.RedA, compose.Constant, compose.AlphaA}},
		Constants: []compose.Color{{B: 128}},
	})
	d.saveAll("swap", swapped, err)
}

func (d *demo) colorTheory() {
	outs, err := d.e.ColorTheory(compose.ColorTheoryParams{
		Images: []*compose.Buffer{d.src},
		Scheme: []compose.Scheme{compose.Triadic},
	})
	if err != nil {
		log.Printf("color theory: %v", err)
	}
	for i, set := range outs {
		for k, b := range set {
			d.save(fmt.Sprintf("color_%02d_%d", i, k), b)
		}
	}
}

func (d *demo) stereogram() {
	depth, _ := d.e.Shape(compose.ShapeParams{Kind: []compose.ShapeKind{compose.ShapeCircle}, Size: []compose.Vec2{{0.6, 0.6}}})
	outs, err := d.e.Stereogram(compose.StereogramParams{
		Patterns: []*compose.Buffer{d.src},
		Depths:   []*compose.Buffer{depth[0].Mask},
	})
	d.saveAll("stereogram", outs, err)
}

func (d *demo) crop() {
	outs, err := d.e.Crop(compose.CropParams{
		Images:  []*compose.Buffer{d.src},
		Mode:    []compose.CropMode{compose.CropCenter, compose.CropXY, compose.CropFree},
		XY:      []compose.Vec2{{0, 0}, {0.25, 0.25}},
		WH:      []compose.Size{{d.size / 2, d.size / 2}},
		Corners: []compose.Quad{{{0.5, 0}, {1, 0.5}, {0.5, 1}, {0, 0.5}}},
	})
	d.saveAll("crop", outs, err)
}

func (d *demo) stack() {
	flat, err := d.e.Flatten(compose.FlattenParams{Images: []*compose.Buffer{d.src, d.src}})
	d.saveAll("flatten", flat, err)

	outs, err := d.e.Stack(compose.StackParams{
		Images: compose.Gather([]*compose.Buffer{d.src}, []*compose.Buffer{flat[0].Image, d.src}),
		Axis:   []compose.Orientation{compose.Grid},
		Stride: []int{2},
	})
	d.saveAll("stack", outs, err)
}
