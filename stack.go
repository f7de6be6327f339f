package compose

import (
	"github.com/gogpu/gg-compose/internal/blend"
	"github.com/gogpu/gg-compose/internal/broadcast"
	"github.com/gogpu/gg-compose/internal/geometry"
	"github.com/gogpu/gg-compose/internal/image"
)

// Gather flattens an open-ended run of operand lists into the single
// ordered list taken by Stack and Flatten.
func Gather(runs ...[]*Buffer) []*Buffer {
	return broadcast.Gather(runs...)
}

// StackParams configure Stack. Images is the gathered operand list; the
// other fields are broadcast, producing one stacked image per slot.
type StackParams struct {
	Images []*Buffer
	Axis   []Orientation   // GRID
	Stride []int           // 1, columns of a GRID
	Mode   []ScaleMode     // NONE
	WH     []Size          // engine minimum size
	Interp []Interpolation // LANCZOS4
	Matte  []Color         // opaque black, fills cell padding
}

// Stack lays the images out in a row, a column or a grid. Every cell is as
// large as the largest image.
func (e *Engine) Stack(p StackParams) ([]Output, error) {
	if len(p.Images) == 0 {
		Logger().Warn("compose: empty batch", "op", "stack")
		return []Output{}, nil
	}
	ms := e.opts.minSize
	axis := broadcast.Default(p.Axis, Grid)
	stride := broadcast.Default(p.Stride, 1)
	mode := broadcast.Default(p.Mode, ScaleNone)
	wh := broadcast.Default(p.WH, Size{ms, ms})
	interp := broadcast.Default(p.Interp, InterpLanczos4)
	matte := broadcast.Default(p.Matte, DefaultMatte)
	n := broadcast.Length(len(axis), len(stride), len(mode), len(wh), len(interp), len(matte))

	return run(e, "stack", n, func(i int) (Output, error) {
		m := broadcast.Pick(matte, i)
		img, err := geometry.Stack(p.Images, broadcast.Pick(axis, i), broadcast.Pick(stride, i), m)
		if err != nil {
			return Output{}, err
		}
		return finish(img, broadcast.Pick(mode, i), broadcast.Pick(wh, i), broadcast.Pick(interp, i), m)
	})
}

// FlattenParams configure Flatten. Images is the gathered operand list; the
// other fields are broadcast.
type FlattenParams struct {
	Images []*Buffer
	Mode   []ScaleMode     // NONE
	WH     []Size          // engine minimum size
	Interp []Interpolation // LANCZOS4
	Matte  []Color         // opaque black
}

// Flatten adds every image onto the first with saturating arithmetic. Each
// later image is center-cropped or padded to the first image's canvas.
func (e *Engine) Flatten(p FlattenParams) ([]Output, error) {
	var images []*Buffer
	for _, img := range p.Images {
		if img != nil {
			images = append(images, img)
		}
	}
	if len(images) == 0 {
		Logger().Warn("compose: empty batch", "op", "flatten")
		return []Output{}, nil
	}
	ms := e.opts.minSize
	mode := broadcast.Default(p.Mode, ScaleNone)
	wh := broadcast.Default(p.WH, Size{ms, ms})
	interp := broadcast.Default(p.Interp, InterpLanczos4)
	matte := broadcast.Default(p.Matte, DefaultMatte)
	n := broadcast.Length(len(mode), len(wh), len(interp), len(matte))

	return run(e, "flatten", n, func(i int) (Output, error) {
		acc := image.ToRGBA(images[0])
		w, h := acc.Bounds()
		for _, img := range images[1:] {
			layer, err := image.Fit(image.ToRGBA(img), w, h, ScaleCrop, InterpNearest, image.Transparent)
			if err != nil {
				return Output{}, err
			}
			if acc, err = blend.Accumulate(acc, layer); err != nil {
				return Output{}, err
			}
		}
		m := broadcast.Pick(matte, i)
		return finish(acc, broadcast.Pick(mode, i), broadcast.Pick(wh, i), broadcast.Pick(interp, i), m)
	})
}
