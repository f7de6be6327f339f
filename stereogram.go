package compose

import (
	"math/rand/v2"

	"github.com/gogpu/gg-compose/internal/broadcast"
	"github.com/gogpu/gg-compose/internal/stereogram"
)

// StereogramParams are the broadcast parameters of Stereogram.
type StereogramParams struct {
	Patterns  []*Buffer       // nil: a matte canvas
	Depths    []*Buffer       // nil: a flat far plane
	Divisions []int           // 8
	Noise     []float64       // 0.33
	Gamma     []float64       // 0.33
	Shift     []float64       // 1
	Interp    []Interpolation // LINEAR, resizes the depth map
	Matte     []Color         // opaque black
}

// Stereogram renders an autostereogram per item on the pattern's canvas.
// Noise is drawn from a PCG stream seeded with the engine seed and the item
// index.
func (e *Engine) Stereogram(p StereogramParams) ([]Output, error) {
	def := stereogram.DefaultParams()
	patterns := broadcast.Default(p.Patterns, nil)
	depths := broadcast.Default(p.Depths, nil)
	divisions := broadcast.Default(p.Divisions, def.Divisions)
	noise := broadcast.Default(p.Noise, def.Noise)
	gamma := broadcast.Default(p.Gamma, def.Gamma)
	shift := broadcast.Default(p.Shift, def.Shift)
	interp := broadcast.Default(p.Interp, def.Interp)
	matte := broadcast.Default(p.Matte, DefaultMatte)
	n := broadcast.Length(len(patterns), len(depths), len(divisions), len(noise),
		len(gamma), len(shift), len(interp), len(matte))

	return run(e, "stereogram", n, func(i int) (Output, error) {
		m := broadcast.Pick(matte, i)
		pattern, err := e.operand(broadcast.Pick(patterns, i), m)
		if err != nil {
			return Output{}, err
		}
		rng := rand.New(rand.NewPCG(e.opts.seed, uint64(i)))
		img, err := stereogram.Synthesize(pattern, broadcast.Pick(depths, i), stereogram.Params{
			Divisions: broadcast.Pick(divisions, i),
			Noise:     broadcast.Pick(noise, i),
			Gamma:     broadcast.Pick(gamma, i),
			Shift:     broadcast.Pick(shift, i),
			Interp:    broadcast.Pick(interp, i),
		}, rng)
		if err != nil {
			return Output{}, err
		}
		return newOutput(img, m), nil
	})
}
