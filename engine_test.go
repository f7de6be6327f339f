package compose

import (
	"errors"
	"testing"

	"github.com/gogpu/gg-compose/internal/blend"
	"github.com/gogpu/gg-compose/internal/channel"
	"github.com/gogpu/gg-compose/internal/image"
	"github.com/gogpu/gg-compose/internal/projection"
)

func solid(w, h int, c Color) *Buffer {
	b, err := image.Solid(w, h, image.FormatRGBA8, c)
	if err != nil {
		panic(err)
	}
	return b
}

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := New(append([]Option{WithWorkers(3), WithMinSize(16)}, opts...)...)
	t.Cleanup(e.Close)
	return e
}

func TestEngine_Options(t *testing.T) {
	e := New()
	defer e.Close()
	if e.MinSize() != DefaultMinSize {
		t.Errorf("MinSize() = %d, want %d", e.MinSize(), DefaultMinSize)
	}

	e2 := New(WithMinSize(0), WithWorkers(2))
	defer e2.Close()
	if e2.MinSize() != DefaultMinSize {
		t.Error("WithMinSize(0) should be ignored")
	}
	if e2.pool.Workers() != 2 {
		t.Errorf("workers = %d, want 2", e2.pool.Workers())
	}
}

func TestEngine_ObserverOncePerItem(t *testing.T) {
	var seen []Progress
	e := newEngine(t, WithObserver(ObserverFunc(func(p Progress) {
		seen = append(seen, p)
	})))

	out, err := e.Constant(ConstantParams{Color: []Color{{R: 1}, {R: 2}, {R: 3}, {R: 4}, {R: 5}}})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 5 || len(seen) != 5 {
		t.Fatalf("outputs = %d, observer calls = %d, want 5 and 5", len(out), len(seen))
	}

	indexes := map[int]bool{}
	for k, p := range seen {
		if p.Op != "constant" || p.Total != 5 || p.Done != k+1 || p.Err != nil {
			t.Errorf("progress[%d] = %+v", k, p)
		}
		indexes[p.Index] = true
	}
	if len(indexes) != 5 {
		t.Errorf("observer saw indexes %v", indexes)
	}
}

func TestEngine_OrderMatchesSchedule(t *testing.T) {
	e := newEngine(t)
	colors := make([]Color, 40)
	for i := range colors {
		colors[i] = Color{R: uint8(i), A: 255}
	}
	out, err := e.Constant(ConstantParams{Color: colors, WH: []Size{{2, 2}}})
	if err != nil {
		t.Fatal(err)
	}
	for i, o := range out {
		if c := o.Image.At(1, 1); c != colors[i] {
			t.Errorf("out[%d] = %+v, want %+v", i, c, colors[i])
		}
	}
}

func TestEngine_EmptyBatch(t *testing.T) {
	e := newEngine(t)
	out, err := e.Transform(TransformParams{Angle: []float64{}})
	if err != nil || len(out) != 0 {
		t.Errorf("empty batch = %d outputs, %v", len(out), err)
	}
	stacked, err := e.Stack(StackParams{})
	if err != nil || len(stacked) != 0 {
		t.Errorf("empty stack = %d outputs, %v", len(stacked), err)
	}
}

func TestEngine_ItemErrorsDoNotAbortSiblings(t *testing.T) {
	var failures int
	e := newEngine(t, WithObserver(ObserverFunc(func(p Progress) {
		if p.Err != nil {
			failures++
		}
	})))

	a := solid(4, 4, Color{R: 10, A: 255})
	out, err := e.Blend(BlendParams{A: []*Buffer{a}, Func: []BlendMode{BlendNormal, BlendMode(99), BlendMultiply}})
	if err == nil {
		t.Fatal("expected an error for the unknown blend mode")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
	var ie *ItemError
	if !errors.As(err, &ie) || ie.Index != 1 || ie.Op != "blend" {
		t.Errorf("ItemError = %+v", ie)
	}
	if out[0].Image == nil || out[2].Image == nil || out[1].Image != nil {
		t.Error("only the failing slot should be empty")
	}
	if failures != 1 {
		t.Errorf("observer saw %d failures, want 1", failures)
	}
}

func TestEngine_ClosedStillRuns(t *testing.T) {
	e := New(WithWorkers(2), WithMinSize(4))
	e.Close()
	e.Close()

	out, err := e.Constant(ConstantParams{Color: []Color{{A: 255}, {R: 255, A: 255}}})
	if err != nil || len(out) != 2 {
		t.Fatalf("closed engine: %d outputs, %v", len(out), err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"parse", func() error { _, err := ParseBlendMode("sparkle"); return err }(), ErrConfiguration},
		{"crop mode", func() error { _, err := ParseCropMode("diagonal"); return err }(), ErrConfiguration},
		{"no canvas", classify(blend.ErrNoCanvas), ErrNoCanvas},
		{"merge shape", classify(channel.ErrNoShape), ErrNoCanvas},
		{"size mismatch", classify(blend.ErrSizeMismatch), ErrShape},
		{"degenerate quad", classify(projection.ErrDegenerateQuad), ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("err = %v, want %v", tt.err, tt.want)
			}
		})
	}
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	if err := classify(blend.ErrSizeMismatch); !errors.Is(err, blend.ErrSizeMismatch) {
		t.Error("classify must keep the cause")
	}
}
