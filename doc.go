// Package compose is a batched, stateless image-composition engine.
//
// # Overview
//
// Every operation takes a params struct whose fields are sequences. The
// sequences are broadcast into one schedule: the schedule is as long as the
// longest sequence and shorter sequences repeat their last value. A nil
// sequence means "use the default value"; a non-nil empty sequence means
// there is nothing to do and the operation returns an empty result.
//
// Items of a schedule share no mutable state. They run on the Engine's
// worker pool and results are returned in schedule order.
//
// # Quick Start
//
//	e := compose.New(compose.WithWorkers(4))
//	defer e.Close()
//
//	out, err := e.Transform(compose.TransformParams{
//	    Images: []*compose.Buffer{img},
//	    Angle:  []float64{0, 90, 180, 270},
//	})
//
// # Pixel Layout
//
// Buffers hold 8-bit samples, row-major with a top-left origin, in R,G,B,A
// order. Pixel centers lie on integer coordinates. Operations never modify
// their inputs; each result is a freshly allocated buffer.
//
// # Errors
//
// Unknown enumeration values wrap ErrConfiguration, operands that cannot be
// reconciled wrap ErrShape and a canvas that cannot be sized at all wraps
// ErrNoCanvas. A failed item is reported as an *ItemError; the other items
// of the batch still complete.
package compose
