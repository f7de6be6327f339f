package compose

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg-compose/internal/blend"
	"github.com/gogpu/gg-compose/internal/channel"
	"github.com/gogpu/gg-compose/internal/enum"
	"github.com/gogpu/gg-compose/internal/image"
	"github.com/gogpu/gg-compose/internal/projection"
)

// Error categories. Errors returned by operations wrap exactly one of them
// together with the underlying cause, so both match errors.Is.
var (
	// ErrConfiguration reports an unknown enumeration value or geometry that
	// cannot be evaluated.
	ErrConfiguration = errors.New("compose: configuration error")

	// ErrShape reports operands whose sizes or channel counts cannot be
	// reconciled.
	ErrShape = errors.New("compose: shape error")

	// ErrNoCanvas reports that no operand, explicit size or default defines
	// the output canvas.
	ErrNoCanvas = errors.New("compose: cannot determine canvas size")
)

// ItemError reports the failure of one batch item.
type ItemError struct {
	Op    string
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("compose: %s item %d: %v", e.Op, e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// classify wraps err with its root category.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConfiguration), errors.Is(err, ErrShape), errors.Is(err, ErrNoCanvas):
		return err
	case errors.Is(err, enum.ErrUnknownName),
		errors.Is(err, image.ErrUnknownMode),
		errors.Is(err, image.ErrInvalidFormat),
		errors.Is(err, image.ErrUnsupportedFormat),
		errors.Is(err, projection.ErrDegenerateQuad):
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	case errors.Is(err, blend.ErrNoCanvas), errors.Is(err, channel.ErrNoShape):
		return fmt.Errorf("%w: %w", ErrNoCanvas, err)
	case errors.Is(err, blend.ErrSizeMismatch),
		errors.Is(err, image.ErrChannelCount),
		errors.Is(err, image.ErrInvalidDimensions),
		errors.Is(err, image.ErrDataTooSmall),
		errors.Is(err, image.ErrOutOfBounds):
		return fmt.Errorf("%w: %w", ErrShape, err)
	}
	return err
}
