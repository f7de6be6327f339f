package geometry

import (
	"github.com/gogpu/gg-compose/internal/image"
)

// Tile repeats src tileX times horizontally and tileY times vertically by
// modulo addressing, then scales the repetition back to the size of src.
// Counts below 1 are treated as 1; Tile(src, 1, 1) returns a copy.
func Tile(src *image.Buffer, tileX, tileY int, interp image.Interpolation) (*image.Buffer, error) {
	tileX = max(tileX, 1)
	tileY = max(tileY, 1)
	if tileX == 1 && tileY == 1 {
		return src.Clone(), nil
	}

	w, h := src.Bounds()
	canvas := image.GetScratch(w*tileX, h*tileY, src.Format())
	if canvas == nil {
		return nil, image.ErrInvalidDimensions
	}
	defer image.PutScratch(canvas)

	for y := range h * tileY {
		srow := src.Row(y % h)
		drow := canvas.Row(y)
		for i := 0; i < len(drow); i += len(srow) {
			copy(drow[i:], srow)
		}
	}

	return image.Resize(canvas, w, h, interp)
}
