package renderer

import (
	"image"
)

// Tile is one rectangular region of the output image, rendered as a unit
// by a single worker
type Tile struct {
	Bounds image.Rectangle
}

// NewTileGrid divides the image into tileSize × tileSize tiles, clipping
// the last row and column to the image bounds so every pixel is covered
// exactly once
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			x1 := min(x+tileSize, width)
			y1 := min(y+tileSize, height)
			tiles = append(tiles, &Tile{Bounds: image.Rect(x, y, x1, y1)})
		}
	}
	return tiles
}
