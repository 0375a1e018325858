// Package ui holds what the desktop and terminal frontends share: the piece
// palette and the key bindings.
package ui

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var palette = [...]color.RGBA{
	{102, 191, 255, 255}, // I
	{255, 203, 0, 255},   // O
	{135, 60, 190, 255},  // T
	{0, 158, 47, 255},    // S
	{255, 109, 194, 255}, // Z
	{0, 121, 241, 255},   // J
	{255, 161, 0, 255},   // L
}

var (
	Background = color.RGBA{18, 18, 24, 255}
	Grid       = color.RGBA{40, 40, 52, 255}
	Text       = color.RGBA{230, 230, 230, 255}
)

// Color returns the fill of a non-empty cell. Empty cells get the
// background.
func Color(c tetris.Cell) color.RGBA {
	if c == tetris.Empty || int(c) > len(palette) {
		return Background
	}
	return palette[c-1]
}

// Ghost returns the translucent fill drawn where the active piece lands.
func Ghost(c tetris.Cell) color.RGBA {
	fill := Color(c)
	return color.RGBA{fill.R / 4, fill.G / 4, fill.B / 4, 64}
}
