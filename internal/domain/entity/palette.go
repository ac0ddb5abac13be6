package entity

import "image/color"

// Palette is the fixed set of outline colors, picked by box index.
var Palette = [4]color.RGBA{
	{R: 255, A: 255},         // red
	{G: 255, A: 255},         // green
	{B: 255, A: 255},         // blue
	{R: 255, G: 255, A: 255}, // yellow
}

// ColorFor returns the palette color for the box at index i.
func ColorFor(i int) color.RGBA {
	return Palette[i%len(Palette)]
}
