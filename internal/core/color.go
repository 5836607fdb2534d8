package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Terminal renditions map it to ANSI 256-color codes; window drivers map it to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorLightGray
)

// Background is the window clear color, an off-white.
var Background = color.RGBA{R: 245, G: 245, B: 245, A: 255}

var palette = map[Color]color.RGBA{
	ColorDefault:     {R: 80, G: 80, B: 80, A: 255},
	ColorRed:         {R: 230, G: 41, B: 55, A: 255},
	ColorGreen:       {R: 0, G: 228, B: 48, A: 255},
	ColorYellow:      {R: 253, G: 249, B: 0, A: 255},
	ColorBlue:        {R: 0, G: 121, B: 241, A: 255},
	ColorMagenta:     {R: 255, G: 0, B: 255, A: 255},
	ColorCyan:        {R: 102, G: 191, B: 255, A: 255},
	ColorWhite:       {R: 255, G: 255, B: 255, A: 255},
	ColorBrightWhite: {R: 255, G: 255, B: 255, A: 255},
	ColorGray:        {R: 130, G: 130, B: 130, A: 255},
	ColorLightGray:   {R: 200, G: 200, B: 200, A: 255},
}

// RGBA returns the window color for c. Unknown colors map to ColorDefault.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}
