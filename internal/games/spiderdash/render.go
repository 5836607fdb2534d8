package spiderdash

import (
	"math"

	"github.com/vovakirdan/spider-dash/internal/core"
)

// Glyphs for the terminal rendition.
const (
	SpiderBody = '▓'
	SpiderLeg1 = '╱'
	SpiderLeg2 = '╲'
	EnemyBody  = '█'
	EnemyEye   = '◆'
)

// Repeating strips for the three parallax layers.
var layerStrips = [layerCount]string{
	"   .        *     .          .    *        ",
	"      /\\          /\\/\\            /\\      ",
	"═══─═══─═══─═══─",
}

var layerColors = [layerCount]core.Color{core.ColorGray, core.ColorBlue, core.ColorGreen}

// Render draws the current frame into a character screen, scaling the
// logical window onto however many cells the screen has.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	if g.phase == core.PhasePlaying {
		g.renderLayers(dst)
		for _, e := range g.roster.enemies {
			g.renderEnemy(dst, e)
		}
		g.renderSpider(dst)
	}

	for _, l := range g.Labels() {
		x, y := g.toCell(dst, l.X, l.Y)
		dst.DrawTextColor(x, y, l.Text, l.Color)
	}
}

// scale returns cells per logical unit on each axis.
func (g *Game) scale(dst *core.Screen) (sx, sy float64) {
	return float64(dst.Width()) / g.windowW, float64(dst.Height()) / g.windowH
}

// toCell maps a logical point to a cell.
func (g *Game) toCell(dst *core.Screen, x, y float64) (int, int) {
	sx, sy := g.scale(dst)
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// toCellRect maps a logical rectangle to a cell rectangle at least one cell big.
func (g *Game) toCellRect(dst *core.Screen, r core.Rect) (x, y, w, h int) {
	sx, sy := g.scale(dst)
	x, y = g.toCell(dst, r.X, r.Y)
	w = max(1, int(math.Round(r.W*sx)))
	h = max(1, int(math.Round(r.H*sy)))
	return x, y, w, h
}

// renderLayers draws the background sky, midground hills and foreground
// ground line, each scrolling with its layer offset.
func (g *Game) renderLayers(dst *core.Screen) {
	sx, _ := g.scale(dst)
	rows := [layerCount]int{1, dst.Height() - 4, dst.Height() - 1}

	for i, layer := range g.parallax.Layers {
		strip := []rune(layerStrips[i])
		shift := int(-layer.Offset * sx)
		for x := 0; x < dst.Width(); x++ {
			r := strip[(x+shift)%len(strip)]
			if r != ' ' {
				dst.SetColor(x, rows[i], r, layerColors[i])
			}
		}
	}
}

// renderSpider draws the player, alternating legs with the animation frame.
func (g *Game) renderSpider(dst *core.Screen) {
	x, y, w, h := g.toCellRect(dst, g.player.Bounds())
	dst.FillRect(x, y, w, h, SpiderBody, core.ColorMagenta)

	legs := y + h - 1
	for dx := 0; dx < w; dx++ {
		leg := SpiderLeg1
		if (dx+g.player.Frame)%2 == 1 {
			leg = SpiderLeg2
		}
		dst.SetColor(x+dx, legs, leg, core.ColorMagenta)
	}
}

// renderEnemy draws one enemy if any part of it is on screen.
func (g *Game) renderEnemy(dst *core.Screen, e Sprite) {
	x, y, w, h := g.toCellRect(dst, e.Bounds())
	if x >= dst.Width() || x+w <= 0 {
		return
	}
	dst.FillRect(x, y, w, h, EnemyBody, core.ColorRed)
	eye := x + e.Frame%w
	dst.SetColor(eye, y, EnemyEye, core.ColorYellow)
}
