package spiderdash

import "fmt"

// Geometry holds the pixel sizes of the loaded textures. Frame sizes are
// derived from it, so the game never assumes a particular sheet layout.
type Geometry struct {
	PlayerSheetW, PlayerSheetH int
	EnemySheetW, EnemySheetH   int
	LayerW                     [layerCount]int // background, midground, foreground widths
}

// DefaultGeometry describes textures for drivers that draw without image files
// (terminal and headless renditions).
func DefaultGeometry() Geometry {
	return Geometry{
		PlayerSheetW: 6 * 64,
		PlayerSheetH: 64,
		EnemySheetW:  8 * 80,
		EnemySheetH:  8 * 80,
		LayerW:       [layerCount]int{512, 512, 512},
	}
}

// PlayerFrame returns the player frame size: one of PlayerFrames columns,
// full sheet height.
func (g Geometry) PlayerFrame() (w, h float64) {
	return float64(g.PlayerSheetW / PlayerFrames), float64(g.PlayerSheetH)
}

// EnemyFrame returns the enemy frame size: one cell of the EnemyGridCols × EnemyGridRows sheet.
func (g Geometry) EnemyFrame() (w, h float64) {
	return float64(g.EnemySheetW / EnemyGridCols), float64(g.EnemySheetH / EnemyGridRows)
}

// Validate rejects sheets too small to hold a single frame.
func (g Geometry) Validate() error {
	if pw, ph := g.PlayerFrame(); pw <= 0 || ph <= 0 {
		return fmt.Errorf("spiderdash: player sheet %dx%d too small for %d frames",
			g.PlayerSheetW, g.PlayerSheetH, PlayerFrames)
	}
	if ew, eh := g.EnemyFrame(); ew <= 0 || eh <= 0 {
		return fmt.Errorf("spiderdash: enemy sheet %dx%d too small for %dx%d grid",
			g.EnemySheetW, g.EnemySheetH, EnemyGridCols, EnemyGridRows)
	}
	for i, w := range g.LayerW {
		if w <= 0 {
			return fmt.Errorf("spiderdash: layer %d has width %d", i, w)
		}
	}
	return nil
}
