package spiderdash

import "github.com/vovakirdan/spider-dash/internal/core"

// SpriteView is what a driver needs to blit one sprite: the sheet
// sub-rectangle and the world position.
type SpriteView struct {
	Src  core.Rect
	X, Y float64
}

// Snapshot is a read-only view of everything a driver draws in one frame.
type Snapshot struct {
	State   core.GameState
	Player  SpriteView
	Enemies []SpriteView // Only enemies overlapping the window
	Layers  [layerCount]Layer
	Labels  []Label
	Scale   float64 // Draw scale for the parallax textures
}

// ShowWorld reports whether the layers and sprites should be drawn.
// Outside Playing only text is shown.
func (s Snapshot) ShowWorld() bool {
	return s.State.Phase == core.PhasePlaying
}

// Snapshot captures the current frame for drawing.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:  g.State(),
		Player: view(g.player.Sprite),
		Layers: g.parallax.Layers,
		Labels: g.Labels(),
		Scale:  g.tuning.LayerScale,
	}

	window := core.NewRect(0, 0, g.windowW, g.windowH)
	for _, e := range g.roster.enemies {
		if e.Bounds().Intersects(window) {
			snap.Enemies = append(snap.Enemies, view(e))
		}
	}
	return snap
}

func view(s Sprite) SpriteView {
	return SpriteView{Src: s.Src, X: s.X, Y: s.Y}
}
