package spiderdash

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/spider-dash/internal/core"
)

// Label is a line of HUD text positioned in logical window units.
type Label struct {
	Text  string
	X, Y  float64
	Size  int // Font size in logical units
	Color core.Color
}

// Labels returns the HUD text for the current phase.
func (g *Game) Labels() []Label {
	key := strings.ToUpper(g.cfg.Controls.Jump)

	switch g.phase {
	case core.PhaseNotStarted:
		return []Label{
			{Text: fmt.Sprintf("Press %s to start!", key), X: 190, Y: 200, Size: 20, Color: core.ColorLightGray},
		}

	case core.PhasePlaying:
		return g.scoreLabels(core.ColorWhite)

	case core.PhaseGameOver:
		headline, color := "Game Over!", core.ColorRed
		if g.outcome == core.OutcomeWon {
			headline, color = "You Win!", core.ColorGreen
		}
		x := float64(int(g.windowW) / 4)
		y := float64(int(g.windowH) / 2)
		return append(g.scoreLabels(core.ColorGray),
			Label{Text: headline, X: x, Y: y, Size: 40, Color: color},
			Label{Text: fmt.Sprintf("Press %s to Restart", key), X: x + 20, Y: y + 40, Size: 20, Color: color},
		)
	}
	return nil
}

// scoreLabels returns the title, score and high score lines in the top-left corner.
func (g *Game) scoreLabels(c core.Color) []Label {
	return []Label{
		{Text: g.Title(), X: 10, Y: 10, Size: 20, Color: c},
		{Text: fmt.Sprintf("Score: %d", g.score), X: 10, Y: 40, Size: 20, Color: c},
		{Text: fmt.Sprintf("High Score: %d", g.highScore), X: 10, Y: 70, Size: 20, Color: c},
	}
}
