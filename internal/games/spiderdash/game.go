// Package spiderdash implements Spider Dash, a side-scrolling runner: the
// spider jumps over a procession of enemies crossing a parallax background
// and scores a point for every frame it survives.
//
// The game is pure logic. Drivers feed it edge-triggered input and the
// elapsed time each frame, then draw from Snapshot or Render.
package spiderdash

import (
	"github.com/vovakirdan/spider-dash/internal/config"
	"github.com/vovakirdan/spider-dash/internal/core"
)

// Game implements the Spider Dash state machine.
type Game struct {
	cfg    config.SpiderDashConfig
	tuning Tuning
	geom   Geometry

	windowW float64
	windowH float64

	phase      core.Phase
	outcome    core.Outcome
	player     Player
	roster     *Roster
	parallax   Parallax
	finishLine float64 // x of the last enemy; passing it wins the run
	score      int
	highScore  int
	frames     int // Playing frames in the current run
}

// New creates a game in the NotStarted phase using the given configuration.
// Reset must be called with the texture geometry before the first Step.
func New(cfg config.SpiderDashConfig) *Game {
	return NewWithTuning(cfg, DefaultTuning())
}

// NewWithTuning is New with gameplay constants other than DefaultTuning.
func NewWithTuning(cfg config.SpiderDashConfig, t Tuning) *Game {
	return &Game{
		cfg:     cfg,
		tuning:  t,
		windowW: float64(cfg.Window.Width),
		windowH: float64(cfg.Window.Height),
	}
}

// ID returns the identifier used for logs and the run ledger.
func (g *Game) ID() string {
	return "spiderdash"
}

// Title returns the display name, which is also the window title.
func (g *Game) Title() string {
	return g.cfg.Window.Title
}

// Tuning returns the gameplay constants in use.
func (g *Game) Tuning() Tuning {
	return g.tuning
}

// Reset builds all sprites from the texture geometry and returns the game to
// NotStarted. HighScore is cleared; use restart to keep it.
func (g *Game) Reset(geom Geometry) {
	g.geom = geom

	t := g.tuning

	pw, ph := geom.PlayerFrame()
	g.player = Player{
		Sprite: Sprite{
			Src:       core.NewRect(0, 0, pw, ph),
			FrameTime: t.FrameTime,
		},
	}

	ew, eh := geom.EnemyFrame()
	g.roster = NewRoster(t.EnemyCount, ew, eh, t.FrameTime, t.EnemySpacing)

	for i := range g.parallax.Layers {
		g.parallax.Layers[i] = Layer{
			Rate: t.LayerRates[i],
			Span: float64(geom.LayerW[i]) * t.LayerScale,
		}
	}

	g.phase = core.PhaseNotStarted
	g.highScore = 0
	g.restart()
}

// restart puts the player, enemies and finish line back at their start
// positions and clears the run. HighScore and the parallax offsets survive.
func (g *Game) restart() {
	g.player.Place(g.windowW, g.windowH)
	g.roster.Reset(g.windowW, g.windowH)
	g.finishLine = g.roster.Last().X
	g.outcome = core.OutcomeNone
	g.score = 0
	g.frames = 0
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}
	from := g.phase

	switch g.phase {
	case core.PhaseNotStarted:
		if in.Has(core.ActionJump) {
			g.phase = core.PhasePlaying
		}
	case core.PhasePlaying:
		g.play(in, dt)
	case core.PhaseGameOver:
		if in.Has(core.ActionJump) {
			g.restart()
			g.phase = core.PhasePlaying
		}
	}

	return core.StepResult{
		State:      g.State(),
		Transition: core.Transition{From: from, To: g.phase},
	}
}

// play runs one Playing frame. The order of the steps matters: the ground
// test uses last frame's position, and the jump impulse lands before the
// position is integrated.
func (g *Game) play(in core.InputFrame, dt float64) {
	g.frames++

	g.parallax.Advance(dt)

	g.player.applyGravity(g.windowH, g.tuning.Gravity, dt)
	if in.Has(core.ActionJump) {
		g.player.jump(g.tuning.JumpVelocity)
	}

	dx := g.tuning.EnemyVelocity * dt
	g.roster.Move(dx)
	g.finishLine += dx

	g.player.Y += g.player.Velocity * dt

	if !g.player.Airborne {
		g.player.Advance(dt, PlayerFrames-1)
	}
	g.roster.Animate(dt, EnemyFrames-1)

	if g.roster.Collides(g.player.Bounds(), g.tuning.EnemyPadding) {
		g.end(core.OutcomeCrashed)
		return
	}

	g.score++

	if g.finishLine+g.roster.Last().Src.W < g.player.X {
		g.end(core.OutcomeWon)
	}
}

// end moves to GameOver and commits the high score.
func (g *Game) end(outcome core.Outcome) {
	g.phase = core.PhaseGameOver
	g.outcome = outcome
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Outcome:   g.outcome,
		Score:     g.score,
		HighScore: g.highScore,
		Frames:    g.frames,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Roster returns the enemy roster. Callers must not modify it.
func (g *Game) Roster() *Roster {
	return g.roster
}

// Parallax returns a copy of the scroll layers.
func (g *Game) Parallax() Parallax {
	return g.parallax
}

// FinishLine returns the current finish line x-coordinate.
func (g *Game) FinishLine() float64 {
	return g.finishLine
}
