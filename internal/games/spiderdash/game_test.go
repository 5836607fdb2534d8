package spiderdash

import (
	"strings"
	"testing"

	"github.com/vovakirdan/spider-dash/internal/config"
	"github.com/vovakirdan/spider-dash/internal/core"
)

const dt = 1.0 / 60.0

// With the default tuning the first enemy reaches the idle player on
// Playing frame 114, so a run without jumps scores 113.
const idleRunScore = 113

func newTestGame(t *testing.T) *Game {
	t.Helper()
	geom := DefaultGeometry()
	if err := geom.Validate(); err != nil {
		t.Fatalf("geometry: %v", err)
	}
	g := New(config.DefaultSpiderDashConfig())
	g.Reset(geom)
	return g
}

func jump() core.InputFrame {
	return core.JumpFrame()
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// start presses jump once to leave NotStarted.
func start(t *testing.T, g *Game) {
	t.Helper()
	res := g.Step(jump(), dt)
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("expected Playing after start, got %v", res.State.Phase)
	}
}

// runUntilOver steps without input until the run ends, failing after limit frames.
func runUntilOver(t *testing.T, g *Game, limit int) core.StepResult {
	t.Helper()
	for i := 0; i < limit; i++ {
		res := g.Step(idle(), dt)
		if res.State.GameOver() {
			return res
		}
	}
	t.Fatalf("run did not end within %d frames", limit)
	return core.StepResult{}
}

func TestNewGameStartsNotStarted(t *testing.T) {
	g := newTestGame(t)
	st := g.State()

	if st.Phase != core.PhaseNotStarted {
		t.Errorf("Phase = %v, expected NotStarted", st.Phase)
	}
	if st.Score != 0 || st.HighScore != 0 {
		t.Errorf("scores = %d/%d, expected 0/0", st.Score, st.HighScore)
	}
	if g.Roster().Len() != 60 {
		t.Errorf("roster len = %d, expected 60", g.Roster().Len())
	}

	p := g.Player()
	if p.X != 368 || p.Y != 386 {
		t.Errorf("player at (%v, %v), expected (368, 386)", p.X, p.Y)
	}
	if p.Src.W != 64 || p.Src.H != 64 {
		t.Errorf("player frame %vx%v, expected 64x64", p.Src.W, p.Src.H)
	}

	for i := 0; i < g.Roster().Len(); i++ {
		e := g.Roster().At(i)
		if want := 800 + float64(i)*300; e.X != want {
			t.Fatalf("enemy %d x = %v, expected %v", i, e.X, want)
		}
		if e.Y != 370 {
			t.Fatalf("enemy %d y = %v, expected 370", i, e.Y)
		}
	}
	if g.FinishLine() != g.Roster().Last().X {
		t.Errorf("finish line = %v, expected last enemy x %v", g.FinishLine(), g.Roster().Last().X)
	}
}

func TestNotStartedIgnoresTimeWithoutJump(t *testing.T) {
	g := newTestGame(t)
	before := g.Roster().At(0).X

	for i := 0; i < 30; i++ {
		res := g.Step(idle(), dt)
		if res.Transition.Changed() {
			t.Fatalf("unexpected transition %v -> %v", res.Transition.From, res.Transition.To)
		}
	}
	if g.State().Phase != core.PhaseNotStarted {
		t.Errorf("Phase = %v, expected NotStarted", g.State().Phase)
	}
	if g.Roster().At(0).X != before {
		t.Error("enemies moved before the game started")
	}
}

func TestStartFrameRunsNoPhysics(t *testing.T) {
	g := newTestGame(t)
	p := g.Player()
	e := g.Roster().At(0)
	layers := g.Parallax().Layers

	res := g.Step(jump(), dt)

	if res.Transition.From != core.PhaseNotStarted || res.Transition.To != core.PhasePlaying {
		t.Errorf("transition = %v -> %v, expected NotStarted -> Playing", res.Transition.From, res.Transition.To)
	}
	if res.State.Score != 0 || res.State.Frames != 0 {
		t.Errorf("score/frames = %d/%d, expected 0/0", res.State.Score, res.State.Frames)
	}
	if got := g.Player(); got.Y != p.Y || got.Velocity != 0 {
		t.Errorf("player moved on start frame: y=%v v=%v", got.Y, got.Velocity)
	}
	if g.Roster().At(0).X != e.X {
		t.Error("enemy moved on start frame")
	}
	if g.Parallax().Layers != layers {
		t.Error("parallax scrolled on start frame")
	}
}

func TestScoreIncrementsOncePerSurvivingFrame(t *testing.T) {
	g := newTestGame(t)
	start(t, g)

	for i := 1; i <= 50; i++ {
		res := g.Step(idle(), dt)
		if res.State.Score != i {
			t.Fatalf("after %d frames score = %d", i, res.State.Score)
		}
		if res.State.Frames != i {
			t.Fatalf("after %d frames Frames = %d", i, res.State.Frames)
		}
	}
}

func TestEnemiesMoveAtEnemyVelocity(t *testing.T) {
	g := newTestGame(t)
	start(t, g)

	before := g.Roster().At(3).X
	finish := g.FinishLine()
	g.Step(idle(), 0.5)

	if got := g.Roster().At(3).X; got != before-100 {
		t.Errorf("enemy x = %v, expected %v", got, before-100)
	}
	if got := g.FinishLine(); got != finish-100 {
		t.Errorf("finish line = %v, expected %v", got, finish-100)
	}
}

func TestJumpArc(t *testing.T) {
	g := newTestGame(t)
	start(t, g)

	res := g.Step(jump(), dt)
	p := g.Player()
	if p.Velocity != -600 {
		t.Fatalf("velocity after jump = %v, expected -600", p.Velocity)
	}
	if p.Y >= 386 {
		t.Fatalf("player did not leave the ground: y=%v", p.Y)
	}
	if res.State.GameOver() {
		t.Fatal("jump ended the game")
	}

	prev := p.Velocity
	landed := false
	for i := 0; i < 120; i++ {
		// Jump presses during the first half of the arc must not add another impulse.
		in := idle()
		if i < 30 {
			in = jump()
		}
		g.Step(in, dt)
		p = g.Player()

		if !p.Airborne {
			if p.Velocity != 0 {
				t.Fatalf("landing frame velocity = %v, expected 0", p.Velocity)
			}
			if p.Y < 386 {
				t.Fatalf("grounded above the floor: y=%v", p.Y)
			}
			landed = true
			break
		}
		if p.Velocity <= prev {
			t.Fatalf("frame %d: airborne velocity %v did not increase from %v", i, p.Velocity, prev)
		}
		prev = p.Velocity
	}
	if !landed {
		t.Fatal("player never landed")
	}
}

func TestJumpOnLandingFrame(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	g.Step(jump(), dt)

	// Press jump on every frame: the frame that finds the player back on
	// the floor clears airborne and then takes the new impulse.
	for i := 0; i < 120; i++ {
		res := g.Step(jump(), dt)
		if res.State.GameOver() {
			t.Fatal("run ended before the player landed")
		}
		p := g.Player()
		if p.Airborne {
			continue
		}
		if p.Velocity != -600 {
			t.Fatalf("landing frame velocity = %v, expected -600", p.Velocity)
		}
		if p.Y >= 386 {
			t.Fatalf("player did not leave the floor again: y=%v", p.Y)
		}
		return
	}
	t.Fatal("player never landed")
}

func TestPlayerAnimationFreezesWhileAirborne(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	g.Step(jump(), dt)

	frame := g.Player().Frame
	elapsed := g.Player().Elapsed
	for i := 0; i < 20; i++ {
		g.Step(idle(), dt)
		p := g.Player()
		if !p.Airborne {
			t.Fatal("landed too early for this check")
		}
		if p.Frame != frame || p.Elapsed != elapsed {
			t.Fatalf("animation advanced mid-air: frame %d->%d", frame, p.Frame)
		}
	}

	// Enemies keep animating regardless.
	if e := g.Roster().At(0); e.Frame == 0 && e.Elapsed == 0 {
		t.Error("enemy animation did not advance")
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := newTestGame(t)
	start(t, g)

	res := runUntilOver(t, g, 1000)

	if res.Transition.From != core.PhasePlaying || res.Transition.To != core.PhaseGameOver {
		t.Errorf("transition = %v -> %v", res.Transition.From, res.Transition.To)
	}
	if res.State.Outcome != core.OutcomeCrashed {
		t.Errorf("Outcome = %v, expected crashed", res.State.Outcome)
	}
	// The collision frame does not score.
	if res.State.Score != idleRunScore {
		t.Errorf("Score = %d, expected %d", res.State.Score, idleRunScore)
	}
	if res.State.Frames != idleRunScore+1 {
		t.Errorf("Frames = %d, expected %d", res.State.Frames, idleRunScore+1)
	}
	if res.State.HighScore != res.State.Score {
		t.Errorf("HighScore = %d, expected %d", res.State.HighScore, res.State.Score)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	runUntilOver(t, g, 1000)

	p := g.Player()
	e := g.Roster().At(0)
	score := g.State().Score

	for i := 0; i < 30; i++ {
		g.Step(idle(), dt)
	}
	if g.State().Phase != core.PhaseGameOver {
		t.Fatalf("Phase = %v, expected GameOver", g.State().Phase)
	}
	if g.Player() != p || g.Roster().At(0) != e {
		t.Error("world changed during GameOver")
	}
	if g.State().Score != score {
		t.Error("score changed during GameOver")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	over := runUntilOver(t, g, 1000)
	layers := g.Parallax().Layers

	res := g.Step(jump(), dt)

	if res.Transition.From != core.PhaseGameOver || res.Transition.To != core.PhasePlaying {
		t.Fatalf("transition = %v -> %v", res.Transition.From, res.Transition.To)
	}
	st := res.State
	if st.Score != 0 || st.Frames != 0 || st.Outcome != core.OutcomeNone {
		t.Errorf("run not cleared: score=%d frames=%d outcome=%v", st.Score, st.Frames, st.Outcome)
	}
	if st.HighScore != over.State.HighScore {
		t.Errorf("HighScore = %d, expected %d kept", st.HighScore, over.State.HighScore)
	}

	p := g.Player()
	if p.X != 368 || p.Y != 386 || p.Velocity != 0 {
		t.Errorf("player not reset: (%v, %v) v=%v", p.X, p.Y, p.Velocity)
	}
	for i := 0; i < g.Roster().Len(); i++ {
		if want := 800 + float64(i)*300; g.Roster().At(i).X != want {
			t.Fatalf("enemy %d x = %v, expected %v", i, g.Roster().At(i).X, want)
		}
	}
	if g.FinishLine() != g.Roster().Last().X {
		t.Errorf("finish line = %v, expected %v", g.FinishLine(), g.Roster().Last().X)
	}
	if g.Parallax().Layers != layers {
		t.Error("parallax should not reset on restart")
	}
}

func TestHighScoreIsMonotonic(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	runUntilOver(t, g, 1000)

	g.highScore = 500
	g.Step(jump(), dt)
	res := runUntilOver(t, g, 1000)

	if res.State.Score != idleRunScore {
		t.Fatalf("Score = %d, expected %d", res.State.Score, idleRunScore)
	}
	if res.State.HighScore != 500 {
		t.Errorf("lower score overwrote HighScore: %d", res.State.HighScore)
	}
}

func TestPassingFinishLineWins(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	g.finishLine = g.player.X - 1000

	res := g.Step(idle(), dt)

	if res.State.Phase != core.PhaseGameOver {
		t.Fatalf("Phase = %v, expected GameOver", res.State.Phase)
	}
	if res.State.Outcome != core.OutcomeWon {
		t.Errorf("Outcome = %v, expected won", res.State.Outcome)
	}
	// The winning frame scores before the check.
	if res.State.Score != 1 || res.State.HighScore != 1 {
		t.Errorf("score/high = %d/%d, expected 1/1", res.State.Score, res.State.HighScore)
	}
}

func TestNegativeDtIsClamped(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	before := g.Roster().At(0).X

	g.Step(idle(), -1)

	if g.Roster().At(0).X != before {
		t.Error("negative dt moved enemies")
	}
}

func TestLabels(t *testing.T) {
	g := newTestGame(t)

	labels := g.Labels()
	if len(labels) != 1 || labels[0].Text != "Press SPACE to start!" {
		t.Fatalf("NotStarted labels = %+v", labels)
	}

	start(t, g)
	for i := 0; i < 5; i++ {
		g.Step(idle(), dt)
	}
	texts := labelTexts(g.Labels())
	for _, want := range []string{"Spider Dash", "Score: 5", "High Score: 0"} {
		if !strings.Contains(texts, want) {
			t.Errorf("Playing labels missing %q: %s", want, texts)
		}
	}
	if strings.Contains(texts, "Game Over!") {
		t.Error("Playing labels should not show Game Over")
	}

	runUntilOver(t, g, 1000)
	texts = labelTexts(g.Labels())
	for _, want := range []string{"Game Over!", "Press SPACE to Restart", "High Score: 113"} {
		if !strings.Contains(texts, want) {
			t.Errorf("GameOver labels missing %q: %s", want, texts)
		}
	}
}

func TestWinLabel(t *testing.T) {
	g := newTestGame(t)
	start(t, g)
	g.finishLine = -10000
	g.Step(idle(), dt)

	texts := labelTexts(g.Labels())
	if !strings.Contains(texts, "You Win!") || strings.Contains(texts, "Game Over!") {
		t.Errorf("win labels = %s", texts)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)

	snap := g.Snapshot()
	if snap.ShowWorld() {
		t.Error("NotStarted snapshot should not show the world")
	}
	if len(snap.Enemies) != 0 {
		t.Errorf("no enemy is on screen at start, got %d", len(snap.Enemies))
	}
	if snap.Scale != 2 {
		t.Errorf("Scale = %v, expected 2", snap.Scale)
	}

	start(t, g)
	for i := 0; i < 60; i++ {
		g.Step(idle(), dt)
	}
	snap = g.Snapshot()
	if !snap.ShowWorld() {
		t.Error("Playing snapshot should show the world")
	}
	if len(snap.Enemies) == 0 {
		t.Fatal("expected the first enemy on screen after one second")
	}
	for _, e := range snap.Enemies {
		if e.X >= 800 || e.X+e.Src.W <= 0 {
			t.Errorf("off-screen enemy in snapshot at x=%v", e.X)
		}
	}
	if snap.Player.X != g.Player().X || snap.Player.Src != g.Player().Src {
		t.Error("snapshot player does not match game")
	}
}

func labelTexts(labels []Label) string {
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestConfigFileCannotChangeTuning(t *testing.T) {
	cfg, err := config.Parse([]byte(`
window:
  title: "Tuned"
physics:
  gravity: 50
  enemy_velocity: -900
enemies:
  count: 3
  spacing: 40
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	g := New(cfg)
	g.Reset(DefaultGeometry())

	if g.Title() != "Tuned" {
		t.Errorf("Title() = %q, expected the configured title", g.Title())
	}
	if got := g.Tuning(); got != DefaultTuning() {
		t.Errorf("Tuning() = %+v, expected the defaults", got)
	}
	if g.Roster().Len() != 60 {
		t.Errorf("roster len = %d, expected 60", g.Roster().Len())
	}
	if got := g.Roster().At(1).X - g.Roster().At(0).X; got != 300 {
		t.Errorf("enemy spacing = %v, expected 300", got)
	}
}
