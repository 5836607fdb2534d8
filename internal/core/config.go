package core

// RuntimeConfig contains configuration passed to the game by a driver.
// ScreenW/ScreenH are in driver units: logical pixels for window drivers,
// character cells for terminal renditions.
type RuntimeConfig struct {
	ScreenW  int // Screen width
	ScreenH  int // Screen height
	TickRate int // Target frames per second (default 60)
}

// FrameTime returns the nominal seconds per frame for the tick rate.
func (c RuntimeConfig) FrameTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Outcome records how the last run ended.
type Outcome int

const (
	OutcomeNone    Outcome = iota
	OutcomeCrashed         // an enemy hit the player
	OutcomeWon             // the finish line passed the player
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// GameState is the externally visible state of the game.
type GameState struct {
	Phase     Phase
	Outcome   Outcome // Set while Phase == PhaseGameOver
	Score     int     // Frames survived in the current run
	HighScore int     // Best Score this process has seen
	Frames    int     // Playing frames stepped in the current run
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Transition describes a phase change that happened during a step.
type Transition struct {
	From, To Phase
}

// Changed reports whether the step changed phase.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State      GameState
	Transition Transition
}
