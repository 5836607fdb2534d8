// Package headless steps the game without a window or a clock. It backs the
// sim command and end-to-end tests, and registers as the "headless" driver.
package headless

import (
	"github.com/vovakirdan/spider-dash/internal/core"
	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
)

// DefaultLookahead is how close, in units, the autopilot lets an enemy get
// to the spider before jumping.
const DefaultLookahead = 50

// DefaultFrames bounds a headless driver session: one minute at 60 TPS.
const DefaultFrames = 60 * 60

// Script decides the input for one frame. frame counts from 0.
type Script func(frame int, g *spiderdash.Game) core.InputFrame

// Idle never presses anything.
func Idle() Script {
	return func(int, *spiderdash.Game) core.InputFrame {
		return core.NewInputFrame()
	}
}

// JumpAt presses jump on exactly the listed frames.
func JumpAt(frames ...int) Script {
	set := make(map[int]bool, len(frames))
	for _, f := range frames {
		set[f] = true
	}
	return func(frame int, _ *spiderdash.Game) core.InputFrame {
		if set[frame] {
			return core.JumpFrame()
		}
		return core.NewInputFrame()
	}
}

// Autopilot starts and restarts runs, and jumps whenever the next enemy is
// within lookahead units of the spider's leading edge.
func Autopilot(lookahead float64) Script {
	return func(_ int, g *spiderdash.Game) core.InputFrame {
		if g.State().Phase != core.PhasePlaying {
			return core.JumpFrame()
		}

		p := g.Player().Bounds()
		r := g.Roster()
		for i := 0; i < r.Len(); i++ {
			e := r.At(i).Bounds()
			if e.Right() <= p.X {
				continue
			}
			if e.X-p.Right() <= lookahead {
				return core.JumpFrame()
			}
			break
		}
		return core.NewInputFrame()
	}
}

// Result summarizes a headless session.
type Result struct {
	Frames      int               // Frames stepped
	Transitions []core.Transition // Every phase change, in order
	Runs        []core.GameState  // State at the end of each finished run
	Final       core.GameState
}

// Wins counts the finished runs that reached the finish line.
func (r Result) Wins() int {
	n := 0
	for _, run := range r.Runs {
		if run.Outcome == core.OutcomeWon {
			n++
		}
	}
	return n
}

// Run steps g for up to frames frames of dt seconds, asking script for input.
// If stopOnGameOver is set it returns as soon as a run ends.
func Run(g *spiderdash.Game, frames int, dt float64, script Script, stopOnGameOver bool) Result {
	var res Result
	for i := 0; i < frames; i++ {
		step := g.Step(script(i, g), dt)
		res.Frames++

		if step.Transition.Changed() {
			res.Transitions = append(res.Transitions, step.Transition)
			if step.Transition.To == core.PhaseGameOver {
				res.Runs = append(res.Runs, step.State)
				if stopOnGameOver {
					break
				}
			}
		}
	}
	res.Final = g.State()
	return res
}
