package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-dash/internal/core"
	"github.com/vovakirdan/spider-dash/internal/games/spiderdash"
	"github.com/vovakirdan/spider-dash/internal/platform/headless"
)

var (
	flagSimFrames    int
	flagSimLookahead float64
	flagSimIdle      bool
	flagSimStop      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print a summary",
	Long: `Step the game at a fixed 1/tick_rate without opening a window.
By default an autopilot starts each run and jumps when the next enemy
gets within --lookahead units. With --idle nothing is pressed after
the start, so the first enemy ends the run.

Examples:
  spiderdash sim
  spiderdash sim --frames 600 --stop
  spiderdash sim --lookahead 90
  spiderdash sim --idle --stop`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", headless.DefaultFrames, "Frames to simulate")
	simCmd.Flags().Float64Var(&flagSimLookahead, "lookahead", headless.DefaultLookahead, "Autopilot jump distance in units")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Start the run, then never jump")
	simCmd.Flags().BoolVar(&flagSimStop, "stop", false, "Stop at the first game over")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := mustLoadConfig()

	geom := spiderdash.DefaultGeometry()
	if err := geom.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := spiderdash.New(cfg)
	game.Reset(geom)

	script := headless.Autopilot(flagSimLookahead)
	if flagSimIdle {
		script = headless.JumpAt(0)
	}

	dt := 1.0 / float64(cfg.Window.TickRate)
	res := headless.Run(game, flagSimFrames, dt, script, flagSimStop)

	for _, tr := range res.Transitions {
		logger.Debug("phase changed", "from", tr.From, "to", tr.To)
	}

	fmt.Printf("Simulated %d frames (%.1fs)\n", res.Frames, float64(res.Frames)*dt)
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %6s  %6s\n", "Run", "Result", "Score", "Frames")
	fmt.Printf("  %-4s  %-8s  %6s  %6s\n", "---", "------", "-----", "------")
	for i, run := range res.Runs {
		fmt.Printf("  %-4d  %-8s  %6d  %6d\n", i+1, run.Outcome, run.Score, run.Frames)
	}
	if res.Final.Phase == core.PhasePlaying {
		fmt.Printf("  %-4s  %-8s  %6d  %6d\n", "-", "running", res.Final.Score, res.Final.Frames)
	}
	fmt.Println()
	fmt.Printf("Wins: %d  High score: %d\n", res.Wins(), res.Final.HighScore)
}
