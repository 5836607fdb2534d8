package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spider-dash/internal/platform/tui"
	"github.com/vovakirdan/spider-dash/internal/storage"
)

var flagTermLedger bool

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play Spider Dash in the terminal. The game keeps its 800x450
logical window and is scaled onto the terminal grid; no textures are needed.

Controls:
  Space/Up   - Start / Jump / Restart
  Tab        - Best runs this session (with --ledger)
  Ctrl+S     - Save a text screenshot to ~/.spiderdash/screenshots
  Q/Esc      - Quit

Terminals report a held key as repeated presses, so holding jump
jumps again on landing. Tap it instead; the window drivers only
see the first press.`,
	Args: cobra.NoArgs,
	Run:  runTerm,
}

func init() {
	termCmd.Flags().BoolVar(&flagTermLedger, "ledger", false, "Keep an in-memory list of this session's runs")
}

func runTerm(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := mustLoadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var recorder tui.RunRecorder
	if flagTermLedger {
		store, err := storage.Open(storage.MemoryPath)
		if err != nil {
			logger.Warn("could not open run ledger", "error", err)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	if err := tui.Run(cfg, recorder, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
