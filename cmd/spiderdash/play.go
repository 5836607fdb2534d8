package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-dash/internal/registry"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the 800x450 game window.

Controls:
  Space      - Start / Jump / Restart
  Close the window to quit

Examples:
  spiderdash play
  spiderdash play --driver raylib
  spiderdash play --config ./my-spiderdash.yaml --assets ./textures`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runWindow(flagDriver)
	},
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", registry.DefaultName, "Window driver (see 'spiderdash drivers')")
}

// runWindow loads config and textures and hands them to a window driver.
// An empty name picks the default driver.
func runWindow(name string) {
	logger := newLogger()
	cfg := mustLoadConfig()

	var (
		driver registry.Driver
		err    error
	)
	if name == "" {
		driver, err = registry.Default()
	} else {
		driver, err = registry.Create(name)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, registry.ErrUnknownDriver) {
			fmt.Fprintln(os.Stderr, "Run 'spiderdash drivers' to see available drivers.")
		}
		os.Exit(1)
	}

	set := mustLoadAssets(cfg, logger)

	if err := driver.Run(registry.Options{Config: cfg, Assets: set, Logger: logger}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
