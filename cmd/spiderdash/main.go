// spiderdash is a side-scrolling runner: jump the spider over the
// procession of enemies and reach the end of the line.
//
// Usage:
//
//	spiderdash               - Open the game window (default driver)
//	spiderdash play          - Open the game window with a chosen driver
//	spiderdash drivers       - List window drivers compiled in
//	spiderdash term          - Play in the terminal
//	spiderdash serve         - Start SSH server for remote play
//	spiderdash sim           - Run the game headless and print a summary
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default: search path, then built-in)
//	--assets <dir>      - Textures directory (default: ./textures)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-dash/internal/assets"
	"github.com/vovakirdan/spider-dash/internal/config"

	// Import drivers to register them
	_ "github.com/vovakirdan/spider-dash/internal/platform/ebiten"
	_ "github.com/vovakirdan/spider-dash/internal/platform/headless"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spiderdash",
	Short: "Spider Dash - jump the spider over everything in its way",
	Long: `Spider Dash is a side-scrolling runner. Press SPACE to start,
SPACE to jump, and survive as long as you can. Every frame you
survive is a point; pass the last enemy to win the run.

Available commands:
  play     - Open the game window with a chosen driver
  drivers  - List window drivers
  term     - Play in the terminal
  serve    - Start SSH server for remote play
  sim      - Run headless and print a summary

Examples:
  spiderdash
  spiderdash play --driver raylib
  spiderdash term
  spiderdash serve --ssh :2222
  spiderdash sim --frames 6000`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		runWindow("")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Textures directory (overrides assets.dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spiderdash",
		Level:           level,
	})
}

// mustLoadConfig loads the config and applies --assets, exiting on error.
func mustLoadConfig() config.SpiderDashConfig {
	cfg, err := config.LoadSpiderDash(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	return cfg
}

// mustLoadAssets decodes every texture. A missing or broken texture is fatal.
func mustLoadAssets(cfg config.SpiderDashConfig, logger *log.Logger) *assets.Set {
	set, err := assets.Load(assets.Dir(cfg.Assets.Dir), cfg.Assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading textures from %s: %v\n", cfg.Assets.Dir, err)
		os.Exit(1)
	}

	geom := set.Geometry()
	logger.Debug("textures loaded", "dir", cfg.Assets.Dir,
		"player", fmt.Sprintf("%dx%d", geom.PlayerSheetW, geom.PlayerSheetH),
		"enemy", fmt.Sprintf("%dx%d", geom.EnemySheetW, geom.EnemySheetH))
	return set
}
