package config

import (
	_ "embed"
)

//go:embed defaults/spiderdash.yaml
var defaultSpiderDashYAML []byte

// DefaultSpiderDashConfig returns the built-in configuration.
// It mirrors defaults/spiderdash.yaml and is used if the embedded file fails to parse.
func DefaultSpiderDashConfig() SpiderDashConfig {
	return SpiderDashConfig{
		Window: WindowConfig{
			Width:    800,
			Height:   450,
			Title:    "Spider Dash",
			TickRate: 60,
		},
		Assets: AssetsConfig{
			Dir:        "textures",
			Player:     "spider.png",
			Enemy:      "enemy.png",
			Background: "background.png",
			Midground:  "midground.png",
			Foreground: "foreground.png",
		},
		Controls: ControlsConfig{
			Jump: "space",
		},
	}
}
