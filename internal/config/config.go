// Package config provides YAML-based configuration loading for Spider Dash.
package config

// SpiderDashConfig contains the window, asset and control settings.
// Gameplay constants are not configurable; see spiderdash.Tuning.
type SpiderDashConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Assets   AssetsConfig   `yaml:"assets"`
	Controls ControlsConfig `yaml:"controls"`
}

// WindowConfig defines the logical window.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	TickRate int    `yaml:"tick_rate"`
}

// AssetsConfig names the texture files, relative to Dir.
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	Player     string `yaml:"player"`
	Enemy      string `yaml:"enemy"`
	Background string `yaml:"background"`
	Midground  string `yaml:"midground"`
	Foreground string `yaml:"foreground"`
}

// ControlsConfig defines key bindings.
type ControlsConfig struct {
	Jump string `yaml:"jump"` // key name, e.g. "space"
}
