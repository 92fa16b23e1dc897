// Package config loads and saves program settings.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings for the canvas window.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// RenderConfig holds renderer settings.
type RenderConfig struct {
	ClearColor uint32  `yaml:"clear_color" toml:"clear_color"` // 0xRRGGBB, scene background
	Ambient    uint32  `yaml:"ambient" toml:"ambient"`         // 0xRRGGBB, 0 = directional light only
	PixelRatio float32 `yaml:"pixel_ratio" toml:"pixel_ratio"` // 0 = use the window's
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
	Watch   bool   `yaml:"watch" toml:"watch"` // reload level when the config file changes
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Hello Cubes",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Render: RenderConfig{
			ClearColor: 0x000000,
			Ambient:    0x000000,
			PixelRatio: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
			Watch: true,
		},
	}
}
