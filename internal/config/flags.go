package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed      = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen    = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth         = flag.Int("width", 0, "Window width")
	flagHeight        = flag.Int("height", 0, "Window height")
	flagSeed          = flag.Uint64("seed", 0, "Random seed for scene layout (0 = time based)")
	flagSpeed         = flag.Float64("speed", 0, "Animation speed multiplier")
	flagNoShadows     = flag.Bool("no-shadows", false, "Disable planar shadows")
	flagNoReflections = flag.Bool("no-reflections", false, "Disable ice reflections")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagSpeed > 0 {
		cfg.Scene.Speed = *flagSpeed
	}
	if *flagNoShadows {
		cfg.Scene.Shadows = false
	}
	if *flagNoReflections {
		cfg.Scene.Reflections = false
	}
}
