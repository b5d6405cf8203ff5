// Package config handles scene configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Textures TextureConfig  `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	ShowFPS    bool `yaml:"show_fps"`
	// ScreenshotDir receives F12 captures; empty means the working directory.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig holds the knobs that shape the generated scene.
// Topology is fixed once the world is built; changing these requires a restart.
type SceneConfig struct {
	Seed              uint64  `yaml:"seed"` // 0 picks a time based seed
	Speed             float64 `yaml:"speed"`
	Snowmen           int     `yaml:"snowmen"`
	TreeSkirts        int     `yaml:"tree_skirts"`
	TreeSkirtVertices int     `yaml:"tree_skirt_vertices"`
	TreeTrunkSlices   int     `yaml:"tree_trunk_slices"`
	HatSlices         int     `yaml:"hat_slices"`
	PondResolution    int     `yaml:"pond_resolution"`
	SnowballDepth     int     `yaml:"snowball_depth"`
	Reflections       bool    `yaml:"reflections"`
	Shadows           bool    `yaml:"shadows"`
}

// TextureConfig controls procedural texture generation.
type TextureConfig struct {
	Dir  string `yaml:"dir"`  // Optional directory with PNG/JPEG overrides
	Size int    `yaml:"size"` // Edge length of generated textures
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   33,
		},
		Scene: SceneConfig{
			Speed:             1.0,
			Snowmen:           9,
			TreeSkirts:        5,
			TreeSkirtVertices: 16,
			TreeTrunkSlices:   8,
			HatSlices:         16,
			PondResolution:    160,
			SnowballDepth:     3,
			Reflections:       true,
			Shadows:           true,
		},
		Textures: TextureConfig{
			Size: 256,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
