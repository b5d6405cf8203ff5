package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.FPSLimit != 33 {
		t.Errorf("expected fps limit 33, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Scene.Snowmen != 9 {
		t.Errorf("expected 9 snowmen, got %d", cfg.Scene.Snowmen)
	}
	if cfg.Scene.PondResolution != 160 {
		t.Errorf("expected pond resolution 160, got %d", cfg.Scene.PondResolution)
	}
	if cfg.Scene.SnowballDepth != 3 {
		t.Errorf("expected snowball depth 3, got %d", cfg.Scene.SnowballDepth)
	}
	if !cfg.Scene.Shadows || !cfg.Scene.Reflections {
		t.Error("expected shadows and reflections enabled by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  fps_limit: 60

scene:
  seed: 42
  speed: 2.5
  snowmen: 4
  pond_resolution: 96
  shadows: false

textures:
  dir: "textures"
  size: 512

logging:
  level: "debug"
  log_file: "snowmen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Scene.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Scene.Seed)
	}
	if cfg.Scene.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", cfg.Scene.Speed)
	}
	if cfg.Scene.Snowmen != 4 {
		t.Errorf("expected 4 snowmen, got %d", cfg.Scene.Snowmen)
	}
	if cfg.Scene.Shadows {
		t.Error("expected shadows to be disabled")
	}
	// Fields absent from the file keep their defaults.
	if cfg.Scene.TreeSkirts != 5 {
		t.Errorf("expected tree skirts 5 from defaults, got %d", cfg.Scene.TreeSkirts)
	}
	if cfg.Textures.Size != 512 {
		t.Errorf("expected texture size 512, got %d", cfg.Textures.Size)
	}
	if cfg.Logging.LogFile != "snowmen.log" {
		t.Errorf("expected log file 'snowmen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
scene:
  snowmen: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  snowmen: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "seed and speed flags",
			setup: func() {
				*flagSeed = 7
				*flagSpeed = 3
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Scene.Seed)
				}
				if cfg.Scene.Speed != 3 {
					t.Errorf("expected speed 3, got %f", cfg.Scene.Speed)
				}
			},
			teardown: func() {
				*flagSeed = 0
				*flagSpeed = 0
			},
		},
		{
			name: "pass toggles",
			setup: func() {
				*flagNoShadows = true
				*flagNoReflections = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Shadows || cfg.Scene.Reflections {
					t.Error("expected shadows and reflections disabled")
				}
			},
			teardown: func() {
				*flagNoShadows = false
				*flagNoReflections = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  snowmen: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Width = 0
	cfg.Scene.Speed = -1
	cfg.Scene.PondResolution = 4
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := len(multierr.Errors(err)); got != 4 {
		t.Errorf("expected 4 problems, got %d: %v", got, err)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Error("expected errors to wrap ErrInvalid")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Seed = 99
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Scene.Seed != 99 {
		t.Errorf("expected seed 99 after reload, got %d", loaded.Scene.Seed)
	}
}
