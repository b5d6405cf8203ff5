// Package game runs the viewer: it opens the window, builds the scene and
// drives the frame loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/snowmen/internal/config"
	"github.com/Faultbox/snowmen/internal/engine/input"
	"github.com/Faultbox/snowmen/internal/engine/renderer"
	"github.com/Faultbox/snowmen/internal/engine/screenshot"
	"github.com/Faultbox/snowmen/internal/engine/texture"
	"github.com/Faultbox/snowmen/internal/engine/window"
	"github.com/Faultbox/snowmen/internal/game/world"
	"github.com/Faultbox/snowmen/internal/logger"
)

// Title is the window title.
const Title = "Snowmen"

// Game is the viewer instance.
type Game struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	paused   bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	world    *world.World
	shots    *screenshot.Capture
}

// New opens the window and builds the scene.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
		shots:  screenshot.New(cfg.Graphics.ScreenshotDir, "snowmen"),
	}
	g.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Window first: it creates the OpenGL context.
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.input = input.New()

	if err := g.buildScene(); err != nil {
		g.Close()
		return nil, err
	}

	g.log.Info("viewer initialized", zap.Uint64("seed", g.world.Seed))
	return g, nil
}

func (g *Game) buildScene() error {
	var err error
	if g.world, err = world.New(g.config.Scene); err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}

	tex, err := LoadTextures(g.config.Textures, g.config.Scene.TreeSkirtVertices)
	if err != nil {
		return err
	}
	if err := g.world.Upload(g.renderer, tex); err != nil {
		return fmt.Errorf("failed to upload scene: %w", err)
	}
	return nil
}

// LoadTextures paints the scene textures and applies any overrides found in
// the configured directory.
func LoadTextures(cfg config.TextureConfig, treeEdges int) (texture.Set, error) {
	tex, err := texture.Paint(cfg.Size, treeEdges)
	if err != nil {
		return nil, fmt.Errorf("failed to paint textures: %w", err)
	}
	if cfg.Dir == "" {
		return tex, nil
	}
	replaced, err := texture.LoadOverrides(cfg.Dir, cfg.Size, tex)
	if err != nil {
		return nil, err
	}
	logger.Info("texture overrides loaded", zap.String("dir", cfg.Dir), zap.Int("count", len(replaced)))
	return tex, nil
}

// Run starts the frame loop and returns when the viewer is closed.
func (g *Game) Run() error {
	g.running = true
	limiter := NewLimiter(g.config.Graphics.FPSLimit)
	fps := NewFPSCounter(time.Now())

	g.log.Info("starting frame loop", zap.Int("fps_limit", g.config.Graphics.FPSLimit))

	for g.running {
		start := time.Now()

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleInput()

		if !g.paused {
			g.world.Update()
		}
		g.world.Render(g.renderer, g.renderer.Aspect())
		g.window.SwapBuffers()

		if rate, ok := fps.Tick(time.Now()); ok {
			g.log.Debug("fps", zap.Float64("rate", rate), zap.Int("draws", g.renderer.Draws()))
			if g.config.Graphics.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("%s - %.0f fps", Title, rate))
			}
		}

		limiter.Wait(start, time.Now(), time.Sleep)
	}

	return nil
}

func (g *Game) handleInput() {
	if width, height, ok := g.input.Resized(); ok {
		dw, dh := g.window.DrawableSize()
		g.log.Debug("window resized", zap.Int("width", width), zap.Int("height", height))
		g.renderer.Resize(dw, dh)
	}
	if g.input.IsKeyPressed(sdl.SCANCODE_SPACE) {
		g.paused = !g.paused
		g.log.Info("animation toggled", zap.Bool("paused", g.paused))
	}
	if g.input.IsKeyPressed(sdl.SCANCODE_F12) {
		if err := g.screenshot(); err != nil {
			g.log.Error("screenshot failed", zap.Error(err))
		}
	}
}

func (g *Game) screenshot() error {
	img, err := screenshot.FromPixels(g.renderer.ReadPixels())
	if err != nil {
		return err
	}
	path, err := g.shots.Save(img)
	if err != nil {
		return err
	}
	g.log.Info("screenshot saved", zap.String("path", path))
	return nil
}

// Close releases the scene, the renderer and the window.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	var err error
	if g.world != nil && g.renderer != nil {
		err = multierr.Append(err, g.world.Close(g.renderer))
	}
	if g.renderer != nil {
		err = multierr.Append(err, g.renderer.Close())
	}
	if err != nil {
		g.log.Warn("releasing GPU resources", zap.Error(err))
	}
	if g.window != nil {
		g.window.Close()
	}
}
