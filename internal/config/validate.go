package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var err error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, invalid("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FPSLimit < 0 {
		err = multierr.Append(err, invalid("graphics: fps_limit %d is negative", c.Graphics.FPSLimit))
	}

	s := c.Scene
	if s.Speed <= 0 {
		err = multierr.Append(err, invalid("scene: speed %g must be positive", s.Speed))
	}
	if s.Snowmen < 1 {
		err = multierr.Append(err, invalid("scene: need at least one snowman, got %d", s.Snowmen))
	}
	if s.TreeSkirts < 1 {
		err = multierr.Append(err, invalid("scene: tree_skirts %d must be at least 1", s.TreeSkirts))
	}
	if s.TreeSkirtVertices < 3 {
		err = multierr.Append(err, invalid("scene: tree_skirt_vertices %d must be at least 3", s.TreeSkirtVertices))
	}
	if s.TreeTrunkSlices < 3 {
		err = multierr.Append(err, invalid("scene: tree_trunk_slices %d must be at least 3", s.TreeTrunkSlices))
	}
	if s.HatSlices < 3 {
		err = multierr.Append(err, invalid("scene: hat_slices %d must be at least 3", s.HatSlices))
	}
	// Tree anchors sample the pond ring at twelve evenly spaced spokes.
	if s.PondResolution < 12 {
		err = multierr.Append(err, invalid("scene: pond_resolution %d must be at least 12", s.PondResolution))
	}
	if s.SnowballDepth < 0 || s.SnowballDepth > 6 {
		err = multierr.Append(err, invalid("scene: snowball_depth %d out of range [0,6]", s.SnowballDepth))
	}

	if c.Textures.Size < 16 {
		err = multierr.Append(err, invalid("textures: size %d must be at least 16", c.Textures.Size))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, invalid("logging: unknown level %q", c.Logging.Level))
	}

	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
