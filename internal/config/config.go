// Package config provides YAML-based game configuration loading with
// embedded defaults.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/gravity-worm/internal/core"
)

// WormConfig contains all configuration for the Gravity Worm game.
type WormConfig struct {
	Timing WormTiming `yaml:"timing"`
	Glyphs WormGlyphs `yaml:"glyphs"`
	Colors WormColors `yaml:"colors"`
}

// WormTiming defines the tick period.
type WormTiming struct {
	TickMS int `yaml:"tick_ms"`
}

// WormGlyphs defines the characters used to draw the cave and worm.
type WormGlyphs struct {
	Wall string `yaml:"wall"`
	Worm string `yaml:"worm"`
}

// WormColors names the colors of each element (see core.ParseColor).
type WormColors struct {
	NearWall string `yaml:"near_wall"`
	FarWall  string `yaml:"far_wall"`
	Worm     string `yaml:"worm"`
	HUD      string `yaml:"hud"`
}

// TickInterval returns the tick period as a duration.
func (c WormConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// WallRune returns the first rune of the wall glyph.
func (c WormConfig) WallRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyphs.Wall)
	return r
}

// WormRune returns the first rune of the worm glyph.
func (c WormConfig) WormRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyphs.Worm)
	return r
}

// Validate checks that the config can drive a session.
func (c WormConfig) Validate() error {
	var errs []error
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Glyphs.Wall == "" {
		errs = append(errs, errors.New("glyphs.wall must not be empty"))
	}
	if c.Glyphs.Worm == "" {
		errs = append(errs, errors.New("glyphs.worm must not be empty"))
	}
	for _, color := range []struct{ field, name string }{
		{"colors.near_wall", c.Colors.NearWall},
		{"colors.far_wall", c.Colors.FarWall},
		{"colors.worm", c.Colors.Worm},
		{"colors.hud", c.Colors.HUD},
	} {
		if _, err := core.ParseColor(color.name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", color.field, err))
		}
	}
	return errors.Join(errs...)
}

// SpeedPreset names a fixed tick period for the whole session.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// TickMSForPreset returns the tick period for a preset, or 0 if unknown.
func TickMSForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 150
	case SpeedNormal:
		return 100
	case SpeedFast:
		return 60
	default:
		return 0
	}
}

// ParseSpeedPreset validates a preset name from the CLI.
// Empty input is allowed and means "keep the config value".
func ParseSpeedPreset(name string) (SpeedPreset, error) {
	p := SpeedPreset(name)
	if name == "" || TickMSForPreset(p) > 0 {
		return p, nil
	}
	return "", fmt.Errorf("unknown speed %q (want slow, normal or fast)", name)
}
