package config

import (
	_ "embed"
)

//go:embed defaults/worm.yaml
var defaultWormYAML []byte

// DefaultWormConfig returns the default Gravity Worm configuration.
func DefaultWormConfig() WormConfig {
	return WormConfig{
		Timing: WormTiming{
			TickMS: 100,
		},
		Glyphs: WormGlyphs{
			Wall: "x",
			Worm: "=",
		},
		Colors: WormColors{
			NearWall: "cyan",
			FarWall:  "gray",
			Worm:     "bright_green",
			HUD:      "yellow",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWormYAML
}
