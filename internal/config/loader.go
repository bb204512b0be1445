package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CHROMA_CONFIG is set
//  3. env (prefix CHROMA_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("CHROMA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CHROMA_ADDR, CHROMA_SHARD_COUNT, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("CHROMA_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "chroma_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.ShardCount < 1:
		return fmt.Errorf("%w: shard_count must be positive", ErrInvalidConfig)
	case c.CrossingStep < 1:
		return fmt.Errorf("%w: crossing_step must be positive", ErrInvalidConfig)
	case c.ProtanMaxDegrees <= 0 || c.ProtanMaxDegrees >= 90:
		return fmt.Errorf("%w: protan_max_degrees must be in (0,90)", ErrInvalidConfig)
	case c.DeutanMinDegrees <= 90 || c.DeutanMinDegrees >= 180:
		return fmt.Errorf("%w: deutan_min_degrees must be in (90,180)", ErrInvalidConfig)
	case c.TritanCenterDegrees-c.TritanAllowanceDegrees <= c.ProtanMaxDegrees,
		c.TritanCenterDegrees+c.TritanAllowanceDegrees >= c.DeutanMinDegrees:
		return fmt.Errorf("%w: tritan band overlaps the red-green bands", ErrInvalidConfig)
	}
	for _, th := range []Thresholds{c.D15Thresholds, c.LD15Thresholds} {
		if th.Normal <= 0 || th.Mild <= th.Normal || th.Moderate <= th.Mild {
			return fmt.Errorf("%w: severity thresholds must be positive and increasing", ErrInvalidConfig)
		}
	}
	return nil
}
