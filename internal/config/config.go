// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields koanf-tagged and loadable from file and environment.
// - Provide New() to build a Config with defaults; Load(ctx) layers sources.
// - External errors must be wrapped via this package's error helpers.
package config

// Thresholds holds the severity boundaries for one panel, expressed over
// the excess perceptual distance of an arrangement.
type Thresholds struct {
	Normal   float64 `koanf:"normal"`
	Mild     float64 `koanf:"mild"`
	Moderate float64 `koanf:"moderate"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ShardCount configures the number of shards in the session store.
	ShardCount int `koanf:"shard_count"`

	// SessionCapacity bounds the number of concurrently active sessions.
	SessionCapacity int `koanf:"session_capacity"`

	// SeenSize bounds the scored-session idempotency cache.
	SeenSize int `koanf:"seen_size"`

	// CrossingStep is the reference-order distance beyond which an
	// adjacency counts as a crossing.
	CrossingStep int `koanf:"crossing_step"`

	// Angular band calibration for the confusion-axis classification,
	// in degrees within [0,180).
	ProtanMaxDegrees       float64 `koanf:"protan_max_degrees"`
	DeutanMinDegrees       float64 `koanf:"deutan_min_degrees"`
	TritanCenterDegrees    float64 `koanf:"tritan_center_degrees"`
	TritanAllowanceDegrees float64 `koanf:"tritan_allowance_degrees"`

	// Per-panel severity thresholds. The desaturated panel runs at lower
	// chroma, so its thresholds are scaled down accordingly.
	D15Thresholds  Thresholds `koanf:"d15_thresholds"`
	LD15Thresholds Thresholds `koanf:"ld15_thresholds"`
}

// New creates a Config populated with defaults. The scoring calibration
// defaults follow standard D-15 scoring practice; see the score package.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Addr:                   ":8080",
		ShardCount:             8,
		SessionCapacity:        100_000,
		SeenSize:               50_000,
		CrossingStep:           2,
		ProtanMaxDegrees:       20,
		DeutanMinDegrees:       160,
		TritanCenterDegrees:    90,
		TritanAllowanceDegrees: 15,
		D15Thresholds:          Thresholds{Normal: 30, Mild: 100, Moderate: 250},
		LD15Thresholds:         Thresholds{Normal: 12, Mild: 40, Moderate: 100},
	}
}
