// Package types contains the read shapes shared between the service layer
// and the HTTP API.
package types

import "github.com/airisvision/chromascreen/internal/domain/colorspace"

// CapView is one cap of a panel as presented to a client: identity, the
// calibrated Lab coordinates, and the display sRGB derived from them.
type CapView struct {
	CapID string         `json:"cap_id"`
	Fixed bool           `json:"fixed,omitempty"`
	Lab   colorspace.Lab `json:"lab"`
	RGB   colorspace.RGB `json:"rgb"`
}

// SessionView is a freshly dealt screening session: the shuffled movable
// caps the subject is asked to arrange.
type SessionView struct {
	SessionID      string    `json:"session_id"`
	Panel          string    `json:"panel"`
	DatasetVersion string    `json:"dataset_version"`
	Caps           []CapView `json:"caps"`
}

// PanelView is the versioned read-only dataset table for one panel, pilot
// first and anchor last, in reference order.
type PanelView struct {
	Panel          string    `json:"panel"`
	DatasetVersion string    `json:"dataset_version"`
	Caps           []CapView `json:"caps"`
}

// StatsView is a snapshot of the service state served by the stats
// endpoint. Session counters are only populated once the service has
// started.
type StatsView struct {
	Started         bool   `json:"started"`
	ShardCount      int    `json:"shard_count"`
	SessionCapacity int    `json:"session_capacity"`
	DatasetVersion  string `json:"dataset_version"`
	ActiveSessions  int    `json:"active_sessions"`
	ScoredSessions  int64  `json:"scored_sessions"`
}

// ResultView is the scored outcome of a submitted arrangement.
type ResultView struct {
	SessionID             string  `json:"session_id"`
	Panel                 string  `json:"panel"`
	TotalError            float64 `json:"total_error"`
	ConfusionAngleDegrees float64 `json:"confusion_angle_degrees"`
	Classification        string  `json:"classification"`
	Severity              string  `json:"severity"`
	Crossings             int     `json:"crossings"`
	DatasetVersion        string  `json:"dataset_version"`
}
