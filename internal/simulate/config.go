package simulate

import "time"

// Config holds configuration for a screening simulation run
type Config struct {
	BaseURL     string        // Base URL of the service
	Panel       string        // Panel to screen with: d15 or ld15
	Subject     string        // Subject model: normal, protan, deutan, tritan, random
	NumSessions int           // Number of sessions to run
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	LogFile     string        // Log file for simulation output
	Verbose     bool          // Enable verbose logging
}

// LabPoint mirrors the Lab wire shape returned by the service
type LabPoint struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// CapInfo mirrors one cap of a dealt session
type CapInfo struct {
	CapID string   `json:"cap_id"`
	Fixed bool     `json:"fixed"`
	Lab   LabPoint `json:"lab"`
}

// SessionResponse mirrors the response from POST /sessions
type SessionResponse struct {
	SessionID      string    `json:"session_id"`
	Panel          string    `json:"panel"`
	DatasetVersion string    `json:"dataset_version"`
	Caps           []CapInfo `json:"caps"`
}

// ResultResponse mirrors the response from POST /sessions/{id}/arrangement
type ResultResponse struct {
	SessionID             string  `json:"session_id"`
	Panel                 string  `json:"panel"`
	TotalError            float64 `json:"total_error"`
	ConfusionAngleDegrees float64 `json:"confusion_angle_degrees"`
	Classification        string  `json:"classification"`
	Severity              string  `json:"severity"`
	Crossings             int     `json:"crossings"`
	DatasetVersion        string  `json:"dataset_version"`
}

// Stats holds simulation statistics
type Stats struct {
	SessionsStarted   int
	SessionsScored    int
	SessionsFailed    int
	Classifications   map[string]int
	Severities        map[string]int
	TotalErrorSum     float64
	ConfusionAngleSum float64
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
