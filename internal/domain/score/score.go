// Package score computes the clinical result of a completed cap arrangement:
// the excess perceptual path length, the subject's confusion-axis angle, and
// the diagnostic classification with severity.
package score

import (
	"context"
	"fmt"

	"github.com/airisvision/chromascreen/internal/domain/colorspace"
	"github.com/airisvision/chromascreen/internal/domain/panel"
)

// Classification is the diagnostic outcome of an arrangement.
type Classification string

const (
	Normal        Classification = "normal"
	Protan        Classification = "protan"
	Deutan        Classification = "deutan"
	Tritan        Classification = "tritan"
	Indeterminate Classification = "indeterminate"
)

// Severity grades the magnitude of the arrangement error.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeverityStrong   Severity = "strong"
)

// Result is the immutable outcome of scoring one arrangement. It is returned
// by value; the scorer retains no reference to it.
type Result struct {
	Panel                 panel.Type
	TotalError            float64
	ConfusionAngleDegrees float64
	Classification        Classification
	Severity              Severity
	Crossings             int
	DatasetVersion        string
}

// Thresholds are the per-panel severity boundaries over the excess distance.
// A value below Normal reads as no deficiency; Mild and Moderate bound the
// next two grades, anything above Moderate is strong.
type Thresholds struct {
	Normal   float64
	Mild     float64
	Moderate float64
}

// Scorer evaluates submitted arrangements against the panel datasets.
// Calibration is set through options; the zero-option scorer carries
// defaults aligned with standard D-15 scoring practice.
type Scorer struct {
	crossingStep    int
	protanMax       float64
	deutanMin       float64
	tritanCenter    float64
	tritanAllowance float64
	thresholds      map[panel.Type]Thresholds
}

// Default calibration constants.
const (
	defaultCrossingStep    = 2
	defaultProtanMax       = 20.0
	defaultDeutanMin       = 160.0
	defaultTritanCenter    = 90.0
	defaultTritanAllowance = 15.0
)

// New creates a scorer with calibration options applied over the defaults.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		crossingStep:    defaultCrossingStep,
		protanMax:       defaultProtanMax,
		deutanMin:       defaultDeutanMin,
		tritanCenter:    defaultTritanCenter,
		tritanAllowance: defaultTritanAllowance,
		thresholds: map[panel.Type]Thresholds{
			panel.D15:  {Normal: 30, Mild: 100, Moderate: 250},
			panel.LD15: {Normal: 12, Mild: 40, Moderate: 100},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score evaluates a submitted ordering of the panel's movable caps. The
// ordering must contain every movable cap exactly once; the fixed pilot and
// anchor are prepended and appended implicitly. Malformed input fails with
// ErrInvalidSequence. The computation is pure and bounded by the cap count,
// so ctx is accepted only to satisfy the project-wide convention.
func (s *Scorer) Score(_ context.Context, p *panel.Panel, order []string) (Result, error) {
	if err := validate(p, order); err != nil {
		return Result{}, err
	}

	pilot := p.Pilot()
	anchor := p.Anchor()

	// Actual path: pilot -> submitted caps -> anchor, with the 1-based
	// reference position of each stop (pilot 0, anchor n+1).
	n := p.MovableCount()
	points := make([]colorspace.Lab, 0, n+2)
	positions := make([]int, 0, n+2)
	points = append(points, pilot.Lab)
	positions = append(positions, 0)
	for _, id := range order {
		c, _ := p.Lookup(id)
		pos, _ := p.Position(id)
		points = append(points, c.Lab)
		positions = append(positions, pos)
	}
	points = append(points, anchor.Lab)
	positions = append(positions, n+1)

	excess := pathLength(points) - referencePathLength(p)
	if excess < 0 {
		// Floating-point guard; the reference path is the calibrated minimum.
		excess = 0
	}

	// A crossing is an adjacency whose stops sit further apart in the
	// reference order than the calibrated step threshold. Each crossing
	// contributes its chroma displacement, mirrored through the neutral
	// point so the axis statistic treats it as an undirected line.
	var axisPoints []colorspace.Lab
	crossings := 0
	for i := 0; i+1 < len(points); i++ {
		if stepDistance(positions[i], positions[i+1]) <= s.crossingStep {
			continue
		}
		crossings++
		da := points[i+1].A - points[i].A
		db := points[i+1].B - points[i].B
		axisPoints = append(axisPoints, colorspace.Lab{A: da, B: db}, colorspace.Lab{A: -da, B: -db})
	}
	angle := colorspace.ConfusionAxisAngle(axisPoints)

	th := s.thresholds[p.Type()]
	result := Result{
		Panel:                 p.Type(),
		TotalError:            excess,
		ConfusionAngleDegrees: angle,
		Classification:        s.classify(excess, angle, crossings, th),
		Severity:              severity(excess, th),
		Crossings:             crossings,
		DatasetVersion:        panel.Version,
	}
	return result, nil
}

func (s *Scorer) classify(excess, angle float64, crossings int, th Thresholds) Classification {
	if excess < th.Normal {
		return Normal
	}
	if crossings == 0 {
		// Error accumulated from local transpositions only; there is no
		// axis to read a deficiency from.
		return Indeterminate
	}
	switch {
	case angle < s.protanMax:
		return Protan
	case angle >= s.deutanMin:
		return Deutan
	case angle >= s.tritanCenter-s.tritanAllowance && angle < s.tritanCenter+s.tritanAllowance:
		return Tritan
	default:
		return Indeterminate
	}
}

func severity(excess float64, th Thresholds) Severity {
	switch {
	case excess < th.Normal:
		return SeverityNone
	case excess < th.Mild:
		return SeverityMild
	case excess < th.Moderate:
		return SeverityModerate
	default:
		return SeverityStrong
	}
}

// validate enforces the hard input contract: exactly the panel's movable
// caps, each exactly once.
func validate(p *panel.Panel, order []string) error {
	n := p.MovableCount()
	if len(order) != n {
		return fmt.Errorf("%w: got %d caps, want %d", ErrInvalidSequence, len(order), n)
	}
	seen := make(map[string]bool, n)
	for _, id := range order {
		if _, ok := p.Position(id); !ok {
			return fmt.Errorf("%w: cap %q is not a movable cap of panel %s", ErrInvalidSequence, id, p.Type())
		}
		if seen[id] {
			return fmt.Errorf("%w: cap %q appears more than once", ErrInvalidSequence, id)
		}
		seen[id] = true
	}
	return nil
}

func pathLength(points []colorspace.Lab) float64 {
	var total float64
	for i := 0; i+1 < len(points); i++ {
		total += colorspace.DeltaE76(points[i], points[i+1])
	}
	return total
}

// referencePathLength is the path length of the ideal ordering, the minimum
// attainable for the panel.
func referencePathLength(p *panel.Panel) float64 {
	caps := p.Caps()
	points := make([]colorspace.Lab, len(caps))
	for i, c := range caps {
		points[i] = c.Lab
	}
	return pathLength(points)
}

func stepDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
