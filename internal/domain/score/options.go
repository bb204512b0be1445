package score

import "github.com/airisvision/chromascreen/internal/domain/panel"

// Option applies a calibration option to the Scorer.
type Option func(*Scorer)

// WithCrossingStep sets how many reference-order positions two adjacent caps
// must be apart before the adjacency counts as a crossing.
func WithCrossingStep(steps int) Option {
	return func(s *Scorer) {
		if steps > 0 {
			s.crossingStep = steps
		}
	}
}

// WithProtanBand sets the upper bound of the protan angular band [0, max).
func WithProtanBand(maxDegrees float64) Option {
	return func(s *Scorer) {
		if maxDegrees > 0 && maxDegrees < 90 {
			s.protanMax = maxDegrees
		}
	}
}

// WithDeutanBand sets the lower bound of the deutan angular band [min, 180).
func WithDeutanBand(minDegrees float64) Option {
	return func(s *Scorer) {
		if minDegrees > 90 && minDegrees < 180 {
			s.deutanMin = minDegrees
		}
	}
}

// WithTritanBand sets the tritan band as center +/- allowance degrees.
func WithTritanBand(centerDegrees, allowanceDegrees float64) Option {
	return func(s *Scorer) {
		if centerDegrees > 0 && centerDegrees < 180 && allowanceDegrees > 0 {
			s.tritanCenter = centerDegrees
			s.tritanAllowance = allowanceDegrees
		}
	}
}

// WithThresholds sets the severity thresholds for one panel.
func WithThresholds(t panel.Type, th Thresholds) Option {
	return func(s *Scorer) {
		if th.Normal > 0 && th.Mild > th.Normal && th.Moderate > th.Mild {
			s.thresholds[t] = th
		}
	}
}
