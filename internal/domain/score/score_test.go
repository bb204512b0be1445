package score_test

import (
	"context"
	"errors"
	"testing"

	"github.com/airisvision/chromascreen/internal/domain/panel"
	"github.com/airisvision/chromascreen/internal/domain/score"
	. "github.com/smartystreets/goconvey/convey"
)

// Arrangements produced by sorting the caps along the perceived axis of each
// deficiency class, the way a dichromatic subject resolves the task.
var (
	deutanOrder = []string{
		"D15_01", "D15_02", "D15_03", "D15_15", "D15_04", "D15_14", "D15_05",
		"D15_13", "D15_06", "D15_12", "D15_07", "D15_11", "D15_08", "D15_10", "D15_09",
	}
	protanOrder = []string{
		"D15_01", "D15_15", "D15_02", "D15_14", "D15_03", "D15_13", "D15_04",
		"D15_12", "D15_05", "D15_11", "D15_06", "D15_10", "D15_07", "D15_09", "D15_08",
	}
	tritanOrder = []string{
		"D15_04", "D15_05", "D15_03", "D15_06", "D15_02", "D15_07", "D15_01",
		"D15_08", "D15_09", "D15_10", "D15_11", "D15_15", "D15_12", "D15_14", "D15_13",
	}
)

func ld15Order(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = "L" + id
	}
	return out
}

func TestScoreReferenceOrder(t *testing.T) {
	for _, typ := range []panel.Type{panel.D15, panel.LD15} {
		Convey("Given the "+string(typ)+" panel and its reference ordering", t, func() {
			p, err := panel.Get(typ)
			So(err, ShouldBeNil)
			scorer := score.New()

			Convey("When scoring the ideal arrangement", func() {
				result, err := scorer.Score(context.Background(), p, p.ReferenceOrder())
				So(err, ShouldBeNil)

				Convey("Then the excess error is zero and no deficiency is read", func() {
					So(result.TotalError, ShouldAlmostEqual, 0, 1e-9)
					So(result.Classification, ShouldEqual, score.Normal)
					So(result.Severity, ShouldEqual, score.SeverityNone)
					So(result.Crossings, ShouldEqual, 0)
					So(result.DatasetVersion, ShouldEqual, panel.Version)
				})
			})
		})
	}
}

func TestScoreDichromatArrangements(t *testing.T) {
	cases := []struct {
		name   string
		typ    panel.Type
		order  []string
		want   score.Classification
		angle  float64
		excess float64
	}{
		{"deutan on d15", panel.D15, deutanOrder, score.Deutan, 167.3, 467.6},
		{"protan on d15", panel.D15, protanOrder, score.Protan, 7.5, 535.7},
		{"tritan on d15", panel.D15, tritanOrder, score.Tritan, 92.3, 287.6},
		{"deutan on ld15", panel.LD15, ld15Order(deutanOrder), score.Deutan, 167.2, 202.9},
		{"protan on ld15", panel.LD15, ld15Order(protanOrder), score.Protan, 7.5, 232.2},
		{"tritan on ld15", panel.LD15, ld15Order(tritanOrder), score.Tritan, 92.3, 124.8},
	}
	for _, tc := range cases {
		Convey("Given a simulated "+tc.name+" arrangement", t, func() {
			p, err := panel.Get(tc.typ)
			So(err, ShouldBeNil)
			scorer := score.New()

			Convey("When scoring it", func() {
				result, err := scorer.Score(context.Background(), p, tc.order)
				So(err, ShouldBeNil)

				Convey("Then the confusion axis lands in the expected band", func() {
					So(result.ConfusionAngleDegrees, ShouldAlmostEqual, tc.angle, 0.5)
					So(result.Classification, ShouldEqual, tc.want)
				})

				Convey("Then the error magnitude reads as a strong deficiency", func() {
					So(result.TotalError, ShouldAlmostEqual, tc.excess, 0.5)
					So(result.Severity, ShouldEqual, score.SeverityStrong)
				})
			})
		})
	}
}

func TestScoreMinorErrors(t *testing.T) {
	Convey("Given the d15 panel", t, func() {
		p, err := panel.Get(panel.D15)
		So(err, ShouldBeNil)
		scorer := score.New()
		ref := p.ReferenceOrder()

		Convey("When two neighboring caps are transposed", func() {
			order := append([]string(nil), ref...)
			order[0], order[1] = order[1], order[0]
			result, err := scorer.Score(context.Background(), p, order)
			So(err, ShouldBeNil)

			Convey("Then the arrangement still reads as normal", func() {
				So(result.TotalError, ShouldBeGreaterThan, 0)
				So(result.Classification, ShouldEqual, score.Normal)
				So(result.Severity, ShouldEqual, score.SeverityNone)
			})
		})

		Convey("When two caps three steps apart are swapped", func() {
			order := append([]string(nil), ref...)
			order[3], order[6] = order[6], order[3]
			result, err := scorer.Score(context.Background(), p, order)
			So(err, ShouldBeNil)

			Convey("Then the error registers but no axis band fits", func() {
				So(result.Severity, ShouldEqual, score.SeverityMild)
				So(result.Classification, ShouldEqual, score.Indeterminate)
				So(result.Crossings, ShouldEqual, 2)
			})
		})
	})
}

func TestScoreValidation(t *testing.T) {
	Convey("Given the d15 panel", t, func() {
		p, err := panel.Get(panel.D15)
		So(err, ShouldBeNil)
		scorer := score.New()
		ref := p.ReferenceOrder()

		Convey("When a cap is missing", func() {
			_, err := scorer.Score(context.Background(), p, ref[:14])

			Convey("Then the sequence is rejected", func() {
				So(errors.Is(err, score.ErrInvalidSequence), ShouldBeTrue)
			})
		})

		Convey("When a cap appears twice", func() {
			order := append([]string(nil), ref...)
			order[5] = order[4]
			_, err := scorer.Score(context.Background(), p, order)

			Convey("Then the sequence is rejected", func() {
				So(errors.Is(err, score.ErrInvalidSequence), ShouldBeTrue)
			})
		})

		Convey("When a cap belongs to the other panel", func() {
			order := append([]string(nil), ref...)
			order[7] = "LD15_08"
			_, err := scorer.Score(context.Background(), p, order)

			Convey("Then the sequence is rejected", func() {
				So(errors.Is(err, score.ErrInvalidSequence), ShouldBeTrue)
			})
		})

		Convey("When the fixed pilot is smuggled into the ordering", func() {
			order := append([]string(nil), ref...)
			order[0] = p.Pilot().ID
			_, err := scorer.Score(context.Background(), p, order)

			Convey("Then the sequence is rejected", func() {
				So(errors.Is(err, score.ErrInvalidSequence), ShouldBeTrue)
			})
		})
	})
}

func TestScoreCalibrationOptions(t *testing.T) {
	Convey("Given a scorer with a widened tritan band and tighter thresholds", t, func() {
		p, err := panel.Get(panel.D15)
		So(err, ShouldBeNil)
		scorer := score.New(
			score.WithTritanBand(90, 40),
			score.WithThresholds(panel.D15, score.Thresholds{Normal: 10, Mild: 50, Moderate: 70}),
			score.WithCrossingStep(3),
		)

		Convey("When scoring the three-step swap that is indeterminate by default", func() {
			ref := p.ReferenceOrder()
			order := append([]string(nil), ref...)
			order[3], order[6] = order[6], order[3]
			result, err := scorer.Score(context.Background(), p, order)
			So(err, ShouldBeNil)

			Convey("Then the widened band captures the axis and severity escalates", func() {
				So(result.Severity, ShouldEqual, score.SeverityStrong)
				So(result.Crossings, ShouldEqual, 2)
				So(result.Classification, ShouldEqual, score.Tritan)
			})
		})

		Convey("When scoring the reference order", func() {
			result, err := scorer.Score(context.Background(), p, p.ReferenceOrder())
			So(err, ShouldBeNil)

			Convey("Then tightening calibration never penalizes a perfect arrangement", func() {
				So(result.Classification, ShouldEqual, score.Normal)
				So(result.Severity, ShouldEqual, score.SeverityNone)
			})
		})
	})
}
