package config_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/airisvision/chromascreen/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.ShardCount, convey.ShouldEqual, 8)
			convey.So(cfg.SessionCapacity, convey.ShouldEqual, 100_000)
			convey.So(cfg.SeenSize, convey.ShouldEqual, 50_000)
		})

		convey.Convey("Then the scoring calibration matches D-15 practice", func() {
			convey.So(cfg.CrossingStep, convey.ShouldEqual, 2)
			convey.So(cfg.ProtanMaxDegrees, convey.ShouldEqual, 20)
			convey.So(cfg.DeutanMinDegrees, convey.ShouldEqual, 160)
			convey.So(cfg.TritanCenterDegrees, convey.ShouldEqual, 90)
			convey.So(cfg.TritanAllowanceDegrees, convey.ShouldEqual, 15)
		})

		convey.Convey("Then the desaturated panel runs tighter thresholds", func() {
			convey.So(cfg.LD15Thresholds.Normal, convey.ShouldBeLessThan, cfg.D15Thresholds.Normal)
			convey.So(cfg.LD15Thresholds.Mild, convey.ShouldBeLessThan, cfg.D15Thresholds.Mild)
			convey.So(cfg.LD15Thresholds.Moderate, convey.ShouldBeLessThan, cfg.D15Thresholds.Moderate)
		})
	})
}
