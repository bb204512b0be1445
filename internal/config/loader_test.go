package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/airisvision/chromascreen/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ShardCount, convey.ShouldEqual, 8)
				convey.So(cfg.SessionCapacity, convey.ShouldEqual, 100_000)
				convey.So(cfg.D15Thresholds.Normal, convey.ShouldEqual, 30)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CHROMA_ADDR", ":9095")
			_ = os.Setenv("CHROMA_SHARD_COUNT", "16")
			_ = os.Setenv("CHROMA_CROSSING_STEP", "3")
			_ = os.Setenv("CHROMA_TRITAN_ALLOWANCE_DEGREES", "20")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9095")
				convey.So(cfg.ShardCount, convey.ShouldEqual, 16)
				convey.So(cfg.CrossingStep, convey.ShouldEqual, 3)
				convey.So(cfg.TritanAllowanceDegrees, convey.ShouldEqual, 20)
				convey.So(cfg.SessionCapacity, convey.ShouldEqual, 100_000)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9091"
session_capacity: 5000
seen_size: 2500
d15_thresholds:
  normal: 25
  mild: 90
  moderate: 200
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("CHROMA_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9091")
				convey.So(cfg.SessionCapacity, convey.ShouldEqual, 5000)
				convey.So(cfg.SeenSize, convey.ShouldEqual, 2500)
				convey.So(cfg.D15Thresholds.Normal, convey.ShouldEqual, 25)
				convey.So(cfg.D15Thresholds.Moderate, convey.ShouldEqual, 200)
			})
		})

		convey.Convey("When calibration is inconsistent", func() {
			_ = os.Setenv("CHROMA_TRITAN_ALLOWANCE_DEGREES", "80")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with an invalid config error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})

		convey.Convey("When addr is blanked out", func() {
			_ = os.Setenv("CHROMA_ADDR", "")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with an invalid config error", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"CHROMA_CONFIG",
		"CHROMA_ADDR",
		"CHROMA_SHARD_COUNT",
		"CHROMA_SESSION_CAPACITY",
		"CHROMA_SEEN_SIZE",
		"CHROMA_CROSSING_STEP",
		"CHROMA_TRITAN_ALLOWANCE_DEGREES",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(content string) string {
	f, err := os.CreateTemp("", "chroma-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	_ = f.Close()
	return f.Name()
}
