package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/airisvision/chromascreen/internal/adapters/http/api"
	service "github.com/airisvision/chromascreen/internal/app"
	"github.com/airisvision/chromascreen/internal/config"
	"github.com/airisvision/chromascreen/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("CHROMA_ADDR", ":8080")
			_ = os.Setenv("CHROMA_SHARD_COUNT", "4")
			_ = os.Setenv("CHROMA_SESSION_CAPACITY", "1000")
			defer func() {
				_ = os.Unsetenv("CHROMA_ADDR")
				_ = os.Unsetenv("CHROMA_SHARD_COUNT")
				_ = os.Unsetenv("CHROMA_SESSION_CAPACITY")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ShardCount, convey.ShouldEqual, 4)
				convey.So(cfg.SessionCapacity, convey.ShouldEqual, 1000)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := service.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := service.New(
					service.WithShardCount(4),
					service.WithSessionCapacity(1000),
					service.WithSeenSize(500),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := service.New()
			ctx := context.Background()

			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			api.NewServer(svc, svc).Register(ctx, mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should be configured with timeouts", func() {
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.WriteTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.IdleTimeout, convey.ShouldEqual, 60*time.Second)
				convey.So(srv.Handler, convey.ShouldNotBeNil)
			})
		})
	})
}
