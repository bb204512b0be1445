package session_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/airisvision/chromascreen/internal/domain/panel"
	"github.com/airisvision/chromascreen/internal/domain/session"
	. "github.com/smartystreets/goconvey/convey"
)

func TestControllerNew(t *testing.T) {
	Convey("Given a controller with a seeded source", t, func() {
		fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
		ctrl := session.NewController(
			session.WithRandSource(rand.NewSource(7)),
			session.WithClock(func() time.Time { return fixed }),
		)

		Convey("When dealing a d15 session", func() {
			s, err := ctrl.New(context.Background(), panel.D15)
			So(err, ShouldBeNil)

			Convey("Then it presents every movable cap exactly once", func() {
				p, _ := panel.Get(panel.D15)
				So(len(s.Presentation), ShouldEqual, p.MovableCount())
				seen := make(map[string]bool)
				for _, id := range s.Presentation {
					_, ok := p.Position(id)
					So(ok, ShouldBeTrue)
					So(seen[id], ShouldBeFalse)
					seen[id] = true
				}
			})

			Convey("Then the fixed caps are excluded", func() {
				p, _ := panel.Get(panel.D15)
				for _, id := range s.Presentation {
					So(id, ShouldNotEqual, p.Pilot().ID)
					So(id, ShouldNotEqual, p.Anchor().ID)
				}
			})

			Convey("Then the session carries identity and timestamp", func() {
				So(s.ID.String(), ShouldNotEqual, "00000000-0000-0000-0000-000000000000")
				So(s.Panel, ShouldEqual, panel.D15)
				So(s.CreatedAt, ShouldEqual, fixed)
			})
		})

		Convey("When dealing many sessions", func() {
			first, err := ctrl.New(context.Background(), panel.LD15)
			So(err, ShouldBeNil)

			Convey("Then ids are unique and shuffles vary", func() {
				varied := false
				for i := 0; i < 20; i++ {
					next, err := ctrl.New(context.Background(), panel.LD15)
					So(err, ShouldBeNil)
					So(next.ID, ShouldNotEqual, first.ID)
					for j := range next.Presentation {
						if next.Presentation[j] != first.Presentation[j] {
							varied = true
							break
						}
					}
				}
				So(varied, ShouldBeTrue)
			})
		})

		Convey("When requesting an unknown panel", func() {
			_, err := ctrl.New(context.Background(), panel.Type("fm100"))

			Convey("Then the panel error surfaces", func() {
				So(err, ShouldEqual, panel.ErrUnknownPanel)
			})
		})
	})
}
