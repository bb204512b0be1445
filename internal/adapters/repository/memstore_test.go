package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/airisvision/chromascreen/internal/adapters/repository"
	"github.com/airisvision/chromascreen/internal/domain/panel"
	"github.com/airisvision/chromascreen/internal/domain/session"
)

func newSession() session.Session {
	return session.Session{
		ID:           uuid.New(),
		Panel:        panel.D15,
		Presentation: []string{"D15_03", "D15_01", "D15_02"},
		CreatedAt:    time.Now(),
	}
}

func TestMemStoreCRUD(t *testing.T) {
	Convey("Given an empty store", t, func() {
		store := repository.NewMemStore(repository.WithShardCount(4))
		ctx := context.Background()

		Convey("When creating a session", func() {
			sess := newSession()
			So(store.Create(ctx, sess), ShouldBeNil)

			Convey("Then it can be retrieved intact", func() {
				got, err := store.Get(ctx, sess.ID)
				So(err, ShouldBeNil)
				So(got.Panel, ShouldEqual, panel.D15)
				So(got.Presentation, ShouldResemble, sess.Presentation)
				So(store.Count(ctx), ShouldEqual, 1)
			})

			Convey("And creating it again fails", func() {
				So(store.Create(ctx, sess), ShouldEqual, repository.ErrDuplicateID)
			})

			Convey("And deleting it empties the store", func() {
				So(store.Delete(ctx, sess.ID), ShouldBeNil)
				So(store.Count(ctx), ShouldEqual, 0)
				_, err := store.Get(ctx, sess.ID)
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When looking up an unknown id", func() {
			_, err := store.Get(ctx, uuid.New())
			So(err, ShouldEqual, repository.ErrNotFound)
			So(store.Delete(ctx, uuid.New()), ShouldEqual, repository.ErrNotFound)
		})
	})
}

func TestMemStoreCapacity(t *testing.T) {
	Convey("Given a store capped at 2 sessions", t, func() {
		store := repository.NewMemStore(repository.WithCapacity(2))
		ctx := context.Background()

		Convey("When filling it up", func() {
			So(store.Create(ctx, newSession()), ShouldBeNil)
			victim := newSession()
			So(store.Create(ctx, victim), ShouldBeNil)

			Convey("Then the next create is rejected", func() {
				So(store.Create(ctx, newSession()), ShouldEqual, repository.ErrCapacity)
			})

			Convey("And capacity frees up after a delete", func() {
				So(store.Delete(ctx, victim.ID), ShouldBeNil)
				So(store.Create(ctx, newSession()), ShouldBeNil)
			})
		})
	})
}

func TestMemStoreConcurrency(t *testing.T) {
	Convey("Given concurrent writers across shards", t, func() {
		store := repository.NewMemStore(repository.WithShardCount(16))
		ctx := context.Background()

		Convey("When 8 goroutines each create 100 sessions", func() {
			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < 100; i++ {
						_ = store.Create(ctx, newSession())
					}
				}()
			}
			wg.Wait()

			Convey("Then the count reflects every create", func() {
				So(store.Count(ctx), ShouldEqual, 800)
			})
		})
	})
}
