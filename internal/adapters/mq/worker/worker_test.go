package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	worker "github.com/okian/closet/internal/adapters/mq/worker"
	model "github.com/okian/closet/internal/domain/model"
	logging "github.com/okian/closet/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

type mockQueue struct {
	events    chan model.WearEvent
	closeOnce sync.Once
}

func newMockQueue(size int) *mockQueue {
	return &mockQueue{events: make(chan model.WearEvent, size)}
}

func (mq *mockQueue) Dequeue(context.Context) <-chan model.WearEvent { return mq.events }

func (mq *mockQueue) Close() error {
	mq.closeOnce.Do(func() { close(mq.events) })
	return nil
}

type mockRecorder struct {
	mu      sync.Mutex
	applied []string
	fail    map[string]error
	delay   time.Duration
}

func (m *mockRecorder) RecordWear(_ context.Context, e model.WearEvent) error {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.fail[e.ItemID]; ok {
		return err
	}
	m.applied = append(m.applied, e.EventID)
	return nil
}

func (m *mockRecorder) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.applied)
}

func TestInMemoryWorker(t *testing.T) {
	_ = logging.Init()

	convey.Convey("Given a worker over a queue", t, func() {
		q := newMockQueue(10)
		rec := &mockRecorder{fail: map[string]error{"ghost": errors.New("unknown item")}}
		w := worker.NewInMemoryWorker(q, rec, worker.WithName("w-test"), worker.WithLogger(logging.NewNop()))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx)

		convey.Convey("When events arrive", func() {
			q.events <- model.WearEvent{EventID: "e1", ItemID: "shirt"}
			q.events <- model.WearEvent{EventID: "e2", ItemID: "ghost"}
			q.events <- model.WearEvent{EventID: "e3", ItemID: "jeans"}
			_ = q.Close()
			<-w.Done()

			convey.Convey("Then successes are applied and failures skipped", func() {
				convey.So(rec.applied, convey.ShouldResemble, []string{"e1", "e3"})
			})
		})

		convey.Convey("When shut down", func() {
			err := w.Shutdown(context.Background())

			convey.Convey("Then it stops and repeated shutdowns are safe", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(w.Shutdown(context.Background()), convey.ShouldBeNil)
			})
		})
	})
}

func TestPool(t *testing.T) {
	_ = logging.Init()

	convey.Convey("Given a pool of four workers", t, func() {
		q := newMockQueue(200)
		rec := &mockRecorder{}
		pool := worker.NewPool(4, q, rec, worker.WithPoolLogger(logging.NewNop()))
		convey.So(pool.Size(), convey.ShouldEqual, 4)
		pool.Start(context.Background())

		convey.Convey("When events are queued and the pool shuts down", func() {
			for i := range 100 {
				q.events <- model.WearEvent{EventID: fmt.Sprintf("e%d", i), ItemID: "x"}
			}
			err := pool.Shutdown(context.Background())

			convey.Convey("Then every queued event is drained first", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rec.count(), convey.ShouldEqual, 100)
			})
		})
	})

	convey.Convey("Given a pool with a slow recorder", t, func() {
		q := newMockQueue(10)
		rec := &mockRecorder{delay: 200 * time.Millisecond}
		pool := worker.NewPool(1, q, rec, worker.WithPoolLogger(logging.NewNop()))
		pool.Start(context.Background())
		for i := range 5 {
			q.events <- model.WearEvent{EventID: fmt.Sprintf("e%d", i), ItemID: "x"}
		}

		convey.Convey("When the shutdown deadline is shorter than the backlog", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			err := pool.Shutdown(ctx)

			convey.Convey("Then Shutdown reports the timeout", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, context.DeadlineExceeded), convey.ShouldBeTrue)
			})
		})
	})

	convey.Convey("Given a non-positive worker count", t, func() {
		pool := worker.NewPool(0, newMockQueue(1), &mockRecorder{}, worker.WithPoolLogger(logging.NewNop()))

		convey.Convey("Then at least one worker is created", func() {
			convey.So(pool.Size(), convey.ShouldBeGreaterThan, 0)
		})
	})
}
