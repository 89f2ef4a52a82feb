package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then collectors are registered under the closet namespace", func() {
				manager.UpdateItemsTotal(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "closet_wardrobe_items_total")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithOutfitBuckets([]float64{1, 5}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the names follow the options", func() {
				manager.RecordQuery("search", 0.2)
				So(testutil.ToFloat64(manager.queries.WithLabelValues("search")), ShouldEqual, 1)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
				So(families[0].GetName(), ShouldStartWith, "test_")
				So(manager.outfitBuckets, ShouldResemble, []float64{1, 5})
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given an isolated manager", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When recording engine metrics", func() {
			m.RecordQuery("search", 1.5)
			m.RecordQuery("search", 2.5)
			m.RecordQuery("gaps", 0.1)
			m.RecordItemMutation("add")
			m.UpdateItemsTotal(42)

			Convey("Then counters and gauges reflect the calls", func() {
				So(testutil.ToFloat64(m.queries.WithLabelValues("search")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.queries.WithLabelValues("gaps")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.itemMutations.WithLabelValues("add")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.itemsTotal), ShouldEqual, 42)
			})
		})

		Convey("When recording the wear pipeline", func() {
			m.RecordWearEventAccepted()
			m.RecordWearEventAccepted()
			m.RecordWearEventDuplicate()
			m.RecordWearEventApplied(0.3)
			m.RecordWearEventFailed()
			m.UpdateQueueSize(7)
			m.UpdateQueueCapacity(100)
			m.RecordQueueEnqueueError()
			m.UpdateWorkerCount(4)

			Convey("Then each counter moves independently", func() {
				So(testutil.ToFloat64(m.wearAccepted), ShouldEqual, 2)
				So(testutil.ToFloat64(m.wearDuplicate), ShouldEqual, 1)
				So(testutil.ToFloat64(m.wearApplied), ShouldEqual, 1)
				So(testutil.ToFloat64(m.wearFailed), ShouldEqual, 1)
				So(testutil.ToFloat64(m.queueSize), ShouldEqual, 7)
				So(testutil.ToFloat64(m.queueCapacity), ShouldEqual, 100)
				So(testutil.ToFloat64(m.queueRejected), ShouldEqual, 1)
				So(testutil.ToFloat64(m.workerCount), ShouldEqual, 4)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			m.RecordHTTPRequest("/items", "GET", "200")
			m.RecordHTTPRequestDuration("/items", "GET", "200", 3)
			m.RecordErrorByComponent("engine", "validation")

			Convey("Then labelled series are created", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/items", "GET", "200")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.errorsByComponent.WithLabelValues("engine", "validation")), ShouldEqual, 1)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

		Convey("Then recording is a no-op", func() {
			m.RecordWearEventDuplicate()
			m.UpdateItemsTotal(10)
			So(testutil.ToFloat64(m.wearDuplicate), ShouldEqual, 0)
			So(testutil.ToFloat64(m.itemsTotal), ShouldEqual, 0)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the package-level helpers", t, func() {
		Convey("Then they record on the shared registry without panicking", func() {
			So(func() {
				RecordQuery("suggestions", 0.01)
				RecordItemMutation("remove")
				UpdateItemsTotal(0)
				RecordRecommendations(3)
				RecordWearEventAccepted()
				RecordWearEventDuplicate()
				RecordWearEventApplied(0.2)
				RecordWearEventFailed()
				UpdateQueueSize(0)
				UpdateQueueCapacity(1)
				RecordQueueEnqueue()
				RecordQueueDequeue()
				RecordQueueEnqueueError()
				UpdateWorkerCount(1)
				RecordRepositoryLatency("put", 0.05)
				UpdateRepositoryRecordsTotal(1)
				RecordHTTPRequest("/healthz", "GET", "200")
				RecordHTTPRequestDuration("/healthz", "GET", "200", 1)
				RecordErrorByComponent("queue", "full")
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(10)
				RecordSystemGCPauseTime(0.5)
			}, ShouldNotPanic)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("Given the package-level manager", t, func() {
		before := GetRegistry()

		Convey("When it is reconfigured with custom buckets", func() {
			Configure(WithOutfitBuckets([]float64{1, 5}), WithHistogramBuckets([]float64{1, 10}))
			defer Configure()

			Convey("Then the helpers record on a fresh registry with those buckets", func() {
				So(GetRegistry(), ShouldNotEqual, before)
				So(globalManager.outfitBuckets, ShouldResemble, []float64{1, 5})
				So(globalManager.histogramBuckets, ShouldResemble, []float64{1, 10})

				RecordRecommendations(3)
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				var buckets int
				for _, f := range families {
					if f.GetName() == "closet_wardrobe_recommendations_per_request" {
						buckets = len(f.GetMetric()[0].GetHistogram().GetBucket())
					}
				}
				So(buckets, ShouldEqual, 2)
			})
		})
	})
}
