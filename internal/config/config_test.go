package config_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/okian/closet/internal/config"
	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.EventQueueSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 50_000)
			convey.So(cfg.MaxResults, convey.ShouldEqual, 100)
			convey.So(cfg.Outfit, convey.ShouldResemble, engine.DefaultOutfitLimits())
			convey.So(cfg.Weights.ValueDivisor, convey.ShouldEqual, 20)
			convey.So(cfg.Metrics.OutfitBuckets, convey.ShouldResemble, metrics.DefaultOutfitBuckets())
			convey.So(cfg.Metrics.Options(), convey.ShouldHaveLength, 2)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("When the outfit caps are zeroed", func() {
			cfg.Outfit.MaxBottoms = 0

			convey.Convey("Then validation fails with ErrInvalidConfig", func() {
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a complementary pair has one color", func() {
			cfg.Rules.ComplementaryColors = [][]string{{"Blue"}}

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the outfit buckets are not increasing", func() {
			cfg.Metrics.OutfitBuckets = []float64{5, 1}

			convey.Convey("Then validation fails with ErrInvalidConfig", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the latency buckets are empty", func() {
			cfg.Metrics.LatencyBuckets = nil

			convey.Convey("Then validation fails with ErrInvalidConfig", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the log format is unknown", func() {
			cfg.LogFormat = "xml"

			convey.Convey("Then validation fails", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})
	})
}

func TestConfig_WardrobeRules(t *testing.T) {
	convey.Convey("Given rule overrides", t, func() {
		cfg := config.New(context.Background())
		cfg.Rules.NeutralColors = []string{"Charcoal"}
		cfg.Rules.ComplementaryColors = [][]string{{"Lime", "Plum"}}
		cfg.Rules.StyleAdjacency = map[string][]string{"Punk": {"Grunge"}}

		rules := cfg.WardrobeRules()

		convey.Convey("Then overridden tables replace the defaults", func() {
			convey.So(rules.NeutralColors, convey.ShouldResemble, []string{"Charcoal"})
			convey.So(rules.ComplementaryColors, convey.ShouldResemble, [][2]string{{"Lime", "Plum"}})
			convey.So(rules.StyleAdjacency, convey.ShouldResemble, map[string][]string{"Punk": {"Grunge"}})
		})

		convey.Convey("Then untouched tables keep their defaults", func() {
			convey.So(rules.EssentialColors, convey.ShouldResemble, []string{"Black", "White", "Navy", "Gray", "Beige"})
			convey.So(rules.TopCategories, convey.ShouldContain, "sweaters")
		})

		convey.Convey("Then the result does not alias the config", func() {
			rules.NeutralColors[0] = "Ivory"
			convey.So(cfg.Rules.NeutralColors[0], convey.ShouldEqual, "Charcoal")
		})
	})
}
