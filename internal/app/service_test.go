package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/okian/closet/internal/adapters/repository"
	service "github.com/okian/closet/internal/app"
	"github.com/okian/closet/internal/domain/engine"
	"github.com/okian/closet/internal/domain/model"
	"github.com/okian/closet/internal/domain/wardrobe"
	"github.com/okian/closet/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func seedItems() []wardrobe.Item {
	return []wardrobe.Item{
		{
			ID: "top", Name: "Black Tee", Category: "tops", PrimaryColor: "Black", Style: "Casual",
			Season: []string{"Fall"}, Occasion: []string{"weekend"}, Price: 80, ValueScore: 6, Brand: "Acme",
		},
		{
			ID: "jeans", Name: "Blue Jeans", Category: "jeans", PrimaryColor: "Blue", Style: "Casual",
			Season: []string{"Fall"}, Occasion: []string{"weekend"}, Price: 120, TimesWorn: 40, ValueScore: 8, Brand: "Acme",
		},
		{
			Name: "White Sneakers", Category: "sneakers", PrimaryColor: "White", Style: "Streetwear",
			Season: []string{"Fall"}, Occasion: []string{"weekend"}, Price: 90, TimesWorn: 5, ValueScore: 7,
		},
	}
}

func newService(opts ...service.Option) *service.Service {
	base := []service.Option{
		service.WithLogger(logger.NewNop()),
		service.WithClock(func() time.Time { return fixedNow }),
		service.WithWorkerCount(2),
		service.WithSeedItems(seedItems()),
	}
	return service.New(append(base, opts...)...)
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service that has not started", t, func() {
		ctx := context.Background()
		svc := newService()

		Convey("Then every operation reports ErrNotStarted", func() {
			_, err := svc.Items(ctx)
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, err = svc.AddItem(ctx, wardrobe.Item{Name: "x"})
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, err = svc.SubmitWear(ctx, model.WearEvent{EventID: "e", ItemID: "top"})
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			So(svc.Stop(ctx), ShouldBeNil)
		})

		Convey("When it starts", func() {
			So(svc.Start(ctx), ShouldBeNil)
			defer func() { _ = svc.Stop(ctx) }()

			Convey("Then seed items are loaded and missing IDs assigned", func() {
				items, err := svc.Items(ctx)
				So(err, ShouldBeNil)
				So(len(items), ShouldEqual, 3)
				So(items[0].ID, ShouldEqual, "top")
				So(items[2].ID, ShouldNotBeEmpty)
			})

			Convey("Then a second Start is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
				So(svc.GetStats(ctx).Items, ShouldEqual, 3)
			})
		})
	})

	Convey("Given a seed item that is invalid", t, func() {
		svc := newService(service.WithSeedItems([]wardrobe.Item{{ID: "bad", Price: -1}}))

		Convey("Then Start fails with ErrInvalidItem", func() {
			err := svc.Start(context.Background())
			So(errors.Is(err, repository.ErrInvalidItem), ShouldBeTrue)
		})
	})
}

func TestService_Mutations(t *testing.T) {
	Convey("Given a started service with its own store", t, func() {
		ctx := context.Background()
		store := repository.NewInMemoryStore(ctx)
		svc := newService(service.WithStore(store))
		So(svc.Start(ctx), ShouldBeNil)
		defer func() { _ = svc.Stop(ctx) }()

		Convey("When an item is added", func() {
			added, err := svc.AddItem(ctx, wardrobe.Item{Name: "Navy Blazer", Category: "outerwear", Price: 200})
			So(err, ShouldBeNil)

			Convey("Then it has an ID and is persisted", func() {
				So(added.ID, ShouldNotBeEmpty)
				stored, err := store.Get(ctx, added.ID)
				So(err, ShouldBeNil)
				So(stored.Name, ShouldEqual, "Navy Blazer")
			})
		})

		Convey("When an invalid item is added", func() {
			_, err := svc.AddItem(ctx, wardrobe.Item{Name: "Broken", TimesWorn: -2})

			Convey("Then it is rejected and nothing changes", func() {
				So(errors.Is(err, repository.ErrInvalidItem), ShouldBeTrue)
				items, _ := svc.Items(ctx)
				So(len(items), ShouldEqual, 3)
			})
		})

		Convey("When an item is patched", func() {
			price := 95.0
			updated, err := svc.UpdateItem(ctx, "top", wardrobe.ItemPatch{Price: &price})

			Convey("Then engine and store agree", func() {
				So(err, ShouldBeNil)
				So(updated.Price, ShouldEqual, 95)
				stored, _ := store.Get(ctx, "top")
				So(stored.Price, ShouldEqual, 95)
				got, _ := svc.Item(ctx, "top")
				So(got.Price, ShouldEqual, 95)
			})
		})

		Convey("When a patch would make the item invalid", func() {
			price := -1.0
			_, err := svc.UpdateItem(ctx, "top", wardrobe.ItemPatch{Price: &price})

			Convey("Then the engine keeps the old value", func() {
				So(errors.Is(err, repository.ErrInvalidItem), ShouldBeTrue)
				got, _ := svc.Item(ctx, "top")
				So(got.Price, ShouldEqual, 80)
			})
		})

		Convey("When unknown IDs are used", func() {
			_, errU := svc.UpdateItem(ctx, "ghost", wardrobe.ItemPatch{})
			errR := svc.RemoveItem(ctx, "ghost")
			_, errG := svc.Item(ctx, "ghost")
			_, errM := svc.FindMatchingPieces(ctx, "ghost", 5)

			Convey("Then ErrUnknownItem is returned", func() {
				So(errors.Is(errU, service.ErrUnknownItem), ShouldBeTrue)
				So(errors.Is(errR, service.ErrUnknownItem), ShouldBeTrue)
				So(errors.Is(errG, service.ErrUnknownItem), ShouldBeTrue)
				So(errors.Is(errM, service.ErrUnknownItem), ShouldBeTrue)
			})
		})

		Convey("When an item is removed", func() {
			So(svc.RemoveItem(ctx, "jeans"), ShouldBeNil)

			Convey("Then it is gone from engine and store", func() {
				_, err := svc.Item(ctx, "jeans")
				So(errors.Is(err, service.ErrUnknownItem), ShouldBeTrue)
				_, err = store.Get(ctx, "jeans")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newService()
		So(svc.Start(ctx), ShouldBeNil)
		defer func() { _ = svc.Stop(ctx) }()

		Convey("Then queries delegate to the engine", func() {
			found, err := svc.Search(ctx, "black", wardrobe.SearchFilters{})
			So(err, ShouldBeNil)
			So(len(found), ShouldEqual, 1)

			never, err := svc.SearchByFrequency(ctx, wardrobe.FrequencyNever)
			So(err, ShouldBeNil)
			So(len(never), ShouldEqual, 1)
			So(never[0].ID, ShouldEqual, "top")

			best, err := svc.SearchByValue(ctx, engine.ValueBest)
			So(err, ShouldBeNil)
			So(best[0].ID, ShouldEqual, "jeans")

			matches, err := svc.FindMatchingPieces(ctx, "top", 5)
			So(err, ShouldBeNil)
			So(len(matches), ShouldEqual, 2)
			So(matches[0].Item.ID, ShouldEqual, "jeans")
			So(matches[0].Score, ShouldAlmostEqual, 8.7, 1e-9)

			outfits, err := svc.GenerateRecommendations(ctx, engine.OutfitContext{Occasion: "weekend"})
			So(err, ShouldBeNil)
			So(len(outfits), ShouldEqual, 1)
			So(len(outfits[0].Items), ShouldEqual, 3)

			under, err := svc.FindUnderutilizedItems(ctx, 10)
			So(err, ShouldBeNil)
			So(len(under), ShouldEqual, 1)

			gaps, err := svc.AnalyzeWardrobeGaps(ctx)
			So(err, ShouldBeNil)
			So(gaps.MissingCategories, ShouldContain, "outerwear")

			sugg, err := svc.GetSuggestions(ctx, "acm", 5)
			So(err, ShouldBeNil)
			So(sugg, ShouldResemble, []string{"Acme"})

			weather, err := svc.SearchByWeather(ctx, wardrobe.WeatherConditions{Temperature: 70, Conditions: wardrobe.ConditionsSunny, Season: "Fall"})
			So(err, ShouldBeNil)
			So(len(weather), ShouldEqual, 3)
		})
	})
}

func TestService_Wear(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := newService()
		So(svc.Start(ctx), ShouldBeNil)
		defer func() { _ = svc.Stop(ctx) }()

		Convey("When a wear event is submitted twice", func() {
			worn := fixedNow.Add(-time.Hour)
			dup1, err1 := svc.SubmitWear(ctx, model.WearEvent{EventID: "w1", ItemID: "top", WornAt: worn})
			dup2, err2 := svc.SubmitWear(ctx, model.WearEvent{EventID: "w1", ItemID: "top", WornAt: worn})

			Convey("Then it is applied once", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(dup1, ShouldBeFalse)
				So(dup2, ShouldBeTrue)
				So(waitFor(func() bool {
					it, _ := svc.Item(ctx, "top")
					return it.TimesWorn == 1
				}), ShouldBeTrue)
				it, _ := svc.Item(ctx, "top")
				So(it.DateLastWorn, ShouldNotBeNil)
				So(it.DateLastWorn.Equal(worn), ShouldBeTrue)
			})
		})

		Convey("When an event without a time is submitted", func() {
			_, err := svc.SubmitWear(ctx, model.WearEvent{EventID: "w2", ItemID: "jeans"})
			So(err, ShouldBeNil)

			Convey("Then the service clock is used", func() {
				So(waitFor(func() bool {
					it, _ := svc.Item(ctx, "jeans")
					return it.TimesWorn == 41
				}), ShouldBeTrue)
				it, _ := svc.Item(ctx, "jeans")
				So(it.DateLastWorn.Equal(fixedNow), ShouldBeTrue)
			})
		})

		Convey("When an event is missing its item", func() {
			_, err := svc.SubmitWear(ctx, model.WearEvent{EventID: "w3"})

			Convey("Then it is rejected as invalid", func() {
				So(errors.Is(err, service.ErrInvalidEvent), ShouldBeTrue)
				So(errors.Is(err, model.ErrMissingItemID), ShouldBeTrue)
			})
		})
	})

	Convey("Given wear recorded directly", t, func() {
		ctx := context.Background()
		svc := newService()
		So(svc.Start(ctx), ShouldBeNil)
		defer func() { _ = svc.Stop(ctx) }()

		later := fixedNow.Add(-time.Hour)
		earlier := fixedNow.Add(-48 * time.Hour)
		So(svc.RecordWear(ctx, model.WearEvent{EventID: "a", ItemID: "top", WornAt: later}), ShouldBeNil)
		So(svc.RecordWear(ctx, model.WearEvent{EventID: "b", ItemID: "top", WornAt: earlier}), ShouldBeNil)

		Convey("Then the count rises but the last-worn date never moves back", func() {
			it, _ := svc.Item(ctx, "top")
			So(it.TimesWorn, ShouldEqual, 2)
			So(it.DateLastWorn.Equal(later), ShouldBeTrue)
		})

		Convey("Then unknown items are reported", func() {
			err := svc.RecordWear(ctx, model.WearEvent{EventID: "c", ItemID: "ghost", WornAt: later})
			So(errors.Is(err, service.ErrUnknownItem), ShouldBeTrue)
		})
	})

	Convey("Given queued events when the service stops", t, func() {
		ctx := context.Background()
		store := repository.NewInMemoryStore(ctx)
		svc := newService(service.WithWorkerCount(1), service.WithStore(store))
		So(svc.Start(ctx), ShouldBeNil)
		for i := range 20 {
			_, err := svc.SubmitWear(ctx, model.WearEvent{EventID: fmt.Sprintf("e%d", i), ItemID: "top", WornAt: fixedNow})
			So(err, ShouldBeNil)
		}
		So(svc.Stop(ctx), ShouldBeNil)

		Convey("Then every event was applied before Stop returned", func() {
			st := svc.GetStats(ctx)
			So(st.Started, ShouldBeFalse)
			So(st.QueueLength, ShouldEqual, 0)
			it, err := store.Get(ctx, "top")
			So(err, ShouldBeNil)
			So(it.TimesWorn, ShouldEqual, 20)
		})

		Convey("Then new events are refused", func() {
			_, err := svc.SubmitWear(ctx, model.WearEvent{EventID: "late", ItemID: "top"})
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
		})
	})
}

func TestService_Stats(t *testing.T) {
	Convey("Given a service with a one-way style rule", t, func() {
		ctx := context.Background()
		rules := wardrobe.DefaultRules()
		rules.StyleAdjacency = map[string][]string{"Bohemian": {"Vintage"}}
		svc := newService(service.WithRules(rules), service.WithQueueSize(64), service.WithDedupeSize(10))
		So(svc.Start(ctx), ShouldBeNil)
		defer func() { _ = svc.Stop(ctx) }()

		Convey("Then stats describe the running service", func() {
			st := svc.GetStats(ctx)
			So(st.Started, ShouldBeTrue)
			So(st.Items, ShouldEqual, 3)
			So(st.StoredItems, ShouldEqual, 3)
			So(st.WorkerCount, ShouldEqual, 2)
			So(st.QueueCapacity, ShouldEqual, 64)
			So(st.Asymmetries, ShouldResemble, []wardrobe.StylePair{{From: "Bohemian", To: "Vintage"}})
		})
	})
}
