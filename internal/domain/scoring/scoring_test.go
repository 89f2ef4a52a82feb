package scoring_test

import (
	"testing"

	scoring "github.com/okian/closet/internal/domain/scoring"
	"github.com/okian/closet/internal/domain/wardrobe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScorer_ColorsComplement(t *testing.T) {
	Convey("Given a scorer with the default palette", t, func() {
		s := scoring.NewScorer()

		Convey("Then neutrals pair with anything", func() {
			So(s.ColorsComplement("Black", "Chartreuse"), ShouldBeTrue)
			So(s.ColorsComplement("Magenta", "cream"), ShouldBeTrue)
		})

		Convey("Then curated pairs match in either order", func() {
			So(s.ColorsComplement("Blue", "Orange"), ShouldBeTrue)
			So(s.ColorsComplement("Orange", "Blue"), ShouldBeTrue)
		})

		Convey("Then unlisted pairs do not match", func() {
			So(s.ColorsComplement("Red", "Orange"), ShouldBeFalse)
		})

		Convey("Then the relation is symmetric across the vocabulary", func() {
			colors := []string{"Black", "White", "Red", "Green", "Blue", "Orange", "Teal", "Coral", "Pink", "Olive", "Purple", "Yellow", ""}
			for _, a := range colors {
				for _, b := range colors {
					So(s.ColorsComplement(a, b), ShouldEqual, s.ColorsComplement(b, a))
				}
			}
		})
	})
}

func TestScorer_StylesCompatible(t *testing.T) {
	Convey("Given a scorer with a one-way adjacency entry", t, func() {
		rules := wardrobe.DefaultRules()
		rules.StyleAdjacency = map[string][]string{"Bohemian": {"Vintage"}}
		s := scoring.NewScorer(scoring.WithRules(rules))

		Convey("Then equal styles are compatible", func() {
			So(s.StylesCompatible("Formal", "Formal"), ShouldBeTrue)
		})

		Convey("Then the entry is honored in both directions", func() {
			So(s.StylesCompatible("Bohemian", "Vintage"), ShouldBeTrue)
			So(s.StylesCompatible("Vintage", "Bohemian"), ShouldBeTrue)
		})

		Convey("Then unrelated styles are not compatible", func() {
			So(s.StylesCompatible("Bohemian", "Formal"), ShouldBeFalse)
		})
	})
}

func TestScorer_Compatibility(t *testing.T) {
	Convey("Given two items", t, func() {
		s := scoring.NewScorer()
		a := wardrobe.Item{
			PrimaryColor: "Black", Style: "Casual", Brand: "X", ValueScore: 5,
			Occasion: []string{"daily", "weekend"}, Season: []string{"Fall", "Winter"},
		}
		b := wardrobe.Item{
			PrimaryColor: "White", Style: "Casual", Brand: "X", ValueScore: 6,
			Occasion: []string{"weekend", "daily", "daily"}, Season: []string{"Winter"},
		}

		Convey("Then every component is summed", func() {
			So(s.Compatibility(a, b), ShouldAlmostEqual, 3+2+2+1+1+11.0/20, 1e-9)
		})

		Convey("Then the score is symmetric", func() {
			So(s.Compatibility(a, b), ShouldAlmostEqual, s.Compatibility(b, a), 1e-9)
		})

		Convey("When the items share nothing", func() {
			c := wardrobe.Item{PrimaryColor: "Red", Style: "Formal", Brand: "Y"}
			d := wardrobe.Item{PrimaryColor: "Orange", Style: "Athletic", Brand: "Z"}

			Convey("Then the score is zero", func() {
				So(s.Compatibility(c, d), ShouldEqual, 0)
			})
		})

		Convey("When custom weights are supplied", func() {
			w := scoring.Weights{Color: 10, Style: 0, Brand: 0, ValueDivisor: 0, Completeness: 1}
			custom := scoring.NewScorer(scoring.WithWeights(w))

			Convey("Then they replace the defaults and keep a usable divisor", func() {
				So(custom.Weights().ValueDivisor, ShouldEqual, 20)
				So(custom.Compatibility(a, b), ShouldAlmostEqual, 10+2+1+11.0/20, 1e-9)
			})
		})
	})
}

func TestScorer_Outfit(t *testing.T) {
	Convey("Given a scorer", t, func() {
		s := scoring.NewScorer()
		x := wardrobe.Item{PrimaryColor: "Black", Style: "Casual", Brand: "X", ValueScore: 4}
		y := wardrobe.Item{PrimaryColor: "White", Style: "Casual", Brand: "X", ValueScore: 6}

		Convey("Then a pair scores its compatibility plus bonuses", func() {
			So(s.Outfit([]wardrobe.Item{x, y}), ShouldAlmostEqual, (3+2+1+10.0/20)+2*2+5, 1e-9)
		})

		Convey("Then degenerate outfits do not panic", func() {
			So(s.Outfit(nil), ShouldEqual, 0)
			So(s.Outfit([]wardrobe.Item{x}), ShouldEqual, 2+4)
		})
	})
}
