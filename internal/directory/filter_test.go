package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type vendorRow struct {
	name       string
	desc       string
	location   string
	category   string
	priceRange string
}

func vendorView(v vendorRow) Item {
	return Item{
		Name:        v.name,
		Description: v.desc,
		Location:    v.location,
		Category:    v.category,
		PriceRange:  v.priceRange,
	}
}

var vendorFixtures = []vendorRow{
	{"Spice Route Catering", "South Indian wedding feasts", "Chennai", "catering", "$$"},
	{"Golden Lens Studio", "Candid photography", "Mumbai", "photography", "$$$"},
	{"Raga Banquets", "Catering and banquet halls", "Delhi", "catering", "$$$"},
	{"Everbloom Decor", "Floral mandap decoration", "Jaipur", "decoration", "$$"},
	{"Tandoor Tales", "North Indian catering", "Delhi", "catering", "$$"},
}

func TestFilter_CategoryAndPrice(t *testing.T) {
	got := Filter(vendorFixtures, vendorView, Criteria{Category: "catering", PriceRange: "$$"})
	// Exactly the entries matching both dimensions, input order preserved.
	assert.Equal(t, []vendorRow{vendorFixtures[0], vendorFixtures[4]}, got)
}

func TestFilter_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	// Name hit.
	got := Filter(vendorFixtures, vendorView, Criteria{Search: "SPICE"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Spice Route Catering", got[0].name)

	// Description hit.
	got = Filter(vendorFixtures, vendorView, Criteria{Search: "candid"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Golden Lens Studio", got[0].name)

	// Location hit ORed with the other fields.
	got = Filter(vendorFixtures, vendorView, Criteria{Search: "delhi"})
	assert.Len(t, got, 2)
}

func TestFilter_SearchAndsWithOtherDimensions(t *testing.T) {
	got := Filter(vendorFixtures, vendorView, Criteria{Search: "delhi", Category: "catering", PriceRange: "$$"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Tandoor Tales", got[0].name)
}

func TestFilter_AllAndEmptyAreNoOps(t *testing.T) {
	got := Filter(vendorFixtures, vendorView, Criteria{Category: "all", PriceRange: ""})
	assert.Equal(t, vendorFixtures, got)
}

func intp(v int) *int { return &v }

type venueRow struct {
	name     string
	capacity *int
}

func venueView(v venueRow) Item {
	return Item{Name: v.name, Capacity: v.capacity}
}

func TestFilter_CapacityRange(t *testing.T) {
	venues := []venueRow{
		{"Lotus Lawn", intp(150)},
		{"Harbor Hall", intp(420)},
		{"Rooftop Nook", intp(60)},
		{"Palace Grounds", intp(900)},
		{"Hidden Garden", nil},
	}

	got := Filter(venues, venueView, Criteria{CapacityRange: "100-500"})
	assert.Equal(t, []venueRow{venues[0], venues[1]}, got)

	// Lower bound only.
	got = Filter(venues, venueView, Criteria{CapacityRange: "500-"})
	assert.Equal(t, []venueRow{venues[3]}, got)
}

func TestFilter_NilCapacityNeverMatchesBoundedFilter(t *testing.T) {
	venues := []venueRow{{"Hidden Garden", nil}}
	got := Filter(venues, venueView, Criteria{CapacityRange: "0-100000"})
	assert.Empty(t, got)

	// No capacity filter: the item passes.
	got = Filter(venues, venueView, Criteria{CapacityRange: "all"})
	assert.Len(t, got, 1)
}

func TestMatch_Pure(t *testing.T) {
	it := Item{Name: "Lotus Lawn", Capacity: intp(150)}
	c := Criteria{Search: "lotus", CapacityRange: "100-200"}
	first := Match(it, c)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Match(it, c))
	}
	assert.True(t, first)
}
