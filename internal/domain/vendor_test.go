package domain_test

import (
	"testing"

	"github.com/Gunvolt24/vendorcache/internal/domain"
)

func TestVendorRecord_Coordinates(t *testing.T) {
	v := domain.VendorRecord{Latitude: domain.Float(60.1), Longitude: domain.Float(24.9)}
	coords, ok := v.Coordinates()
	if !ok || coords.Latitude != 60.1 || coords.Longitude != 24.9 {
		t.Fatalf("want known pair, got ok=%v coords=%+v", ok, coords)
	}

	half := domain.VendorRecord{Latitude: domain.Float(60.1)}
	if _, ok := half.Coordinates(); ok {
		t.Fatalf("single known coordinate must not form a pair")
	}
}

func TestVendorDataView_ItemsForAndAllVendors(t *testing.T) {
	view := domain.VendorDataView{
		Restaurants: []domain.VendorRecord{{ID: "r-1"}},
		Groceries:   []domain.VendorRecord{{ID: "g-1"}, {ID: "g-2"}},
		Pharmacies:  []domain.VendorRecord{{ID: "p-1"}},
		Ratings:     []domain.RatingRecord{{ID: "rt-1"}},
	}

	if got := view.ItemsFor(domain.CategoryGroceries); len(got.Vendors) != 2 {
		t.Fatalf("unexpected groceries: %+v", got)
	}
	if got := view.ItemsFor(domain.CategoryRatings); len(got.Ratings) != 1 {
		t.Fatalf("unexpected ratings: %+v", got)
	}

	all := view.AllVendors()
	if len(all) != 4 {
		t.Fatalf("want 4 vendors, got %d", len(all))
	}
	// Порядок — порядок разделов.
	if all[0].ID != "r-1" || all[1].ID != "g-1" || all[3].ID != "p-1" {
		t.Fatalf("section order broken: %+v", all)
	}
}

func TestVendorDataView_Listing(t *testing.T) {
	view := domain.VendorDataView{
		Restaurants: []domain.VendorRecord{{ID: "r-1", Active: true}, {ID: "r-2"}},
		Pharmacies:  []domain.VendorRecord{{ID: "p-1"}},
		Ratings:     []domain.RatingRecord{{ID: "rt-1"}},
		Failed:      map[domain.Category]string{domain.CategoryGroceries: "fetch timeout"},
	}

	got := view.Listing()
	if len(got.Restaurants) != 1 || got.Restaurants[0].ID != "r-1" {
		t.Fatalf("inactive vendors must be filtered: %+v", got.Restaurants)
	}
	if len(got.Pharmacies) != 0 {
		t.Fatalf("fully inactive section must be empty: %+v", got.Pharmacies)
	}
	if len(got.Ratings) != 1 || got.Failed[domain.CategoryGroceries] == "" {
		t.Fatalf("ratings and failed must be carried over: %+v", got)
	}

	// Исходное представление не мутируется.
	if len(view.Restaurants) != 2 {
		t.Fatalf("source view must stay intact: %+v", view.Restaurants)
	}

	if domain.ActiveOnly(nil) != nil {
		t.Fatalf("nil input must stay nil")
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, cat := range domain.Categories() {
		if !cat.Valid() {
			t.Fatalf("%s must be valid", cat)
		}
	}
	if domain.Category("toys").Valid() {
		t.Fatalf("unknown category must be invalid")
	}
}

func TestProjectEssential(t *testing.T) {
	vendors := []domain.VendorRecord{
		{
			ID:          "v-1",
			Slug:        "first",
			DisplayName: "First",
			Active:      true,
			Latitude:    domain.Float(60.1),
			Longitude:   domain.Float(24.9),
			Meta:        domain.VendorMeta{LogoURL: "https://cdn/logo.png", Description: "desc"},
		},
		{ID: "v-2", Slug: "second", DisplayName: "Second"},
	}

	got := domain.ProjectEssential(vendors)
	if len(got) != 2 {
		t.Fatalf("want 2 projections, got %d", len(got))
	}
	if got[0].ID != "v-1" || got[0].Meta.LogoURL != "https://cdn/logo.png" {
		t.Fatalf("projection lost fields: %+v", got[0])
	}
	if got[1].ID != "v-2" || got[1].Active {
		t.Fatalf("unexpected projection: %+v", got[1])
	}

	if domain.ProjectEssential(nil) != nil {
		t.Fatalf("nil input must stay nil")
	}
}
