package domain

// Category — раздел каталога; единица секционирования кэша.
type Category string

const (
	CategoryRestaurants Category = "restaurants"
	CategoryGroceries   Category = "groceries"
	CategoryPharmacies  Category = "pharmacies"
	CategoryRatings     Category = "ratings"
)

// Categories — все разделы в фиксированном порядке (порядок обхода при fan-out).
func Categories() []Category {
	return []Category{CategoryRestaurants, CategoryGroceries, CategoryPharmacies, CategoryRatings}
}

// Valid — известен ли раздел.
func (c Category) Valid() bool {
	switch c {
	case CategoryRestaurants, CategoryGroceries, CategoryPharmacies, CategoryRatings:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }
