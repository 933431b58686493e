package category

import "github.com/Gunvolt24/vendorcache/internal/domain"

// persistedSnapshot — сериализованная форма кэша: разделы-соседи в одном
// объекте под одним ключом плюс карта lastFetched (epoch millis).
type persistedSnapshot struct {
	Restaurants []domain.VendorRecord     `json:"restaurants"`
	Groceries   []domain.VendorRecord     `json:"groceries"`
	Pharmacies  []domain.VendorRecord     `json:"pharmacies"`
	Ratings     []domain.RatingRecord     `json:"ratings"`
	LastFetched map[domain.Category]int64 `json:"lastFetched"`
}

func (s *persistedSnapshot) itemsFor(cat domain.Category) domain.CategoryItems {
	switch cat {
	case domain.CategoryRestaurants:
		return domain.CategoryItems{Vendors: s.Restaurants}
	case domain.CategoryGroceries:
		return domain.CategoryItems{Vendors: s.Groceries}
	case domain.CategoryPharmacies:
		return domain.CategoryItems{Vendors: s.Pharmacies}
	case domain.CategoryRatings:
		return domain.CategoryItems{Ratings: s.Ratings}
	}
	return domain.CategoryItems{}
}

// persistedLocked — собрать снапшот из текущих записей (вызывается под mu).
func (c *Cache) persistedLocked() persistedSnapshot {
	snap := persistedSnapshot{LastFetched: make(map[domain.Category]int64, len(c.entries))}
	for cat, e := range c.entries {
		switch cat {
		case domain.CategoryRestaurants:
			snap.Restaurants = e.items.Vendors
		case domain.CategoryGroceries:
			snap.Groceries = e.items.Vendors
		case domain.CategoryPharmacies:
			snap.Pharmacies = e.items.Vendors
		case domain.CategoryRatings:
			snap.Ratings = e.items.Ratings
		}
		snap.LastFetched[cat] = e.fetchedAt.UnixMilli()
	}
	return snap
}

// cloneItems — кэш отдаёт и хранит копии, а не указатели на внутренние слайсы.
func cloneItems(items domain.CategoryItems) domain.CategoryItems {
	out := domain.CategoryItems{}
	if items.Vendors != nil {
		out.Vendors = append([]domain.VendorRecord(nil), items.Vendors...)
	}
	if items.Ratings != nil {
		out.Ratings = append([]domain.RatingRecord(nil), items.Ratings...)
	}
	return out
}
