package domain

// VendorMeta — вложенные метаданные вендора (логотип, описание).
// После merge в агрегаторе не мутируется.
type VendorMeta struct {
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

// VendorRecord — одна запись каталога (ресторан, магазин или аптека).
// Координаты могут отсутствовать или приходить в битом виде —
// это не ошибка записи, а «расстояние неизвестно» (см. FlexFloat).
type VendorRecord struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	DisplayName string     `json:"display_name"`
	Active      bool       `json:"active"`
	Latitude    FlexFloat  `json:"latitude"`
	Longitude   FlexFloat  `json:"longitude"`
	Meta        VendorMeta `json:"vendor_meta"`
}

// Coordinates — возвращает координаты вендора, если обе заданы.
func (v *VendorRecord) Coordinates() (Coordinates, bool) {
	if !v.Latitude.Known || !v.Longitude.Known {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: v.Latitude.Value, Longitude: v.Longitude.Value}, true
}

// RatingRecord — публичный рейтинг вендора (отдельная форма записи для раздела ratings).
type RatingRecord struct {
	ID       string  `json:"id"`
	VendorID string  `json:"vendor_id"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// Coordinates — последняя подтверждённая точка пользователя (WGS 84, градусы).
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FavoriteReference — слабая ссылка из профиля на VendorRecord по id.
// Ссылка без записи в текущем наборе вендоров — «сирота», молча отбрасывается.
type FavoriteReference struct {
	VendorID string `json:"vendor_id"`
}

// CategoryItems — содержимое одного раздела: либо вендоры, либо рейтинги.
// Для раздела ratings заполнен только Ratings, для остальных — только Vendors.
type CategoryItems struct {
	Vendors []VendorRecord
	Ratings []RatingRecord
}

// Len — количество записей раздела.
func (ci CategoryItems) Len() int {
	if len(ci.Ratings) > 0 {
		return len(ci.Ratings)
	}
	return len(ci.Vendors)
}

// VendorDataView — объединённое представление всех разделов на время жизни страницы.
// Failed содержит разделы, чья удалённая загрузка не удалась (раздел при этом пуст);
// «легитимно пустой» раздел в Failed не попадает.
type VendorDataView struct {
	Restaurants []VendorRecord      `json:"restaurants"`
	Groceries   []VendorRecord      `json:"groceries"`
	Pharmacies  []VendorRecord      `json:"pharmacies"`
	Ratings     []RatingRecord      `json:"ratings"`
	Failed      map[Category]string `json:"failed,omitempty"`
}

// ActiveOnly — только активные записи, порядок сохраняется. nil остаётся nil.
func ActiveOnly(in []VendorRecord) []VendorRecord {
	if in == nil {
		return nil
	}
	out := make([]VendorRecord, 0, len(in))
	for _, v := range in {
		if v.Active {
			out = append(out, v)
		}
	}
	return out
}

// Listing — представление для выдачи: неактивные вендоры скрыты.
// Ratings и Failed переносятся как есть; исходное представление не мутируется
// (полный набор записей остаётся доступным для резолва detail-страниц по id).
func (v *VendorDataView) Listing() *VendorDataView {
	return &VendorDataView{
		Restaurants: ActiveOnly(v.Restaurants),
		Groceries:   ActiveOnly(v.Groceries),
		Pharmacies:  ActiveOnly(v.Pharmacies),
		Ratings:     v.Ratings,
		Failed:      v.Failed,
	}
}

// ItemsFor — записи раздела из представления.
func (v *VendorDataView) ItemsFor(c Category) CategoryItems {
	switch c {
	case CategoryRestaurants:
		return CategoryItems{Vendors: v.Restaurants}
	case CategoryGroceries:
		return CategoryItems{Vendors: v.Groceries}
	case CategoryPharmacies:
		return CategoryItems{Vendors: v.Pharmacies}
	case CategoryRatings:
		return CategoryItems{Ratings: v.Ratings}
	}
	return CategoryItems{}
}

// AllVendors — вендоры всех трёх торговых разделов в порядке разделов.
func (v *VendorDataView) AllVendors() []VendorRecord {
	out := make([]VendorRecord, 0, len(v.Restaurants)+len(v.Groceries)+len(v.Pharmacies))
	out = append(out, v.Restaurants...)
	out = append(out, v.Groceries...)
	out = append(out, v.Pharmacies...)
	return out
}
