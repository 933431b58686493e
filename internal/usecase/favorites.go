package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/geo"
)

// FilterFavorites — пересечение избранного с текущим набором вендоров плюс геозона.
// Алгоритм:
//  1. ссылки резолвятся по точному id; «сироты» и неактивные вендоры молча
//     отбрасываются;
//  2. origin == nil — список без геофильтра (легитимное состояние, не ошибка);
//  3. иначе остаются вендоры в радиусе radiusKm; вендор с неизвестными
//     координатами из геозоны исключается (isWithinRadius → false, не паника).
//
// Порядок результата — порядок favorites (не allVendors): сортировку
// «последний добавленный первым» задаёт вызывающий, здесь она не нарушается.
func FilterFavorites(
	favorites []domain.FavoriteReference,
	allVendors []domain.VendorRecord,
	origin *domain.Coordinates,
	radiusKm float64,
) []domain.VendorRecord {
	if radiusKm <= 0 {
		radiusKm = DefaultFavoritesRadiusKm
	}

	// id уникален внутри раздела, но не между разделами; при коллизии
	// побеждает первое вхождение (порядок разделов allVendors).
	byID := make(map[string]*domain.VendorRecord, len(allVendors))
	for i := range allVendors {
		v := &allVendors[i]
		if !v.Active {
			continue
		}
		if _, seen := byID[v.ID]; seen {
			continue
		}
		byID[v.ID] = v
	}

	out := make([]domain.VendorRecord, 0, len(favorites))
	for _, ref := range favorites {
		v, ok := byID[ref.VendorID]
		if !ok {
			continue // сирота
		}
		if origin == nil {
			out = append(out, *v)
			continue
		}
		coords, known := v.Coordinates()
		if !known {
			continue
		}
		if geo.IsWithinRadius(*origin, coords, radiusKm) {
			out = append(out, *v)
		}
	}
	return out
}

// RemoveByID — удалить вендора из резолвленного списка по точному id.
// Остальной список (и исходный набор вендоров) не трогается.
func RemoveByID(list []domain.VendorRecord, id string) []domain.VendorRecord {
	out := make([]domain.VendorRecord, 0, len(list))
	for _, v := range list {
		if v.ID == id {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FavoritesView — избранное относительно последнего загруженного каталога.
// origin == nil означает «взять сохранённую точку пользователя, если есть».
func (s *VendorService) FavoritesView(
	favorites []domain.FavoriteReference,
	origin *domain.Coordinates,
	radiusKm float64,
) []domain.VendorRecord {
	view := s.LastView()
	if view == nil {
		return []domain.VendorRecord{}
	}
	if origin == nil {
		if loc, ok := s.Location(); ok {
			origin = &loc
		}
	}
	if radiusKm <= 0 {
		radiusKm = s.radiusKm
	}
	return FilterFavorites(favorites, view.AllVendors(), origin, radiusKm)
}

// RemoveFavorite — мутация избранного во внешнем API.
// Успех означает, что вызывающий обязан убрать вендора из своего
// резолвленного списка по id (RemoveByID) — перечитывать каталог не нужно.
func (s *VendorService) RemoveFavorite(ctx context.Context, userID, vendorID, token string) error {
	if userID == "" || vendorID == "" {
		return fmt.Errorf("remove favorite: empty user or vendor id")
	}
	if err := s.favorites.SetLiked(ctx, userID, vendorID, false, token); err != nil {
		s.log.Errorf(ctx, "favorite remove failed user=%s vendor=%s err=%v", userID, vendorID, err)
		return err
	}
	s.log.Infof(ctx, "favorite removed user=%s vendor=%s", userID, vendorID)
	return nil
}
