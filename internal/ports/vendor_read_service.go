package ports

import (
	"context"

	"github.com/Gunvolt24/vendorcache/internal/domain"
)

// VendorReadService — прикладной сервис каталога, видимый транспорту.
type VendorReadService interface {
	LoadAll(ctx context.Context) *domain.VendorDataView
	FavoritesView(favorites []domain.FavoriteReference, origin *domain.Coordinates, radiusKm float64) []domain.VendorRecord
	RemoveFavorite(ctx context.Context, userID, vendorID, token string) error
	StorageStatus() domain.StorageStatus
	ClearCache() int
	SetLocation(c domain.Coordinates) error
	Location() (domain.Coordinates, bool)
	ClearLocation()
}
