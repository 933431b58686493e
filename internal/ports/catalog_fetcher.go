package ports

import (
	"context"

	"github.com/Gunvolt24/vendorcache/internal/domain"
)

// CatalogFetcher — клиент внешнего каталожного API.
// Ошибка покрывает и non-2xx, и не-JSON тело, и таймаут — для агрегатора
// это одинаковый отказ загрузки одного раздела.
type CatalogFetcher interface {
	FetchCategory(ctx context.Context, category domain.Category) (domain.CategoryItems, error)
}
