package ports

import (
	"time"

	"github.com/Gunvolt24/vendorcache/internal/domain"
)

// CategoryCache — TTL-кэш разделов каталога.
// Раздел либо Fresh (возраст < TTL), либо Stale; отсутствие записи — вырожденный Stale.
// Инвалидации по событию нет намеренно: свежесть ограничена только временем.
type CategoryCache interface {
	// Get — записи раздела, только если он Fresh; иначе (_, false) — вызывающий обязан перезагрузить.
	Get(category domain.Category) (domain.CategoryItems, bool)

	// Put — записать раздел после успешной удалённой загрузки.
	// fetchedAt — момент, когда загрузка завершилась (не когда была выдана).
	// Пустой набор записей — валидное Fresh-состояние, не ошибка.
	Put(category domain.Category, items domain.CategoryItems, fetchedAt time.Time)

	// LastFetched — время последней успешной загрузки раздела, если была.
	LastFetched(category domain.Category) (time.Time, bool)

	// Reset — сбросить все разделы в вырожденный Stale (после очистки хранилища).
	Reset()
}
