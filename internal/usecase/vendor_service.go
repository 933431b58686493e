package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/geo"
	"github.com/Gunvolt24/vendorcache/internal/ports"
)

// Ключи персистентного состояния подсистемы (внутри namespace Guard).
const (
	// EssentialKey — усечённый снапшот для гидрации detail-страниц.
	EssentialKey = "catalog:essential"
	// LocationKey — последняя подтверждённая точка пользователя.
	LocationKey = "user:location"
)

// DefaultFavoritesRadiusKm — радиус геозоны избранного по умолчанию.
const DefaultFavoritesRadiusKm = 8.0

// DefaultFetchTimeout — верхняя граница одной загрузки раздела.
const DefaultFetchTimeout = 15 * time.Second

// VendorService — прикладная логика каталога: fan-out загрузка разделов через
// кэш, слияние в представление сессии, проекции для персистентности,
// избранное и геозона. Транспорта не знает.
type VendorService struct {
	cache     ports.CategoryCache
	fetcher   ports.CatalogFetcher
	favorites ports.FavoritesAPI
	guard     ports.StorageGuard
	log       ports.Logger

	fetchTimeout time.Duration
	radiusKm     float64

	// group схлопывает конкурентные промахи одного раздела в одну загрузку:
	// дубль-запросы зря жгут квоту хранилища и гоняются на Put.
	group singleflight.Group

	mu       sync.RWMutex
	lastView *domain.VendorDataView
	location *domain.Coordinates
}

// Options — настраиваемые параметры сервиса; нулевые значения заменяются дефолтами.
type Options struct {
	FetchTimeout time.Duration
	RadiusKm     float64
}

// NewVendorService — DI-конструктор.
func NewVendorService(
	cache ports.CategoryCache,
	fetcher ports.CatalogFetcher,
	favorites ports.FavoritesAPI,
	guard ports.StorageGuard,
	log ports.Logger,
	opts Options,
) *VendorService {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.RadiusKm <= 0 {
		opts.RadiusKm = DefaultFavoritesRadiusKm
	}
	return &VendorService{
		cache:        cache,
		fetcher:      fetcher,
		favorites:    favorites,
		guard:        guard,
		log:          log,
		fetchTimeout: opts.FetchTimeout,
		radiusKm:     opts.RadiusKm,
	}
}

// LoadAll — собрать представление всех разделов.
// Разделы грузятся конкурентно и независимо: отказ одного не отменяет другие
// и не валит вызов целиком — упавший раздел пуст и помечен в Failed.
// Возврат — когда все разделы завершились (успехом или отказом).
func (s *VendorService) LoadAll(ctx context.Context) *domain.VendorDataView {
	view := &domain.VendorDataView{Failed: make(map[domain.Category]string)}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, cat := range domain.Categories() {
		wg.Add(1)
		go func(cat domain.Category) {
			defer wg.Done()
			items, err := s.loadCategory(ctx, cat)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warnf(ctx, "category load failed category=%s err=%v", cat, err)
				view.Failed[cat] = err.Error()
				return
			}
			switch cat {
			case domain.CategoryRestaurants:
				view.Restaurants = items.Vendors
			case domain.CategoryGroceries:
				view.Groceries = items.Vendors
			case domain.CategoryPharmacies:
				view.Pharmacies = items.Vendors
			case domain.CategoryRatings:
				view.Ratings = items.Ratings
			}
		}(cat)
	}
	wg.Wait()

	if len(view.Failed) == 0 {
		view.Failed = nil
	}

	s.persistEssential(ctx, view)

	s.mu.Lock()
	s.lastView = view
	s.mu.Unlock()

	return view
}

// loadCategory — раздел из кэша, при Stale — удалённая загрузка.
// Конкурентные промахи одного раздела схлопываются (singleflight); после
// завершения полёт снимается, так что будущий retry возможен всегда.
func (s *VendorService) loadCategory(ctx context.Context, cat domain.Category) (domain.CategoryItems, error) {
	if items, ok := s.cache.Get(cat); ok {
		s.log.Infof(ctx, "cache hit category=%s items=%d", cat, items.Len())
		return items, nil
	}

	v, err, shared := s.group.Do(cat.String(), func() (any, error) {
		// Повторная проверка: пока ждали очередь, другой вызов мог обновить раздел.
		if items, ok := s.cache.Get(cat); ok {
			return items, nil
		}

		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()

		start := time.Now()
		items, fetchErr := s.fetcher.FetchCategory(fetchCtx, cat)
		if fetchErr != nil {
			return domain.CategoryItems{}, fetchErr
		}

		// Метка свежести — момент завершения загрузки, не момент выдачи:
		// staleness считается консервативно.
		s.cache.Put(cat, items, time.Now())
		s.log.Infof(ctx, "category fetched category=%s items=%d took=%s", cat, items.Len(), time.Since(start))
		return items, nil
	})
	if err != nil {
		return domain.CategoryItems{}, err
	}
	if shared {
		s.log.Infof(ctx, "coalesced in-flight fetch category=%s", cat)
	}
	return v.(domain.CategoryItems), nil
}

// essentialSnapshot — усечённая проекция торговых разделов для персистентности.
type essentialSnapshot struct {
	Restaurants []domain.EssentialVendor `json:"restaurants"`
	Groceries   []domain.EssentialVendor `json:"groceries"`
	Pharmacies  []domain.EssentialVendor `json:"pharmacies"`
}

// persistEssential — записать усечённый снапшот. Отказ записи — не ошибка:
// проекция — оптимизация бюджета хранилища, а не требование корректности.
// Упавший раздел не затирает ранее сохранённую проекцию: временный сбой
// источника не должен уничтожать данные гидрации detail-страниц.
func (s *VendorService) persistEssential(ctx context.Context, view *domain.VendorDataView) {
	snap := essentialSnapshot{
		Restaurants: domain.ProjectEssential(view.Restaurants),
		Groceries:   domain.ProjectEssential(view.Groceries),
		Pharmacies:  domain.ProjectEssential(view.Pharmacies),
	}

	_, restFailed := view.Failed[domain.CategoryRestaurants]
	_, grocFailed := view.Failed[domain.CategoryGroceries]
	_, pharmFailed := view.Failed[domain.CategoryPharmacies]
	if restFailed || grocFailed || pharmFailed {
		var prev essentialSnapshot
		if s.guard.Read(EssentialKey, &prev) {
			if restFailed {
				snap.Restaurants = prev.Restaurants
			}
			if grocFailed {
				snap.Groceries = prev.Groceries
			}
			if pharmFailed {
				snap.Pharmacies = prev.Pharmacies
			}
		}
	}

	if res := s.guard.Write(EssentialKey, snap); !res.OK {
		s.log.Warnf(ctx, "essential snapshot not persisted reason=%s", res.Reason)
	}
}

// LastView — представление последнего LoadAll текущей сессии (может быть nil).
func (s *VendorService) LastView() *domain.VendorDataView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastView
}

// StorageStatus — сводка хранилища для неблокирующего индикатора в UI.
func (s *VendorService) StorageStatus() domain.StorageStatus {
	return domain.StorageStatus{
		StorageBudgetSnapshot: s.guard.Usage(),
		IsAvailable:           s.guard.IsAvailable(),
	}
}

// ClearCache — очистка всех ключей подсистемы по явному действию пользователя;
// in-memory разделы сбрасываются, чтобы следующий LoadAll перечитал каталог.
func (s *VendorService) ClearCache() int {
	cleared := s.guard.ClearAll()
	s.cache.Reset()

	s.mu.Lock()
	s.lastView = nil
	s.location = nil
	s.mu.Unlock()

	return cleared
}

// SetLocation — зафиксировать подтверждённую пользователем точку.
func (s *VendorService) SetLocation(c domain.Coordinates) error {
	if err := geo.Validate(c); err != nil {
		return err
	}
	if res := s.guard.Write(LocationKey, c); !res.OK {
		s.log.Warnf(context.Background(), "location not persisted reason=%s", res.Reason)
	}
	s.mu.Lock()
	s.location = &c
	s.mu.Unlock()
	return nil
}

// Location — последняя подтверждённая точка (из памяти или хранилища).
func (s *VendorService) Location() (domain.Coordinates, bool) {
	s.mu.RLock()
	if s.location != nil {
		c := *s.location
		s.mu.RUnlock()
		return c, true
	}
	s.mu.RUnlock()

	var c domain.Coordinates
	if !s.guard.Read(LocationKey, &c) {
		return domain.Coordinates{}, false
	}
	s.mu.Lock()
	s.location = &c
	s.mu.Unlock()
	return c, true
}

// ClearLocation — только по явному действию пользователя.
func (s *VendorService) ClearLocation() {
	s.guard.Delete(LocationKey)
	s.mu.Lock()
	s.location = nil
	s.mu.Unlock()
}
