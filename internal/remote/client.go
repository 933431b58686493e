// Пакет remote — клиент внешнего каталожного API и API избранного.
// Для агрегатора любой отказ (non-2xx, не-JSON тело, таймаут) — одинаковая
// ошибка загрузки одного раздела; различается только метка метрики.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/ports"
	"github.com/Gunvolt24/vendorcache/pkg/metrics"
)

// Проверка портов приложения.
var (
	_ ports.CatalogFetcher = (*Client)(nil)
	_ ports.FavoritesAPI   = (*Client)(nil)
)

// ErrCategoryFetch — отказ удалённой загрузки раздела (sentinel).
var ErrCategoryFetch = errors.New("category fetch failed")

// DefaultTimeout — верхняя граница одной загрузки раздела.
const DefaultTimeout = 15 * time.Second

// Endpoints — адреса внешнего API по разделам плюс endpoint избранного.
type Endpoints struct {
	Restaurants string
	Groceries   string
	Pharmacies  string
	Ratings     string
	Favorites   string
}

// Config — параметры клиента.
type Config struct {
	Endpoints Endpoints
	Timeout   time.Duration
}

// Client — HTTP-клиент внешнего API на resty.
type Client struct {
	http      *resty.Client
	endpoints Endpoints
	timeout   time.Duration
}

// New — конструктор. Таймаут <= 0 заменяется на DefaultTimeout.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:      client,
		endpoints: cfg.Endpoints,
		timeout:   timeout,
	}
}

// Close — освобождение ресурсов resty-клиента.
func (c *Client) Close() error { return c.http.Close() }

func (c *Client) endpointFor(cat domain.Category) (string, bool) {
	switch cat {
	case domain.CategoryRestaurants:
		return c.endpoints.Restaurants, c.endpoints.Restaurants != ""
	case domain.CategoryGroceries:
		return c.endpoints.Groceries, c.endpoints.Groceries != ""
	case domain.CategoryPharmacies:
		return c.endpoints.Pharmacies, c.endpoints.Pharmacies != ""
	case domain.CategoryRatings:
		return c.endpoints.Ratings, c.endpoints.Ratings != ""
	}
	return "", false
}

// Конверты ответа внешнего API (имена полей заданы бэкендом).
type (
	restaurantsEnvelope struct {
		Restaurants []domain.VendorRecord `json:"Restaurants"`
	}
	groceriesEnvelope struct {
		Groceries []domain.VendorRecord `json:"Groceries"`
	}
	pharmaciesEnvelope struct {
		Pharmacies []domain.VendorRecord `json:"Pharmacies"`
	}
	ratingsEnvelope struct {
		Ratings []domain.RatingRecord `json:"Ratings"`
	}
)

// FetchCategory — загрузка одного раздела.
// Таймаут ограничен и клиентским SetTimeout, и дедлайном ctx вызывающего.
func (c *Client) FetchCategory(ctx context.Context, cat domain.Category) (domain.CategoryItems, error) {
	url, ok := c.endpointFor(cat)
	if !ok {
		return domain.CategoryItems{}, fmt.Errorf("%w: no endpoint for category %q", ErrCategoryFetch, cat)
	}

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			metrics.FetchOps.WithLabelValues(cat.String(), "timeout").Inc()
		} else {
			metrics.FetchOps.WithLabelValues(cat.String(), "error").Inc()
		}
		return domain.CategoryItems{}, fmt.Errorf("%w: %s: %v", ErrCategoryFetch, cat, err)
	}
	if resp.IsError() {
		metrics.FetchOps.WithLabelValues(cat.String(), "error").Inc()
		return domain.CategoryItems{}, fmt.Errorf("%w: %s: status %d", ErrCategoryFetch, cat, resp.StatusCode())
	}

	items, err := decodeEnvelope(cat, resp.Bytes())
	if err != nil {
		metrics.FetchOps.WithLabelValues(cat.String(), "error").Inc()
		return domain.CategoryItems{}, fmt.Errorf("%w: %s: %v", ErrCategoryFetch, cat, err)
	}

	metrics.FetchOps.WithLabelValues(cat.String(), "ok").Inc()
	return items, nil
}

// decodeEnvelope — разбор конверта раздела; не-JSON тело — отказ загрузки.
func decodeEnvelope(cat domain.Category, body []byte) (domain.CategoryItems, error) {
	switch cat {
	case domain.CategoryRestaurants:
		var env restaurantsEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return domain.CategoryItems{}, fmt.Errorf("non-json body: %v", err)
		}
		return domain.CategoryItems{Vendors: env.Restaurants}, nil
	case domain.CategoryGroceries:
		var env groceriesEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return domain.CategoryItems{}, fmt.Errorf("non-json body: %v", err)
		}
		return domain.CategoryItems{Vendors: env.Groceries}, nil
	case domain.CategoryPharmacies:
		var env pharmaciesEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return domain.CategoryItems{}, fmt.Errorf("non-json body: %v", err)
		}
		return domain.CategoryItems{Vendors: env.Pharmacies}, nil
	case domain.CategoryRatings:
		var env ratingsEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return domain.CategoryItems{}, fmt.Errorf("non-json body: %v", err)
		}
		return domain.CategoryItems{Ratings: env.Ratings}, nil
	}
	return domain.CategoryItems{}, fmt.Errorf("unknown category %q", cat)
}
