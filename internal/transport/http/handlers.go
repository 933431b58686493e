package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/geo"
	"github.com/Gunvolt24/vendorcache/pkg/httpx"
)

// getVendors — полное представление каталога; вызов не падает целиком —
// упавшие разделы пусты и перечислены в failed. Неактивные вендоры в выдачу
// не попадают.
func (h *Handler) getVendors(c *gin.Context) {
	view := h.service.LoadAll(c.Request.Context())
	c.JSON(http.StatusOK, view.Listing())
}

// getCategory — один раздел с limit/offset-пагинацией.
func (h *Handler) getCategory(c *gin.Context) {
	cat := domain.Category(c.Param("category"))
	if !cat.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, 50, 200)

	view := h.service.LoadAll(c.Request.Context()).Listing()
	if reason, failed := view.Failed[cat]; failed {
		// Раздел деградировал: пустая секция + причина, ретрай на стороне клиента.
		c.JSON(http.StatusOK, gin.H{"category": cat, "items": []any{}, "failed": reason})
		return
	}

	items := view.ItemsFor(cat)
	if cat == domain.CategoryRatings {
		c.JSON(http.StatusOK, gin.H{"category": cat, "items": page(items.Ratings, limit, offset)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat, "items": page(items.Vendors, limit, offset)})
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// getFavorites — избранное с геозоной.
// ids — список id через запятую (порядок — порядок избранного пользователя);
// lat/lon необязательны (без них берётся сохранённая точка либо фильтра нет);
// radius_km необязателен (по умолчанию конфигурационный радиус).
func (h *Handler) getFavorites(c *gin.Context) {
	rawIDs := c.Query("ids")
	if rawIDs == "" {
		c.JSON(http.StatusOK, []domain.VendorRecord{})
		return
	}
	var refs []domain.FavoriteReference
	for _, id := range strings.Split(rawIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			refs = append(refs, domain.FavoriteReference{VendorID: id})
		}
	}

	lat, latSet, latOK := httpx.ParseFloatQuery(c, "lat")
	lon, lonSet, lonOK := httpx.ParseFloatQuery(c, "lon")
	if !latOK || !lonOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat/lon"})
		return
	}
	if latSet != lonSet {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be passed together"})
		return
	}

	radius, _, radiusOK := httpx.ParseFloatQuery(c, "radius_km")
	if !radiusOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km"})
		return
	}

	var origin *domain.Coordinates
	if latSet {
		origin = &domain.Coordinates{Latitude: lat, Longitude: lon}
	}

	// Каталог должен быть загружен в рамках этого же запроса,
	// иначе избранное резолвится против пустого представления.
	h.service.LoadAll(c.Request.Context())

	c.JSON(http.StatusOK, h.service.FavoritesView(refs, origin, radius))
}

// deleteFavorite — мутация избранного во внешнем API (bearer прокидывается как есть).
func (h *Handler) deleteFavorite(c *gin.Context) {
	vendorID := c.Param("id")
	userID := c.Query("user_id")
	if vendorID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty user or vendor id"})
		return
	}
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := h.service.RemoveFavorite(c.Request.Context(), userID, vendorID, token); err != nil {
		h.log.Errorf(c.Request.Context(), "RemoveFavorite failed vendor=%s err=%v", vendorID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "favorites api failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": vendorID})
}

func (h *Handler) putLocation(c *gin.Context) {
	var coords domain.Coordinates
	if err := c.ShouldBindJSON(&coords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := h.service.SetLocation(coords); err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, coords)
}

func (h *Handler) getLocation(c *gin.Context) {
	coords, ok := h.service.Location()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not set"})
		return
	}
	c.JSON(http.StatusOK, coords)
}

func (h *Handler) deleteLocation(c *gin.Context) {
	h.service.ClearLocation()
	c.Status(http.StatusNoContent)
}

// getStorageStatus — неблокирующий индикатор для UI (процент, clear-cache действие).
func (h *Handler) getStorageStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.StorageStatus())
}

func (h *Handler) clearCache(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cleared_keys": h.service.ClearCache()})
}
