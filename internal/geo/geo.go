// Пакет geo — геодезические расчёты для радиусных проверок.
// Для геозоны избранного достаточно хаверсинуса (большой круг);
// точная дорожная дистанция для расчёта тарифа — забота внешнего провайдера.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/Gunvolt24/vendorcache/internal/domain"
)

// ErrInvalidCoordinates — невалидные входные координаты.
// Вызывающий код обязан трактовать это как «расстояние неизвестно», а не как ноль.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Средний радиус Земли, км (IUGG mean radius).
const earthRadiusKm = 6371.0088

// Validate — проверка пары координат: конечные числа в допустимых диапазонах.
func Validate(c domain.Coordinates) error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return fmt.Errorf("%w: non-finite lat=%v lon=%v", ErrInvalidCoordinates, c.Latitude, c.Longitude)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of [-90,90]", ErrInvalidCoordinates, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of [-180,180]", ErrInvalidCoordinates, c.Longitude)
	}
	return nil
}

// DistanceKm — расстояние большого круга между a и b (хаверсинус).
// На невалидном входе возвращает ErrInvalidCoordinates; результат всегда >= 0.
func DistanceKm(a, b domain.Coordinates) (float64, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h))), nil
}

// IsWithinRadius — попадает ли b в радиус radiusKm от a.
// Любая ошибка расчёта (в т.ч. битые координаты) — это false, не исключение:
// вендоры с неизвестным расстоянием из геозоны исключаются молча.
func IsWithinRadius(a, b domain.Coordinates, radiusKm float64) bool {
	if radiusKm < 0 {
		return false
	}
	d, err := DistanceKm(a, b)
	if err != nil {
		return false
	}
	return d <= radiusKm
}
