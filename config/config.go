package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Remote — endpoints внешнего каталожного API и API избранного.
type Remote struct {
	RestaurantsURL string        `default:"http://backend:3000/api/v1/restaurants" envconfig:"RESTAURANTS_URL"`
	GroceriesURL   string        `default:"http://backend:3000/api/v1/groceries" envconfig:"GROCERIES_URL"`
	PharmaciesURL  string        `default:"http://backend:3000/api/v1/pharmacies" envconfig:"PHARMACIES_URL"`
	RatingsURL     string        `default:"http://backend:3000/api/v1/ratings" envconfig:"RATINGS_URL"`
	FavoritesURL   string        `default:"http://backend:3000/api/v1/favorites" envconfig:"FAVORITES_URL"`
	Timeout        time.Duration `default:"15s" envconfig:"TIMEOUT"`
}

type Cache struct {
	TTL time.Duration `default:"30m" envconfig:"TTL"`
}

// Storage — параметры квотируемого локального хранилища.
type Storage struct {
	Dir           string `default:"./data" envconfig:"DIR"`
	Namespace     string `default:"vendorcache" envconfig:"NAMESPACE"`
	QuotaBytes    int64  `default:"5242880" envconfig:"QUOTA_BYTES"`
	BudgetPercent int    `default:"80" envconfig:"BUDGET_PERCENT"`
}

type Geo struct {
	FavoritesRadiusKm float64 `default:"8" envconfig:"FAVORITES_RADIUS_KM"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"vendorcache" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Config struct {
	HTTP    HTTP
	Remote  Remote
	Cache   Cache
	Storage Storage
	Geo     Geo
	Logger  Logger
	Tracing Tracing
}

// Load — конфигурация из окружения с префиксом VENDOR.
func Load() (Config, error) {
	return LoadWithPrefix("VENDOR")
}

// LoadWithPrefix — то же с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config
	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
