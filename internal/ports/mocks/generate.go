//go:generate mockgen -source=../catalog_fetcher.go     -destination=./mock_catalog_fetcher.go     -package=mocks
//go:generate mockgen -source=../category_cache.go      -destination=./mock_category_cache.go      -package=mocks
//go:generate mockgen -source=../storage_guard.go       -destination=./mock_storage_guard.go       -package=mocks
//go:generate mockgen -source=../favorites_api.go       -destination=./mock_favorites_api.go       -package=mocks
//go:generate mockgen -source=../logger.go              -destination=./mock_logger.go              -package=mocks
//go:generate mockgen -source=../vendor_read_service.go -destination=./mock_vendor_read_service.go -package=mocks
//go:generate mockgen -source=../vendor_validator.go    -destination=./mock_vendor_validator.go    -package=mocks

package mocks
