package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/vendorcache/config"
	"github.com/Gunvolt24/vendorcache/internal/cache/category"
	"github.com/Gunvolt24/vendorcache/internal/ports"
	"github.com/Gunvolt24/vendorcache/internal/remote"
	"github.com/Gunvolt24/vendorcache/internal/storage"
	"github.com/Gunvolt24/vendorcache/internal/storage/file"
	rest "github.com/Gunvolt24/vendorcache/internal/transport/http"
	"github.com/Gunvolt24/vendorcache/internal/usecase"
	"github.com/Gunvolt24/vendorcache/pkg/logger"
	"github.com/Gunvolt24/vendorcache/pkg/metrics"
	"github.com/Gunvolt24/vendorcache/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger // логгер
	HTTPServer      *http.Server // HTTP-сервер
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Локальное хранилище. Ошибка создания каталога не фатальна:
	// Guard уйдёт в режим no-op, сервис продолжит работать из памяти.
	var backend storage.Backend
	if store, sErr := file.New(cfg.Storage.Dir); sErr != nil {
		logg.Warnf(ctx, "file storage init failed, persistence disabled: %v", sErr)
	} else {
		backend = store
	}

	guard := storage.NewGuard(backend, storage.Config{
		Namespace:     cfg.Storage.Namespace,
		QuotaBytes:    cfg.Storage.QuotaBytes,
		BudgetPercent: cfg.Storage.BudgetPercent,
	}, logg)

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	catalogCache := category.New(guard, cfg.Cache.TTL, logg)
	client := remote.New(remote.Config{
		Endpoints: remote.Endpoints{
			Restaurants: cfg.Remote.RestaurantsURL,
			Groceries:   cfg.Remote.GroceriesURL,
			Pharmacies:  cfg.Remote.PharmaciesURL,
			Ratings:     cfg.Remote.RatingsURL,
			Favorites:   cfg.Remote.FavoritesURL,
		},
		Timeout: cfg.Remote.Timeout,
	})
	service := usecase.NewVendorService(catalogCache, client, client, guard, logg, usecase.Options{
		FetchTimeout: cfg.Remote.Timeout,
		RadiusKm:     cfg.Geo.FavoritesRadiusKm,
	})

	// Восстановление кэша из персистентного снимка.
	if n := catalogCache.Restore(ctx); n > 0 {
		logg.Infof(ctx, "restored %d categories from storage", n)
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(service, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cErr := client.Close(); cErr != nil {
			logg.Warnf(ctx, "remote client close error: %v", cErr)
		}
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
