package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/vendorcache/internal/ports"
	"github.com/Gunvolt24/vendorcache/pkg/httpx"
)

// Handler — HTTP-обработчики поверх прикладного сервиса каталога.
type Handler struct {
	service ports.VendorReadService
	log     ports.Logger
}

func NewHandler(service ports.VendorReadService, log ports.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// NewRouter — сборка роутера. otelServiceName != "" включает otelgin-трейсинг.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/vendors", h.getVendors)
	r.GET("/vendors/:category", h.getCategory)

	r.GET("/favorites", h.getFavorites)
	r.DELETE("/favorites/:id", h.deleteFavorite)

	r.PUT("/location", h.putLocation)
	r.GET("/location", h.getLocation)
	r.DELETE("/location", h.deleteLocation)

	r.GET("/storage/status", h.getStorageStatus)
	r.DELETE("/cache", h.clearCache)

	return r
}
