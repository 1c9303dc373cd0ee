package server

import (
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/greenstem/retail-core/internal/handlers"
	"github.com/greenstem/retail-core/internal/middleware"
	"github.com/greenstem/retail-core/internal/observability"
)

type RouterConfig struct {
	ServiceName        string
	AllowOrigins       []string
	Metrics            *observability.Metrics
	AuthMiddleware     *middleware.AuthMiddleware
	CartHandler        *handlers.CartHandler
	ProcurementHandler *handlers.ProcurementHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))
	if cfg.Metrics != nil {
		router.Use(countRequests(cfg.Metrics))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Cart
	protected.POST("/cart/new", cfg.CartHandler.New)
	protected.GET("/cart/:id", cfg.CartHandler.Get)
	protected.PUT("/cart/add_sku", cfg.CartHandler.AddSku)
	protected.PUT("/cart/remove_sku", cfg.CartHandler.RemoveSku)
	protected.PUT("/cart/set_sku_piece", cfg.CartHandler.SetSkuPiece)
	protected.PUT("/cart/set_need_invoice", cfg.CartHandler.SetNeedInvoice)
	protected.PUT("/cart/add_unit", cfg.CartHandler.AddUnit)
	protected.PUT("/cart/remove_unit", cfg.CartHandler.RemoveUnit)
	protected.POST("/cart/close", cfg.CartHandler.Close)
	// Procurement
	protected.PUT("/procurement/set_status_ordered/:id", cfg.ProcurementHandler.SetStatusOrdered)
	protected.PUT("/procurement/set_status_arrived/:id", cfg.ProcurementHandler.SetStatusArrived)
	protected.PUT("/procurement/set_status_processing/:id", cfg.ProcurementHandler.SetStatusProcessing)
	protected.PUT("/procurement/set_status_closed/:id", cfg.ProcurementHandler.Close)

	return router
}

func countRequests(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
