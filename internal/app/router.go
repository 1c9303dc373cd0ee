package app

import (
	"github.com/gin-gonic/gin"

	"github.com/greenstem/retail-core/internal/observability"
	"github.com/greenstem/retail-core/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:        cfg.ServiceName,
		AllowOrigins:       cfg.AllowOrigins,
		Metrics:            metrics,
		AuthMiddleware:     middleware.Auth,
		CartHandler:        handlers.Cart,
		ProcurementHandler: handlers.Procurement,
	})
}
