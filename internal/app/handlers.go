package app

import (
	"github.com/greenstem/retail-core/internal/handlers"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

type Handlers struct {
	Cart        *handlers.CartHandler
	Procurement *handlers.ProcurementHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Cart:        handlers.NewCartHandler(log, services.Cart, services.Attachment, services.Checkout),
		Procurement: handlers.NewProcurementHandler(log, services.Reconciler),
	}
}
