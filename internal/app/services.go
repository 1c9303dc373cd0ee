package app

import (
	"github.com/greenstem/retail-core/internal/observability"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/services"
)

type Services struct {
	Cart       services.CartService
	Attachment services.AttachmentService
	Checkout   services.CheckoutService
	Reconciler services.ReconcilerService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	return Services{
		Cart:       services.NewCartService(log, clients.Purchase, clients.Product, clients.Pricing),
		Attachment: services.NewAttachmentService(log, clients.Purchase, clients.Unit, clients.Product, clients.Pricing, metrics),
		Checkout:   services.NewCheckoutService(log, clients.Purchase, clients.Unit, clients.Invoice),
		Reconciler: services.NewReconcilerService(
			log,
			clients.Procurement,
			clients.Unit,
			clients.Product,
			clients.Pricing,
			clients.Email,
			metrics,
			cfg.DefaultStockID,
			cfg.AlertEmail,
		),
	}
}
