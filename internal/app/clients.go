package app

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/greenstem/retail-core/internal/clients/email"
	"github.com/greenstem/retail-core/internal/clients/invoice"
	"github.com/greenstem/retail-core/internal/clients/pricing"
	"github.com/greenstem/retail-core/internal/clients/procurement"
	"github.com/greenstem/retail-core/internal/clients/product"
	"github.com/greenstem/retail-core/internal/clients/purchase"
	"github.com/greenstem/retail-core/internal/clients/unit"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

type Clients struct {
	Purchase    purchase.Client
	Unit        unit.Client
	Product     product.Client
	Pricing     pricing.Client
	Invoice     invoice.Client
	Procurement procurement.Client
	Email       email.Client
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	purchaseClient, err := purchase.New(log, cfg.clientConfig(cfg.PurchaseAddr))
	if err != nil {
		return Clients{}, fmt.Errorf("init purchase client: %w", err)
	}
	unitClient, err := unit.New(log, cfg.clientConfig(cfg.UnitAddr))
	if err != nil {
		return Clients{}, fmt.Errorf("init unit client: %w", err)
	}
	productClient, err := product.New(log, cfg.clientConfig(cfg.ProductAddr))
	if err != nil {
		return Clients{}, fmt.Errorf("init product client: %w", err)
	}
	pricingClient, err := pricing.New(log, cfg.clientConfig(cfg.PricingAddr))
	if err != nil {
		return Clients{}, fmt.Errorf("init pricing client: %w", err)
	}
	invoiceClient, err := invoice.New(log, cfg.clientConfig(cfg.InvoiceAddr))
	if err != nil {
		return Clients{}, fmt.Errorf("init invoice client: %w", err)
	}
	procurementClient, err := procurement.New(log, cfg.clientConfig(cfg.ProcurementAddr))
	if err != nil {
		return Clients{}, fmt.Errorf("init procurement client: %w", err)
	}
	emailClient, err := email.New(log, cfg.clientConfig(cfg.EmailAddr))
	if err != nil {
		return Clients{}, fmt.Errorf("init email client: %w", err)
	}

	// Catalog and price lookups dominate the request path; put redis in front
	// of them when an address is configured.
	if cfg.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		productClient = product.NewCached(log, productClient, rdb, cfg.CacheTTL)
		pricingClient = pricing.NewCached(log, pricingClient, rdb, cfg.CacheTTL)
	}

	return Clients{
		Purchase:    purchaseClient,
		Unit:        unitClient,
		Product:     productClient,
		Pricing:     pricingClient,
		Invoice:     invoiceClient,
		Procurement: procurementClient,
		Email:       emailClient,
	}, nil
}
