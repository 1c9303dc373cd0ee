package services

import (
	"context"

	"github.com/greenstem/retail-core/internal/clients/pricing"
	"github.com/greenstem/retail-core/internal/clients/product"
	"github.com/greenstem/retail-core/internal/clients/purchase"
	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

// CartService covers the cart operations that need catalog or pricing lookups
// before hitting the purchase service. Pure pass-throughs still live here so
// handlers depend on one surface.
type CartService interface {
	New(ctx context.Context, storeID, actor uint32) (*domain.Cart, error)
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	AddSku(ctx context.Context, cartID string, sku, piece uint32) (*domain.Cart, error)
	RemoveSku(ctx context.Context, cartID string, sku uint32) (*domain.Cart, error)
	SetSkuPiece(ctx context.Context, cartID string, sku, piece uint32) (*domain.Cart, error)
	SetNeedInvoice(ctx context.Context, cartID string, needInvoice bool) (*domain.Cart, error)
}

type cartService struct {
	log      *logger.Logger
	purchase purchase.Client
	products product.Client
	prices   pricing.Client
}

func NewCartService(
	baseLog *logger.Logger,
	purchaseClient purchase.Client,
	productClient product.Client,
	pricingClient pricing.Client,
) CartService {
	return &cartService{
		log:      baseLog.With("service", "CartService"),
		purchase: purchaseClient,
		products: productClient,
		prices:   pricingClient,
	}
}

func (s *cartService) New(ctx context.Context, storeID, actor uint32) (*domain.Cart, error) {
	return s.purchase.CartNew(ctx, storeID, actor)
}

func (s *cartService) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.purchase.CartGetByID(ctx, cartID)
}

// AddSku resolves the SKU's display name and current retail price so the
// purchase service stores the line exactly as the customer saw it.
func (s *cartService) AddSku(ctx context.Context, cartID string, sku, piece uint32) (*domain.Cart, error) {
	skuObj, err := s.products.GetSku(ctx, sku)
	if err != nil {
		return nil, err
	}
	price, err := s.prices.GetPrice(ctx, sku)
	if err != nil {
		return nil, err
	}
	return s.purchase.CartAddSku(ctx, purchase.CartAddSkuRequest{
		CartID:           cartID,
		SkuID:            sku,
		Piece:            piece,
		Name:             skuObj.DisplayName,
		Vat:              price.Vat,
		RetailPriceNet:   price.PriceNetRetail,
		RetailPriceGross: price.PriceGrossRetail,
	})
}

func (s *cartService) RemoveSku(ctx context.Context, cartID string, sku uint32) (*domain.Cart, error) {
	return s.purchase.CartRemoveSku(ctx, cartID, sku)
}

func (s *cartService) SetSkuPiece(ctx context.Context, cartID string, sku, piece uint32) (*domain.Cart, error) {
	return s.purchase.CartSetSkuPiece(ctx, cartID, sku, piece)
}

func (s *cartService) SetNeedInvoice(ctx context.Context, cartID string, needInvoice bool) (*domain.Cart, error) {
	return s.purchase.CartSetDocument(ctx, cartID, needInvoice)
}
