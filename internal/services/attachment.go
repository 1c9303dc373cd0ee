package services

import (
	"context"
	"fmt"

	"github.com/greenstem/retail-core/internal/clients/pricing"
	"github.com/greenstem/retail-core/internal/clients/product"
	"github.com/greenstem/retail-core/internal/clients/purchase"
	"github.com/greenstem/retail-core/internal/clients/unit"
	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/observability"
	"github.com/greenstem/retail-core/internal/platform/apierr"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

// AttachmentService attaches and detaches a single stock unit to/from a
// cart. The "a unit belongs to at most one cart" invariant spans the purchase
// and stock-unit services with no shared transaction; it holds only because
// of call ordering here: attach to the cart before locking the unit, release
// the lock before detaching. Any change to this ordering breaks crash
// recovery.
type AttachmentService interface {
	Attach(ctx context.Context, cartID, unitID string, actor uint32) (*domain.Cart, error)
	Detach(ctx context.Context, cartID, unitID string, actor uint32) (*domain.Cart, error)
}

type attachmentService struct {
	log      *logger.Logger
	purchase purchase.Client
	units    unit.Client
	products product.Client
	prices   pricing.Client
	metrics  *observability.Metrics
}

func NewAttachmentService(
	baseLog *logger.Logger,
	purchaseClient purchase.Client,
	unitClient unit.Client,
	productClient product.Client,
	pricingClient pricing.Client,
	metrics *observability.Metrics,
) AttachmentService {
	return &attachmentService{
		log:      baseLog.With("service", "AttachmentService"),
		purchase: purchaseClient,
		units:    unitClient,
		products: productClient,
		prices:   pricingClient,
		metrics:  metrics,
	}
}

func (s *attachmentService) Attach(ctx context.Context, cartID, unitID string, actor uint32) (*domain.Cart, error) {
	u, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	cart, err := s.purchase.CartGetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if u.Location.Stock == nil {
		return nil, apierr.BadRequest("unit %s is not sellable: it is discarded, sold or in transit", u.ID)
	}
	if *u.Location.Stock != cart.StoreID {
		return nil, apierr.BadRequest("unit %s is at store %d, not at the cart's store %d", u.ID, *u.Location.Stock, cart.StoreID)
	}
	if u.Lock.Cart != nil && *u.Lock.Cart == cart.ID {
		return nil, apierr.BadRequest("unit %s is already in this cart", u.ID)
	}

	line, err := s.buildUnitLine(ctx, u)
	if err != nil {
		return nil, err
	}

	updated, err := s.purchase.CartAddUnit(ctx, cart.ID, line)
	if err != nil {
		return nil, err
	}

	if lockErr := s.units.LockToCart(ctx, u.ID, cart.ID, actor); lockErr != nil {
		// The cart attach already committed, so undo it. If the undo fails
		// too, the unit is attached but unlocked and only an operator can
		// repair it.
		s.metrics.CompensationRuns.Inc()
		if _, detachErr := s.purchase.CartRemoveUnit(ctx, cart.ID, u.ID); detachErr != nil {
			s.metrics.CompensationFailures.Inc()
			s.log.Error("compensating detach failed, unit attached but unlocked",
				"cart_id", cart.ID,
				"unit_id", u.ID,
				"lock_error", lockErr.Error(),
				"detach_error", detachErr.Error(),
			)
			return nil, apierr.Internal("unit %s lock failed and the compensating detach failed too: %v", u.ID, detachErr)
		}
		s.log.Warn("unit lock failed, cart attach rolled back",
			"cart_id", cart.ID,
			"unit_id", u.ID,
			"error", lockErr.Error(),
		)
		return nil, lockErr
	}

	return updated, nil
}

func (s *attachmentService) Detach(ctx context.Context, cartID, unitID string, actor uint32) (*domain.Cart, error) {
	u, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}

	if u.Lock.Cart == nil {
		return nil, apierr.BadRequest("unit %s is not in a cart", u.ID)
	}
	if *u.Lock.Cart != cartID {
		return nil, apierr.BadRequest("unit %s is locked to another cart", u.ID)
	}

	// Release the lock first: a unit missing from the cart is recoverable by
	// re-listing stock, a unit locked to a cart line that no longer exists is
	// not.
	if err := s.units.ReleaseLockFromCart(ctx, u.ID, cartID, actor); err != nil {
		return nil, err
	}

	return s.purchase.CartRemoveUnit(ctx, cartID, u.ID)
}

// buildUnitLine derives the priced line-item representation of a unit. Whole
// and bulk units become by-SKU lines at catalog price; opened and derived
// fractions become by-unique-unit lines priced proportionally to the SKU's
// divisible base amount.
func (s *attachmentService) buildUnitLine(ctx context.Context, u *domain.Unit) (domain.UnitLine, error) {
	switch {
	case u.Kind.Sku != nil:
		return s.wholeUnitLine(ctx, u, u.Kind.Sku.Sku, 1)

	case u.Kind.BulkSku != nil:
		return s.wholeUnitLine(ctx, u, u.Kind.BulkSku.Sku, u.Kind.BulkSku.Pieces)

	case u.Kind.OpenedSku != nil:
		return s.fractionUnitLine(ctx, u, u.Kind.OpenedSku.Sku, u.Kind.OpenedSku.Amount)

	case u.Kind.DerivedProduct != nil:
		parent, err := s.units.GetByID(ctx, u.Kind.DerivedProduct.DerivedFrom)
		if err != nil {
			return domain.UnitLine{}, err
		}
		if parent.Kind.OpenedSku == nil {
			// A derived unit must point at an opened one; anything else is a
			// corrupted unit graph upstream.
			return domain.UnitLine{}, apierr.Internal("unit %s derives from %s, which is not an opened unit", u.ID, parent.ID)
		}
		return s.fractionUnitLine(ctx, u, parent.Kind.OpenedSku.Sku, u.Kind.DerivedProduct.Amount)

	default:
		return domain.UnitLine{}, apierr.Internal("unit %s has no kind", u.ID)
	}
}

func (s *attachmentService) wholeUnitLine(ctx context.Context, u *domain.Unit, sku, piece uint32) (domain.UnitLine, error) {
	skuObj, err := s.products.GetSku(ctx, sku)
	if err != nil {
		return domain.UnitLine{}, err
	}
	price, err := s.prices.GetPrice(ctx, sku)
	if err != nil {
		return domain.UnitLine{}, err
	}

	return domain.UnitLine{
		UnitID:              u.ID,
		Kind:                domain.UnitLineKind{Sku: &domain.UnitLineSku{Sku: sku, Piece: piece}},
		Name:                skuObj.DisplayName,
		RetailPriceNet:      price.PriceNetRetail,
		Vat:                 price.Vat,
		RetailPriceGross:    price.PriceGrossRetail,
		ProcurementNetPrice: u.ProcurementNetPrice,
		BestBefore:          u.BestBefore,
		Depreciated:         u.Depreciation != nil,
	}, nil
}

func (s *attachmentService) fractionUnitLine(ctx context.Context, u *domain.Unit, sku, amount uint32) (domain.UnitLine, error) {
	skuObj, err := s.products.GetSku(ctx, sku)
	if err != nil {
		return domain.UnitLine{}, err
	}
	price, err := s.prices.GetPrice(ctx, sku)
	if err != nil {
		return domain.UnitLine{}, err
	}

	base := skuObj.DivisibleAmount
	if base == 0 {
		return domain.UnitLine{}, apierr.BadRequest("SKU %d (%s) has no divisible base amount, unit %s cannot be priced", sku, skuObj.DisplayName, u.ID)
	}

	return domain.UnitLine{
		UnitID:              u.ID,
		Kind:                domain.UnitLineKind{OpenedSku: &domain.UnitLineOpenedSku{ProductID: skuObj.ProductID, Amount: amount}},
		Name:                fmt.Sprintf("%s, %d %s", skuObj.DisplayName, amount, skuObj.Unit),
		RetailPriceNet:      domain.ProportionalPrice(price.PriceNetRetail, amount, base),
		Vat:                 price.Vat,
		RetailPriceGross:    domain.ProportionalPrice(price.PriceGrossRetail, amount, base),
		ProcurementNetPrice: domain.ProportionalPrice(u.ProcurementNetPrice, amount, base),
		BestBefore:          u.BestBefore,
		Depreciated:         u.Depreciation != nil,
	}, nil
}
