package services

import (
	"context"

	"github.com/greenstem/retail-core/internal/clients/invoice"
	"github.com/greenstem/retail-core/internal/clients/purchase"
	"github.com/greenstem/retail-core/internal/clients/unit"
	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/apierr"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

// CheckoutService finalizes a cart into a purchase, closes the unit locks and,
// when the buyer asked for one, raises an invoice and links it back to the
// purchase.
type CheckoutService interface {
	Close(ctx context.Context, cartID string, actor uint32) error
}

type checkoutService struct {
	log      *logger.Logger
	purchase purchase.Client
	units    unit.Client
	invoices invoice.Client
}

func NewCheckoutService(
	baseLog *logger.Logger,
	purchaseClient purchase.Client,
	unitClient unit.Client,
	invoiceClient invoice.Client,
) CheckoutService {
	return &checkoutService{
		log:      baseLog.With("service", "CheckoutService"),
		purchase: purchaseClient,
		units:    unitClient,
		invoices: invoiceClient,
	}
}

func (s *checkoutService) Close(ctx context.Context, cartID string, actor uint32) error {
	if _, err := s.purchase.CartGetByID(ctx, cartID); err != nil {
		return err
	}

	closed, err := s.purchase.CartClose(ctx, cartID)
	if err != nil {
		return err
	}

	// The cart is a purchase now; the units it held move from cart-locked to
	// sold. The purchase service validated payment balance before closing.
	if err := s.units.CloseCart(ctx, cartID, actor); err != nil {
		return err
	}

	if !closed.NeedInvoice {
		return nil
	}

	p, err := s.purchase.PurchaseGetByID(ctx, closed.ID)
	if err != nil {
		return err
	}

	req, err := buildInvoiceRequest(p)
	if err != nil {
		return err
	}

	invoiceID, err := s.invoices.CreateNew(ctx, req)
	if err != nil {
		return err
	}

	return s.purchase.PurchaseSetInvoiceID(ctx, p.ID, invoiceID)
}

func buildInvoiceRequest(p *domain.Purchase) (domain.InvoiceRequest, error) {
	if p.Customer == nil {
		return domain.InvoiceRequest{}, apierr.BadRequest("purchase %s needs an invoice but has no customer", p.ID)
	}

	items := make([]domain.InvoiceItem, 0, len(p.Items)+len(p.UnitsSku)+len(p.UnitsUnique)+2)

	for _, item := range p.Items {
		items = append(items, domain.InvoiceItem{
			Name:            item.Name,
			Quantity:        int(item.Piece),
			Unit:            "db",
			PriceUnitNet:    item.RetailPriceNet,
			Vat:             item.Vat,
			TotalPriceNet:   item.TotalRetailPriceNet,
			TotalPriceVat:   item.TotalRetailPriceGross - item.TotalRetailPriceNet,
			TotalPriceGross: item.TotalRetailPriceGross,
		})
	}

	for _, line := range p.UnitsSku {
		items = append(items, unitInvoiceItem(line))
	}
	for _, line := range p.UnitsUnique {
		items = append(items, unitInvoiceItem(line))
	}

	if p.CommitmentDiscountAmountGross > 0 {
		gross := -p.CommitmentDiscountAmountGross
		net := domain.NetFromGross(gross)
		items = append(items, domain.InvoiceItem{
			Name:            "Commitment discount",
			Quantity:        1,
			Unit:            "db",
			PriceUnitNet:    net,
			Vat:             "27",
			TotalPriceNet:   net,
			TotalPriceVat:   gross - net,
			TotalPriceGross: gross,
		})
	}

	if burned := burnedPointsTotal(p.BurnedPoints); burned > 0 {
		gross := -burned
		net := domain.NetFromGross(gross)
		items = append(items, domain.InvoiceItem{
			Name:            "Loyalty points",
			Quantity:        1,
			Unit:            "db",
			PriceUnitNet:    net,
			Vat:             "27",
			TotalPriceNet:   net,
			TotalPriceVat:   gross - net,
			TotalPriceGross: gross,
		})
	}

	return domain.InvoiceRequest{
		PurchaseID:     p.ID,
		Customer:       *p.Customer,
		Items:          items,
		PaymentKind:    p.PaymentKind,
		PaymentDuedate: p.PaymentDuedate,
		Date:           p.DateCompletion,
		CompletionDate: p.DateCompletion,
		TotalNet:       p.TotalNet,
		TotalVat:       p.TotalVat,
		TotalGross:     p.TotalGross,
		CreatedBy:      p.CreatedBy,
	}, nil
}

func unitInvoiceItem(line domain.UnitLine) domain.InvoiceItem {
	item := domain.InvoiceItem{
		Name:            line.Name,
		Quantity:        1,
		Unit:            "db",
		PriceUnitNet:    line.RetailPriceNet,
		Vat:             line.Vat,
		TotalPriceNet:   line.RetailPriceNet,
		TotalPriceVat:   line.RetailPriceGross - line.RetailPriceNet,
		TotalPriceGross: line.RetailPriceGross,
	}
	if line.Kind.Sku != nil && line.Kind.Sku.Piece > 1 {
		piece := int(line.Kind.Sku.Piece)
		item.Quantity = piece
		item.TotalPriceNet = line.RetailPriceNet * piece
		item.TotalPriceGross = line.RetailPriceGross * piece
		item.TotalPriceVat = item.TotalPriceGross - item.TotalPriceNet
	}
	return item
}

func burnedPointsTotal(txs []domain.LoyaltyTransaction) int {
	var total int
	for _, tx := range txs {
		total += tx.BurnedPoints
	}
	return total
}
