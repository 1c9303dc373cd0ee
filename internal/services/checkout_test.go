package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/apierr"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

func newCheckoutFixture() (*checkoutService, *fakePurchaseClient, *fakeUnitClient, *fakeInvoiceClient) {
	pc := newFakePurchaseClient()
	uc := newFakeUnitClient()
	ic := &fakeInvoiceClient{}
	svc := NewCheckoutService(logger.NewNop(), pc, uc, ic).(*checkoutService)
	return svc, pc, uc, ic
}

func TestCloseWithoutInvoice(t *testing.T) {
	svc, pc, uc, ic := newCheckoutFixture()
	seedCart(pc, "cart-1", 1)

	if err := svc.Close(context.Background(), "cart-1", 42); err != nil {
		t.Fatalf("close: unexpected error: %v", err)
	}
	if len(pc.closedCarts) != 1 || pc.closedCarts[0] != "cart-1" {
		t.Fatalf("cart close calls: want=[cart-1] got=%v", pc.closedCarts)
	}
	if len(uc.closed) != 1 || uc.closed[0] != "cart-1" {
		t.Fatalf("unit close calls: want=[cart-1] got=%v", uc.closed)
	}
	if len(ic.requests) != 0 {
		t.Fatalf("invoice requests: want=0 got=%d", len(ic.requests))
	}
}

func TestCloseUnknownCart(t *testing.T) {
	svc, _, _, _ := newCheckoutFixture()
	err := svc.Close(context.Background(), "missing", 42)
	assertStatus(t, err, http.StatusNotFound)
}

func TestCloseWithInvoiceLinksItBack(t *testing.T) {
	svc, pc, _, ic := newCheckoutFixture()
	cart := seedCart(pc, "cart-1", 1)
	cart.NeedInvoice = true
	pc.purchases["cart-1"] = &domain.Purchase{
		ID:       "cart-1",
		Customer: &domain.Customer{ID: 5, Name: "Kovacs Bt.", Zip: "1111", Location: "Budapest", Street: "Fo u. 1", TaxNumber: "12345678-1-42"},
		Items: []domain.CartItem{{
			Sku:                   7,
			Name:                  "Mineral water 1.5l",
			Piece:                 3,
			RetailPriceNet:        1000,
			Vat:                   "27",
			RetailPriceGross:      1270,
			TotalRetailPriceNet:   3000,
			TotalRetailPriceGross: 3810,
		}},
		TotalNet:       3000,
		TotalVat:       810,
		TotalGross:     3810,
		NeedInvoice:    true,
		PaymentKind:    "cash",
		DateCompletion: "2026-08-28",
		CreatedBy:      42,
	}

	if err := svc.Close(context.Background(), "cart-1", 42); err != nil {
		t.Fatalf("close: unexpected error: %v", err)
	}
	if len(ic.requests) != 1 {
		t.Fatalf("invoice requests: want=1 got=%d", len(ic.requests))
	}
	req := ic.requests[0]
	if req.PurchaseID != "cart-1" || req.Customer.Name != "Kovacs Bt." {
		t.Fatalf("invoice request header: got %+v", req)
	}
	if len(req.Items) != 1 {
		t.Fatalf("invoice items: want=1 got=%d", len(req.Items))
	}
	item := req.Items[0]
	if item.Quantity != 3 || item.TotalPriceGross != 3810 || item.TotalPriceVat != 810 {
		t.Fatalf("invoice item totals: want qty=3 gross=3810 vat=810, got %+v", item)
	}
	if got := pc.invoiceIDs["cart-1"]; got != "invoice-1" {
		t.Fatalf("linked invoice id: want=invoice-1 got=%q", got)
	}
}

func TestCloseWithInvoiceIncludesUnitLines(t *testing.T) {
	svc, pc, _, ic := newCheckoutFixture()
	cart := seedCart(pc, "cart-1", 1)
	cart.NeedInvoice = true
	pc.purchases["cart-1"] = &domain.Purchase{
		ID:       "cart-1",
		Customer: &domain.Customer{ID: 5, Name: "Kovacs Bt."},
		UnitsSku: []domain.UnitLine{{
			UnitID:           "u-1",
			Kind:             domain.UnitLineKind{Sku: &domain.UnitLineSku{Sku: 8, Piece: 6}},
			Name:             "Soda 0.5l",
			RetailPriceNet:   200,
			Vat:              "27",
			RetailPriceGross: 254,
		}},
		UnitsUnique: []domain.UnitLine{{
			UnitID:           "u-2",
			Kind:             domain.UnitLineKind{OpenedSku: &domain.UnitLineOpenedSku{ProductID: 90, Amount: 500}},
			Name:             "Olive oil, 500 ml",
			RetailPriceNet:   500,
			Vat:              "27",
			RetailPriceGross: 635,
		}},
		NeedInvoice: true,
	}

	if err := svc.Close(context.Background(), "cart-1", 42); err != nil {
		t.Fatalf("close: unexpected error: %v", err)
	}
	req := ic.requests[0]
	if len(req.Items) != 2 {
		t.Fatalf("invoice items: want=2 got=%d", len(req.Items))
	}
	bulk := req.Items[0]
	if bulk.Quantity != 6 || bulk.TotalPriceNet != 1200 || bulk.TotalPriceGross != 1524 {
		t.Fatalf("bulk line: want qty=6 net=1200 gross=1524, got %+v", bulk)
	}
	opened := req.Items[1]
	if opened.Quantity != 1 || opened.TotalPriceGross != 635 {
		t.Fatalf("opened line: want qty=1 gross=635, got %+v", opened)
	}
}

func TestCloseWithInvoiceAddsDiscountAndLoyaltyLines(t *testing.T) {
	svc, pc, _, ic := newCheckoutFixture()
	cart := seedCart(pc, "cart-1", 1)
	cart.NeedInvoice = true
	pc.purchases["cart-1"] = &domain.Purchase{
		ID:                            "cart-1",
		Customer:                      &domain.Customer{ID: 5, Name: "Kovacs Bt."},
		CommitmentDiscountAmountGross: 1270,
		BurnedPoints: []domain.LoyaltyTransaction{
			{LoyaltyAccountID: "acc-1", TransactionID: "tx-1", BurnedPoints: 100},
			{LoyaltyAccountID: "acc-1", TransactionID: "tx-2", BurnedPoints: 27},
		},
		NeedInvoice: true,
	}

	if err := svc.Close(context.Background(), "cart-1", 42); err != nil {
		t.Fatalf("close: unexpected error: %v", err)
	}
	req := ic.requests[0]
	if len(req.Items) != 2 {
		t.Fatalf("invoice items: want=2 got=%d", len(req.Items))
	}
	discount := req.Items[0]
	if discount.TotalPriceGross != -1270 || discount.TotalPriceNet != -1000 || discount.TotalPriceVat != -270 {
		t.Fatalf("discount line: want gross=-1270 net=-1000 vat=-270, got %+v", discount)
	}
	loyalty := req.Items[1]
	if loyalty.TotalPriceGross != -127 || loyalty.TotalPriceNet != -100 {
		t.Fatalf("loyalty line: want gross=-127 net=-100, got %+v", loyalty)
	}
}

func TestCloseWithInvoiceButNoCustomer(t *testing.T) {
	svc, pc, _, ic := newCheckoutFixture()
	cart := seedCart(pc, "cart-1", 1)
	cart.NeedInvoice = true
	pc.purchases["cart-1"] = &domain.Purchase{ID: "cart-1", NeedInvoice: true}

	err := svc.Close(context.Background(), "cart-1", 42)
	assertStatus(t, err, http.StatusBadRequest)
	if len(ic.requests) != 0 {
		t.Fatalf("invoice requests: want=0 got=%d", len(ic.requests))
	}
}

func TestCloseInvoiceCreationFailureIsSurfaced(t *testing.T) {
	svc, pc, _, ic := newCheckoutFixture()
	cart := seedCart(pc, "cart-1", 1)
	cart.NeedInvoice = true
	pc.purchases["cart-1"] = &domain.Purchase{
		ID:          "cart-1",
		Customer:    &domain.Customer{ID: 5, Name: "Kovacs Bt."},
		NeedInvoice: true,
	}
	ic.createErr = apierr.Internal("invoice service unavailable")

	err := svc.Close(context.Background(), "cart-1", 42)
	assertStatus(t, err, http.StatusInternalServerError)
	if len(pc.invoiceIDs) != 0 {
		t.Fatalf("linked invoice ids: want=0 got=%d", len(pc.invoiceIDs))
	}
}
