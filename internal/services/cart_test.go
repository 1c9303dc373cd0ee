package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

func newCartFixture() (CartService, *fakePurchaseClient, *fakeProductClient, *fakePricingClient) {
	pc := newFakePurchaseClient()
	prod := &fakeProductClient{skus: map[uint32]domain.Sku{}}
	price := &fakePricingClient{prices: map[uint32]domain.Price{}}
	svc := NewCartService(logger.NewNop(), pc, prod, price)
	return svc, pc, prod, price
}

func TestCartNewAndGet(t *testing.T) {
	svc, _, _, _ := newCartFixture()

	cart, err := svc.New(context.Background(), 1, 42)
	if err != nil {
		t.Fatalf("new cart: unexpected error: %v", err)
	}
	if cart.StoreID != 1 || cart.OwnerUID != 42 {
		t.Fatalf("cart ownership: want store=1 owner=42, got %+v", cart)
	}

	got, err := svc.Get(context.Background(), cart.ID)
	if err != nil {
		t.Fatalf("get cart: unexpected error: %v", err)
	}
	if got.ID != cart.ID {
		t.Fatalf("cart id: want=%s got=%s", cart.ID, got.ID)
	}
}

func TestCartAddSkuResolvesNameAndPrice(t *testing.T) {
	svc, pc, prod, price := newCartFixture()
	seedCart(pc, "cart-1", 1)
	prod.skus[7] = domain.Sku{Sku: 7, DisplayName: "Mineral water 1.5l"}
	price.prices[7] = domain.Price{Sku: 7, PriceNetRetail: 1000, Vat: "27", PriceGrossRetail: 1270}

	cart, err := svc.AddSku(context.Background(), "cart-1", 7, 3)
	if err != nil {
		t.Fatalf("add sku: unexpected error: %v", err)
	}
	if len(cart.ShoppingList) != 1 {
		t.Fatalf("shopping list: want=1 got=%d", len(cart.ShoppingList))
	}
	item := cart.ShoppingList[0]
	if item.Name != "Mineral water 1.5l" || item.Piece != 3 {
		t.Fatalf("item: want name resolved and piece 3, got %+v", item)
	}
	if item.RetailPriceNet != 1000 || item.RetailPriceGross != 1270 || item.Vat != "27" {
		t.Fatalf("item pricing: want=1000/27/1270 got=%d/%s/%d", item.RetailPriceNet, item.Vat, item.RetailPriceGross)
	}
	if item.TotalRetailPriceGross != 3810 {
		t.Fatalf("item total gross: want=3810 got=%d", item.TotalRetailPriceGross)
	}
}

func TestCartAddSkuUnknownSku(t *testing.T) {
	svc, pc, _, _ := newCartFixture()
	seedCart(pc, "cart-1", 1)

	_, err := svc.AddSku(context.Background(), "cart-1", 99, 1)
	assertStatus(t, err, http.StatusNotFound)
}

func TestCartAddSkuUnpricedSku(t *testing.T) {
	svc, pc, prod, _ := newCartFixture()
	seedCart(pc, "cart-1", 1)
	prod.skus[7] = domain.Sku{Sku: 7, DisplayName: "Mineral water 1.5l"}

	_, err := svc.AddSku(context.Background(), "cart-1", 7, 1)
	assertStatus(t, err, http.StatusNotFound)
}

func TestCartRemoveSkuAndSetPiece(t *testing.T) {
	svc, pc, prod, price := newCartFixture()
	seedCart(pc, "cart-1", 1)
	prod.skus[7] = domain.Sku{Sku: 7, DisplayName: "Mineral water 1.5l"}
	price.prices[7] = domain.Price{Sku: 7, PriceNetRetail: 1000, Vat: "27", PriceGrossRetail: 1270}

	if _, err := svc.AddSku(context.Background(), "cart-1", 7, 1); err != nil {
		t.Fatalf("add sku: unexpected error: %v", err)
	}
	cart, err := svc.SetSkuPiece(context.Background(), "cart-1", 7, 5)
	if err != nil {
		t.Fatalf("set piece: unexpected error: %v", err)
	}
	if cart.ShoppingList[0].Piece != 5 {
		t.Fatalf("piece: want=5 got=%d", cart.ShoppingList[0].Piece)
	}

	cart, err = svc.RemoveSku(context.Background(), "cart-1", 7)
	if err != nil {
		t.Fatalf("remove sku: unexpected error: %v", err)
	}
	if len(cart.ShoppingList) != 0 {
		t.Fatalf("shopping list after remove: want=0 got=%d", len(cart.ShoppingList))
	}
}

func TestCartSetNeedInvoice(t *testing.T) {
	svc, pc, _, _ := newCartFixture()
	seedCart(pc, "cart-1", 1)

	cart, err := svc.SetNeedInvoice(context.Background(), "cart-1", true)
	if err != nil {
		t.Fatalf("set need invoice: unexpected error: %v", err)
	}
	if !cart.NeedInvoice {
		t.Fatalf("need invoice: want=true got=false")
	}
}
