package purchase

import (
	"context"
	"net/http"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/platform/rpc"
)

// Client talks to the purchase service, which owns carts and the purchases
// produced by closing them.
type Client interface {
	CartNew(ctx context.Context, storeID, actor uint32) (*domain.Cart, error)
	CartGetByID(ctx context.Context, cartID string) (*domain.Cart, error)
	CartAddSku(ctx context.Context, req CartAddSkuRequest) (*domain.Cart, error)
	CartRemoveSku(ctx context.Context, cartID string, sku uint32) (*domain.Cart, error)
	CartSetSkuPiece(ctx context.Context, cartID string, sku, piece uint32) (*domain.Cart, error)
	CartSetDocument(ctx context.Context, cartID string, needInvoice bool) (*domain.Cart, error)
	CartAddUnit(ctx context.Context, cartID string, line domain.UnitLine) (*domain.Cart, error)
	CartRemoveUnit(ctx context.Context, cartID, unitID string) (*domain.Cart, error)
	CartClose(ctx context.Context, cartID string) (*domain.Cart, error)
	PurchaseGetByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	PurchaseSetInvoiceID(ctx context.Context, purchaseID, invoiceID string) error
}

type CartAddSkuRequest struct {
	CartID           string `json:"cart_id"`
	SkuID            uint32 `json:"sku_id"`
	Piece            uint32 `json:"piece"`
	Name             string `json:"name"`
	Vat              string `json:"vat"`
	RetailPriceNet   int    `json:"retail_price_net"`
	RetailPriceGross int    `json:"retail_price_gross"`
}

type client struct {
	rpc *rpc.Client
}

func New(log *logger.Logger, cfg rpc.Config) (Client, error) {
	rc, err := rpc.New(log, "purchase", cfg)
	if err != nil {
		return nil, err
	}
	return &client{rpc: rc}, nil
}

func (c *client) CartNew(ctx context.Context, storeID, actor uint32) (*domain.Cart, error) {
	req := struct {
		StoreID   uint32 `json:"store_id"`
		OwnerID   uint32 `json:"owner_id"`
		CreatedBy uint32 `json:"created_by"`
	}{storeID, actor, actor}
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPost, "/cart/new", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartGetByID(ctx context.Context, cartID string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodGet, "/cart/"+cartID, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartAddSku(ctx context.Context, req CartAddSkuRequest) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPut, "/cart/add_sku", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartRemoveSku(ctx context.Context, cartID string, sku uint32) (*domain.Cart, error) {
	req := struct {
		CartID string `json:"cart_id"`
		SkuID  uint32 `json:"sku_id"`
	}{cartID, sku}
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPut, "/cart/remove_sku", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartSetSkuPiece(ctx context.Context, cartID string, sku, piece uint32) (*domain.Cart, error) {
	req := struct {
		CartID string `json:"cart_id"`
		Sku    uint32 `json:"sku"`
		Piece  uint32 `json:"piece"`
	}{cartID, sku, piece}
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPut, "/cart/set_sku_piece", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartSetDocument(ctx context.Context, cartID string, needInvoice bool) (*domain.Cart, error) {
	req := struct {
		CartID      string `json:"cart_id"`
		NeedInvoice bool   `json:"need_invoice"`
	}{cartID, needInvoice}
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPut, "/cart/set_document", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartAddUnit(ctx context.Context, cartID string, line domain.UnitLine) (*domain.Cart, error) {
	req := struct {
		CartID string          `json:"cart_id"`
		Unit   domain.UnitLine `json:"unit"`
	}{cartID, line}
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPut, "/cart/add_unit", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartRemoveUnit(ctx context.Context, cartID, unitID string) (*domain.Cart, error) {
	req := struct {
		CartID string `json:"cart_id"`
		UnitID string `json:"unit_id"`
	}{cartID, unitID}
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPut, "/cart/remove_unit", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) CartClose(ctx context.Context, cartID string) (*domain.Cart, error) {
	req := struct {
		CartID string `json:"cart_id"`
	}{cartID}
	var cart domain.Cart
	if err := c.rpc.Do(ctx, http.MethodPost, "/cart/close", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *client) PurchaseGetByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	var p domain.Purchase
	if err := c.rpc.Do(ctx, http.MethodGet, "/purchase/"+purchaseID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *client) PurchaseSetInvoiceID(ctx context.Context, purchaseID, invoiceID string) error {
	req := struct {
		PurchaseID string `json:"purchase_id"`
		InvoiceID  string `json:"invoice_id"`
	}{purchaseID, invoiceID}
	return c.rpc.Do(ctx, http.MethodPut, "/purchase/set_invoice_id", req, nil)
}
