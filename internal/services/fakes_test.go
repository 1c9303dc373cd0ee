package services

import (
	"context"
	"fmt"

	"github.com/greenstem/retail-core/internal/clients/purchase"
	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/apierr"
)

type fakePurchaseClient struct {
	carts     map[string]*domain.Cart
	purchases map[string]*domain.Purchase

	addUnitErr    error
	removeUnitErr error
	closeErr      error

	addedUnits   []domain.UnitLine
	removedUnits []string
	closedCarts  []string
	invoiceIDs   map[string]string
}

func newFakePurchaseClient() *fakePurchaseClient {
	return &fakePurchaseClient{
		carts:      map[string]*domain.Cart{},
		purchases:  map[string]*domain.Purchase{},
		invoiceIDs: map[string]string{},
	}
}

func (f *fakePurchaseClient) CartNew(ctx context.Context, storeID, actor uint32) (*domain.Cart, error) {
	cart := &domain.Cart{ID: fmt.Sprintf("cart-%d", len(f.carts)+1), StoreID: storeID, OwnerUID: actor, CreatedBy: actor}
	f.carts[cart.ID] = cart
	return cart, nil
}

func (f *fakePurchaseClient) CartGetByID(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", cartID)
	}
	return cart, nil
}

func (f *fakePurchaseClient) CartAddSku(ctx context.Context, req purchase.CartAddSkuRequest) (*domain.Cart, error) {
	cart, ok := f.carts[req.CartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", req.CartID)
	}
	cart.ShoppingList = append(cart.ShoppingList, domain.CartItem{
		Sku:                   req.SkuID,
		Name:                  req.Name,
		Piece:                 req.Piece,
		RetailPriceNet:        req.RetailPriceNet,
		Vat:                   req.Vat,
		RetailPriceGross:      req.RetailPriceGross,
		TotalRetailPriceNet:   req.RetailPriceNet * int(req.Piece),
		TotalRetailPriceGross: req.RetailPriceGross * int(req.Piece),
	})
	return cart, nil
}

func (f *fakePurchaseClient) CartRemoveSku(ctx context.Context, cartID string, sku uint32) (*domain.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", cartID)
	}
	kept := cart.ShoppingList[:0]
	for _, item := range cart.ShoppingList {
		if item.Sku != sku {
			kept = append(kept, item)
		}
	}
	cart.ShoppingList = kept
	return cart, nil
}

func (f *fakePurchaseClient) CartSetSkuPiece(ctx context.Context, cartID string, sku, piece uint32) (*domain.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", cartID)
	}
	for i := range cart.ShoppingList {
		if cart.ShoppingList[i].Sku == sku {
			cart.ShoppingList[i].Piece = piece
		}
	}
	return cart, nil
}

func (f *fakePurchaseClient) CartSetDocument(ctx context.Context, cartID string, needInvoice bool) (*domain.Cart, error) {
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", cartID)
	}
	cart.NeedInvoice = needInvoice
	return cart, nil
}

func (f *fakePurchaseClient) CartAddUnit(ctx context.Context, cartID string, line domain.UnitLine) (*domain.Cart, error) {
	if f.addUnitErr != nil {
		return nil, f.addUnitErr
	}
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", cartID)
	}
	f.addedUnits = append(f.addedUnits, line)
	if line.Kind.Sku != nil {
		cart.UnitsSku = append(cart.UnitsSku, line)
	} else {
		cart.UnitsUnique = append(cart.UnitsUnique, line)
	}
	return cart, nil
}

func (f *fakePurchaseClient) CartRemoveUnit(ctx context.Context, cartID, unitID string) (*domain.Cart, error) {
	if f.removeUnitErr != nil {
		return nil, f.removeUnitErr
	}
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", cartID)
	}
	f.removedUnits = append(f.removedUnits, unitID)
	filter := func(lines []domain.UnitLine) []domain.UnitLine {
		kept := lines[:0]
		for _, l := range lines {
			if l.UnitID != unitID {
				kept = append(kept, l)
			}
		}
		return kept
	}
	cart.UnitsSku = filter(cart.UnitsSku)
	cart.UnitsUnique = filter(cart.UnitsUnique)
	return cart, nil
}

func (f *fakePurchaseClient) CartClose(ctx context.Context, cartID string) (*domain.Cart, error) {
	if f.closeErr != nil {
		return nil, f.closeErr
	}
	cart, ok := f.carts[cartID]
	if !ok {
		return nil, apierr.NotFound("cart %s not found", cartID)
	}
	f.closedCarts = append(f.closedCarts, cartID)
	return cart, nil
}

func (f *fakePurchaseClient) PurchaseGetByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	p, ok := f.purchases[purchaseID]
	if !ok {
		return nil, apierr.NotFound("purchase %s not found", purchaseID)
	}
	return p, nil
}

func (f *fakePurchaseClient) PurchaseSetInvoiceID(ctx context.Context, purchaseID, invoiceID string) error {
	p, ok := f.purchases[purchaseID]
	if !ok {
		return apierr.NotFound("purchase %s not found", purchaseID)
	}
	p.InvoiceID = invoiceID
	f.invoiceIDs[purchaseID] = invoiceID
	return nil
}

type fakeUnitClient struct {
	units map[string]*domain.Unit

	lockErr    error
	releaseErr error

	createBulkErr error
	// createBulkSkip drops the listed unit ids from the created result to
	// simulate a partial bulk create.
	createBulkSkip map[string]bool

	locked    []string
	released  []string
	closed    []string
	created   []domain.UnitCreateRequest
	createdID []string
}

func newFakeUnitClient() *fakeUnitClient {
	return &fakeUnitClient{units: map[string]*domain.Unit{}, createBulkSkip: map[string]bool{}}
}

func (f *fakeUnitClient) GetByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	u, ok := f.units[unitID]
	if !ok {
		return nil, apierr.NotFound("unit %s not found", unitID)
	}
	return u, nil
}

func (f *fakeUnitClient) GetBulk(ctx context.Context, unitIDs []string) ([]domain.Unit, error) {
	var out []domain.Unit
	for _, id := range unitIDs {
		if u, ok := f.units[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUnitClient) LockToCart(ctx context.Context, unitID, cartID string, actor uint32) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	u, ok := f.units[unitID]
	if !ok {
		return apierr.NotFound("unit %s not found", unitID)
	}
	u.Lock = domain.UnitLock{Cart: &cartID}
	f.locked = append(f.locked, unitID)
	return nil
}

func (f *fakeUnitClient) ReleaseLockFromCart(ctx context.Context, unitID, cartID string, actor uint32) error {
	if f.releaseErr != nil {
		return f.releaseErr
	}
	u, ok := f.units[unitID]
	if !ok {
		return apierr.NotFound("unit %s not found", unitID)
	}
	u.Lock = domain.UnitLock{}
	f.released = append(f.released, unitID)
	return nil
}

func (f *fakeUnitClient) CloseCart(ctx context.Context, cartID string, actor uint32) error {
	f.closed = append(f.closed, cartID)
	return nil
}

func (f *fakeUnitClient) CreateBulk(ctx context.Context, reqs []domain.UnitCreateRequest) ([]string, error) {
	if f.createBulkErr != nil {
		return nil, f.createBulkErr
	}
	f.created = append(f.created, reqs...)
	var ids []string
	for _, r := range reqs {
		if f.createBulkSkip[r.UnitID] {
			continue
		}
		ids = append(ids, r.UnitID)
	}
	f.createdID = append(f.createdID, ids...)
	return ids, nil
}

type fakeProductClient struct {
	skus map[uint32]domain.Sku
}

func (f *fakeProductClient) GetSku(ctx context.Context, sku uint32) (*domain.Sku, error) {
	s, ok := f.skus[sku]
	if !ok {
		return nil, apierr.NotFound("SKU %d not found", sku)
	}
	return &s, nil
}

func (f *fakeProductClient) GetSkuBulk(ctx context.Context, skus []uint32) ([]domain.Sku, error) {
	var out []domain.Sku
	for _, id := range skus {
		if s, ok := f.skus[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePricingClient struct {
	prices map[uint32]domain.Price
}

func (f *fakePricingClient) GetPrice(ctx context.Context, sku uint32) (*domain.Price, error) {
	p, ok := f.prices[sku]
	if !ok {
		return nil, apierr.NotFound("no price for SKU %d", sku)
	}
	return &p, nil
}

func (f *fakePricingClient) GetPriceBulk(ctx context.Context, skus []uint32) ([]domain.Price, error) {
	var out []domain.Price
	for _, id := range skus {
		if p, ok := f.prices[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeInvoiceClient struct {
	createErr error
	requests  []domain.InvoiceRequest
}

func (f *fakeInvoiceClient) CreateNew(ctx context.Context, req domain.InvoiceRequest) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.requests = append(f.requests, req)
	return fmt.Sprintf("invoice-%d", len(f.requests)), nil
}

type fakeProcurementClient struct {
	procurements map[uint32]*domain.Procurement
	statusCalls  []domain.ProcurementStatus
}

func (f *fakeProcurementClient) GetByID(ctx context.Context, procurementID uint32) (*domain.Procurement, error) {
	p, ok := f.procurements[procurementID]
	if !ok {
		return nil, apierr.NotFound("procurement %d not found", procurementID)
	}
	return p, nil
}

func (f *fakeProcurementClient) SetStatus(ctx context.Context, procurementID uint32, status domain.ProcurementStatus, actor uint32) (*domain.Procurement, error) {
	p, ok := f.procurements[procurementID]
	if !ok {
		return nil, apierr.NotFound("procurement %d not found", procurementID)
	}
	p.Status = status
	f.statusCalls = append(f.statusCalls, status)
	return p, nil
}

type fakeEmailClient struct {
	sendErr error
	sent    []sentEmail
}

type sentEmail struct {
	to, subject, body string
}

func (f *fakeEmailClient) Send(ctx context.Context, to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentEmail{to, subject, body})
	return nil
}

func uptr(v uint32) *uint32 { return &v }
func sptr(v string) *string { return &v }
