package domain

// Unit is a uniquely identified physical inventory record owned by the
// stock-unit service. This core never mutates one directly, only through the
// service's RPCs.
type Unit struct {
	ID                  string        `json:"unit_id"`
	ProductID           uint32        `json:"product_id"`
	SkuID               uint32        `json:"sku_id"`
	Kind                UnitKind      `json:"kind"`
	Piece               uint32        `json:"piece"`
	BestBefore          string        `json:"best_before"`
	Depreciation        *Depreciation `json:"depreciation,omitempty"`
	ProcurementID       uint32        `json:"procurement_id"`
	ProcurementNetPrice int           `json:"procurement_net_price"`
	Divisible           bool          `json:"is_divisible"`
	DivisibleAmount     uint32        `json:"divisible_amount"`
	PriceNet            int           `json:"price_net"`
	Vat                 string        `json:"vat"`
	PriceGross          int           `json:"price_gross"`
	ProductUnit         string        `json:"product_unit"`
	Lock                UnitLock      `json:"lock"`
	Location            UnitLocation  `json:"location"`
	CreatedBy           uint32        `json:"created_by"`
	CreatedAt           string        `json:"created_at"`
}

// UnitKind is a closed variant: exactly one field is set. A unit is either a
// whole sellable piece, a bulk pack of N pieces, a fraction opened from a
// divisible product, or a fraction derived from an already opened unit.
type UnitKind struct {
	Sku            *UnitKindSku            `json:"sku,omitempty"`
	BulkSku        *UnitKindBulkSku        `json:"bulk_sku,omitempty"`
	OpenedSku      *UnitKindOpenedSku      `json:"opened_sku,omitempty"`
	DerivedProduct *UnitKindDerivedProduct `json:"derived_product,omitempty"`
}

type UnitKindSku struct {
	Sku uint32 `json:"sku"`
}

type UnitKindBulkSku struct {
	Sku    uint32 `json:"sku"`
	Pieces uint32 `json:"unit_pieces"`
}

type UnitKindOpenedSku struct {
	Sku        uint32   `json:"sku"`
	Amount     uint32   `json:"amount"`
	Successors []string `json:"successors,omitempty"`
}

type UnitKindDerivedProduct struct {
	DerivedFrom string `json:"derived_from"`
	Amount      uint32 `json:"amount"`
}

// Valid reports whether exactly one variant is set.
func (k UnitKind) Valid() bool {
	n := 0
	if k.Sku != nil {
		n++
	}
	if k.BulkSku != nil {
		n++
	}
	if k.OpenedSku != nil {
		n++
	}
	if k.DerivedProduct != nil {
		n++
	}
	return n == 1
}

// UnitLock marks the single owner a unit is reserved for. All fields nil
// means unlocked. Lock and location must stay mutually consistent: a
// cart-locked unit is either still on stock (reserved) or already moved into
// that cart.
type UnitLock struct {
	Cart      *string `json:"cart,omitempty"`
	Delivery  *uint32 `json:"delivery,omitempty"`
	Inventory *uint32 `json:"inventory,omitempty"`
}

func (l UnitLock) None() bool {
	return l.Cart == nil && l.Delivery == nil && l.Inventory == nil
}

// UnitLocation is where the unit physically is. Exactly one field is set.
type UnitLocation struct {
	Stock    *uint32 `json:"stock,omitempty"`
	Delivery *uint32 `json:"delivery,omitempty"`
	Cart     *string `json:"cart,omitempty"`
	Discard  *uint32 `json:"discard,omitempty"`
}

type Depreciation struct {
	ID       uint32 `json:"depreciation_id"`
	Comment  string `json:"depreciation_comment"`
	NetPrice int    `json:"depreciation_net_price"`
}

// UnitCreateRequest is one row of a bulk unit creation, carrying the resolved
// SKU metadata and pricing snapshot so the stock-unit service can store the
// unit without further lookups.
type UnitCreateRequest struct {
	UnitID                 string `json:"unit_id"`
	ProductID              uint32 `json:"product_id"`
	Sku                    uint32 `json:"sku"`
	BestBefore             string `json:"best_before"`
	StockID                uint32 `json:"stock_id"`
	ProcurementID          uint32 `json:"procurement_id"`
	Opened                 bool   `json:"is_opened"`
	Piece                  uint32 `json:"piece"`
	ProductUnit            string `json:"product_unit"`
	SkuDivisible           bool   `json:"sku_divisible"`
	SkuDivisibleAmount     uint32 `json:"sku_divisible_amount"`
	SkuNetPrice            int    `json:"sku_net_price"`
	SkuVat                 string `json:"sku_vat"`
	SkuGrossPrice          int    `json:"sku_gross_price"`
	ProcurementNetPriceSku int    `json:"procurement_net_price_sku"`
	CreatedBy              uint32 `json:"created_by"`
}
