package domain

// Cart is the in-progress shopping transaction held by the purchase service.
// It is mutated only through that service; this core derives the values it
// sends there.
type Cart struct {
	ID                            string               `json:"id"`
	Ancestor                      string               `json:"ancestor"`
	Customer                      *Customer            `json:"customer,omitempty"`
	CommitmentID                  string               `json:"commitment_id"`
	CommitmentDiscountPercentage  uint32               `json:"commitment_discount_percentage"`
	LoyaltyCardID                 string               `json:"loyalty_card_id"`
	LoyaltyAccountID              string               `json:"loyalty_account_id"`
	LoyaltyLevel                  string               `json:"loyalty_level"`
	ShoppingList                  []CartItem           `json:"shopping_list"`
	UnitsSku                      []UnitLine           `json:"units_sku"`
	UnitsUnique                   []UnitLine           `json:"units_unique"`
	TotalNet                      int                  `json:"total_net"`
	TotalVat                      int                  `json:"total_vat"`
	TotalGross                    int                  `json:"total_gross"`
	CommitmentDiscountAmountGross int                  `json:"commitment_discount_amount_gross"`
	BurnedPoints                  []LoyaltyTransaction `json:"burned_points"`
	NeedInvoice                   bool                 `json:"need_invoice"`
	PaymentKind                   string               `json:"payment_kind"`
	Payments                      []Payment            `json:"payments"`
	Payable                       int                  `json:"payable"`
	PaymentBalance                int                  `json:"payment_balance"`
	ProfitNet                     int                  `json:"profit_net"`
	OwnerUID                      uint32               `json:"owner_uid"`
	StoreID                       uint32               `json:"store_id"`
	DateCompletion                string               `json:"date_completion"`
	PaymentDuedate                string               `json:"payment_duedate"`
	CreatedBy                     uint32               `json:"created_by"`
	CreatedAt                     string               `json:"created_at"`
}

type Customer struct {
	ID        uint32 `json:"id"`
	Name      string `json:"name"`
	Zip       string `json:"zip"`
	Location  string `json:"location"`
	Street    string `json:"street"`
	TaxNumber string `json:"tax_number"`
	Email     string `json:"email,omitempty"`
}

// CartItem is one SKU row of the shopping list.
type CartItem struct {
	Sku                  uint32 `json:"sku"`
	Name                 string `json:"name"`
	Piece                uint32 `json:"piece"`
	RetailPriceNet       int    `json:"retail_price_net"`
	Vat                  string `json:"vat"`
	RetailPriceGross     int    `json:"retail_price_gross"`
	TotalRetailPriceNet  int    `json:"total_retail_price_net"`
	TotalRetailPriceGross int   `json:"total_retail_price_gross"`
}

// UnitLine is the priced line-item representation of a single attached unit.
// Whole and bulk units land in the cart's by-SKU group, fractions in the
// by-unique-unit group.
type UnitLine struct {
	UnitID              string       `json:"unit_id"`
	Kind                UnitLineKind `json:"kind"`
	Name                string       `json:"name"`
	RetailPriceNet      int          `json:"retail_price_net"`
	Vat                 string       `json:"vat"`
	RetailPriceGross    int          `json:"retail_price_gross"`
	ProcurementNetPrice int          `json:"procurement_net_price"`
	BestBefore          string       `json:"best_before"`
	Depreciated         bool         `json:"depreciated"`
}

// UnitLineKind is a closed variant: either a by-SKU line (whole or bulk) or a
// by-unique-unit line for fractions of a divisible product.
type UnitLineKind struct {
	Sku       *UnitLineSku       `json:"sku,omitempty"`
	OpenedSku *UnitLineOpenedSku `json:"opened_sku,omitempty"`
}

type UnitLineSku struct {
	Sku   uint32 `json:"sku"`
	Piece uint32 `json:"piece"`
}

type UnitLineOpenedSku struct {
	ProductID uint32 `json:"product_id"`
	Amount    uint32 `json:"amount"`
}

type Payment struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

type LoyaltyTransaction struct {
	LoyaltyAccountID string `json:"loyalty_account_id"`
	TransactionID    string `json:"transaction_id"`
	BurnedPoints     int    `json:"burned_points"`
}
