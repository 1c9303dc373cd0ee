package domain

// Sku is the catalog record of a sellable product variant, served by the
// product service.
type Sku struct {
	Sku             uint32 `json:"sku"`
	ProductID       uint32 `json:"product_id"`
	DisplayName     string `json:"display_name"`
	Subname         string `json:"subname"`
	Unit            string `json:"unit"`
	CanDivide       bool   `json:"can_divide"`
	DivisibleAmount uint32 `json:"divisible_amount"`
	Perishable      bool   `json:"perishable"`
}

// Price is the retail pricing record of a SKU, served by the pricing service.
// Vat is the rate as the pricing service renders it, e.g. "27".
type Price struct {
	Sku              uint32 `json:"sku"`
	PriceNetRetail   int    `json:"price_net_retail"`
	Vat              string `json:"vat"`
	PriceGrossRetail int    `json:"price_gross_retail"`
}
