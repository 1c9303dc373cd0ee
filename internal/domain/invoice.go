package domain

// InvoiceRequest is the form sent to the invoice service when a closed
// purchase asked for an invoice.
type InvoiceRequest struct {
	PurchaseID     string        `json:"purchase_id"`
	Customer       Customer      `json:"customer"`
	Items          []InvoiceItem `json:"items"`
	PaymentKind    string        `json:"payment_kind"`
	PaymentDuedate string        `json:"payment_duedate"`
	Date           string        `json:"date"`
	CompletionDate string        `json:"completion_date"`
	TotalNet       int           `json:"total_net"`
	TotalVat       int           `json:"total_vat"`
	TotalGross     int           `json:"total_gross"`
	CreatedBy      uint32        `json:"created_by"`
}

type InvoiceItem struct {
	Name            string `json:"name"`
	Quantity        int    `json:"quantity"`
	Unit            string `json:"unit"`
	PriceUnitNet    int    `json:"price_unit_net"`
	Vat             string `json:"vat"`
	TotalPriceNet   int    `json:"total_price_net"`
	TotalPriceVat   int    `json:"total_price_vat"`
	TotalPriceGross int    `json:"total_price_gross"`
	Comment         string `json:"comment,omitempty"`
}
