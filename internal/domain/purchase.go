package domain

// Purchase is the immutable snapshot produced when a cart is closed. It
// mirrors the cart's financial and item data; the invoice id is linked back
// after invoice generation.
type Purchase struct {
	ID                            string               `json:"purchase_id"`
	Customer                      *Customer            `json:"customer,omitempty"`
	Items                         []CartItem           `json:"items"`
	UnitsSku                      []UnitLine           `json:"units_sku"`
	UnitsUnique                   []UnitLine           `json:"units_unique"`
	TotalNet                      int                  `json:"total_net"`
	TotalVat                      int                  `json:"total_vat"`
	TotalGross                    int                  `json:"total_gross"`
	CommitmentID                  string               `json:"commitment_id"`
	CommitmentDiscountAmountGross int                  `json:"commitment_discount_amount_gross"`
	BurnedPoints                  []LoyaltyTransaction `json:"burned_points"`
	NeedInvoice                   bool                 `json:"need_invoice"`
	InvoiceID                     string               `json:"invoice_id"`
	PaymentKind                   string               `json:"payment_kind"`
	PaymentDuedate                string               `json:"payment_duedate"`
	DateCompletion                string               `json:"date_completion"`
	CreatedBy                     uint32               `json:"created_by"`
	CreatedAt                     string               `json:"created_at"`
}
