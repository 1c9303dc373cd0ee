package domain

// ProcurementStatus is strictly forward-only:
// New -> Ordered -> Arrived -> Processing -> Closed. Predecessor legality for
// the middle transitions is the procurement service's job; this core only
// guards Processing -> Closed because that edge creates units.
type ProcurementStatus string

const (
	ProcurementStatusNew        ProcurementStatus = "new"
	ProcurementStatusOrdered    ProcurementStatus = "ordered"
	ProcurementStatusArrived    ProcurementStatus = "arrived"
	ProcurementStatusProcessing ProcurementStatus = "processing"
	ProcurementStatusClosed     ProcurementStatus = "closed"
)

// Procurement is an inbound order of SKUs from a source, reconciled into
// units when it is closed.
type Procurement struct {
	ID                    uint32            `json:"id"`
	SourceID              uint32            `json:"source_id"`
	Reference             string            `json:"reference"`
	EstimatedDeliveryDate string            `json:"estimated_delivery_date"`
	Items                 []ProcurementItem `json:"items"`
	Candidates            []UnitCandidate   `json:"unit_candidates"`
	Status                ProcurementStatus `json:"status"`
	CreatedBy             uint32            `json:"created_by"`
	CreatedAt             string            `json:"created_at"`
}

// ProcurementItem is one ordered SKU row.
type ProcurementItem struct {
	Sku              uint32 `json:"sku"`
	OrderedAmount    uint32 `json:"ordered_amount"`
	ExpectedNetPrice int    `json:"expected_net_price"`
}

// UnitCandidate is a received unit recorded against the procurement before it
// is closed. Opened candidates count as one piece of the ordered amount
// regardless of their measured amount.
type UnitCandidate struct {
	UnitID     string `json:"unit_id"`
	Sku        uint32 `json:"sku"`
	Piece      uint32 `json:"piece"`
	Opened     bool   `json:"opened_sku"`
	BestBefore string `json:"best_before"`
}

// ReceivedPieces is the candidate's contribution towards the ordered amount.
func (c UnitCandidate) ReceivedPieces() uint32 {
	if c.Opened {
		return 1
	}
	return c.Piece
}
