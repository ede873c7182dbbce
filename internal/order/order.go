package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/cart"
)

// Payment records how a completed order was settled. Change is only
// meaningful for cash payments; for other methods AmountReceived equals
// Amount and Change is zero.
type Payment struct {
	Method         string          `json:"method"`
	Amount         decimal.Decimal `json:"amount"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	Change         decimal.Decimal `json:"change"`
	ProcessedAt    time.Time       `json:"processed_at"`
}

// Order is a finalized cart snapshot with a lifecycle. The line items and
// totals are frozen inside the embedded snapshot at submit time; only Status
// and Payment change afterwards.
type Order struct {
	ID uuid.UUID `json:"id"`
	cart.Snapshot
	Status    string    `json:"status"`
	Payment   *Payment  `json:"payment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// clone returns an independent copy so callers cannot mutate stored state.
func (o *Order) clone() Order {
	cp := *o
	if o.Payment != nil {
		p := *o.Payment
		cp.Payment = &p
	}
	lines := make([]cart.Line, len(o.Lines))
	copy(lines, o.Lines)
	cp.Lines = lines
	return cp
}
