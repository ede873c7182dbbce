package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xilang-pos/api/internal/catalog"
)

// Errors returned by the order composition engine. All of them are local,
// recoverable conditions reported back to the calling UI layer.
var (
	ErrIncompleteSelection = errors.New("required variant group not satisfied")
	ErrInvalidSelection    = errors.New("selection does not match product variants")
)

// Line is one (product, variant selection) pair in the cart with its
// quantity. UnitPrice is fixed when the line is first added and is not
// recomputed from the catalog on later merges.
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Label     string          `json:"label,omitempty"`
	Selection Selection       `json:"selection,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Total returns unit price times quantity.
func (l *Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l *Line) clone() Line {
	cp := *l
	cp.Selection = l.Selection.Clone()
	return cp
}

// Totals is the pure summary of the current cart contents.
type Totals struct {
	LineCount     int             `json:"line_count"`
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Total         decimal.Decimal `json:"total"`
}

// Snapshot is the immutable, finalized record produced from a cart at
// checkout time. It owns copies of the lines; later cart mutations do not
// affect it.
type Snapshot struct {
	BillNumber        string          `json:"bill_number"`
	TableNumber       string          `json:"table_number"`
	CustomerCount     int             `json:"customer_count"`
	Lines             []Line          `json:"lines"`
	TotalQuantity     int             `json:"total_quantity"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	ServiceChargeRate decimal.Decimal `json:"service_charge_rate"`
	ServiceCharge     decimal.Decimal `json:"service_charge"`
	Total             decimal.Decimal `json:"total"`
	PlacedAt          time.Time       `json:"placed_at"`
}

// Cart holds the in-progress line items for one table's ordering session.
// Lines keep insertion order; removal does not reorder the remainder.
// The cart is owned by a single flow at a time and is not safe for
// concurrent use on its own.
type Cart struct {
	lines []*Line
	rate  decimal.Decimal
}

// New creates an empty cart with the given service charge rate.
func New(serviceChargeRate decimal.Decimal) *Cart {
	return &Cart{rate: serviceChargeRate}
}

// ServiceChargeRate returns the policy rate the cart was created with.
func (c *Cart) ServiceChargeRate() decimal.Decimal { return c.rate }

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Lines returns copies of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.clone()
	}
	return out
}

// AddItem puts quantity units of the product, configured with the given
// selection, into the cart. Additions with the same product and a
// structurally equal selection merge into one line; differently configured
// additions of the same product stay separate lines. Quantities below 1 are
// clamped to 1. The unit price of an existing line is left untouched, so a
// catalog price change mid-session does not reprice lines already added.
func (c *Cart) AddItem(p *catalog.Product, sel Selection, quantity int) (*Line, error) {
	if quantity < 1 {
		quantity = 1
	}
	sel = sel.Clone()
	unitPrice, label, err := priceSelection(p, sel)
	if err != nil {
		return nil, err
	}

	if line := c.find(p.ID, sel); line != nil {
		line.Quantity += quantity
		return line, nil
	}

	line := &Line{
		ProductID: p.ID,
		Name:      p.Name,
		Label:     label,
		Selection: sel,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// RemoveOne decrements the matching line by one unit, deleting the line when
// it reaches zero. A missing line is a harmless no-op; the return value
// reports whether anything changed.
func (c *Cart) RemoveOne(productID string, sel Selection) bool {
	for i, line := range c.lines {
		if line.ProductID == productID && line.Selection.Equal(sel) {
			if line.Quantity > 1 {
				line.Quantity--
			} else {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return true
		}
	}
	return false
}

// SetQuantity sets the matching line's quantity directly. A quantity of zero
// or less removes the line. Returns false if no line matched.
func (c *Cart) SetQuantity(productID string, sel Selection, quantity int) bool {
	for i, line := range c.lines {
		if line.ProductID == productID && line.Selection.Equal(sel) {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				line.Quantity = quantity
			}
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() { c.lines = nil }

// Totals computes the order summary over the current lines. The service
// charge rounds half-up to the whole currency unit.
func (c *Cart) Totals() Totals {
	t := Totals{
		LineCount:     len(c.lines),
		Subtotal:      decimal.Zero,
		ServiceCharge: decimal.Zero,
		Total:         decimal.Zero,
	}
	for _, line := range c.lines {
		t.TotalQuantity += line.Quantity
		t.Subtotal = t.Subtotal.Add(line.Total())
	}
	t.ServiceCharge = t.Subtotal.Mul(c.rate).Round(0)
	t.Total = t.Subtotal.Add(t.ServiceCharge)
	return t
}

// Snapshot materializes an immutable order record from the current cart with
// a freshly generated bill number. The cart itself is left untouched;
// clearing after a successful submit is the caller's explicit decision.
func (c *Cart) Snapshot(tableNumber string, customerCount int) Snapshot {
	totals := c.Totals()
	return Snapshot{
		BillNumber:        NewBillNumber(time.Now()),
		TableNumber:       tableNumber,
		CustomerCount:     customerCount,
		Lines:             c.Lines(),
		TotalQuantity:     totals.TotalQuantity,
		Subtotal:          totals.Subtotal,
		ServiceChargeRate: c.rate,
		ServiceCharge:     totals.ServiceCharge,
		Total:             totals.Total,
		PlacedAt:          time.Now(),
	}
}

func (c *Cart) find(productID string, sel Selection) *Line {
	for _, line := range c.lines {
		if line.ProductID == productID && line.Selection.Equal(sel) {
			return line
		}
	}
	return nil
}

// priceSelection validates the selection against the product's variant
// groups and returns the resulting unit price and display label.
func priceSelection(p *catalog.Product, sel Selection) (decimal.Decimal, string, error) {
	unitPrice := p.BasePrice

	// Every selected group and option must exist, and option sets must
	// respect the group cap.
	for gid, opts := range sel {
		group, ok := p.Group(gid)
		if !ok {
			return decimal.Zero, "", fmt.Errorf("group %q: %w", gid, ErrInvalidSelection)
		}
		if len(opts) > group.MaxSelect {
			return decimal.Zero, "", fmt.Errorf("group %q: %w", gid, ErrInvalidSelection)
		}
		for _, oid := range opts {
			if _, ok := group.Option(oid); !ok {
				return decimal.Zero, "", fmt.Errorf("group %q option %q: %w", gid, oid, ErrInvalidSelection)
			}
		}
	}

	// Required groups must be satisfied. The UI gates its confirm button on
	// the same rule; the engine checks again rather than trusting callers.
	for i := range p.VariantGroups {
		g := &p.VariantGroups[i]
		if g.Required && sel.count(g.ID) < g.MinSelect {
			return decimal.Zero, "", fmt.Errorf("group %q: %w", g.ID, ErrIncompleteSelection)
		}
	}

	var names []string
	for i := range p.VariantGroups {
		g := &p.VariantGroups[i]
		for _, o := range g.Options {
			if sel.contains(g.ID, o.ID) {
				unitPrice = unitPrice.Add(o.PriceDelta)
				names = append(names, o.Name)
			}
		}
	}
	return unitPrice, strings.Join(names, " / "), nil
}

// cartState is the wire form of a Cart. The navigation layer passes the cart
// between screens as an opaque payload; round-tripping through JSON must
// reproduce an identical set of lines.
type cartState struct {
	ServiceChargeRate decimal.Decimal `json:"service_charge_rate"`
	Lines             []Line          `json:"lines"`
}

// MarshalJSON implements json.Marshaler.
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartState{
		ServiceChargeRate: c.rate,
		Lines:             c.Lines(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var state cartState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	c.rate = state.ServiceChargeRate
	c.lines = make([]*Line, len(state.Lines))
	for i := range state.Lines {
		line := state.Lines[i].clone()
		c.lines[i] = &line
	}
	return nil
}
