package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VariantOption is one selectable choice inside a variant group.
// PriceDelta is added to the product's base price when the option is
// selected; it may be negative, zero, or positive.
type VariantOption struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

// VariantGroup defines one configurable attribute of a product, e.g.
// doneness or spice level. Required groups must have at least MinSelect
// options chosen before the product can be added to a cart.
type VariantGroup struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Required  bool            `json:"required"`
	MinSelect int             `json:"min_select"`
	MaxSelect int             `json:"max_select"`
	Options   []VariantOption `json:"options"`
}

// Option looks up an option within the group by ID.
func (g *VariantGroup) Option(id string) (*VariantOption, bool) {
	for i := range g.Options {
		if g.Options[i].ID == id {
			return &g.Options[i], true
		}
	}
	return nil, false
}

// Product is an immutable menu item definition. A product with no variant
// groups is added to a cart directly; otherwise a selection is required.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Recommended   bool            `json:"recommended,omitempty"`
	VariantGroups []VariantGroup  `json:"variant_groups,omitempty"`
}

// Group looks up a variant group by ID.
func (p *Product) Group(id string) (*VariantGroup, bool) {
	for i := range p.VariantGroups {
		if p.VariantGroups[i].ID == id {
			return &p.VariantGroups[i], true
		}
	}
	return nil, false
}

// Category is a menu navigation grouping.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// Catalog is the read-only product catalog handed to the ordering flow.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	categories []Category
	products   []*Product
	byID       map[string]*Product
}

// New builds a catalog, rejecting duplicate product IDs and malformed
// variant group bounds up front so bad seed data fails fast.
func New(categories []Category, products []*Product) (*Catalog, error) {
	byID := make(map[string]*Product, len(products))
	for _, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		for _, g := range p.VariantGroups {
			if g.MinSelect < 0 || g.MaxSelect < g.MinSelect {
				return nil, fmt.Errorf("catalog: product %q group %q: invalid select bounds [%d,%d]",
					p.ID, g.ID, g.MinSelect, g.MaxSelect)
			}
			if len(g.Options) == 0 {
				return nil, fmt.Errorf("catalog: product %q group %q: no options", p.ID, g.ID)
			}
		}
		byID[p.ID] = p
	}
	return &Catalog{categories: categories, products: products, byID: byID}, nil
}

// Product returns the product with the given ID.
func (c *Catalog) Product(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns all products in menu order.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductsByCategory returns the products belonging to one category,
// preserving menu order.
func (c *Catalog) ProductsByCategory(category string) []*Product {
	var out []*Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the menu categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}
