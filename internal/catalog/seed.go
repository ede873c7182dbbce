package catalog

import "github.com/shopspring/decimal"

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Seed builds the demo menu for the tablets. The restaurant runs
// without a backoffice, so the catalog is compiled in rather than loaded
// from storage.
func Seed() *Catalog {
	categories := []Category{
		{ID: "hot-sale", Name: "Hot Sale", SortOrder: 1},
		{ID: "chef-special", Name: "Chef's Special", SortOrder: 2},
		{ID: "cold-dish", Name: "Cold Dishes", SortOrder: 3},
		{ID: "hot-dish", Name: "Hot Dishes", SortOrder: 4},
		{ID: "set-meal", Name: "Set Meals", SortOrder: 5},
		{ID: "bbq", Name: "Signature BBQ", SortOrder: 6},
		{ID: "drinks", Name: "Drinks", SortOrder: 7},
	}

	doneness := VariantGroup{
		ID: "doneness", Name: "Doneness", Required: true, MinSelect: 1, MaxSelect: 1,
		Options: []VariantOption{
			{ID: "rare", Name: "Rare"},
			{ID: "medium-rare", Name: "Medium Rare"},
			{ID: "medium", Name: "Medium"},
			{ID: "well-done", Name: "Well Done"},
		},
	}
	sauce := VariantGroup{
		ID: "sauce", Name: "Sauce", Required: true, MinSelect: 1, MaxSelect: 1,
		Options: []VariantOption{
			{ID: "black-pepper", Name: "Black Pepper"},
			{ID: "mushroom", Name: "Mushroom"},
			{ID: "red-wine", Name: "Red Wine", PriceDelta: price(8)},
		},
	}
	spice := VariantGroup{
		ID: "spice", Name: "Spice Level", Required: true, MinSelect: 1, MaxSelect: 1,
		Options: []VariantOption{
			{ID: "mild", Name: "Mild"},
			{ID: "medium", Name: "Medium"},
			{ID: "hot", Name: "Hot"},
		},
	}
	toppings := VariantGroup{
		ID: "toppings", Name: "Toppings", MinSelect: 0, MaxSelect: 2,
		Options: []VariantOption{
			{ID: "egg", Name: "Fried Egg", PriceDelta: price(3)},
			{ID: "cheese", Name: "Cheese", PriceDelta: price(5)},
			{ID: "bacon", Name: "Bacon", PriceDelta: price(6)},
			{ID: "cilantro", Name: "Cilantro"},
		},
	}
	size := VariantGroup{
		ID: "size", Name: "Size", Required: true, MinSelect: 1, MaxSelect: 1,
		Options: []VariantOption{
			{ID: "small", Name: "Small", PriceDelta: price(-4)},
			{ID: "regular", Name: "Regular"},
			{ID: "large", Name: "Large", PriceDelta: price(6)},
		},
	}
	temperature := VariantGroup{
		ID: "temperature", Name: "Temperature", Required: true, MinSelect: 1, MaxSelect: 1,
		Options: []VariantOption{
			{ID: "iced", Name: "Iced"},
			{ID: "room", Name: "Room Temperature"},
			{ID: "hot", Name: "Hot"},
		},
	}

	products := []*Product{
		{
			ID: "crispy-rougamo", Name: "Crispy Rougamo", Category: "hot-sale",
			Description: "Buy 3 get 2 free, min. 2 per order", BasePrice: price(128), Recommended: true,
		},
		{
			ID: "braised-pork", Name: "Braised Pork Belly", Category: "hot-sale",
			BasePrice: price(88), Recommended: true,
			VariantGroups: []VariantGroup{spice},
		},
		{
			ID: "sirloin-steak", Name: "Sirloin Steak", Category: "chef-special",
			Description: "Australian grain-fed sirloin", BasePrice: price(168), Recommended: true,
			VariantGroups: []VariantGroup{doneness, sauce},
		},
		{
			ID: "ribeye-steak", Name: "Ribeye Steak", Category: "chef-special",
			BasePrice:     price(228),
			VariantGroups: []VariantGroup{doneness, sauce},
		},
		{
			ID: "cucumber-salad", Name: "Smashed Cucumber Salad", Category: "cold-dish",
			BasePrice:     price(22),
			VariantGroups: []VariantGroup{spice},
		},
		{
			ID: "century-egg-tofu", Name: "Century Egg Tofu", Category: "cold-dish",
			BasePrice: price(26),
		},
		{
			ID: "kungpao-chicken", Name: "Kung Pao Chicken", Category: "hot-dish",
			BasePrice:     price(58),
			VariantGroups: []VariantGroup{spice},
		},
		{
			ID: "mapo-tofu", Name: "Mapo Tofu", Category: "hot-dish",
			BasePrice:     price(42),
			VariantGroups: []VariantGroup{spice, toppings},
		},
		{
			ID: "family-set", Name: "Family Set for Four", Category: "set-meal",
			Description: "Four dishes, one soup, rice included", BasePrice: price(288),
		},
		{
			ID: "lamb-skewers", Name: "Lamb Skewers (10 pcs)", Category: "bbq",
			BasePrice:     price(68),
			VariantGroups: []VariantGroup{spice},
		},
		{
			ID: "grilled-eggplant", Name: "Grilled Eggplant", Category: "bbq",
			BasePrice:     price(28),
			VariantGroups: []VariantGroup{toppings},
		},
		{
			ID: "fresh-lemonade", Name: "Fresh Lemonade", Category: "drinks",
			BasePrice:     price(18),
			VariantGroups: []VariantGroup{size, temperature},
		},
		{
			ID: "tsingtao-beer", Name: "Tsingtao Beer", Category: "drinks",
			BasePrice: price(12),
		},
	}

	c, err := New(categories, products)
	if err != nil {
		// Seed data is compiled in; a failure here is a programming error.
		panic(err)
	}
	return c
}
