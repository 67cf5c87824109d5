package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a sellable good in the catalog.
// Components is an ordered multiset of items: the same item may appear
// several times to represent multiple-quantity usage.
//
// Components hold shared references. Removing an item from the catalog
// never removes it from a product that already lists it.
type Product struct {
	Record
	Components []*Item
}

func NewProduct(id int, name string, price decimal.Decimal, stock, min, max int) *Product {
	return &Product{
		Record: Record{
			ID:    id,
			Name:  name,
			Price: price,
			Stock: stock,
			Min:   min,
			Max:   max,
		},
		Components: []*Item{},
	}
}

// AddComponent appends item to the component list. Nil items are ignored.
func (p *Product) AddComponent(item *Item) {
	if item == nil {
		return
	}
	p.Components = append(p.Components, item)
}

// RemoveComponent removes the first occurrence of item (by reference) and
// reports whether anything was removed.
func (p *Product) RemoveComponent(item *Item) bool {
	for i, c := range p.Components {
		if c == item {
			p.Components = append(p.Components[:i], p.Components[i+1:]...)
			return true
		}
	}
	return false
}

// ComponentsCost sums the current price of every component, counting
// duplicates once per occurrence.
func (p *Product) ComponentsCost() decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Components {
		total = total.Add(c.Price)
	}
	return total
}
