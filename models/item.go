package models

import (
	"github.com/shopspring/decimal"
)

// Item represents a raw supply unit in the catalog.
// Its Source is fixed at creation; switching variants means building a
// replacement item with the same ID and writing it back to the catalog.
type Item struct {
	Record
	Source Source
}

// NewItem builds an item with an explicit id. A nil source defaults to
// Sourced with an empty supplier name.
func NewItem(id int, name string, price decimal.Decimal, stock, min, max int, source Source) *Item {
	if source == nil {
		source = Sourced{}
	}
	return &Item{
		Record: Record{
			ID:    id,
			Name:  name,
			Price: price,
			Stock: stock,
			Min:   min,
			Max:   max,
		},
		Source: source,
	}
}

// Kind reports the item's variant.
func (i *Item) Kind() SourceKind {
	if i.Source == nil {
		return SourceSourced
	}
	return i.Source.Kind()
}

// MachineID returns the machine id of a manufactured item.
func (i *Item) MachineID() (int, bool) {
	m, ok := i.Source.(Manufactured)
	return m.MachineID, ok
}

// SupplierName returns the supplier of a sourced item.
func (i *Item) SupplierName() (string, bool) {
	s, ok := i.Source.(Sourced)
	return s.SupplierName, ok
}
