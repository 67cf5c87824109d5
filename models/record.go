package models

import (
	"github.com/shopspring/decimal"
)

// Record holds the fields shared by items and products.
// Min and Max describe the allowed operating range for Stock. The model
// accepts any combination of values; range rules are checked at save time.
type Record struct {
	ID    int
	Name  string
	Price decimal.Decimal
	Stock int
	Min   int
	Max   int
}

// Fields returns the shared record fields. Items and products expose it
// through embedding, which lets search and storage code treat both alike.
func (r *Record) Fields() *Record {
	return r
}

// Entry is implemented by *Item and *Product.
type Entry interface {
	Fields() *Record
}
