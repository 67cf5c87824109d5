package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mytheresa/inventory-system/models"
)

// ErrMalformedInput is returned when a field that must hold a number does
// not. Admission filters normally keep this from happening.
var ErrMalformedInput = errors.New("malformed input")

// Signal names a save-time rejection.
type Signal string

const (
	SignalMaxBelowMin     Signal = "max_below_min"
	SignalStockOutOfRange Signal = "stock_out_of_range"
	SignalNoComponents    Signal = "no_components"
	SignalPriceTooLow     Signal = "price_too_low"
)

// Rejection is a recoverable save-time failure. The record is simply not
// committed; Title and Detail are the text shown to the user.
type Rejection struct {
	Signal Signal
	Title  string
	Detail string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Signal, r.Title)
}

var (
	ErrMaxBelowMin = &Rejection{
		Signal: SignalMaxBelowMin,
		Title:  "Max inventory is less than minimum inventory:",
		Detail: "Max inventory must be greater.",
	}
	ErrStockOutOfRange = &Rejection{
		Signal: SignalStockOutOfRange,
		Title:  "Inventory value not in range:",
		Detail: "Inventory amount must be within min and max values.",
	}
	ErrNoComponents = &Rejection{
		Signal: SignalNoComponents,
		Title:  "Product has no associated parts.",
		Detail: "Please add at least one part before saving.",
	}
	ErrPriceTooLow = &Rejection{
		Signal: SignalPriceTooLow,
		Title:  "This product price is too low.",
		Detail: "The price is less than the total cost of its parts.",
	}
)

// AsRejection unwraps err into a *Rejection if it holds one.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// CheckRange applies the stock range rules: max must not be below min and
// stock must lie within [min, max].
func CheckRange(stock, min, max int) error {
	if max < min {
		return ErrMaxBelowMin
	}
	if stock < min || stock > max {
		return ErrStockOutOfRange
	}
	return nil
}

// CheckItem runs the save-time checks for an item.
func CheckItem(item *models.Item) error {
	return CheckRange(item.Stock, item.Min, item.Max)
}

// CheckProduct runs the save-time checks for a product in order, stopping
// at the first failure: components present, price covers the components,
// then the stock range.
func CheckProduct(product *models.Product) error {
	if len(product.Components) == 0 {
		return ErrNoComponents
	}
	if product.ComponentsCost().GreaterThan(product.Price) {
		return ErrPriceTooLow
	}
	return CheckRange(product.Stock, product.Min, product.Max)
}

// ParseQuantity reads an integer form field.
func ParseQuantity(field, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedInput, field, text)
	}
	return n, nil
}
