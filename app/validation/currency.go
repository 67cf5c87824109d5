package validation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const maxCurrencyLen = 20

var (
	dollarAmount  = regexp.MustCompile(`^\$?([0-9]{1,3},([0-9]{3},)*[0-9]{3}|[0-9]+)(\.[0-9][0-9])?$`)
	nonMoneyChars = regexp.MustCompile(`[^0-9.]+`)

	hintDollarAmount = Hint{Title: "Enter Dollar Amount", Line1: "e.g. 12.34  1234", Line2: "$1234  $1,234.56"}
)

// ValidateCurrencyInput admits key into a price field and then checks that
// the proposed text reads as a dollar amount (12.34, 1234, $1,234.56).
func ValidateCurrencyInput(text string, caret int, key string) Result {
	if res := Admit(ClassCurrency, key); res.Veto {
		return res
	}
	if !dollarAmount.MatchString(Proposed(text, caret, key)) {
		return Result{Hint: hintDollarAmount}
	}
	return accepted
}

// ParseCurrency turns loosely formatted price text into an amount. It never
// fails: text it cannot make sense of yields some non-negative value,
// possibly not the one the user meant.
//
//	"42"         -> 42.00
//	"$1,234.5"   -> 1234.5
//	"$$12..5$0"  -> 12.50
//	"$$$"        -> 0.00
func ParseCurrency(s string) decimal.Decimal {
	if !strings.ContainsAny(s, "0123456789") {
		return decimal.New(0, -2)
	}

	s = strings.ReplaceAll(s, "$", "")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i+1] + strings.ReplaceAll(s[i+1:], ".", "")
	} else {
		s += ".00"
	}

	s = nonMoneyChars.ReplaceAllString(s, "")
	if len(s) > maxCurrencyLen {
		s = s[:maxCurrencyLen]
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if strings.HasSuffix(s, ".") {
		s += "00"
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.New(0, -2)
	}
	return d
}
