package validation

import (
	"strings"
)

// Hint is the corrective text shown next to a form: a title and up to two
// description lines. The zero Hint clears whatever was shown before.
type Hint struct {
	Title string
	Line1 string
	Line2 string
}

func (h Hint) IsZero() bool {
	return h == Hint{}
}

// Result is the answer to one validator call.
// Veto means the keystroke itself must be discarded. A result can be
// invalid without a veto, e.g. when the text is admitted but out of range.
type Result struct {
	Valid bool
	Veto  bool
	Hint  Hint
}

var accepted = Result{Valid: true}

// FieldClass selects the character set a field admits.
type FieldClass int

const (
	// ClassName is for free-text names: item, product and supplier names.
	ClassName FieldClass = iota
	// ClassNumeric is for stock, min, max and machine id fields.
	ClassNumeric
	// ClassCurrency is for price fields.
	ClassCurrency
)

const (
	nameChars     = "1234567890abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ&#.,()'\"\t\b "
	numericChars  = "1234567890\t\b"
	currencyChars = "1234567890,.$\t\b"
)

var (
	hintNameChars     = Hint{Title: "Valid characters are:", Line1: "Alphanumeric", Line2: `( . , ' " & # )`}
	hintNumericChars  = Hint{Title: "Enter only numbers:", Line1: "e.g. 12 or 345"}
	hintCurrencyChars = Hint{Title: "Valid characters are:", Line1: "0-9 , . $"}
)

// Admit decides whether key may be inserted into a field of the given
// class. An admitted key clears the hint; a rejected one is vetoed.
func Admit(class FieldClass, key string) Result {
	allowed, hint := nameChars, hintNameChars
	switch class {
	case ClassNumeric:
		allowed, hint = numericChars, hintNumericChars
	case ClassCurrency:
		allowed, hint = currencyChars, hintCurrencyChars
	}

	for _, r := range key {
		if !strings.ContainsRune(allowed, r) {
			return Result{Valid: false, Veto: true, Hint: hint}
		}
	}
	return accepted
}

// Splice returns text with inserted placed at caret, counted in
// characters. The caret is clamped to the text.
func Splice(text string, caret int, inserted string) string {
	runes := []rune(text)
	if caret < 0 {
		caret = 0
	}
	if caret > len(runes) {
		caret = len(runes)
	}
	return string(runes[:caret]) + inserted + string(runes[caret:])
}

// Proposed is the text a field would hold if key were typed at caret.
// Control keys such as tab and backspace contribute nothing.
func Proposed(text string, caret int, key string) string {
	return Splice(text, caret, strings.TrimFunc(key, func(r rune) bool { return r <= ' ' }))
}
