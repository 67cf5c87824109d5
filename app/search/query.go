package search

import (
	"regexp"
	"strings"
)

// Field is the record field a query targets.
type Field int

const (
	FieldName Field = iota
	FieldID
	FieldStock
	FieldPrice
)

func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldStock:
		return "stock"
	case FieldPrice:
		return "price"
	default:
		return "name"
	}
}

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9,.$: ]+`)
	digitsOnly      = regexp.MustCompile(`^[0-9]+$`)
	nonDigits       = regexp.MustCompile(`[^0-9]+`)
	nonPriceChars   = regexp.MustCompile(`[^0-9.]+`)
	nonNameChars    = regexp.MustCompile(`[^a-z0-9 ]+`)
	// $1,234.56  1234  $12.9
	currencyLike = regexp.MustCompile(`^\$?([0-9]{1,3},([0-9]{3},)*[0-9]{3}|[0-9]+)(\.[0-9]{0,2})?$`)
)

// Query is a classified search request.
// Token is the normalized text the search runs on, and the text reported
// back when nothing matches.
type Query struct {
	Raw   string
	Field Field
	Token string
}

// Normalize trims, lowercases and drops every character outside
// [a-z0-9,.$: ].
func Normalize(raw string) string {
	return disallowedChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "")
}

// NormalizeName is the form names are compared in: lowercase letters,
// digits and spaces only.
func NormalizeName(name string) string {
	return strings.TrimSpace(nonNameChars.ReplaceAllString(strings.ToLower(name), ""))
}

// Classify picks the target field for raw. The first matching rule wins:
//
//	digits only, or "id:" prefix   -> id
//	"inv:" prefix                  -> stock level
//	"price:" prefix, or $-amount   -> price
//	anything else ("name:" opt.)   -> name
func Classify(raw string) Query {
	token := Normalize(raw)

	switch {
	case digitsOnly.MatchString(token) || strings.HasPrefix(token, "id:"):
		return Query{Raw: raw, Field: FieldID, Token: nonDigits.ReplaceAllString(token, "")}
	case strings.HasPrefix(token, "inv:"):
		return Query{Raw: raw, Field: FieldStock, Token: nonDigits.ReplaceAllString(token, "")}
	case strings.HasPrefix(token, "price:") || currencyLike.MatchString(token):
		return Query{Raw: raw, Field: FieldPrice, Token: nonPriceChars.ReplaceAllString(token, "")}
	}

	if rest, ok := strings.CutPrefix(token, "name:"); ok {
		token = strings.TrimSpace(rest)
	}
	return Query{Raw: raw, Field: FieldName, Token: nonNameChars.ReplaceAllString(token, "")}
}
