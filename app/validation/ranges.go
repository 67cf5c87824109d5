package validation

import (
	"strconv"
	"strings"
)

var (
	hintMaxBelowMin = Hint{Title: "Invalid values:", Line1: "Max < Min"}
	hintMinAboveMax = Hint{Title: "Invalid values:", Line1: "Min > Max"}
	hintMaxEmpty    = Hint{Title: "Max cannot be empty", Line1: "You must enter a number"}
	hintMinEmpty    = Hint{Title: "Min cannot be empty", Line1: "You must enter a number"}
)

// ValidateMax checks the max field as it would read after key is typed at
// caret, against the current min text. The check is deferred, and passes,
// while min has not been entered.
func ValidateMax(minText, maxText string, caret int, key string) Result {
	min, ok := parseBound(minText)
	if !ok {
		return accepted
	}
	max, ok := parseBound(Proposed(maxText, caret, key))
	if !ok {
		return Result{Hint: hintMaxEmpty}
	}
	if min > max {
		return Result{Hint: hintMaxBelowMin}
	}
	return accepted
}

// ValidateMin is the min-field counterpart of ValidateMax.
func ValidateMin(minText, maxText string, caret int, key string) Result {
	max, ok := parseBound(maxText)
	if !ok {
		return accepted
	}
	min, ok := parseBound(Proposed(minText, caret, key))
	if !ok {
		return Result{Hint: hintMinEmpty}
	}
	if min > max {
		return Result{Hint: hintMinAboveMax}
	}
	return accepted
}

// parseBound reads a non-negative bound. Empty or unparsable text counts
// as not yet entered.
func parseBound(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
