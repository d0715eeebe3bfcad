package domain

import (
	"errors"
	"strconv"
	"strings"
)

// ParseFloat parses text as a 64-bit floating-point number. Surrounding
// whitespace is ignored. On failure it returns an InvalidArgumentError naming
// field, so a sequence of ParseFloat calls stops at the first bad argument.
//
// Out-of-range input is not a failure: it yields ±Inf (or zero on underflow)
// and the value propagates through the calculations like any other.
func ParseFloat(field, text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &InvalidArgumentError{Field: field, Value: text, Err: err}
	}
	return value, nil
}
