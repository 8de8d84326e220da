// Package forms normalizes free-text form input before it reaches the
// services. Malformed numbers become zero instead of an error.
package forms

import (
	"strconv"
	"strings"
)

func ParseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(normalize(raw), 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func ParseQty(raw string) int64 {
	value, err := strconv.ParseInt(normalize(raw), 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func normalize(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
}
