// Package strutil contains small string conversion helpers for query parameters.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 when parsing fails.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToInt64 parses s as an int64, returning 0 when parsing fails.
func ConvertToInt64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToBool parses s as a bool, returning false when parsing fails.
func ConvertToBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return v
}
