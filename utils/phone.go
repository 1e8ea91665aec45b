package utils

import (
	"regexp"
	"strings"
)

const indiaCode = "+91"

var phonePattern = regexp.MustCompile(`^(\+91)?[6-9]\d{9}$`)

// ValidPhone accepts a 10-digit Indian mobile number with an optional +91.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// NormalizePhone returns the 10-digit form stored for s, so "+919876543210"
// and "9876543210" are the same number.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, indiaCode); ok && len(rest) == 10 {
		return rest
	}
	return s
}
