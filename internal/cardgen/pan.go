// Package cardgen holds the card number and security code helpers behind
// the card fixtures.
package cardgen

import (
	"math/rand"
	"strconv"
	"strings"
)

// Security codes are 3 digits without a leading zero.
const (
	minSecurityCode = 100
	maxSecurityCode = 999
)

// SecurityCode returns a uniformly random code in [100, 999].
// Not for real cards: math/rand is enough for sandbox fixtures.
func SecurityCode() string {
	return strconv.Itoa(minSecurityCode + rand.Intn(maxSecurityCode-minSecurityCode+1))
}

// LastN returns the final n bytes of s, or s itself when it is shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// MaskPAN keeps the BIN and the last four digits when the number is long
// enough, otherwise only the last four.
func MaskPAN(pan string) string {
	n := len(pan)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + pan[n-4:]
	}
	return pan[:6] + strings.Repeat("*", n-10) + pan[n-4:]
}
