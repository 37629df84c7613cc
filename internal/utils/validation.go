package utils

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether the address parses as RFC 5322 and carries a
// dotted domain part.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	_, domain, ok := strings.Cut(email, "@")
	return ok && strings.Contains(domain, ".")
}
