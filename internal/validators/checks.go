package validators

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Required accepts values that are non-empty after trimming whitespace.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxLength returns a predicate accepting values of at most limit characters.
// Length is counted in runes, not bytes.
func MaxLength(limit int) func(string) bool {
	return func(value string) bool {
		return utf8.RuneCountInString(value) <= limit
	}
}

// EmailShape accepts syntactically valid, bare email addresses.
// It rejects RFC 5322 name-addr forms like `Alice <a@b.c>` — only the plain
// addr-spec form is considered a valid login identifier.
func EmailShape(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Address == value
}
