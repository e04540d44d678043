// Package validate holds the pure form-field predicates. They mirror the
// checks the storefront runs before touching any store.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Kazakhstan number: optional +, leading 7, 3-3-2-2 digit groups with
	// optional spaces, parentheses and dashes.
	phoneRe = regexp.MustCompile(`^\+?7\s?\(?\d{3}\)?\s?\d{3}[-\s]?\d{2}[-\s]?\d{2}$`)
)

// Email reports whether s looks like an address: one "@" separating a
// non-empty local part from a domain that contains a dot.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password requires at least 8 characters with at least one lowercase
// letter, one uppercase letter and one digit.
func Password(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// Phone accepts the regional format. The field is optional, so empty input
// is always valid.
func Phone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRe.MatchString(s)
}

// FullName requires at least two characters after trimming.
func FullName(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= 2
}
