package core

import (
	"strings"
)

// CanonicalizeISBN strips separators (hyphens and spaces) and uppercases the
// ISBN-10 check character so equal identifiers compare equal.
func CanonicalizeISBN(raw string) ISBNString {
	cleaned := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, raw)

	return strings.ToUpper(cleaned)
}

// ValidateISBN checks the canonicalized identifier against the ISBN-10 and
// ISBN-13 checksums and returns ErrInvalidIdentifier when neither matches.
func ValidateISBN(isbn ISBNString) error {
	if isISBN10(isbn) || isISBN13(isbn) {
		return nil
	}

	return ErrInvalidIdentifier
}

func isISBN10(isbn string) bool {
	if len(isbn) != 10 {
		return false
	}

	sum := 0

	for i, r := range isbn {
		var digit int

		switch {
		case r >= '0' && r <= '9':
			digit = int(r - '0')
		case r == 'X' && i == 9:
			digit = 10
		default:
			return false
		}

		sum += (10 - i) * digit
	}

	return sum%11 == 0
}

func isISBN13(isbn string) bool {
	if len(isbn) != 13 {
		return false
	}

	sum := 0

	for i, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}

		digit := int(r - '0')
		if i%2 == 1 {
			digit *= 3
		}

		sum += digit
	}

	return sum%10 == 0
}
