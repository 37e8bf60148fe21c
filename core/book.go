package core

import (
	"github.com/google/uuid"
)

// LanguageCode is a lowercase two-letter book language code.
type LanguageCode = string

// knownLanguages mirrors the language choices offered by the catalog UI.
var knownLanguages = map[LanguageCode]struct{}{
	"en": {}, "es": {}, "zh": {}, "hi": {},
	"ar": {}, "bn": {}, "pt": {}, "ru": {},
	"ja": {}, "de": {}, "ko": {}, "fr": {},
	"it": {}, "tr": {}, "ta": {}, "vi": {},
	"pl": {}, "uk": {}, "ro": {}, "nl": {},
}

// IsKnownLanguage reports whether code is one of the supported language codes.
func IsKnownLanguage(code LanguageCode) bool {
	_, ok := knownLanguages[code]
	return ok
}

// Book represents a catalog record: bibliographic data plus availability state.
//
// Quantity counts the copies currently on the shelf, so a book with more than
// one copy can be available and have open borrows at the same time. IsBorrowed
// and BorrowedBy are a denormalized convenience cache over the open borrow
// records; every mutation path keeps them consistent, the authoritative state
// is the set of open Borrow records.
type Book struct {
	ISBN       ISBNString
	Title      string
	Author     string
	Publisher  string
	Year       int
	Language   LanguageCode
	Quantity   int
	IsBorrowed bool
	BorrowedBy *uuid.UUID
	BorrowedAt *Timestamp
	DueAt      *Timestamp
	ReturnedAt *Timestamp
}

// BuildBook creates a catalog record with all copies on the shelf.
// The identifier is canonicalized; validity is the caller's concern (see ValidateISBN).
func BuildBook(isbn ISBNString, title, author, publisher string, year int, language LanguageCode, quantity int) Book {
	return Book{
		ISBN:      CanonicalizeISBN(isbn),
		Title:     title,
		Author:    author,
		Publisher: publisher,
		Year:      year,
		Language:  language,
		Quantity:  quantity,
	}
}

// IsAvailable reports whether at least one copy is on the shelf.
func (b Book) IsAvailable() bool {
	return b.Quantity > 0
}
