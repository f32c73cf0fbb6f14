package model

import "errors"

// Sentinel errors raised by services and repositories. Handlers translate
// them to HTTP statuses with errors.Is at the API boundary; nothing below
// that layer knows about status codes.
var (
	ErrAuthorNotFound      = errors.New("author not found")
	ErrBookNotFound        = errors.New("book not found")
	ErrMagazineNotFound    = errors.New("magazine not found")
	ErrPublicationNotFound = errors.New("publication not found")

	// ErrAuthorsNotFound covers magazine author resolution, where the
	// resolved set is smaller than the requested one.
	ErrAuthorsNotFound = errors.New("one or more authors not found")

	ErrDuplicateAuthorName = errors.New("author name already exists")
	ErrDuplicateISBN       = errors.New("book with this ISBN already exists")
	ErrDuplicateTitle      = errors.New("publication title already exists")

	// ErrUnknownPublicationType means a row carries a discriminator this
	// build does not recognize. That is a data integrity failure, not a
	// client error.
	ErrUnknownPublicationType = errors.New("unknown publication type")

	// ErrConstraintViolation is the catch-all for store-level integrity
	// errors not classified above.
	ErrConstraintViolation = errors.New("database constraint violation")
)
