package model

import (
	"strings"
	"time"
)

// PublicationType is the discriminator stored alongside every publication
// row. Unknown tags surface as TypeUnknown and are treated as a decode
// failure, never as valid data.
type PublicationType string

const (
	TypeBook     PublicationType = "BOOK"
	TypeMagazine PublicationType = "MAGAZINE"
	TypeUnknown  PublicationType = "UNKNOWN"
)

// PublicationTypeFromString parses a stored discriminator value,
// case-insensitively.
func PublicationTypeFromString(s string) PublicationType {
	switch strings.ToUpper(s) {
	case string(TypeBook):
		return TypeBook
	case string(TypeMagazine):
		return TypeMagazine
	default:
		return TypeUnknown
	}
}

// Author writes books (one-to-many, owned) and contributes to magazines
// (many-to-many). Books and Magazines are populated only by the eager
// repository lookups that need them.
type Author struct {
	ID          int64
	Name        string
	BirthDate   *time.Time
	Nationality *string

	Books     []Book
	Magazines []Magazine
}

// Book is the BOOK variant of a publication. The author reference is
// nullable; ISBN is optional but unique among non-null values.
type Book struct {
	ID              int64
	Title           string
	PublicationDate time.Time
	ISBN            *string
	Author          *Author
}

// Magazine is the MAGAZINE variant of a publication. At least one
// contributing author is required at creation time.
type Magazine struct {
	ID              int64
	Title           string
	PublicationDate time.Time
	IssueNumber     int
	Authors         []Author
}

// Publication is the tagged view over the unified publications table.
// Exactly one of Book or Magazine is set, matching Type.
type Publication struct {
	ID              int64
	Type            PublicationType
	Title           string
	PublicationDate time.Time

	Book     *Book
	Magazine *Magazine
}
