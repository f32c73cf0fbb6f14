package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"publisher-catalog/internal/catalog/model"
)

// CreateBookRequest is the body of POST /api/v1/books. ISBN is required on
// creation even though the column is nullable; only legacy rows go without.
type CreateBookRequest struct {
	Title           string `json:"title"`
	PublicationDate Date   `json:"publicationDate"`
	ISBN            string `json:"isbn"`
	AuthorID        int64  `json:"authorId"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Title is required"),
			validation.Length(1, 255).Error("Title must not exceed 255 characters"),
		),
		validation.Field(&r.PublicationDate,
			dateRequired("Publication date is required"),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("ISBN is required"),
			validation.Length(10, 20).Error("ISBN must be between 10 and 20 characters"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("Author ID is required"),
			positiveID("Author ID must be positive"),
		),
	)
}

// UpdateBookRequest supports partial updates: nil fields leave the stored
// value untouched.
type UpdateBookRequest struct {
	ISBN     *string `json:"isbn"`
	AuthorID *int64  `json:"authorId"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN,
			stringBetween(10, 20, "Invalid ISBN format"),
			is.ISBN.Error("Invalid ISBN format"),
		),
		validation.Field(&r.AuthorID,
			positiveID("Author ID must be positive"),
		),
	)
}

// BookResponse is the detail view of a book.
type BookResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	PublicationDate Date           `json:"publicationDate"`
	ISBN            *string        `json:"isbn"`
	Author          *AuthorSummary `json:"author"`
}

// BookSummary is the list shape. AuthorName is denormalized from the
// book's own author; the type tag lets mixed listings discriminate
// without a second lookup.
type BookSummary struct {
	ID              int64                 `json:"id"`
	Title           string                `json:"title"`
	PublicationDate Date                  `json:"publicationDate"`
	Type            model.PublicationType `json:"type"`
	ISBN            *string               `json:"isbn"`
	AuthorName      *string               `json:"authorName"`
}
