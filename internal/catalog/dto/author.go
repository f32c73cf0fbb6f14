package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest is the body of POST /api/v1/authors.
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	BirthDate   *Date   `json:"birthDate"`
	Nationality *string `json:"nationality"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Author name is required"),
			validation.Length(2, 100).Error("Author name must be between 2 and 100 characters"),
		),
		validation.Field(&r.BirthDate,
			validation.By(pastDate),
		),
		validation.Field(&r.Nationality,
			validation.Length(0, 50).Error("Nationality must not exceed 50 characters"),
		),
	)
}

// AuthorSummary is the abbreviated author shape nested in book and
// magazine views.
type AuthorSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Nationality *string `json:"nationality"`
	BirthDate   *Date   `json:"birthDate"`
}

// AuthorResponse is the detail view: the author plus summaries of every
// book written and magazine contributed to.
type AuthorResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	BirthDate   *Date             `json:"birthDate"`
	Nationality *string           `json:"nationality"`
	Books       []BookSummary     `json:"books"`
	Magazines   []MagazineSummary `json:"magazines"`
}
