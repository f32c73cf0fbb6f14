package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"publisher-catalog/internal/catalog/model"
)

// CreateMagazineRequest is the body of POST /api/v1/magazines. A magazine
// must name at least one contributing author.
type CreateMagazineRequest struct {
	Title           string  `json:"title"`
	IssueNumber     int     `json:"issueNumber"`
	PublicationDate Date    `json:"publicationDate"`
	AuthorIDs       []int64 `json:"authorIds"`
}

func (r CreateMagazineRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Title cannot be blank"),
			validation.Length(2, 200).Error("Title must be between 2 and 200 characters"),
		),
		validation.Field(&r.IssueNumber,
			validation.Required.Error("Issue number cannot be null"),
			intBetween(1, 99999, "Issue number must be at least 1", "Issue number cannot exceed 99999"),
		),
		validation.Field(&r.PublicationDate,
			dateRequired("Publication date cannot be null"),
		),
		validation.Field(&r.AuthorIDs,
			validation.Required.Error("At least one author must be specified"),
			validation.Each(positiveID("Author ID must be positive")),
		),
	)
}

// UpdateMagazineRequest applies partial field updates; the author list is
// always required and replaces the existing one wholesale.
type UpdateMagazineRequest struct {
	Title           *string `json:"title"`
	IssueNumber     *int    `json:"issueNumber"`
	PublicationDate *Date   `json:"publicationDate"`
	AuthorIDs       []int64 `json:"authorIds"`
}

func (r UpdateMagazineRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			stringBetween(2, 200, "Title must be between 2 and 200 characters"),
		),
		validation.Field(&r.IssueNumber,
			intBetween(1, 99999, "Issue number must be at least 1", "Issue number cannot exceed 99999"),
		),
		validation.Field(&r.AuthorIDs,
			validation.Required.Error("At least one author must be specified"),
			validation.Each(positiveID("Author ID must be positive")),
		),
	)
}

// MagazineResponse is the detail view of a magazine.
type MagazineResponse struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	PublicationDate Date            `json:"publicationDate"`
	IssueNumber     int             `json:"issueNumber"`
	Authors         []AuthorSummary `json:"authors"`
}

// MagazineSummary is the list shape, tagged for mixed listings.
type MagazineSummary struct {
	ID              int64                 `json:"id"`
	Title           string                `json:"title"`
	PublicationDate Date                  `json:"publicationDate"`
	Type            model.PublicationType `json:"type"`
	IssueNumber     int                   `json:"issueNumber"`
	Authors         []AuthorSummary       `json:"authors"`
}
