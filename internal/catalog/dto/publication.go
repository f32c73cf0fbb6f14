package dto

import (
	"publisher-catalog/internal/catalog/model"
)

// PublicationResponse is the cross-type detail view. Common fields are
// always present; variant fields are populated according to the type tag.
type PublicationResponse struct {
	ID              int64                 `json:"id"`
	Title           string                `json:"title"`
	PublicationDate Date                  `json:"publicationDate"`
	Type            model.PublicationType `json:"type"`

	// BOOK variant
	ISBN   *string        `json:"isbn,omitempty"`
	Author *AuthorSummary `json:"author,omitempty"`

	// MAGAZINE variant
	IssueNumber *int            `json:"issueNumber,omitempty"`
	Authors     []AuthorSummary `json:"authors,omitempty"`
}

// PublicationSummary is the unified list shape for mixed listings and
// title search.
type PublicationSummary struct {
	ID              int64                 `json:"id"`
	Title           string                `json:"title"`
	PublicationDate Date                  `json:"publicationDate"`
	Type            model.PublicationType `json:"type"`

	ISBN       *string `json:"isbn,omitempty"`
	AuthorName *string `json:"authorName,omitempty"`

	IssueNumber *int            `json:"issueNumber,omitempty"`
	Authors     []AuthorSummary `json:"authors,omitempty"`
}

// GroupedPublications is the payload of GET /api/v1/publications/grouped.
// Both lists are built from their own queries and are never nil.
type GroupedPublications struct {
	Books     []BookSummary     `json:"books"`
	Magazines []MagazineSummary `json:"magazines"`
}
