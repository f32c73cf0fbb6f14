package dto

import (
	"fmt"
	"time"

	"publisher-catalog/internal/catalog/model"
)

// Entity to DTO conversions. Collections always map to empty slices, never
// nil, so list fields serialize as [].

func ToAuthorSummary(a model.Author) AuthorSummary {
	return AuthorSummary{
		ID:          a.ID,
		Name:        a.Name,
		Nationality: a.Nationality,
		BirthDate:   toDatePtr(a.BirthDate),
	}
}

func ToAuthorResponse(a *model.Author) AuthorResponse {
	books := make([]BookSummary, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, ToBookSummary(b))
	}

	magazines := make([]MagazineSummary, 0, len(a.Magazines))
	for _, m := range a.Magazines {
		magazines = append(magazines, ToMagazineSummary(m))
	}

	return AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		BirthDate:   toDatePtr(a.BirthDate),
		Nationality: a.Nationality,
		Books:       books,
		Magazines:   magazines,
	}
}

func ToBookSummary(b model.Book) BookSummary {
	var authorName *string
	if b.Author != nil {
		authorName = &b.Author.Name
	}

	return BookSummary{
		ID:              b.ID,
		Title:           b.Title,
		PublicationDate: NewDate(b.PublicationDate),
		Type:            model.TypeBook,
		ISBN:            b.ISBN,
		AuthorName:      authorName,
	}
}

func ToBookResponse(b *model.Book) BookResponse {
	var author *AuthorSummary
	if b.Author != nil {
		s := ToAuthorSummary(*b.Author)
		author = &s
	}

	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		PublicationDate: NewDate(b.PublicationDate),
		ISBN:            b.ISBN,
		Author:          author,
	}
}

func ToMagazineSummary(m model.Magazine) MagazineSummary {
	authors := make([]AuthorSummary, 0, len(m.Authors))
	for _, a := range m.Authors {
		authors = append(authors, ToAuthorSummary(a))
	}

	return MagazineSummary{
		ID:              m.ID,
		Title:           m.Title,
		PublicationDate: NewDate(m.PublicationDate),
		Type:            model.TypeMagazine,
		IssueNumber:     m.IssueNumber,
		Authors:         authors,
	}
}

func ToMagazineResponse(m *model.Magazine) MagazineResponse {
	authors := make([]AuthorSummary, 0, len(m.Authors))
	for _, a := range m.Authors {
		authors = append(authors, ToAuthorSummary(a))
	}

	return MagazineResponse{
		ID:              m.ID,
		Title:           m.Title,
		PublicationDate: NewDate(m.PublicationDate),
		IssueNumber:     m.IssueNumber,
		Authors:         authors,
	}
}

// ToPublicationResponse dispatches on the variant tag. An unrecognized tag
// is a data integrity failure and maps to an error, never to a half-empty
// response.
func ToPublicationResponse(p *model.Publication) (PublicationResponse, error) {
	switch p.Type {
	case model.TypeBook:
		if p.Book == nil {
			return PublicationResponse{}, fmt.Errorf("publication %d: %w", p.ID, model.ErrUnknownPublicationType)
		}
		b := ToBookResponse(p.Book)
		return PublicationResponse{
			ID:              b.ID,
			Title:           b.Title,
			PublicationDate: b.PublicationDate,
			Type:            model.TypeBook,
			ISBN:            b.ISBN,
			Author:          b.Author,
		}, nil

	case model.TypeMagazine:
		if p.Magazine == nil {
			return PublicationResponse{}, fmt.Errorf("publication %d: %w", p.ID, model.ErrUnknownPublicationType)
		}
		m := ToMagazineResponse(p.Magazine)
		issue := m.IssueNumber
		return PublicationResponse{
			ID:              m.ID,
			Title:           m.Title,
			PublicationDate: m.PublicationDate,
			Type:            model.TypeMagazine,
			IssueNumber:     &issue,
			Authors:         m.Authors,
		}, nil

	default:
		return PublicationResponse{}, fmt.Errorf("publication %d: %w", p.ID, model.ErrUnknownPublicationType)
	}
}

func ToPublicationSummary(p model.Publication) (PublicationSummary, error) {
	switch p.Type {
	case model.TypeBook:
		if p.Book == nil {
			return PublicationSummary{}, fmt.Errorf("publication %d: %w", p.ID, model.ErrUnknownPublicationType)
		}
		b := ToBookSummary(*p.Book)
		return PublicationSummary{
			ID:              b.ID,
			Title:           b.Title,
			PublicationDate: b.PublicationDate,
			Type:            model.TypeBook,
			ISBN:            b.ISBN,
			AuthorName:      b.AuthorName,
		}, nil

	case model.TypeMagazine:
		if p.Magazine == nil {
			return PublicationSummary{}, fmt.Errorf("publication %d: %w", p.ID, model.ErrUnknownPublicationType)
		}
		m := ToMagazineSummary(*p.Magazine)
		issue := m.IssueNumber
		return PublicationSummary{
			ID:              m.ID,
			Title:           m.Title,
			PublicationDate: m.PublicationDate,
			Type:            model.TypeMagazine,
			IssueNumber:     &issue,
			Authors:         m.Authors,
		}, nil

	default:
		return PublicationSummary{}, fmt.Errorf("publication %d: %w", p.ID, model.ErrUnknownPublicationType)
	}
}

func toDatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}
