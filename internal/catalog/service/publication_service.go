package service

import (
	"context"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/catalog/repository"
	"publisher-catalog/internal/shared/pagination"
)

// PublicationService reads across both variants of the catalog. A row
// whose variant cannot be decoded fails the whole operation; partial
// pages are never returned.
type PublicationService interface {
	GetByID(ctx context.Context, id int64) (*dto.PublicationResponse, error)
	List(ctx context.Context, req pagination.Request) (pagination.Page[dto.PublicationSummary], error)
	SearchByTitle(ctx context.Context, title string, req pagination.Request) (pagination.Page[dto.PublicationSummary], error)
	GroupedByType(ctx context.Context) (*dto.GroupedPublications, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}

type publicationService struct {
	publications repository.PublicationRepository
}

func NewPublicationService(publications repository.PublicationRepository) PublicationService {
	return &publicationService{publications: publications}
}

func (s *publicationService) GetByID(ctx context.Context, id int64) (*dto.PublicationResponse, error) {
	publication, err := s.publications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := dto.ToPublicationResponse(publication)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *publicationService) List(ctx context.Context, req pagination.Request) (pagination.Page[dto.PublicationSummary], error) {
	publications, total, err := s.publications.List(ctx, req)
	if err != nil {
		return pagination.Page[dto.PublicationSummary]{}, err
	}

	content, err := toPublicationSummaries(publications)
	if err != nil {
		return pagination.Page[dto.PublicationSummary]{}, err
	}

	return pagination.NewPage(content, req, total), nil
}

func (s *publicationService) SearchByTitle(ctx context.Context, title string, req pagination.Request) (pagination.Page[dto.PublicationSummary], error) {
	publications, total, err := s.publications.SearchByTitle(ctx, title, req)
	if err != nil {
		return pagination.Page[dto.PublicationSummary]{}, err
	}

	content, err := toPublicationSummaries(publications)
	if err != nil {
		return pagination.Page[dto.PublicationSummary]{}, err
	}

	return pagination.NewPage(content, req, total), nil
}

// GroupedByType runs one query per variant. Both groups come back as
// empty slices on an empty store, never null.
func (s *publicationService) GroupedByType(ctx context.Context) (*dto.GroupedPublications, error) {
	grouped := &dto.GroupedPublications{
		Books:     []dto.BookSummary{},
		Magazines: []dto.MagazineSummary{},
	}

	books, err := s.publications.ListByType(ctx, model.TypeBook)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].Book == nil {
			return nil, model.ErrUnknownPublicationType
		}
		grouped.Books = append(grouped.Books, dto.ToBookSummary(*books[i].Book))
	}

	magazines, err := s.publications.ListByType(ctx, model.TypeMagazine)
	if err != nil {
		return nil, err
	}
	for i := range magazines {
		if magazines[i].Magazine == nil {
			return nil, model.ErrUnknownPublicationType
		}
		grouped.Magazines = append(grouped.Magazines, dto.ToMagazineSummary(*magazines[i].Magazine))
	}

	return grouped, nil
}

func (s *publicationService) Delete(ctx context.Context, id int64) error {
	return s.publications.Delete(ctx, id)
}

func (s *publicationService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.publications.ExistsByID(ctx, id)
}

func (s *publicationService) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return s.publications.ExistsByTitle(ctx, title)
}

func toPublicationSummaries(publications []model.Publication) ([]dto.PublicationSummary, error) {
	summaries := make([]dto.PublicationSummary, 0, len(publications))
	for i := range publications {
		summary, err := dto.ToPublicationSummary(publications[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
