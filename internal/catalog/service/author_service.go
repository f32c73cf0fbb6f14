package service

import (
	"context"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/catalog/repository"
	"publisher-catalog/internal/shared/pagination"
)

// AuthorService owns the author business rules. Name uniqueness is
// pre-checked for a friendly error; the store's unique constraint is the
// real backstop under concurrency.
type AuthorService interface {
	Create(ctx context.Context, req dto.CreateAuthorRequest) (*dto.AuthorResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AuthorResponse, error)
	List(ctx context.Context, req pagination.Request) (pagination.Page[dto.AuthorResponse], error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type authorService struct {
	authors repository.AuthorRepository
}

func NewAuthorService(authors repository.AuthorRepository) AuthorService {
	return &authorService{authors: authors}
}

func (s *authorService) Create(ctx context.Context, req dto.CreateAuthorRequest) (*dto.AuthorResponse, error) {
	exists, err := s.authors.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrDuplicateAuthorName
	}

	author := &model.Author{
		Name:        req.Name,
		Nationality: req.Nationality,
	}
	if req.BirthDate != nil {
		t := req.BirthDate.Time
		author.BirthDate = &t
	}

	created, err := s.authors.Create(ctx, author)
	if err != nil {
		return nil, err
	}

	resp := dto.ToAuthorResponse(created)
	return &resp, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*dto.AuthorResponse, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToAuthorResponse(author)
	return &resp, nil
}

func (s *authorService) List(ctx context.Context, req pagination.Request) (pagination.Page[dto.AuthorResponse], error) {
	authors, total, err := s.authors.List(ctx, req)
	if err != nil {
		return pagination.Page[dto.AuthorResponse]{}, err
	}

	content := make([]dto.AuthorResponse, 0, len(authors))
	for i := range authors {
		content = append(content, dto.ToAuthorResponse(&authors[i]))
	}

	return pagination.NewPage(content, req, total), nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.authors.Delete(ctx, id)
}

func (s *authorService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.authors.ExistsByID(ctx, id)
}
