package service

import (
	"context"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/catalog/repository"
	"publisher-catalog/internal/shared/pagination"
)

// MagazineService owns the magazine business rules. Author references are
// resolved before any write; if the distinct resolved set is smaller than
// the request, the whole operation fails and nothing persists.
type MagazineService interface {
	Create(ctx context.Context, req dto.CreateMagazineRequest) (*dto.MagazineResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateMagazineRequest) (*dto.MagazineResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MagazineResponse, error)
	List(ctx context.Context, req pagination.Request) (pagination.Page[dto.MagazineResponse], error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type magazineService struct {
	magazines repository.MagazineRepository
	authors   repository.AuthorRepository
}

func NewMagazineService(magazines repository.MagazineRepository, authors repository.AuthorRepository) MagazineService {
	return &magazineService{magazines: magazines, authors: authors}
}

func (s *magazineService) Create(ctx context.Context, req dto.CreateMagazineRequest) (*dto.MagazineResponse, error) {
	authorIDs, err := s.resolveAuthorIDs(ctx, req.AuthorIDs)
	if err != nil {
		return nil, err
	}

	magazine := &model.Magazine{
		Title:           req.Title,
		PublicationDate: req.PublicationDate.Time,
		IssueNumber:     req.IssueNumber,
	}

	created, err := s.magazines.Create(ctx, magazine, authorIDs)
	if err != nil {
		return nil, err
	}

	resp := dto.ToMagazineResponse(created)
	return &resp, nil
}

// Update applies partial field changes; the author list is always
// replaced wholesale with the requested set.
func (s *magazineService) Update(ctx context.Context, id int64, req dto.UpdateMagazineRequest) (*dto.MagazineResponse, error) {
	existing, err := s.magazines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.IssueNumber != nil {
		existing.IssueNumber = *req.IssueNumber
	}
	if req.PublicationDate != nil {
		existing.PublicationDate = req.PublicationDate.Time
	}

	authorIDs, err := s.resolveAuthorIDs(ctx, req.AuthorIDs)
	if err != nil {
		return nil, err
	}

	updated, err := s.magazines.Update(ctx, existing, authorIDs)
	if err != nil {
		return nil, err
	}

	resp := dto.ToMagazineResponse(updated)
	return &resp, nil
}

func (s *magazineService) GetByID(ctx context.Context, id int64) (*dto.MagazineResponse, error) {
	magazine, err := s.magazines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToMagazineResponse(magazine)
	return &resp, nil
}

func (s *magazineService) List(ctx context.Context, req pagination.Request) (pagination.Page[dto.MagazineResponse], error) {
	magazines, total, err := s.magazines.List(ctx, req)
	if err != nil {
		return pagination.Page[dto.MagazineResponse]{}, err
	}

	content := make([]dto.MagazineResponse, 0, len(magazines))
	for i := range magazines {
		content = append(content, dto.ToMagazineResponse(&magazines[i]))
	}

	return pagination.NewPage(content, req, total), nil
}

func (s *magazineService) Delete(ctx context.Context, id int64) error {
	return s.magazines.Delete(ctx, id)
}

func (s *magazineService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.magazines.ExistsByID(ctx, id)
}

// resolveAuthorIDs deduplicates the requested IDs and verifies every one
// of them resolves. The check compares counts over the distinct set.
func (s *magazineService) resolveAuthorIDs(ctx context.Context, ids []int64) ([]int64, error) {
	distinct := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	found, err := s.authors.GetManyByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	if len(found) != len(distinct) {
		return nil, model.ErrAuthorsNotFound
	}

	return distinct, nil
}
