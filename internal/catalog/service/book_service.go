package service

import (
	"context"

	"publisher-catalog/internal/catalog/dto"
	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/catalog/repository"
	"publisher-catalog/internal/shared/pagination"
)

// BookService owns the book business rules: the author must exist on
// create and on reassignment, and a changed ISBN must not collide with
// another book.
type BookService interface {
	Create(ctx context.Context, req dto.CreateBookRequest) (*dto.BookResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateBookRequest) (*dto.BookResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.BookResponse, error)
	GetByISBN(ctx context.Context, isbn string) (*dto.BookResponse, error)
	List(ctx context.Context, req pagination.Request) (pagination.Page[dto.BookSummary], error)
	ListByAuthor(ctx context.Context, authorID int64, req pagination.Request) (pagination.Page[dto.BookSummary], error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type bookService struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
}

func NewBookService(books repository.BookRepository, authors repository.AuthorRepository) BookService {
	return &bookService{books: books, authors: authors}
}

func (s *bookService) Create(ctx context.Context, req dto.CreateBookRequest) (*dto.BookResponse, error) {
	exists, err := s.authors.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrAuthorNotFound
	}

	isbn := req.ISBN
	book := &model.Book{
		Title:           req.Title,
		PublicationDate: req.PublicationDate.Time,
		ISBN:            &isbn,
		Author:          &model.Author{ID: req.AuthorID},
	}

	created, err := s.books.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	resp := dto.ToBookResponse(created)
	return &resp, nil
}

// Update applies partial changes: nil request fields leave the stored
// value untouched.
func (s *bookService) Update(ctx context.Context, id int64, req dto.UpdateBookRequest) (*dto.BookResponse, error) {
	existing, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ISBN != nil {
		changed := existing.ISBN == nil || *existing.ISBN != *req.ISBN
		if changed {
			taken, err := s.books.ExistsByISBN(ctx, *req.ISBN, &id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, model.ErrDuplicateISBN
			}
		}
		existing.ISBN = req.ISBN
	}

	if req.AuthorID != nil {
		exists, err := s.authors.ExistsByID(ctx, *req.AuthorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrAuthorNotFound
		}
		existing.Author = &model.Author{ID: *req.AuthorID}
	}

	updated, err := s.books.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	resp := dto.ToBookResponse(updated)
	return &resp, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*dto.BookResponse, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ToBookResponse(book)
	return &resp, nil
}

func (s *bookService) GetByISBN(ctx context.Context, isbn string) (*dto.BookResponse, error) {
	book, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	resp := dto.ToBookResponse(book)
	return &resp, nil
}

func (s *bookService) List(ctx context.Context, req pagination.Request) (pagination.Page[dto.BookSummary], error) {
	books, total, err := s.books.List(ctx, req)
	if err != nil {
		return pagination.Page[dto.BookSummary]{}, err
	}

	return pagination.NewPage(toBookSummaries(books), req, total), nil
}

// ListByAuthor does not verify the author exists; an unknown author
// simply yields an empty page.
func (s *bookService) ListByAuthor(ctx context.Context, authorID int64, req pagination.Request) (pagination.Page[dto.BookSummary], error) {
	books, total, err := s.books.ListByAuthor(ctx, authorID, req)
	if err != nil {
		return pagination.Page[dto.BookSummary]{}, err
	}

	return pagination.NewPage(toBookSummaries(books), req, total), nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.books.Delete(ctx, id)
}

func (s *bookService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.books.ExistsByID(ctx, id)
}

func toBookSummaries(books []model.Book) []dto.BookSummary {
	summaries := make([]dto.BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, dto.ToBookSummary(b))
	}
	return summaries
}
