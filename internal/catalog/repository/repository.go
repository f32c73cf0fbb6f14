package repository

import (
	"context"

	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/shared/pagination"
)

// AuthorRepository persists authors and resolves their publication links.
// GetByID and List load books and magazine contributions eagerly.
type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) (*model.Author, error)

	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// GetManyByIDs returns the authors whose IDs are in ids. Missing IDs
	// are simply absent from the result; callers compare counts.
	GetManyByIDs(ctx context.Context, ids []int64) ([]model.Author, error)

	List(ctx context.Context, req pagination.Request) ([]model.Author, int64, error)

	// Delete removes the author, their owned books and their magazine
	// contributions in one transaction. Co-authored magazines survive.
	Delete(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// BookRepository persists the BOOK rows of the publications table.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	GetByID(ctx context.Context, id int64) (*model.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	List(ctx context.Context, req pagination.Request) ([]model.Book, int64, error)
	ListByAuthor(ctx context.Context, authorID int64, req pagination.Request) ([]model.Book, int64, error)

	Update(ctx context.Context, book *model.Book) (*model.Book, error)

	Delete(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByISBN checks ISBN uniqueness. excludeID skips one book so an
	// update does not collide with itself.
	ExistsByISBN(ctx context.Context, isbn string, excludeID *int64) (bool, error)
}

// MagazineRepository persists the MAGAZINE rows and their author links.
type MagazineRepository interface {
	// Create inserts the magazine and its author links atomically.
	Create(ctx context.Context, magazine *model.Magazine, authorIDs []int64) (*model.Magazine, error)

	GetByID(ctx context.Context, id int64) (*model.Magazine, error)

	List(ctx context.Context, req pagination.Request) ([]model.Magazine, int64, error)

	// Update rewrites the row and replaces the author link set wholesale.
	Update(ctx context.Context, magazine *model.Magazine, authorIDs []int64) (*model.Magazine, error)

	Delete(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// PublicationRepository reads across both variants of the publications
// table and deletes rows regardless of type.
type PublicationRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Publication, error)

	List(ctx context.Context, req pagination.Request) ([]model.Publication, int64, error)

	// SearchByTitle matches title fragments case-insensitively.
	SearchByTitle(ctx context.Context, title string, req pagination.Request) ([]model.Publication, int64, error)

	// ListByType returns every publication of one variant, ordered by title.
	ListByType(ctx context.Context, t model.PublicationType) ([]model.Publication, error)

	Delete(ctx context.Context, id int64) error

	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
