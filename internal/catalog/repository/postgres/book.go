package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/catalog/repository"
	"publisher-catalog/internal/shared/pagination"
	"publisher-catalog/pkg/logger"
)

var bookSortColumns = map[string]string{
	"id":              "p.id",
	"title":           "p.title",
	"publicationDate": "p.publication_date",
	"isbn":            "p.isbn",
}

const bookSelect = `
	SELECT p.id, p.title, p.publication_date, p.isbn,
	       a.id, a.name, a.birth_date, a.nationality
	FROM publications p
	LEFT JOIN authors a ON a.id = p.author_id
	WHERE p.publication_type = 'BOOK'
`

type bookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) repository.BookRepository {
	return &bookRepository{pool: pool}
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	const query = `
		INSERT INTO publications (publication_type, title, publication_date, isbn, author_id)
		VALUES ('BOOK', $1, $2, $3, $4)
		RETURNING id
	`

	var authorID *int64
	if book.Author != nil {
		authorID = &book.Author.ID
	}

	var id int64
	err := r.pool.QueryRow(ctx, query,
		book.Title,
		book.PublicationDate,
		book.ISBN,
		authorID,
	).Scan(&id)

	if err != nil {
		if sentinel := publicationConstraintError(err); sentinel != nil {
			return nil, sentinel
		}
		logger.Error("bookRepository.Create: database error", err)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := bookSelect + ` AND p.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	query := bookSelect + ` AND p.isbn = $1`
	return r.getOne(ctx, query, isbn)
}

func (r *bookRepository) getOne(ctx context.Context, query string, arg interface{}) (*model.Book, error) {
	book := &model.Book{}
	var authorID *int64
	var authorName, authorNationality *string
	var authorBirthDate *time.Time

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&book.ID,
		&book.Title,
		&book.PublicationDate,
		&book.ISBN,
		&authorID,
		&authorName,
		&authorBirthDate,
		&authorNationality,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		logger.Error("bookRepository.getOne: database error", err)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if authorID != nil {
		book.Author = &model.Author{
			ID:          *authorID,
			Name:        *authorName,
			BirthDate:   authorBirthDate,
			Nationality: authorNationality,
		}
	}

	return book, nil
}

func (r *bookRepository) List(ctx context.Context, req pagination.Request) ([]model.Book, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM publications WHERE publication_type = 'BOOK'`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		logger.Error("bookRepository.List: count query failed", err)
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	listQuery := fmt.Sprintf("%s %s LIMIT $1 OFFSET $2",
		bookSelect, orderClause(bookSortColumns, req.SortBy, "p.title", req.Desc))

	return r.list(ctx, listQuery, total, req.Size, req.Offset())
}

func (r *bookRepository) ListByAuthor(ctx context.Context, authorID int64, req pagination.Request) ([]model.Book, int64, error) {
	const countQuery = `
		SELECT COUNT(*) FROM publications
		WHERE publication_type = 'BOOK' AND author_id = $1
	`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, authorID).Scan(&total); err != nil {
		logger.Error("bookRepository.ListByAuthor: count query failed", err)
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	listQuery := fmt.Sprintf("%s AND p.author_id = $1 %s LIMIT $2 OFFSET $3",
		bookSelect, orderClause(bookSortColumns, req.SortBy, "p.title", req.Desc))

	return r.list(ctx, listQuery, total, authorID, req.Size, req.Offset())
}

func (r *bookRepository) list(ctx context.Context, query string, total int64, args ...interface{}) ([]model.Book, int64, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("bookRepository.list: query failed", err)
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		book := model.Book{}
		var authorID *int64
		var authorName, authorNationality *string
		var authorBirthDate *time.Time

		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.PublicationDate,
			&book.ISBN,
			&authorID,
			&authorName,
			&authorBirthDate,
			&authorNationality,
		)
		if err != nil {
			logger.Error("bookRepository.list: scan error", err)
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}

		if authorID != nil {
			book.Author = &model.Author{
				ID:          *authorID,
				Name:        *authorName,
				BirthDate:   authorBirthDate,
				Nationality: authorNationality,
			}
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		logger.Error("bookRepository.list: rows error", err)
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	return books, total, nil
}

func (r *bookRepository) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	const query = `
		UPDATE publications
		SET title = $1, publication_date = $2, isbn = $3, author_id = $4
		WHERE id = $5 AND publication_type = 'BOOK'
	`

	var authorID *int64
	if book.Author != nil {
		authorID = &book.Author.ID
	}

	result, err := r.pool.Exec(ctx, query,
		book.Title,
		book.PublicationDate,
		book.ISBN,
		authorID,
		book.ID,
	)

	if err != nil {
		if sentinel := publicationConstraintError(err); sentinel != nil {
			return nil, sentinel
		}
		logger.Error("bookRepository.Update: database error", err)
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return nil, model.ErrBookNotFound
	}

	return r.GetByID(ctx, book.ID)
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM publications WHERE id = $1 AND publication_type = 'BOOK'`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("bookRepository.Delete: database error", err)
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *bookRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `
		SELECT EXISTS(SELECT 1 FROM publications WHERE id = $1 AND publication_type = 'BOOK')
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}

	return exists, nil
}

func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string, excludeID *int64) (bool, error) {
	var query string
	var args []interface{}

	if excludeID == nil {
		query = `SELECT EXISTS(SELECT 1 FROM publications WHERE isbn = $1)`
		args = []interface{}{isbn}
	} else {
		query = `SELECT EXISTS(SELECT 1 FROM publications WHERE isbn = $1 AND id != $2)`
		args = []interface{}{isbn, *excludeID}
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check isbn existence: %w", err)
	}

	return exists, nil
}
