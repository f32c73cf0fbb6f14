package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/catalog/repository"
	"publisher-catalog/internal/shared/pagination"
	"publisher-catalog/pkg/database"
	"publisher-catalog/pkg/logger"
)

var authorSortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"birthDate":   "birth_date",
	"nationality": "nationality",
}

type authorRepository struct {
	pool *pgxpool.Pool
}

func NewAuthorRepository(pool *pgxpool.Pool) repository.AuthorRepository {
	return &authorRepository{pool: pool}
}

func (r *authorRepository) Create(ctx context.Context, author *model.Author) (*model.Author, error) {
	const query = `
		INSERT INTO authors (name, birth_date, nationality)
		VALUES ($1, $2, $3)
		RETURNING id, name, birth_date, nationality
	`

	created := &model.Author{}
	err := r.pool.QueryRow(ctx, query,
		author.Name,
		author.BirthDate,
		author.Nationality,
	).Scan(
		&created.ID,
		&created.Name,
		&created.BirthDate,
		&created.Nationality,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == constraintAuthorName {
			return nil, model.ErrDuplicateAuthorName
		}
		logger.Error("authorRepository.Create: database error", err)
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	created.Books = []model.Book{}
	created.Magazines = []model.Magazine{}

	return created, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	const query = `
		SELECT id, name, birth_date, nationality
		FROM authors
		WHERE id = $1
	`

	author := &model.Author{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&author.ID,
		&author.Name,
		&author.BirthDate,
		&author.Nationality,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		logger.Error("authorRepository.GetByID: database error", err)
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	if err := r.attachPublications(ctx, []*model.Author{author}); err != nil {
		return nil, err
	}

	return author, nil
}

func (r *authorRepository) GetManyByIDs(ctx context.Context, ids []int64) ([]model.Author, error) {
	const query = `
		SELECT id, name, birth_date, nationality
		FROM authors
		WHERE id = ANY($1::bigint[])
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		logger.Error("authorRepository.GetManyByIDs: query failed", err)
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0, len(ids))
	for rows.Next() {
		author := model.Author{}
		if err := rows.Scan(&author.ID, &author.Name, &author.BirthDate, &author.Nationality); err != nil {
			logger.Error("authorRepository.GetManyByIDs: scan error", err)
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}

	if err = rows.Err(); err != nil {
		logger.Error("authorRepository.GetManyByIDs: rows error", err)
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}

	return authors, nil
}

func (r *authorRepository) List(ctx context.Context, req pagination.Request) ([]model.Author, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		logger.Error("authorRepository.List: count query failed", err)
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, name, birth_date, nationality
		FROM authors
		%s
		LIMIT $1 OFFSET $2
	`, orderClause(authorSortColumns, req.SortBy, "name", req.Desc))

	rows, err := r.pool.Query(ctx, listQuery, req.Size, req.Offset())
	if err != nil {
		logger.Error("authorRepository.List: query failed", err)
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0, req.Size)
	for rows.Next() {
		author := model.Author{}
		if err := rows.Scan(&author.ID, &author.Name, &author.BirthDate, &author.Nationality); err != nil {
			logger.Error("authorRepository.List: scan error", err)
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}

	if err = rows.Err(); err != nil {
		logger.Error("authorRepository.List: rows error", err)
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}

	refs := make([]*model.Author, len(authors))
	for i := range authors {
		refs[i] = &authors[i]
	}
	if err := r.attachPublications(ctx, refs); err != nil {
		return nil, 0, err
	}

	return authors, total, nil
}

func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Contributions first, then owned books, then the author row.
		// Co-authored magazines keep their remaining contributors.
		if _, err := tx.Exec(ctx, `DELETE FROM magazine_authors WHERE author_id = $1`, id); err != nil {
			logger.Error("authorRepository.Delete: detach magazines failed", err)
			return fmt.Errorf("failed to delete author: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM publications WHERE author_id = $1 AND publication_type = 'BOOK'`, id); err != nil {
			logger.Error("authorRepository.Delete: delete books failed", err)
			return fmt.Errorf("failed to delete author: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			logger.Error("authorRepository.Delete: database error", err)
			return fmt.Errorf("failed to delete author: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrAuthorNotFound
		}

		return nil
	})
}

func (r *authorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

func (r *authorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM authors WHERE LOWER(name) = LOWER($1))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author name: %w", err)
	}

	return exists, nil
}

// attachPublications populates Books and Magazines for every author in
// one batch of queries rather than per author.
func (r *authorRepository) attachPublications(ctx context.Context, authors []*model.Author) error {
	if len(authors) == 0 {
		return nil
	}

	byID := make(map[int64]*model.Author, len(authors))
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		a.Books = []model.Book{}
		a.Magazines = []model.Magazine{}
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	if err := r.attachBooks(ctx, byID, ids); err != nil {
		return err
	}
	return r.attachMagazines(ctx, byID, ids)
}

func (r *authorRepository) attachBooks(ctx context.Context, byID map[int64]*model.Author, ids []int64) error {
	const query = `
		SELECT id, title, publication_date, isbn, author_id
		FROM publications
		WHERE publication_type = 'BOOK' AND author_id = ANY($1::bigint[])
		ORDER BY title ASC
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		logger.Error("authorRepository.attachBooks: query failed", err)
		return fmt.Errorf("failed to load books: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		book := model.Book{}
		var authorID int64
		if err := rows.Scan(&book.ID, &book.Title, &book.PublicationDate, &book.ISBN, &authorID); err != nil {
			logger.Error("authorRepository.attachBooks: scan error", err)
			return fmt.Errorf("failed to scan book: %w", err)
		}

		owner := byID[authorID]
		book.Author = &model.Author{
			ID:          owner.ID,
			Name:        owner.Name,
			BirthDate:   owner.BirthDate,
			Nationality: owner.Nationality,
		}
		owner.Books = append(owner.Books, book)
	}

	if err = rows.Err(); err != nil {
		logger.Error("authorRepository.attachBooks: rows error", err)
		return fmt.Errorf("failed to load books: %w", err)
	}

	return nil
}

func (r *authorRepository) attachMagazines(ctx context.Context, byID map[int64]*model.Author, ids []int64) error {
	const query = `
		SELECT ma.author_id, p.id, p.title, p.publication_date, p.issue_number
		FROM publications p
		INNER JOIN magazine_authors ma ON ma.magazine_id = p.id
		WHERE p.publication_type = 'MAGAZINE' AND ma.author_id = ANY($1::bigint[])
		ORDER BY p.title ASC
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		logger.Error("authorRepository.attachMagazines: query failed", err)
		return fmt.Errorf("failed to load magazines: %w", err)
	}
	defer rows.Close()

	type placement struct {
		owner *model.Author
		index int
	}

	magazineIDs := make([]int64, 0)
	placements := make(map[int64][]placement)

	for rows.Next() {
		var contributorID int64
		magazine := model.Magazine{Authors: []model.Author{}}
		if err := rows.Scan(&contributorID, &magazine.ID, &magazine.Title, &magazine.PublicationDate, &magazine.IssueNumber); err != nil {
			logger.Error("authorRepository.attachMagazines: scan error", err)
			return fmt.Errorf("failed to scan magazine: %w", err)
		}

		owner := byID[contributorID]
		if _, seen := placements[magazine.ID]; !seen {
			magazineIDs = append(magazineIDs, magazine.ID)
		}
		owner.Magazines = append(owner.Magazines, magazine)
		placements[magazine.ID] = append(placements[magazine.ID], placement{owner: owner, index: len(owner.Magazines) - 1})
	}

	if err = rows.Err(); err != nil {
		logger.Error("authorRepository.attachMagazines: rows error", err)
		return fmt.Errorf("failed to load magazines: %w", err)
	}

	if len(magazineIDs) == 0 {
		return nil
	}

	contributors, err := loadMagazineContributors(ctx, r.pool, magazineIDs)
	if err != nil {
		return err
	}

	for magazineID, spots := range placements {
		for _, spot := range spots {
			spot.owner.Magazines[spot.index].Authors = contributors[magazineID]
		}
	}

	return nil
}
