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

var publicationSortColumns = map[string]string{
	"id":              "p.id",
	"title":           "p.title",
	"publicationDate": "p.publication_date",
	"type":            "p.publication_type",
}

const publicationSelect = `
	SELECT p.id, p.publication_type, p.title, p.publication_date,
	       p.isbn, p.issue_number,
	       a.id, a.name, a.birth_date, a.nationality
	FROM publications p
	LEFT JOIN authors a ON a.id = p.author_id
`

type publicationRepository struct {
	pool *pgxpool.Pool
}

func NewPublicationRepository(pool *pgxpool.Pool) repository.PublicationRepository {
	return &publicationRepository{pool: pool}
}

func (r *publicationRepository) GetByID(ctx context.Context, id int64) (*model.Publication, error) {
	query := publicationSelect + ` WHERE p.id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	publication, err := scanPublication(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPublicationNotFound
		}
		logger.Error("publicationRepository.GetByID: database error", err)
		return nil, fmt.Errorf("failed to get publication: %w", err)
	}

	if publication.Type == model.TypeMagazine {
		contributors, err := loadMagazineContributors(ctx, r.pool, []int64{publication.ID})
		if err != nil {
			return nil, err
		}
		publication.Magazine.Authors = contributors[publication.ID]
	}

	return publication, nil
}

func (r *publicationRepository) List(ctx context.Context, req pagination.Request) ([]model.Publication, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM publications`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		logger.Error("publicationRepository.List: count query failed", err)
		return nil, 0, fmt.Errorf("failed to count publications: %w", err)
	}

	listQuery := fmt.Sprintf("%s %s LIMIT $1 OFFSET $2",
		publicationSelect, orderClause(publicationSortColumns, req.SortBy, "p.title", req.Desc))

	publications, err := r.list(ctx, listQuery, req.Size, req.Offset())
	if err != nil {
		return nil, 0, err
	}

	return publications, total, nil
}

func (r *publicationRepository) SearchByTitle(ctx context.Context, title string, req pagination.Request) ([]model.Publication, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM publications WHERE title ILIKE '%' || $1 || '%'`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, title).Scan(&total); err != nil {
		logger.Error("publicationRepository.SearchByTitle: count query failed", err)
		return nil, 0, fmt.Errorf("failed to count publications: %w", err)
	}

	listQuery := fmt.Sprintf("%s WHERE p.title ILIKE '%%' || $1 || '%%' %s LIMIT $2 OFFSET $3",
		publicationSelect, orderClause(publicationSortColumns, req.SortBy, "p.title", req.Desc))

	publications, err := r.list(ctx, listQuery, title, req.Size, req.Offset())
	if err != nil {
		return nil, 0, err
	}

	return publications, total, nil
}

func (r *publicationRepository) ListByType(ctx context.Context, t model.PublicationType) ([]model.Publication, error) {
	query := publicationSelect + ` WHERE p.publication_type = $1 ORDER BY p.title ASC`
	return r.list(ctx, query, string(t))
}

func (r *publicationRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Publication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("publicationRepository.list: query failed", err)
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	defer rows.Close()

	publications := make([]model.Publication, 0)
	magazineIDs := make([]int64, 0)

	for rows.Next() {
		publication, err := scanPublication(rows.Scan)
		if err != nil {
			logger.Error("publicationRepository.list: scan error", err)
			return nil, fmt.Errorf("failed to scan publication: %w", err)
		}

		if publication.Type == model.TypeMagazine {
			magazineIDs = append(magazineIDs, publication.ID)
		}
		publications = append(publications, *publication)
	}

	if err = rows.Err(); err != nil {
		logger.Error("publicationRepository.list: rows error", err)
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}

	if len(magazineIDs) > 0 {
		contributors, err := loadMagazineContributors(ctx, r.pool, magazineIDs)
		if err != nil {
			return nil, err
		}
		for i := range publications {
			if publications[i].Type == model.TypeMagazine {
				publications[i].Magazine.Authors = contributors[publications[i].ID]
			}
		}
	}

	return publications, nil
}

func (r *publicationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM publications WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("publicationRepository.Delete: database error", err)
		return fmt.Errorf("failed to delete publication: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPublicationNotFound
	}

	return nil
}

func (r *publicationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM publications WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check publication existence: %w", err)
	}

	return exists, nil
}

func (r *publicationRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM publications WHERE LOWER(title) = LOWER($1))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, title).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check publication title: %w", err)
	}

	return exists, nil
}

// scanPublication decodes one joined row into the tagged model. Rows with
// an unrecognized discriminator come back as TypeUnknown with no variant
// set; the mapper turns those into errors.
func scanPublication(scan func(...any) error) (*model.Publication, error) {
	var (
		id              int64
		rawType         string
		title           string
		publicationDate time.Time
		isbn            *string
		issueNumber     *int
		authorID        *int64
		authorName      *string
		authorBirthDate *time.Time
		authorNat       *string
	)

	err := scan(&id, &rawType, &title, &publicationDate,
		&isbn, &issueNumber,
		&authorID, &authorName, &authorBirthDate, &authorNat)
	if err != nil {
		return nil, err
	}

	publication := &model.Publication{
		ID:              id,
		Type:            model.PublicationTypeFromString(rawType),
		Title:           title,
		PublicationDate: publicationDate,
	}

	switch publication.Type {
	case model.TypeBook:
		book := &model.Book{
			ID:              id,
			Title:           title,
			PublicationDate: publicationDate,
			ISBN:            isbn,
		}
		if authorID != nil {
			book.Author = &model.Author{
				ID:          *authorID,
				Name:        *authorName,
				BirthDate:   authorBirthDate,
				Nationality: authorNat,
			}
		}
		publication.Book = book

	case model.TypeMagazine:
		issue := 0
		if issueNumber != nil {
			issue = *issueNumber
		}
		publication.Magazine = &model.Magazine{
			ID:              id,
			Title:           title,
			PublicationDate: publicationDate,
			IssueNumber:     issue,
			Authors:         []model.Author{},
		}
	}

	return publication, nil
}
