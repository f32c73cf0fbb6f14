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

var magazineSortColumns = map[string]string{
	"id":              "id",
	"title":           "title",
	"publicationDate": "publication_date",
	"issueNumber":     "issue_number",
}

type magazineRepository struct {
	pool *pgxpool.Pool
}

func NewMagazineRepository(pool *pgxpool.Pool) repository.MagazineRepository {
	return &magazineRepository{pool: pool}
}

func (r *magazineRepository) Create(ctx context.Context, magazine *model.Magazine, authorIDs []int64) (*model.Magazine, error) {
	var id int64

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		const insertQuery = `
			INSERT INTO publications (publication_type, title, publication_date, issue_number)
			VALUES ('MAGAZINE', $1, $2, $3)
			RETURNING id
		`

		err := tx.QueryRow(ctx, insertQuery,
			magazine.Title,
			magazine.PublicationDate,
			magazine.IssueNumber,
		).Scan(&id)
		if err != nil {
			if sentinel := publicationConstraintError(err); sentinel != nil {
				return sentinel
			}
			logger.Error("magazineRepository.Create: insert failed", err)
			return fmt.Errorf("failed to create magazine: %w", err)
		}

		return linkAuthors(ctx, tx, id, authorIDs)
	})

	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *magazineRepository) GetByID(ctx context.Context, id int64) (*model.Magazine, error) {
	const query = `
		SELECT id, title, publication_date, issue_number
		FROM publications
		WHERE id = $1 AND publication_type = 'MAGAZINE'
	`

	magazine := &model.Magazine{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&magazine.ID,
		&magazine.Title,
		&magazine.PublicationDate,
		&magazine.IssueNumber,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMagazineNotFound
		}
		logger.Error("magazineRepository.GetByID: database error", err)
		return nil, fmt.Errorf("failed to get magazine: %w", err)
	}

	contributors, err := loadMagazineContributors(ctx, r.pool, []int64{magazine.ID})
	if err != nil {
		return nil, err
	}
	magazine.Authors = contributors[magazine.ID]

	return magazine, nil
}

func (r *magazineRepository) List(ctx context.Context, req pagination.Request) ([]model.Magazine, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM publications WHERE publication_type = 'MAGAZINE'`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		logger.Error("magazineRepository.List: count query failed", err)
		return nil, 0, fmt.Errorf("failed to count magazines: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, title, publication_date, issue_number
		FROM publications
		WHERE publication_type = 'MAGAZINE'
		%s
		LIMIT $1 OFFSET $2
	`, orderClause(magazineSortColumns, req.SortBy, "title", req.Desc))

	rows, err := r.pool.Query(ctx, listQuery, req.Size, req.Offset())
	if err != nil {
		logger.Error("magazineRepository.List: query failed", err)
		return nil, 0, fmt.Errorf("failed to list magazines: %w", err)
	}
	defer rows.Close()

	magazines := make([]model.Magazine, 0, req.Size)
	ids := make([]int64, 0, req.Size)
	for rows.Next() {
		magazine := model.Magazine{}
		if err := rows.Scan(&magazine.ID, &magazine.Title, &magazine.PublicationDate, &magazine.IssueNumber); err != nil {
			logger.Error("magazineRepository.List: scan error", err)
			return nil, 0, fmt.Errorf("failed to scan magazine: %w", err)
		}
		magazines = append(magazines, magazine)
		ids = append(ids, magazine.ID)
	}

	if err = rows.Err(); err != nil {
		logger.Error("magazineRepository.List: rows error", err)
		return nil, 0, fmt.Errorf("failed to list magazines: %w", err)
	}

	if len(ids) > 0 {
		contributors, err := loadMagazineContributors(ctx, r.pool, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range magazines {
			magazines[i].Authors = contributors[magazines[i].ID]
		}
	}

	return magazines, total, nil
}

func (r *magazineRepository) Update(ctx context.Context, magazine *model.Magazine, authorIDs []int64) (*model.Magazine, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		const updateQuery = `
			UPDATE publications
			SET title = $1, publication_date = $2, issue_number = $3
			WHERE id = $4 AND publication_type = 'MAGAZINE'
		`

		result, err := tx.Exec(ctx, updateQuery,
			magazine.Title,
			magazine.PublicationDate,
			magazine.IssueNumber,
			magazine.ID,
		)
		if err != nil {
			if sentinel := publicationConstraintError(err); sentinel != nil {
				return sentinel
			}
			logger.Error("magazineRepository.Update: database error", err)
			return fmt.Errorf("failed to update magazine: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrMagazineNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM magazine_authors WHERE magazine_id = $1`, magazine.ID); err != nil {
			logger.Error("magazineRepository.Update: unlink authors failed", err)
			return fmt.Errorf("failed to update magazine: %w", err)
		}

		return linkAuthors(ctx, tx, magazine.ID, authorIDs)
	})

	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, magazine.ID)
}

func (r *magazineRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM publications WHERE id = $1 AND publication_type = 'MAGAZINE'`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("magazineRepository.Delete: database error", err)
		return fmt.Errorf("failed to delete magazine: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrMagazineNotFound
	}

	return nil
}

func (r *magazineRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `
		SELECT EXISTS(SELECT 1 FROM publications WHERE id = $1 AND publication_type = 'MAGAZINE')
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check magazine existence: %w", err)
	}

	return exists, nil
}

// linkAuthors inserts the author link rows for one magazine.
func linkAuthors(ctx context.Context, tx pgx.Tx, magazineID int64, authorIDs []int64) error {
	const query = `
		INSERT INTO magazine_authors (magazine_id, author_id)
		SELECT $1, unnest($2::bigint[])
	`

	_, err := tx.Exec(ctx, query, magazineID, authorIDs)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == constraintMagazineAuthor {
			return model.ErrAuthorsNotFound
		}
		logger.Error("linkAuthors: database error", err)
		return fmt.Errorf("failed to link magazine authors: %w", err)
	}

	return nil
}
