// Package postgres implements the catalog repositories on top of a pgx
// connection pool. Constraint names here must match migrations/.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/pkg/logger"
)

const (
	constraintAuthorName     = "uq_authors_name"
	constraintTitle          = "uq_publications_title"
	constraintISBN           = "uq_publications_isbn"
	constraintBookAuthor     = "fk_publications_author"
	constraintMagazineAuthor = "fk_magazine_authors_author"
)

// publicationConstraintError maps integrity violations on the publications
// table to their sentinels. Returns nil when err is not a recognized
// constraint error.
func publicationConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.ConstraintName {
	case constraintTitle:
		return model.ErrDuplicateTitle
	case constraintISBN:
		return model.ErrDuplicateISBN
	case constraintBookAuthor:
		return model.ErrAuthorNotFound
	}
	if pgErr.Code == "23505" {
		return model.ErrConstraintViolation
	}
	return nil
}

// querier is the subset of pool and transaction the shared loaders need.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// orderClause builds an ORDER BY from a whitelisted column. sortBy values
// outside the whitelist silently fall back, they are never interpolated.
func orderClause(allowed map[string]string, sortBy, fallback string, desc bool) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = fallback
	}

	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", col, dir)
}

// loadMagazineContributors returns the contributing authors of each given
// magazine, ordered by name. Every requested ID gets an entry, so callers
// can assign without nil checks.
func loadMagazineContributors(ctx context.Context, q querier, magazineIDs []int64) (map[int64][]model.Author, error) {
	contributors := make(map[int64][]model.Author, len(magazineIDs))
	for _, id := range magazineIDs {
		contributors[id] = []model.Author{}
	}

	const query = `
		SELECT ma.magazine_id, a.id, a.name, a.birth_date, a.nationality
		FROM magazine_authors ma
		INNER JOIN authors a ON a.id = ma.author_id
		WHERE ma.magazine_id = ANY($1::bigint[])
		ORDER BY a.name ASC
	`

	rows, err := q.Query(ctx, query, magazineIDs)
	if err != nil {
		logger.Error("loadMagazineContributors: query failed", err)
		return nil, fmt.Errorf("failed to load magazine authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var magazineID int64
		author := model.Author{}
		if err := rows.Scan(&magazineID, &author.ID, &author.Name, &author.BirthDate, &author.Nationality); err != nil {
			logger.Error("loadMagazineContributors: scan error", err)
			return nil, fmt.Errorf("failed to scan magazine author: %w", err)
		}
		contributors[magazineID] = append(contributors[magazineID], author)
	}

	if err = rows.Err(); err != nil {
		logger.Error("loadMagazineContributors: rows error", err)
		return nil, fmt.Errorf("failed to load magazine authors: %w", err)
	}

	return contributors, nil
}
