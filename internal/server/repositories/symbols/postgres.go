package symbols

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/dbx"
	"github.com/voclara/voclara/internal/server/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.UserCategorySymbol, error) {
	query :=
		`SELECT id, user_id, category_name, keyword, created_at
		 FROM user_category_symbols
		 WHERE user_id = $1
		 ORDER BY category_name, created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.UserCategorySymbol{}
	for rows.Next() {
		s := &models.UserCategorySymbol{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.CategoryName, &s.Keyword, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Add(ctx context.Context, s *models.UserCategorySymbol) (*models.UserCategorySymbol, error) {
	query :=
		`INSERT INTO user_category_symbols (user_id, category_name, keyword)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, s.UserID, s.CategoryName, s.Keyword).
		Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, categoryName, keyword string) error {
	query :=
		`DELETE FROM user_category_symbols
		 WHERE user_id = $1 AND category_name = $2 AND keyword = $3
		 `

	res, err := r.db.ExecContext(ctx, query, userID, categoryName, keyword)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

var _ Repository = (*PostgresRepository)(nil)
