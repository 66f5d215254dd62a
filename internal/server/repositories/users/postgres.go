package users

import (
	"context"
	"database/sql"
	"encoding/json"
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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	phrases, err := json.Marshal(user.FavoritePhrases)
	if err != nil {
		return nil, fmt.Errorf("encode favorite_phrases: %w", err)
	}

	query :=
		`INSERT INTO users (email, name, hashed_password, phone_number, user_type, status, age, gender, favorite_phrases, is_active)
	     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.Email, user.Name, user.HashedPassword, user.PhoneNumber,
		user.UserType, user.Status, user.Age, user.Gender, phrases, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := selectUserQuery + ` WHERE lower(email) = lower($1)`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := selectUserQuery + ` WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

const selectUserQuery = `SELECT id, email, name, hashed_password, phone_number, user_type, status, age, gender, avatar_uri, favorite_phrases, is_active, created_at, updated_at FROM users`

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var phrases []byte

	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.HashedPassword,
		&user.PhoneNumber, &user.UserType, &user.Status, &user.Age, &user.Gender,
		&user.AvatarURI, &phrases, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(phrases, &user.FavoritePhrases); err != nil {
		return nil, fmt.Errorf("decode favorite_phrases: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {

	phrases, err := json.Marshal(user.FavoritePhrases)
	if err != nil {
		return nil, fmt.Errorf("encode favorite_phrases: %w", err)
	}

	query :=
		`UPDATE users
		 SET name = $2, phone_number = $3, age = $4, gender = $5, avatar_uri = $6,
		     favorite_phrases = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.PhoneNumber, user.Age, user.Gender,
		user.AvatarURI, phrases).Scan(&user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID string, hashedPassword string) error {
	query :=
		`UPDATE users SET hashed_password = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID, hashedPassword).Scan(&updatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
