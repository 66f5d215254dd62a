package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(email,.*\)\s*VALUES\s*\(\$1,.*\$10\)\s*RETURNING\s+id,\s*created_at,\s*updated_at\s*$`
const selectByEmailQ = `(?s)^SELECT\s+id,\s*email,.*FROM\s+users\s+WHERE\s+lower\(email\)\s*=\s*lower\(\$1\)$`
const selectByIDQ = `(?s)^SELECT\s+id,\s*email,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`

func userColumns() []string {
	return []string{"id", "email", "name", "hashed_password", "phone_number", "user_type", "status",
		"age", "gender", "avatar_uri", "favorite_phrases", "is_active", "created_at", "updated_at"}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u-1", now, now)
	mock.ExpectQuery(insertQ).
		WithArgs("a@b.com", "Alice", "$2a$hash", nil, models.UserTypeChild, models.UserStatusActive,
			nil, nil, []byte("[]"), true).
		WillReturnRows(rows)

	u := &models.User{
		Email:           "a@b.com",
		Name:            "Alice",
		HashedPassword:  "$2a$hash",
		UserType:        models.UserTypeChild,
		Status:          models.UserStatusActive,
		FavoritePhrases: []string{},
		IsActive:        true,
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "a@b.com", FavoritePhrases: []string{}})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("u-1", "a@b.com", "Alice", "$2a$hash", nil, "child", "active",
			nil, nil, nil, []byte(`["hello","thanks"]`), true, now, now)
	mock.ExpectQuery(selectByEmailQ).
		WithArgs("a@b.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if len(got.FavoritePhrases) != 2 || got.FavoritePhrases[0] != "hello" {
		t.Fatalf("unexpected phrases: %v", got.FavoritePhrases)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByEmailQ).
		WithArgs("ghost@b.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@b.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("u-1", "a@b.com", "Alice", "$2a$hash", nil, "child", "active",
			nil, nil, nil, []byte(`[]`), true, now, now)
	mock.ExpectQuery(selectByIDQ).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s+RETURNING\s+updated_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"updated_at"}).AddRow(now)
	mock.ExpectQuery(q).
		WithArgs("u-1", "Alice B", nil, nil, nil, nil, []byte(`["bye"]`)).
		WillReturnRows(rows)

	u := &models.User{ID: "u-1", Name: "Alice B", FavoritePhrases: []string{"bye"}}
	got, err := repo.UpdateProfile(context.Background(), u)
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at not refreshed: %v", got.UpdatedAt)
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+hashed_password\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s+RETURNING\s+updated_at\s*$`

	rows := sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now())
	mock.ExpectQuery(q).
		WithArgs("u-1", "$2a$newhash").
		WillReturnRows(rows)

	if err := repo.UpdatePassword(context.Background(), "u-1", "$2a$newhash"); err != nil {
		t.Fatalf("UpdatePassword error: %v", err)
	}
}

func TestUpdatePassword_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+hashed_password\s*=\s*\$2,.*WHERE\s+id\s*=\s*\$1\s+RETURNING\s+updated_at\s*$`

	mock.ExpectQuery(q).
		WithArgs("ghost", "$2a$newhash").
		WillReturnError(sql.ErrNoRows)

	err := repo.UpdatePassword(context.Background(), "ghost", "$2a$newhash")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
