package symbols

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

const listByUserQ = `(?s)^SELECT\s+id,\s*user_id,\s*category_name,\s*keyword,\s*created_at\s+FROM\s+user_category_symbols\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+category_name,\s*created_at\s*$`
const insertQ = `(?s)^INSERT\s+INTO\s+user_category_symbols\s*\(user_id,\s*category_name,\s*keyword\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`
const deleteQ = `(?s)^DELETE\s+FROM\s+user_category_symbols\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+category_name\s*=\s*\$2\s+AND\s+keyword\s*=\s*\$3\s*$`

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "category_name", "keyword", "created_at"}).
		AddRow("c-1", "u-1", "animals", "dog", now).
		AddRow("c-2", "u-1", "food", "pizza", now)
	mock.ExpectQuery(listByUserQ).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].Keyword != "dog" || got[1].CategoryName != "food" {
		t.Fatalf("unexpected symbols: %+v", got)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "category_name", "keyword", "created_at"})
	mock.ExpectQuery(listByUserQ).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestAdd_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c-1", time.Now())
	mock.ExpectQuery(insertQ).
		WithArgs("u-1", "food", "pizza").
		WillReturnRows(rows)

	s := &models.UserCategorySymbol{UserID: "u-1", CategoryName: "food", Keyword: "pizza"}
	got, err := repo.Add(context.Background(), s)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.ID != "c-1" {
		t.Fatalf("unexpected symbol: %+v", got)
	}
}

func TestAdd_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs("u-1", "food", "pizza").
		WillReturnError(errors.New("db down"))

	_, err := repo.Add(context.Background(), &models.UserCategorySymbol{UserID: "u-1", CategoryName: "food", Keyword: "pizza"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("u-1", "food", "pizza").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u-1", "food", "pizza"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).
		WithArgs("u-1", "food", "sushi").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "u-1", "food", "sushi")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
