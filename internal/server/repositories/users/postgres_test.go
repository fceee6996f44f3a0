package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\s*\(id,\s*email,\s*password_digest\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+created_at\s*$`

	created := time.Now()
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(created)
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "$2a$10$digest").
		WillReturnRows(rows)

	u := &models.User{Email: "a@x.com", PasswordDigest: "$2a$10$digest"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users`

	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "a@x.com", "$2a$10$digest").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.com", PasswordDigest: "$2a$10$digest"})
	if !errors.Is(err, common.ErrorEmailTaken) {
		t.Fatalf("expected common.ErrorEmailTaken, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.com", PasswordDigest: "d"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*email,\s*password_digest,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "email", "password_digest", "created_at"}).
		AddRow("u-1", "a@x.com", "$2a$10$digest", time.Now())
	mock.ExpectQuery(q).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.Email != "a@x.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*email`).
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*email,\s*password_digest,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "email", "password_digest", "created_at"}).
		AddRow("u-1", "a@x.com", "$2a$10$digest", time.Now())
	mock.ExpectQuery(q).
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

func TestGetByIDTokenScope_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)JOIN\s+session_tokens\s+s\s+ON\s+s\.user_id\s*=\s*u\.id\s+WHERE\s+u\.id\s*=\s*\$1\s+AND\s+s\.token\s*=\s*\$2\s+AND\s+s\.scope\s*=\s*\$3`

	rows := sqlmock.NewRows([]string{"id", "email", "password_digest", "created_at"}).
		AddRow("u-1", "a@x.com", "$2a$10$digest", time.Now())
	mock.ExpectQuery(q).
		WithArgs("u-1", "tok", "auth").
		WillReturnRows(rows)

	got, err := repo.GetByIDTokenScope(context.Background(), "u-1", "tok", "auth")
	if err != nil {
		t.Fatalf("GetByIDTokenScope error: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByIDTokenScope_Miss(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`JOIN\s+session_tokens`).
		WithArgs("u-1", "revoked", "auth").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByIDTokenScope(context.Background(), "u-1", "revoked", "auth")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestUpdatePasswordDigest_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+users\s+SET\s+password_digest\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1", "$2a$10$newdigest").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePasswordDigest(context.Background(), "u-1", "$2a$10$newdigest"); err != nil {
		t.Fatalf("UpdatePasswordDigest error: %v", err)
	}
}

func TestUpdatePasswordDigest_NoSuchUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE\s+users\s+SET\s+password_digest`).
		WithArgs("missing", "d").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordDigest(context.Background(), "missing", "d")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
