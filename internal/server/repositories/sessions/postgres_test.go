package sessions

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestAppend_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+session_tokens\s*\(user_id,\s*scope,\s*token\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s*\(user_id,\s*token\)\s*DO\s+NOTHING\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1", "auth", "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Append(context.Background(), "u-1", "auth", "tok"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
}

func TestAppend_DuplicateIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// ON CONFLICT DO NOTHING reports zero affected rows; that is not an error.
	mock.ExpectExec(`INSERT\s+INTO\s+session_tokens`).
		WithArgs("u-1", "auth", "tok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Append(context.Background(), "u-1", "auth", "tok"); err != nil {
		t.Fatalf("duplicate Append must be a no-op, got %v", err)
	}
}

func TestAppend_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+session_tokens`).
		WillReturnError(errors.New("db down"))

	err := repo.Append(context.Background(), "u-1", "auth", "tok")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRemove_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+session_tokens\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+token\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("u-1", "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Remove(context.Background(), "u-1", "tok"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
}

func TestRemove_MissingIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+session_tokens`).
		WithArgs("u-1", "never-issued").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Remove(context.Background(), "u-1", "never-issued"); err != nil {
		t.Fatalf("removing a non-existent token must be a no-op, got %v", err)
	}
}

func TestContains_TrueAndFalse(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+EXISTS`

	mock.ExpectQuery(q).
		WithArgs("u-1", "auth", "tok").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Contains(context.Background(), "u-1", "auth", "tok")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if !ok {
		t.Fatalf("expected true for registered token")
	}

	mock.ExpectQuery(q).
		WithArgs("u-1", "auth", "revoked").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err = repo.Contains(context.Background(), "u-1", "auth", "revoked")
	if err != nil {
		t.Fatalf("Contains error: %v", err)
	}
	if ok {
		t.Fatalf("expected false for revoked token")
	}
}

func TestListByUser_InsertionOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+token\s+FROM\s+session_tokens\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`

	rows := sqlmock.NewRows([]string{"token"}).AddRow("t1").AddRow("t2")
	mock.ExpectQuery(q).
		WithArgs("u-1").
		WillReturnRows(rows)

	tokens, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(tokens) != 2 || tokens[0] != "t1" || tokens[1] != "t2" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}
