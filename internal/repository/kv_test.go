package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func setupKVMock(t *testing.T) (*SQLiteKVRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewSQLiteKVRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestGet_Present(t *testing.T) {
	repo, mock, cleanup := setupKVMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1`)).
		WithArgs("ihangire_session").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"email":"a@b.c"}`))

	value, ok, err := repo.Get(context.Background(), "ihangire_session")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Errorf("expected key to be present, got absent")
	}
	if value != `{"email":"a@b.c"}` {
		t.Errorf("unexpected value: %q", value)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGet_Absent(t *testing.T) {
	repo, mock, cleanup := setupKVMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1`)).
		WithArgs("ihangire_history_x@y.z").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, ok, err := repo.Get(context.Background(), "ihangire_history_x@y.z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected key to be absent, got present with %q", value)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGet_Error(t *testing.T) {
	repo, mock, cleanup := setupKVMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1`)).
		WithArgs("ihangire_users").
		WillReturnError(errors.New("query failed"))

	_, _, err := repo.Get(context.Background(), "ihangire_users")
	if err == nil {
		t.Errorf("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPut_Success(t *testing.T) {
	repo, mock, cleanup := setupKVMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv (key, value) VALUES ($1, $2)`)).
		WithArgs("ihangire_users", `{"a@b.c":"pw"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Put(context.Background(), "ihangire_users", `{"a@b.c":"pw"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPut_Error(t *testing.T) {
	repo, mock, cleanup := setupKVMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv (key, value) VALUES ($1, $2)`)).
		WithArgs("ihangire_users", "{}").
		WillReturnError(errors.New("disk full"))

	err := repo.Put(context.Background(), "ihangire_users", "{}")
	if err == nil {
		t.Errorf("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, cleanup := setupKVMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = $1`)).
		WithArgs("ihangire_session").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "ihangire_session"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDelete_AbsentKey(t *testing.T) {
	repo, mock, cleanup := setupKVMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = $1`)).
		WithArgs("ihangire_session").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "ihangire_session"); err != nil {
		t.Fatalf("expected deleting an absent key to succeed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
