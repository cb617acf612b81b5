package kvstore

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGStoreGetHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPGStore(db)
	rows := sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":1}]`)
	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("jobDescriptionAnalyses").
		WillReturnRows(rows)

	val, ok, err := store.Get("jobDescriptionAnalyses")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || val != `[{"id":1}]` {
		t.Fatalf("unexpected result: ok=%v val=%q", ok, val)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreGetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPGStore(db)
	mock.ExpectQuery("SELECT value FROM kv_entries").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false on miss")
	}
}

func TestPGStoreSetUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPGStore(db)
	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("activeResumes", "{}", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Set("activeResumes", "{}"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := NewPGStore(db)
	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := store.Delete("token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
