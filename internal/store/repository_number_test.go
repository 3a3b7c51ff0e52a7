package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Lysande2902/Numeros/internal/logger"
	"github.com/Lysande2902/Numeros/models"
)

func newTestNumberRepo(t *testing.T) (*numberRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &numberRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestNumberList_Success(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "value", "parity"}).
		AddRow(1, 2, models.ParityEven).
		AddRow(2, 3, models.ParityOdd)

	mock.ExpectQuery("SELECT id, value, parity FROM parity_numbers").
		WithArgs().
		WillReturnRows(rows)

	listed, err := repo.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 numbers, got %d", len(listed))
	}
	if listed[0].Parity != models.ParityEven || listed[1].Parity != models.ParityOdd {
		t.Errorf("unexpected parities: %+v", listed)
	}
}

func TestNumberCount_Success(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	total, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 25 {
		t.Errorf("expected total=25, got %d", total)
	}
}

func TestNumberGet_NotFound(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, value, parity").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, ErrNumberNotFound) {
		t.Fatalf("expected ErrNumberNotFound, got %v", err)
	}
}

func TestNumberCreate_Success(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	number := models.Number{Value: 7, Parity: models.ParityOdd}

	rows := sqlmock.
		NewRows([]string{"id", "value", "parity"}).
		AddRow(3, number.Value, number.Parity)

	mock.ExpectQuery("INSERT INTO parity_numbers").
		WithArgs(number.Value, number.Parity).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), number)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected ID=3, got %d", created.ID)
	}
}

func TestNumberUpdate_Success(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	number := models.Number{ID: 1, Value: 4, Parity: models.ParityEven}

	mock.ExpectExec("UPDATE parity_numbers").
		WithArgs(number.Value, number.Parity, number.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), number); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNumberUpdate_RowGone_NotFound(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	number := models.Number{ID: 9, Value: 4, Parity: models.ParityEven}

	mock.ExpectExec("UPDATE parity_numbers").
		WithArgs(number.Value, number.Parity, number.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(number.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.Update(context.Background(), number)
	if !errors.Is(err, ErrNumberNotFound) {
		t.Fatalf("expected ErrNumberNotFound, got %v", err)
	}
}

func TestNumberUpdate_RowStillThere_Conflict(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	number := models.Number{ID: 9, Value: 4, Parity: models.ParityEven}

	mock.ExpectExec("UPDATE parity_numbers").
		WithArgs(number.Value, number.Parity, number.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(number.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.Update(context.Background(), number)
	if !errors.Is(err, ErrUpdateConflict) {
		t.Fatalf("expected ErrUpdateConflict, got %v", err)
	}
}

func TestNumberDelete_Success(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM parity_numbers").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNumberDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestNumberRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM parity_numbers").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 5)
	if !errors.Is(err, ErrNumberNotFound) {
		t.Fatalf("expected ErrNumberNotFound, got %v", err)
	}
}
