package submissionlog

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estadia/BookingWizardService/pkg/ptr"
)

func setupRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)
	closer := func() { db.Close() }
	return repo, mock, closer
}

const insertQuery = "INSERT INTO submission_log " +
	"(session_id,staff_id,court_id,slot_id,client_id,service_record_id,reservation_id,payment_id," +
	"total_price,payment_method,outcome,failed_step,error_message) " +
	"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id, created_at"

const selectQuery = "SELECT id, session_id, staff_id, court_id, slot_id, client_id, service_record_id, " +
	"reservation_id, payment_id, total_price, payment_method, outcome, failed_step, error_message, created_at " +
	"FROM submission_log ORDER BY created_at DESC, id DESC LIMIT 10"

func listColumns() []string {
	return []string{
		"id", "session_id", "staff_id", "court_id", "slot_id", "client_id", "service_record_id",
		"reservation_id", "payment_id", "total_price", "payment_method", "outcome",
		"failed_step", "error_message", "created_at",
	}
}

func TestRepository_Create_Success(t *testing.T) {
	repo, mock, close := setupRepoMock(t)
	defer close()

	createdAt := time.Date(2025, 11, 1, 18, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(
			"sess-1", "staff-1", int64(1), int64(10),
			ptr.Ptr(int64(7)), nil, ptr.Ptr(int64(100)), ptr.Ptr(int64(200)),
			8000.0, "mercado_pago", OutcomeSuccess, nil, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), createdAt))

	rec := &Record{
		SessionID:     "sess-1",
		StaffID:       "staff-1",
		CourtID:       1,
		SlotID:        10,
		ClientID:      ptr.Ptr(int64(7)),
		ReservationID: ptr.Ptr(int64(100)),
		PaymentID:     ptr.Ptr(int64(200)),
		TotalPrice:    8000,
		PaymentMethod: "mercado_pago",
		Outcome:       OutcomeSuccess,
	}

	saved, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, createdAt, saved.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_FailedOutcomeKeepsPartialIDs(t *testing.T) {
	repo, mock, close := setupRepoMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WithArgs(
			"sess-2", "staff-1", int64(1), int64(10),
			ptr.Ptr(int64(31)), nil, nil, nil,
			5000.0, "efectivo", OutcomeFailed, ptr.Ptr("reservation"), ptr.Ptr("slot is no longer available"),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(43), time.Now()))

	rec := &Record{
		SessionID:     "sess-2",
		StaffID:       "staff-1",
		CourtID:       1,
		SlotID:        10,
		ClientID:      ptr.Ptr(int64(31)),
		TotalPrice:    5000,
		PaymentMethod: "efectivo",
		Outcome:       OutcomeFailed,
		FailedStep:    ptr.Ptr("reservation"),
		ErrorMessage:  ptr.Ptr("slot is no longer available"),
	}

	_, err := repo.Create(context.Background(), rec)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock, close := setupRepoMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(insertQuery)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &Record{SessionID: "sess-3", Outcome: OutcomeFailed})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_ListRecent(t *testing.T) {
	repo, mock, close := setupRepoMock(t)
	defer close()

	createdAt := time.Date(2025, 11, 1, 18, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows(listColumns()).
		AddRow(
			int64(43), "sess-2", "staff-1", int64(1), int64(10), int64(31), nil, nil, nil,
			5000.0, "efectivo", OutcomeFailed, "reservation", "slot is no longer available", createdAt,
		).
		AddRow(
			int64(42), "sess-1", "staff-1", int64(1), int64(10), int64(7), nil, int64(100), int64(200),
			8000.0, "mercado_pago", OutcomeSuccess, nil, nil, createdAt.Add(-time.Hour),
		)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).WillReturnRows(rows)

	records, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	failed := records[0]
	assert.Equal(t, int64(43), failed.ID)
	assert.Equal(t, OutcomeFailed, failed.Outcome)
	require.NotNil(t, failed.FailedStep)
	assert.Equal(t, "reservation", *failed.FailedStep)
	assert.Nil(t, failed.ReservationID)

	success := records[1]
	assert.Equal(t, OutcomeSuccess, success.Outcome)
	assert.Nil(t, success.FailedStep)
	require.NotNil(t, success.PaymentID)
	assert.Equal(t, int64(200), *success.PaymentID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListRecent_QueryError(t *testing.T) {
	repo, mock, close := setupRepoMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WillReturnError(errors.New("db is down"))

	_, err := repo.ListRecent(context.Background(), 10)
	assert.ErrorIs(t, err, ErrExecQuery)
}
