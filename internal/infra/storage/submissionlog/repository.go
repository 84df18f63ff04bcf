package submissionlog

import (
	"context"
	"fmt"

	"github.com/estadia/BookingWizardService/pkg/psqlbuilder"
)

// Repository репозиторий журнала отправок броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала отправок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал отправок
// Вызывается после каждой отправки брони независимо от исхода
func (r *Repository) Create(ctx context.Context, rec *Record) (*Record, error) {
	query, args, err := psqlbuilder.Insert("submission_log").
		Columns(
			"session_id",
			"staff_id",
			"court_id",
			"slot_id",
			"client_id",
			"service_record_id",
			"reservation_id",
			"payment_id",
			"total_price",
			"payment_method",
			"outcome",
			"failed_step",
			"error_message",
		).
		Values(
			rec.SessionID,
			rec.StaffID,
			rec.CourtID,
			rec.SlotID,
			rec.ClientID,
			rec.ServiceRecordID,
			rec.ReservationID,
			rec.PaymentID,
			rec.TotalPrice,
			rec.PaymentMethod,
			rec.Outcome,
			rec.FailedStep,
			rec.ErrorMessage,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rec, nil
}

// ListRecent возвращает последние записи журнала, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]*Record, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"session_id",
		"staff_id",
		"court_id",
		"slot_id",
		"client_id",
		"service_record_id",
		"reservation_id",
		"payment_id",
		"total_price",
		"payment_method",
		"outcome",
		"failed_step",
		"error_message",
		"created_at",
	).
		From("submission_log").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		var rec Record
		err = rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.StaffID,
			&rec.CourtID,
			&rec.SlotID,
			&rec.ClientID,
			&rec.ServiceRecordID,
			&rec.ReservationID,
			&rec.PaymentID,
			&rec.TotalPrice,
			&rec.PaymentMethod,
			&rec.Outcome,
			&rec.FailedStep,
			&rec.ErrorMessage,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan row: %v", ErrScanRow, err)
		}
		records = append(records, &rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - rows iteration: %v", ErrExecQuery, err)
	}

	return records, nil
}
