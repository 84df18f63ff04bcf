package list_submissions

import (
	"time"

	"github.com/estadia/BookingWizardService/internal/infra/storage/submissionlog"
)

// SubmissionView HTTP модель записи журнала отправок
type SubmissionView struct {
	ID              int64   `json:"id"`
	SessionID       string  `json:"sessionId"`
	StaffID         string  `json:"staffId"`
	CourtID         int64   `json:"courtId"`
	SlotID          int64   `json:"slotId"`
	ClientID        *int64  `json:"clientId,omitempty"`
	ServiceRecordID *int64  `json:"serviceRecordId,omitempty"`
	ReservationID   *int64  `json:"reservationId,omitempty"`
	PaymentID       *int64  `json:"paymentId,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentMethod   string  `json:"paymentMethod"`
	Outcome         string  `json:"outcome"`
	FailedStep      *string `json:"failedStep,omitempty"`
	ErrorMessage    *string `json:"errorMessage,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ListSubmissionsResponse HTTP ответ со списком записей журнала
type ListSubmissionsResponse struct {
	Submissions []SubmissionView `json:"submissions"`
}

// FromRecords конвертирует записи журнала в HTTP модель
func FromRecords(records []*submissionlog.Record) *ListSubmissionsResponse {
	views := make([]SubmissionView, len(records))
	for i, rec := range records {
		views[i] = SubmissionView{
			ID:              rec.ID,
			SessionID:       rec.SessionID,
			StaffID:         rec.StaffID,
			CourtID:         rec.CourtID,
			SlotID:          rec.SlotID,
			ClientID:        rec.ClientID,
			ServiceRecordID: rec.ServiceRecordID,
			ReservationID:   rec.ReservationID,
			PaymentID:       rec.PaymentID,
			TotalPrice:      rec.TotalPrice,
			PaymentMethod:   rec.PaymentMethod,
			Outcome:         rec.Outcome,
			FailedStep:      rec.FailedStep,
			ErrorMessage:    rec.ErrorMessage,
			CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ListSubmissionsResponse{Submissions: views}
}
