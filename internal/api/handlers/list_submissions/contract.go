package list_submissions

import (
	"context"

	"github.com/estadia/BookingWizardService/internal/infra/storage/submissionlog"
)

type SubmissionLogRepository interface {
	ListRecent(ctx context.Context, limit uint64) ([]*submissionlog.Record, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
