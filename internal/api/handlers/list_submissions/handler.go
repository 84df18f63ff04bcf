package list_submissions

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/estadia/BookingWizardService/internal/api/handlers"
)

const (
	msgInvalidLimit = "parámetro limit inválido"

	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	submissionLog SubmissionLogRepository
	logger        Logger
}

func NewHandler(submissionLog SubmissionLogRepository, logger Logger) *Handler {
	return &Handler{
		submissionLog: submissionLog,
		logger:        logger,
	}
}

// Handle GET /api/v1/submissions?limit=N
//
// Журнал отправок для ручной сверки: отправка идёт без отката, и после
// частичного сбоя оператору нужен список созданных на бэкенде сущностей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.logger.Warn("GET /submissions - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	records, err := h.submissionLog.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /submissions - Failed to list submissions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /submissions - Returned %d records (limit=%d)", len(records), limit)
	handlers.RespondJSON(w, http.StatusOK, FromRecords(records))
}

func parseLimit(raw string) (uint64, error) {
	if raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 {
		return 0, fmt.Errorf("limit %q is not a positive integer", raw)
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, nil
}
