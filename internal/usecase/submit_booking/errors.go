package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrIncompleteDraft возвращается, когда в черновике не хватает данных для отправки
	ErrIncompleteDraft = errors.New("booking draft is incomplete")

	// ErrSlotConflict возвращается, когда слот уже занят на бэкенде
	// Типичный случай: два оператора одновременно вели мастер на один слот
	ErrSlotConflict = errors.New("slot is no longer available")

	// ErrSubmissionFailed возвращается при сбое одного из шагов отправки
	ErrSubmissionFailed = errors.New("booking submission failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
