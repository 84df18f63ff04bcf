package wizard

// State состояние мастера бронирования
type State string

// Состояния в прямом порядке прохождения мастера
const (
	StateSelectSlot     State = "select_slot"
	StateSelectServices State = "select_services"
	StateIdentifyClient State = "identify_client"
	StateReview         State = "review"
	StateSubmitting     State = "submitting"
	StateDoneSuccess    State = "done_success"
	StateDoneError      State = "done_error"
)

// IsDone returns true for both terminal states
func (s State) IsDone() bool {
	return s == StateDoneSuccess || s == StateDoneError
}

// CanCancel returns true while the session may still be cancelled
// После начала отправки отмена запрещена: side-effect'ы уже пошли
func (s State) CanCancel() bool {
	return s != StateSubmitting && !s.IsDone()
}

// previous возвращает предыдущее состояние для обратного перехода
// Обратные переходы разрешены только между шагами сбора данных
func (s State) previous() (State, bool) {
	switch s {
	case StateSelectServices:
		return StateSelectSlot, true
	case StateIdentifyClient:
		return StateSelectServices, true
	case StateReview:
		return StateIdentifyClient, true
	default:
		return s, false
	}
}
