package select_slot

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	CourtID int64 `json:"courtId"`
	SlotID  int64 `json:"slotId"`
}
