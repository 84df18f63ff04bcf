package domain

// CourtType тип площадки (закрытое перечисление)
// Матрица доступности дополнительных услуг (addons.go) является тотальной
// функцией от этого перечисления - при добавлении нового типа её нужно дополнить
type CourtType string

const (
	CourtTypeFutbol  CourtType = "futbol"
	CourtTypeBasquet CourtType = "basquet"
	CourtTypePadel   CourtType = "padel"
)

// CourtStatus статус площадки
type CourtStatus string

const (
	CourtStatusAvailable CourtStatus = "disponible"
	CourtStatusInactive  CourtStatus = "inactiva"
)

// Court represents a playing court in the facility
// Создаётся и редактируется персоналом вне этого сервиса; здесь только чтение
type Court struct {
	ID        int64
	Name      string
	Type      CourtType
	BasePrice float64
	Roofed    bool
	Lit       bool
	Status    CourtStatus
}

// IsActive returns true if the court can be offered for booking
func (c *Court) IsActive() bool {
	return c.Status == CourtStatusAvailable
}
