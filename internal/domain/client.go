package domain

// ClientStatus статус клиента
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "activo"
	ClientStatusInactive ClientStatus = "inactivo"
)

// Client represents the person a booking and payment are made for
// Идентифицируется по DNI (национальный номер документа); DNI уникален
// и неизменяем после создания
type Client struct {
	ID         int64
	DNI        string
	GivenName  string
	FamilyName string
	Phone      string
	Email      string
	Status     ClientStatus
}

// FullName returns the client's display name
func (c *Client) FullName() string {
	return c.GivenName + " " + c.FamilyName
}

// IsPersisted returns true if the client already exists in the backend
func (c *Client) IsPersisted() bool {
	return c.ID > 0
}
