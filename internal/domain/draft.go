package domain

// BookingDraft агрегатное состояние мастера бронирования
// Неизменяемое значение: каждый переход состояния порождает новый черновик,
// прежний не модифицируется. Живёт только в памяти на время сессии мастера
// и никогда не персистится самостоятельно
type BookingDraft struct {
	Court         *Court
	Slot          *Slot
	AddOns        AddOnSelection
	Client        *Client
	NewClient     bool // клиент ещё не создан на бэкенде
	TournamentID  *int64
	PaymentMethod PaymentMethod
}

// WithCourtAndSlot возвращает черновик с выбранными площадкой и слотом
// Выбор услуг сбрасывается: доступность услуг зависит от типа площадки,
// поэтому смена площадки инвалидирует прежний выбор
func (d BookingDraft) WithCourtAndSlot(court *Court, slot *Slot) BookingDraft {
	out := d
	out.Court = court
	out.Slot = slot
	out.AddOns = AddOnSelection{}
	return out
}

// WithAddOns возвращает черновик с выбором услуг, очищенным по матрице доступности
func (d BookingDraft) WithAddOns(sel AddOnSelection) BookingDraft {
	out := d
	if d.Court != nil {
		out.AddOns = sel.Sanitized(d.Court.Type)
	} else {
		out.AddOns = sel
	}
	return out
}

// WithClient возвращает черновик с разрешённым или ожидающим создания клиентом
func (d BookingDraft) WithClient(client *Client, isNew bool) BookingDraft {
	out := d
	out.Client = client
	out.NewClient = isNew
	return out
}

// WithPaymentMethod возвращает черновик с выбранным способом оплаты
func (d BookingDraft) WithPaymentMethod(method PaymentMethod) BookingDraft {
	out := d
	out.PaymentMethod = method
	return out
}

// WithTournament возвращает черновик с привязкой к турниру
func (d BookingDraft) WithTournament(id *int64) BookingDraft {
	out := d
	out.TournamentID = id
	return out
}

// BasePrice возвращает базовую цену выбранной площадки (0, если не выбрана)
func (d BookingDraft) BasePrice() float64 {
	if d.Court == nil {
		return 0
	}
	return d.Court.BasePrice
}

// AddOnsCost возвращает стоимость выбранных услуг с учётом типа площадки
func (d BookingDraft) AddOnsCost() float64 {
	if d.Court == nil {
		return 0
	}
	return d.AddOns.Cost(d.Court.Type)
}

// Total возвращает итоговую цену: база площадки плюс услуги
func (d BookingDraft) Total() float64 {
	return d.BasePrice() + d.AddOnsCost()
}

// HasSlot returns true if both a court and a slot are chosen
func (d BookingDraft) HasSlot() bool {
	return d.Court != nil && d.Slot != nil
}
