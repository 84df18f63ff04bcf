// Package wizardview содержит общие HTTP модели снимка сессии мастера,
// используемые всеми handler'ами мастера
package wizardview

import (
	"github.com/estadia/BookingWizardService/internal/domain"
	"github.com/estadia/BookingWizardService/internal/usecase/submit_booking"
	"github.com/estadia/BookingWizardService/internal/wizard"
)

// SessionResponse HTTP модель снимка сессии мастера
type SessionResponse struct {
	SessionID      string       `json:"sessionId"`
	State          string       `json:"state"`
	Draft          DraftView    `json:"draft"`
	Pricing        PricingView  `json:"pricing"`
	EligibleAddOns []AddOnView  `json:"eligibleAddOns,omitempty"`
	Result         *ResultView  `json:"result,omitempty"`
	Error          string       `json:"error,omitempty"`
}

// DraftView собранные на текущий момент данные черновика
type DraftView struct {
	Court         *CourtView  `json:"court,omitempty"`
	Slot          *SlotView   `json:"slot,omitempty"`
	AddOns        *AddOnsView `json:"addOns,omitempty"`
	Client        *ClientView `json:"client,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	TournamentID  *int64      `json:"tournamentId,omitempty"`
}

// CourtView модель площадки
type CourtView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	BasePrice float64 `json:"basePrice"`
	Roofed    bool    `json:"roofed"`
	Lit       bool    `json:"lit"`
}

// SlotView модель слота
type SlotView struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AddOnsView выбор дополнительных услуг
type AddOnsView struct {
	Referee        bool `json:"referee"`
	MatchRecording bool `json:"matchRecording"`
	Jerseys        bool `json:"jerseys"`
	GrillGuests    int  `json:"grillGuests"`
	PaddleRentals  int  `json:"paddleRentals"`
}

// ClientView модель клиента в черновике
type ClientView struct {
	ID         int64  `json:"id,omitempty"`
	DNI        string `json:"dni"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	IsNew      bool   `json:"isNew"`
}

// PricingView расчёт цены по текущему черновику
type PricingView struct {
	BasePrice  float64 `json:"basePrice"`
	AddOnsCost float64 `json:"addOnsCost"`
	Total      float64 `json:"total"`
}

// AddOnView позиция каталога услуг, доступная для выбранного типа площадки
type AddOnView struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Fee     float64 `json:"fee"`
	PerUnit bool    `json:"perUnit"`
}

// ResultView итог отправки брони
type ResultView struct {
	Success         bool    `json:"success"`
	FailedStep      string  `json:"failedStep,omitempty"`
	ClientID        int64   `json:"clientId,omitempty"`
	ClientName      string  `json:"clientName,omitempty"`
	ServiceRecordID *int64  `json:"serviceRecordId,omitempty"`
	ReservationID   int64   `json:"reservationId,omitempty"`
	PaymentID       int64   `json:"paymentId,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	PaymentStatus   string  `json:"paymentStatus,omitempty"`
	PaymentDate     string  `json:"paymentDate,omitempty"`
	ReceiptSent     bool    `json:"receiptSent"`
}

// FromSnapshot конвертирует снимок сессии в HTTP модель
func FromSnapshot(s wizard.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		SessionID: s.ID,
		State:     string(s.State),
		Draft:     draftView(s.Draft),
		Pricing: PricingView{
			BasePrice:  s.BasePrice,
			AddOnsCost: s.AddOnsCost,
			Total:      s.Total,
		},
		Result: resultView(s.Result),
	}

	if s.Draft.Court != nil {
		resp.EligibleAddOns = addOnCatalogueView(s.Draft.Court.Type)
	}

	if s.Failure != nil {
		resp.Error = s.Failure.Error()
	}

	return resp
}

func draftView(d domain.BookingDraft) DraftView {
	view := DraftView{
		PaymentMethod: string(d.PaymentMethod),
		TournamentID:  d.TournamentID,
	}

	if d.Court != nil {
		view.Court = &CourtView{
			ID:        d.Court.ID,
			Name:      d.Court.Name,
			Type:      string(d.Court.Type),
			BasePrice: d.Court.BasePrice,
			Roofed:    d.Court.Roofed,
			Lit:       d.Court.Lit,
		}
	}

	if d.Slot != nil {
		view.Slot = &SlotView{
			ID:        d.Slot.ID,
			Date:      d.Slot.Date.Format(domain.DateFormat),
			StartTime: d.Slot.StartTime.String(),
			EndTime:   d.Slot.EndTime.String(),
		}
	}

	if d.Court != nil {
		view.AddOns = &AddOnsView{
			Referee:        d.AddOns.Referee,
			MatchRecording: d.AddOns.MatchRecording,
			Jerseys:        d.AddOns.Jerseys,
			GrillGuests:    d.AddOns.GrillGuests,
			PaddleRentals:  d.AddOns.PaddleRentals,
		}
	}

	if d.Client != nil {
		view.Client = &ClientView{
			ID:         d.Client.ID,
			DNI:        d.Client.DNI,
			GivenName:  d.Client.GivenName,
			FamilyName: d.Client.FamilyName,
			Phone:      d.Client.Phone,
			Email:      d.Client.Email,
			IsNew:      d.NewClient,
		}
	}

	return view
}

func addOnCatalogueView(courtType domain.CourtType) []AddOnView {
	eligible := domain.EligibleAddOns(courtType)
	views := make([]AddOnView, len(eligible))
	for i, addOn := range eligible {
		views[i] = AddOnView{
			ID:      string(addOn.ID),
			Label:   addOn.Label,
			Fee:     addOn.Fee,
			PerUnit: addOn.PerUnit,
		}
	}
	return views
}

func resultView(r *submit_booking.Response) *ResultView {
	if r == nil {
		return nil
	}

	view := &ResultView{
		Success:         r.Success,
		FailedStep:      string(r.FailedStep),
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		ServiceRecordID: r.ServiceRecordID,
		ReservationID:   r.ReservationID,
		PaymentID:       r.PaymentID,
		TotalPrice:      r.TotalPrice,
		PaymentStatus:   string(r.PaymentStatus),
		ReceiptSent:     r.ReceiptSent,
	}

	if r.PaymentDate != nil {
		view.PaymentDate = r.PaymentDate.Format(domain.DateFormat)
	}

	return view
}
