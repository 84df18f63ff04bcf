package domain

// AddOnID идентификатор дополнительной услуги
type AddOnID string

const (
	AddOnReferee        AddOnID = "arbitro"
	AddOnMatchRecording AddOnID = "partido_grabado"
	AddOnJerseys        AddOnID = "pecheras"
	AddOnGrillSeats     AddOnID = "asado"
	AddOnPaddleRental   AddOnID = "paletas"
)

// AddOnService описание дополнительной услуги из каталога комплекса
// Услуга либо с фиксированной ценой (PerUnit=false), либо тарифицируется
// по количеству (PerUnit=true)
type AddOnService struct {
	ID      AddOnID
	Label   string
	Fee     float64
	PerUnit bool
}

// addOnCatalogue полный каталог услуг в порядке отображения в мастере
var addOnCatalogue = []AddOnService{
	{ID: AddOnReferee, Label: "Árbitro profesional", Fee: PriceReferee},
	{ID: AddOnMatchRecording, Label: "Grabación del partido", Fee: PriceMatchRecording},
	{ID: AddOnJerseys, Label: "Alquiler de pecheras", Fee: PriceJerseys},
	{ID: AddOnGrillSeats, Label: "Servicio de asado (por persona)", Fee: PriceGrillPerGuest, PerUnit: true},
	{ID: AddOnPaddleRental, Label: "Alquiler de paletas (por unidad)", Fee: PricePaddlePerUnit, PerUnit: true},
}

// AddOnCatalogue возвращает копию полного каталога услуг
func AddOnCatalogue() []AddOnService {
	out := make([]AddOnService, len(addOnCatalogue))
	copy(out, addOnCatalogue)
	return out
}

// eligible возвращает true, если услуга доступна для данного типа площадки
// Тотальная матрица по закрытому перечислению CourtType; для неизвестного типа
// доступен весь каталог - так вёл себя исходный мастер
func eligible(t CourtType, id AddOnID) bool {
	switch t {
	case CourtTypeFutbol:
		return id != AddOnPaddleRental
	case CourtTypeBasquet:
		return id != AddOnPaddleRental && id != AddOnReferee
	case CourtTypePadel:
		return id != AddOnJerseys && id != AddOnReferee
	default:
		return true
	}
}

// EligibleAddOns возвращает упорядоченный список услуг, доступных для типа площадки
func EligibleAddOns(t CourtType) []AddOnService {
	out := make([]AddOnService, 0, len(addOnCatalogue))
	for _, svc := range addOnCatalogue {
		if eligible(t, svc.ID) {
			out = append(out, svc)
		}
	}
	return out
}

// AddOnSelection выбор дополнительных услуг в черновике бронирования
// JSON-имена совпадают с wire-форматом бэкенда сервисных записей
type AddOnSelection struct {
	Referee        bool `json:"arbitro"`
	MatchRecording bool `json:"partido_grabado"`
	Jerseys        bool `json:"pecheras"`
	GrillGuests    int  `json:"cant_personas_asado"`
	PaddleRentals  int  `json:"cant_paletas"`
}

// IsEmpty возвращает true, если не выбрана ни одна услуга
func (s AddOnSelection) IsEmpty() bool {
	return !s.Referee && !s.MatchRecording && !s.Jerseys &&
		s.GrillGuests <= 0 && s.PaddleRentals <= 0
}

// enabled возвращает признак выбора и количество для услуги
func (s AddOnSelection) enabled(id AddOnID) (bool, int) {
	switch id {
	case AddOnReferee:
		return s.Referee, 0
	case AddOnMatchRecording:
		return s.MatchRecording, 0
	case AddOnJerseys:
		return s.Jerseys, 0
	case AddOnGrillSeats:
		return s.GrillGuests > 0, s.GrillGuests
	case AddOnPaddleRental:
		return s.PaddleRentals > 0, s.PaddleRentals
	default:
		return false, 0
	}
}

// Ineligible возвращает список выбранных услуг, недоступных для типа площадки
// Непустой результат означает некорректный запрос - вызывающая сторона
// не должна была предлагать эти услуги
func (s AddOnSelection) Ineligible(t CourtType) []AddOnID {
	var out []AddOnID
	for _, svc := range addOnCatalogue {
		on, _ := s.enabled(svc.ID)
		if on && !eligible(t, svc.ID) {
			out = append(out, svc.ID)
		}
	}
	return out
}

// Sanitized возвращает выбор с отрицательными количествами, приведёнными к нулю,
// и сброшенными услугами, недоступными для данного типа площадки
func (s AddOnSelection) Sanitized(t CourtType) AddOnSelection {
	out := s
	if out.GrillGuests < 0 {
		out.GrillGuests = 0
	}
	if out.PaddleRentals < 0 {
		out.PaddleRentals = 0
	}
	if !eligible(t, AddOnReferee) {
		out.Referee = false
	}
	if !eligible(t, AddOnMatchRecording) {
		out.MatchRecording = false
	}
	if !eligible(t, AddOnJerseys) {
		out.Jerseys = false
	}
	if !eligible(t, AddOnGrillSeats) {
		out.GrillGuests = 0
	}
	if !eligible(t, AddOnPaddleRental) {
		out.PaddleRentals = 0
	}
	return out
}

// Cost вычисляет стоимость выбранных услуг для данного типа площадки
// Услуги вне матрицы доступности игнорируются, количества меньше нуля
// считаются нулём
func (s AddOnSelection) Cost(t CourtType) float64 {
	clean := s.Sanitized(t)

	total := 0.0
	if clean.Referee {
		total += PriceReferee
	}
	if clean.MatchRecording {
		total += PriceMatchRecording
	}
	if clean.Jerseys {
		total += PriceJerseys
	}
	total += float64(clean.GrillGuests) * PriceGrillPerGuest
	total += float64(clean.PaddleRentals) * PricePaddlePerUnit
	return total
}
