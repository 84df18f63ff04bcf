package domain

// Тарифы дополнительных услуг (фиксированные цены комплекса)
const (
	PriceReferee        = 2000.0 // арбитр, фиксированная ставка
	PriceMatchRecording = 1500.0 // запись матча
	PriceJerseys        = 800.0  // аренда печер (манишек)
	PriceGrillPerGuest  = 500.0  // асадо, за человека
	PricePaddlePerUnit  = 300.0  // аренда ракетки, за штуку
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
