package invoice

import "time"

// Invoice is the per-stay billing document: accommodation charges from the
// booking quote plus non-cancelled service charges. RoomCharges (the
// quote) and the stay's realized TotalAmount are carried separately and
// never summed with each other.
type Invoice struct {
	InvoiceNumber string    `json:"invoice_number"`
	IssuedAt      time.Time `json:"issued_at"`

	StayID       int64      `json:"stay_id"`
	GuestName    string     `json:"guest_name"`
	RoomNumber   string     `json:"room_number"`
	RoomTypeName string     `json:"room_type_name"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     *time.Time `json:"check_out,omitempty"`

	NumberOfDays int     `json:"number_of_days"`
	DailyRate    float64 `json:"daily_rate"`
	RoomCharges  float64 `json:"room_charges"`

	AccommodationTotal float64 `json:"accommodation_total"`
	RoomTaxAmount      float64 `json:"room_tax_amount"`

	ServiceCharges       float64 `json:"service_charges"`
	PaidServiceCharges   float64 `json:"paid_service_charges"`
	UnpaidServiceCharges float64 `json:"unpaid_service_charges"`

	Total      float64 `json:"total"`
	PaidAmount float64 `json:"paid_amount"`
	BalanceDue float64 `json:"balance_due"`

	Lines []Line `json:"lines"`
}

// Line is one itemized service charge on the invoice.
type Line struct {
	ServiceName string    `json:"service_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
	Date        time.Time `json:"date"`
	Paid        bool      `json:"paid"`
}
