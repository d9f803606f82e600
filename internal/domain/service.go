package domain

import "time"

// Service is a catalogue entry: breakfast, transfer, laundry and so on.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"gte=0"`
	TaxPercent  float64   `json:"tax_percent" validate:"gte=0"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceSale is one purchase of a catalogue service, optionally tied to a
// stay. TotalPrice is tax-inclusive.
type ServiceSale struct {
	ID            int64             `json:"id"`
	ServiceID     int64             `json:"service_id" validate:"required"`
	GuestID       int64             `json:"guest_id"`
	StayID        *int64            `json:"stay_id,omitempty"`
	Quantity      int               `json:"quantity" validate:"gt=0"`
	UnitPrice     float64           `json:"unit_price" validate:"gte=0"`
	TotalPrice    float64           `json:"total_price" validate:"gte=0"`
	TaxPercent    float64           `json:"tax_percent" validate:"gte=0"`
	SaleDate      time.Time         `json:"sale_date"`
	PaymentStatus SalePaymentStatus `json:"payment_status"`
	CreatedAt     time.Time         `json:"created_at"`

	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

// Cancelled is the single exclusion predicate: cancelled sales contribute
// to no report total and no invoice.
func (s *ServiceSale) Cancelled() bool {
	return s.PaymentStatus == SaleCancelled
}
