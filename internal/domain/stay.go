package domain

import "time"

type SalePaymentStatus string

const (
	SalePending  SalePaymentStatus = "pending"
	SalePaid     SalePaymentStatus = "paid"
	SaleUnpaid   SalePaymentStatus = "unpaid"
	SaleRefunded SalePaymentStatus = "refunded"
	// SaleCancelled replaces the legacy numeric status 5. Cancelled charges
	// are excluded from every report and invoice.
	SaleCancelled SalePaymentStatus = "cancelled"
)

// Stay is the realized occupancy of a booking. TotalAmount is the
// tax-inclusive accommodation total actually charged; it is independent of
// the booking's quoted TotalPrice.
type Stay struct {
	ID                 int64             `json:"id"`
	BookingID          int64             `json:"booking_id" validate:"required"`
	ActualCheckInDate  time.Time         `json:"actual_check_in_date" validate:"required"`
	ActualCheckOutDate *time.Time        `json:"actual_check_out_date,omitempty"`
	TotalAmount        float64           `json:"total_amount" validate:"gte=0"`
	PaidAmount         float64           `json:"paid_amount" validate:"gte=0"`
	TaxPercent         float64           `json:"tax_percent" validate:"gte=0"`
	PaymentStatus      SalePaymentStatus `json:"payment_status"`
	Notes              string            `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`

	// Связи
	Booking *Booking    `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Guests  []StayGuest `json:"guests,omitempty" gorm:"foreignKey:StayID"`
}

// StayGuest is one roster entry of a stay. At most one entry per stay
// carries IsMainGuest; the CRUD layer enforces that with a partial unique
// index.
type StayGuest struct {
	ID          int64     `json:"id"`
	StayID      int64     `json:"stay_id"`
	GuestID     int64     `json:"guest_id"`
	IsMainGuest bool      `json:"is_main_guest"`
	CreatedAt   time.Time `json:"created_at"`

	Guest *Guest `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
}

func (StayGuest) TableName() string { return "stay_guests" }

// MainGuest returns the roster entry flagged as main guest, or nil.
func (s *Stay) MainGuest() *StayGuest {
	for i := range s.Guests {
		if s.Guests[i].IsMainGuest {
			return &s.Guests[i]
		}
	}
	return nil
}

// NightsUntil returns the occupied nights of the stay, using now as the
// provisional checkout while the guest is still resident. Never negative.
func (s *Stay) NightsUntil(now time.Time) int {
	out := now
	if s.ActualCheckOutDate != nil {
		out = *s.ActualCheckOutDate
	}
	n := int(out.Sub(s.ActualCheckInDate).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
