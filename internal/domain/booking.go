package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the planned reservation: a quoted price for a room over a date
// range. The realized revenue lives on Stay and is never summed with
// TotalPrice here.
type Booking struct {
	ID           int64         `json:"id"`
	GuestID      int64         `json:"guest_id" validate:"required"`
	RoomID       int64         `json:"room_id" validate:"required"`
	CheckInDate  time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate time.Time     `json:"check_out_date" validate:"required"`
	TotalPrice   float64       `json:"total_price" validate:"gte=0"`
	Status       BookingStatus `json:"status"`
	Notes        string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// Связи
	Guest *Guest `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	Room  *Room  `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Nights returns the planned length of the booking in whole days.
func (b *Booking) Nights() int {
	n := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
