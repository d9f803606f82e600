package booking

import "time"

type CreateBookingRequest struct {
	GuestID      int64     `json:"guest_id" binding:"required"`
	RoomID       int64     `json:"room_id" binding:"required"`
	CheckInDate  time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate time.Time `json:"check_out_date" binding:"required"`
	Notes        string    `json:"notes"`
}

type Quote struct {
	RoomID     int64     `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Nights     int       `json:"nights"`
	DailyRate  float64   `json:"daily_rate"`
	TotalPrice float64   `json:"total_price"`
}
