package domain

import "time"

type RoomType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	BaseRate    float64 `json:"base_rate" validate:"gte=0"`
	Capacity    int     `json:"capacity" validate:"gt=0"`
}

type Room struct {
	ID         int64     `json:"id"`
	Number     string    `json:"number" validate:"required"`
	Floor      int       `json:"floor"`
	RoomTypeID int64     `json:"room_type_id" validate:"required"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	RoomType *RoomType `json:"room_type,omitempty" gorm:"foreignKey:RoomTypeID"`
}
