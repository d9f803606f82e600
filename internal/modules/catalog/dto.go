package catalog

type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	Floor      int    `json:"floor"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

type CreateRoomTypeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BaseRate    float64 `json:"base_rate" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	TaxPercent  float64 `json:"tax_percent"`
	IsActive    *bool   `json:"is_active"`
}

type CreateGuestRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Citizenship string `json:"citizenship"`
}
