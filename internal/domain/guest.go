package domain

import "time"

// Guest is a hotel guest record. CreatedAt doubles as the registration
// timestamp used by guest analytics to classify new vs returning guests
// relative to a query window.
type Guest struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name" validate:"required"`
	LastName    string    `json:"last_name" validate:"required"`
	Email       string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string    `json:"phone,omitempty"`
	Citizenship string    `json:"citizenship,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (g *Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
