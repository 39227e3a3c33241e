package domain

import "time"

type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   *string   `json:"contact,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	OwnerID   int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateSupplierRequest struct {
	Name     string   `json:"name"`
	Contact  *string  `json:"contact"`
	Location *string  `json:"location"`
	Email    *string  `json:"email"`
	Rating   *float64 `json:"rating"`
}
