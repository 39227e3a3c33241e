package domain

import "time"

// Product is a catalog entry owned by a single user. Deleting a product does
// not cascade to its price entries; observations carry their own copy of the
// product identity.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Description *string   `json:"description,omitempty"`
	OwnerID     int       `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Description *string `json:"description"`
}
