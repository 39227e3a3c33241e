package domain

import "time"

type AlertType string

const (
	AlertTypeSuccess AlertType = "success"
	AlertTypeWarning AlertType = "warning"
)

// PriceAlert is a persisted notification produced by the daily digest job
// whenever a product's lowest price moved against its next-cheapest offer.
type PriceAlert struct {
	ID            string    `json:"id"`
	OwnerID       int       `json:"user_id"`
	ProductName   string    `json:"product_name"`
	Message       string    `json:"message"`
	Type          AlertType `json:"type"`
	ChangePercent float64   `json:"change_percent"`
	CreatedAt     time.Time `json:"created_at"`
}
