package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PriceObservation is one recorded price for a product from a supplier at a
// point in time, in the shape of the latest_prices view. The product and
// supplier identity is copied onto the observation at insert, so it survives
// catalog deletions. Observations are immutable once created; the only write
// path besides insert is deletion.
type PriceObservation struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	ProductCategory  string    `json:"product_category"`
	SupplierID       string    `json:"supplier_id"`
	SupplierName     string    `json:"supplier_name"`
	SupplierLocation *string   `json:"supplier_location,omitempty"`
	Price            float64   `json:"price"`
	Unit             string    `json:"unit"`
	Notes            *string   `json:"notes,omitempty"`
	OwnerID          int       `json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreatePriceEntryRequest struct {
	ProductID  string  `json:"product_id"`
	SupplierID string  `json:"supplier_id"`
	Price      float64 `json:"price"`
	Unit       string  `json:"unit"`
	Notes      *string `json:"notes"`
}

// ProductSummary is the per-product card on the dashboard, derived from the
// full observation set of one user.
type ProductSummary struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Unit               string  `json:"unit"`
	LowestPrice        float64 `json:"lowest_price"`
	SupplierCount      int     `json:"suppliers"`
	PriceChangePercent float64 `json:"price_change"`
}

// ComparisonRow is one line of the price comparison table.
type ComparisonRow struct {
	ID           string  `json:"id"`
	SupplierName string  `json:"supplier"`
	ProductName  string  `json:"product"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	LastUpdated  string  `json:"last_updated"`
	IsLowest     bool    `json:"is_lowest"`
}

// TrendPoint holds the prices seen for each product on one calendar day.
// Date is a canonical UTC yyyy-mm-dd key so points sort chronologically
// regardless of client locale.
type TrendPoint struct {
	Date   string
	Prices map[string]float64
}

// MarshalJSON flattens the point into the shape charting libraries expect:
// {"date": "2024-01-01", "Rice": 450, "Palm Oil": 800}.
func (p TrendPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(p.Prices)+1)
	flat["date"] = p.Date
	for name, price := range p.Prices {
		flat[name] = price
	}
	return json.Marshal(flat)
}

// SupplierComparisonRow holds one supplier's current price per product, for
// the cross-supplier bar chart. Suppliers without a single matching
// observation are never emitted.
type SupplierComparisonRow struct {
	SupplierName string
	Prices       map[string]float64
}

func (r SupplierComparisonRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.Prices)+1)
	flat["supplier"] = r.SupplierName
	for name, price := range r.Prices {
		flat[name] = price
	}
	return json.Marshal(flat)
}

// DashboardStats is the totals block at the top of the dashboard.
type DashboardStats struct {
	TotalProducts  int `json:"total_products"`
	TotalSuppliers int `json:"total_suppliers"`
	TotalEntries   int `json:"total_entries"`
}
