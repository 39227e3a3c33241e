package pricing

import (
	"sort"
	"time"

	"github.com/pricepal/pricepal-api/internal/domain"
)

// The aggregation functions below are pure transforms over in-memory
// observation sets. They never touch a repository, never look at the owner
// and always return a well-defined (possibly empty) result, so they can be
// recomputed on every request without coordination.

// productGroup accumulates one product's observations during summarization.
type productGroup struct {
	category  string
	unit      string
	prices    []float64
	suppliers map[string]struct{}
}

// SummarizeProducts reduces an observation list (newest first) to one
// summary per distinct product name, in first-seen order.
//
// The price change percent compares the lowest price against the second
// lowest in sorted order, not against the chronologically previous price.
// That matches the behavior the dashboard has always shown; do not switch it
// to a chronological diff without product sign-off.
func SummarizeProducts(observations []domain.PriceObservation) []domain.ProductSummary {
	order := make([]string, 0)
	groups := make(map[string]*productGroup)

	for _, obs := range observations {
		g, ok := groups[obs.ProductName]
		if !ok {
			g = &productGroup{
				category:  obs.ProductCategory,
				unit:      obs.Unit,
				suppliers: make(map[string]struct{}),
			}
			groups[obs.ProductName] = g
			order = append(order, obs.ProductName)
		}

		g.prices = append(g.prices, obs.Price)
		g.suppliers[obs.SupplierName] = struct{}{}
	}

	summaries := make([]domain.ProductSummary, 0, len(order))
	for _, name := range order {
		g := groups[name]

		sort.Float64s(g.prices)

		var lowest float64
		if len(g.prices) > 0 {
			lowest = g.prices[0]
		}

		var change float64
		if len(g.prices) > 1 && g.prices[1] != 0 {
			change = (lowest - g.prices[1]) / g.prices[1] * 100
		}

		summaries = append(summaries, domain.ProductSummary{
			Name:               name,
			Category:           g.category,
			Unit:               g.unit,
			LowestPrice:        lowest,
			SupplierCount:      len(g.suppliers),
			PriceChangePercent: change,
		})
	}

	return summaries
}

// BuildComparisonTable turns observations into display rows, preserving
// input order. Rows tied at the minimum price of their product group are all
// flagged as lowest; the flagging runs as a second pass over the built rows
// so groups spanning non-contiguous positions are handled.
func BuildComparisonTable(observations []domain.PriceObservation, now time.Time) []domain.ComparisonRow {
	rows := make([]domain.ComparisonRow, 0, len(observations))
	lowestByProduct := make(map[string]float64)

	for _, obs := range observations {
		rows = append(rows, domain.ComparisonRow{
			ID:           obs.ID,
			SupplierName: obs.SupplierName,
			ProductName:  obs.ProductName,
			Price:        obs.Price,
			Unit:         obs.Unit,
			LastUpdated:  lastUpdatedLabel(obs.CreatedAt, now),
		})

		if min, ok := lowestByProduct[obs.ProductName]; !ok || obs.Price < min {
			lowestByProduct[obs.ProductName] = obs.Price
		}
	}

	for i := range rows {
		rows[i].IsLowest = rows[i].Price == lowestByProduct[rows[i].ProductName]
	}

	return rows
}

func lastUpdatedLabel(createdAt, now time.Time) string {
	date := createdAt.UTC().Format(time.DateOnly)
	if date == now.UTC().Format(time.DateOnly) {
		return "Today"
	}
	return date
}

// FilterAll is the sentinel filter value meaning "no filter".
const FilterAll = "all"

// BuildTrendSeries buckets observations by UTC calendar date and emits one
// point per date, ascending. Within a bucket the later observation in
// iteration order wins for its product. Empty or "all" filters match
// everything; when both filters are set an observation must match both.
func BuildTrendSeries(observations []domain.PriceObservation, productID, supplierID string) []domain.TrendPoint {
	points := make(map[string]domain.TrendPoint)

	for _, obs := range observations {
		if !matchesFilter(obs.ProductID, productID) || !matchesFilter(obs.SupplierID, supplierID) {
			continue
		}

		// Canonical UTC date key keeps grouping stable across client
		// locales and sorts chronologically as a plain string.
		date := obs.CreatedAt.UTC().Format(time.DateOnly)

		point, ok := points[date]
		if !ok {
			point = domain.TrendPoint{Date: date, Prices: make(map[string]float64)}
			points[date] = point
		}
		point.Prices[obs.ProductName] = obs.Price
	}

	series := make([]domain.TrendPoint, 0, len(points))
	for _, point := range points {
		series = append(series, point)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})

	return series
}

func matchesFilter(value, filter string) bool {
	return filter == "" || filter == FilterAll || value == filter
}

// BuildSupplierMatrix produces one row per supplier holding that supplier's
// price for each catalog product it has an observation for. The first
// matching observation in input order wins, which for newest-first input is
// the most recent price. Suppliers without a single match are dropped.
func BuildSupplierMatrix(
	suppliers []domain.Supplier,
	products []domain.Product,
	observations []domain.PriceObservation,
) []domain.SupplierComparisonRow {
	matrix := make([]domain.SupplierComparisonRow, 0, len(suppliers))

	for _, supplier := range suppliers {
		row := domain.SupplierComparisonRow{
			SupplierName: supplier.Name,
			Prices:       make(map[string]float64),
		}

		for _, product := range products {
			for _, obs := range observations {
				if obs.SupplierID == supplier.ID && obs.ProductID == product.ID {
					row.Prices[product.Name] = obs.Price
					break
				}
			}
		}

		if len(row.Prices) > 0 {
			matrix = append(matrix, row)
		}
	}

	return matrix
}
