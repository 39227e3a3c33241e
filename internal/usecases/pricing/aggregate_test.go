package pricing

import (
	"testing"
	"time"

	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func obs(product, supplier string, price float64, createdAt time.Time) domain.PriceObservation {
	return domain.PriceObservation{
		ID:              product + "-" + supplier,
		ProductID:       "prod-" + product,
		ProductName:     product,
		ProductCategory: "grains",
		SupplierID:      "sup-" + supplier,
		SupplierName:    supplier,
		Price:           price,
		Unit:            "kg",
		CreatedAt:       createdAt,
	}
}

func TestSummarizeProducts(t *testing.T) {
	d1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		observations []domain.PriceObservation
		expected     []domain.ProductSummary
	}{
		{
			name:         "empty input returns empty slice",
			observations: []domain.PriceObservation{},
			expected:     []domain.ProductSummary{},
		},
		{
			name: "two suppliers for one product",
			observations: []domain.PriceObservation{
				obs("Rice", "B", 480, d2),
				obs("Rice", "A", 450, d1),
			},
			expected: []domain.ProductSummary{
				{
					Name:               "Rice",
					Category:           "grains",
					Unit:               "kg",
					LowestPrice:        450,
					SupplierCount:      2,
					PriceChangePercent: (450.0 - 480.0) / 480.0 * 100,
				},
			},
		},
		{
			name: "single observation has zero change",
			observations: []domain.PriceObservation{
				obs("Beans", "A", 300, d1),
			},
			expected: []domain.ProductSummary{
				{
					Name:          "Beans",
					Category:      "grains",
					Unit:          "kg",
					LowestPrice:   300,
					SupplierCount: 1,
				},
			},
		},
		{
			name: "zero second-lowest price yields zero change",
			observations: []domain.PriceObservation{
				obs("Salt", "A", 0, d1),
				obs("Salt", "B", 0, d2),
			},
			expected: []domain.ProductSummary{
				{
					Name:          "Salt",
					Category:      "grains",
					Unit:          "kg",
					LowestPrice:   0,
					SupplierCount: 2,
				},
			},
		},
		{
			name: "repeat supplier counts once",
			observations: []domain.PriceObservation{
				obs("Maize", "A", 120, d2),
				obs("Maize", "A", 150, d1),
				obs("Maize", "B", 130, d1),
			},
			expected: []domain.ProductSummary{
				{
					Name:               "Maize",
					Category:           "grains",
					Unit:               "kg",
					LowestPrice:        120,
					SupplierCount:      2,
					PriceChangePercent: (120.0 - 130.0) / 130.0 * 100,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SummarizeProducts(tt.observations))
		})
	}
}

func TestSummarizeProducts_FirstSeenOrder(t *testing.T) {
	d := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	observations := []domain.PriceObservation{
		obs("Sugar", "A", 200, d),
		obs("Rice", "A", 450, d),
		obs("Sugar", "B", 210, d),
		obs("Beans", "A", 300, d),
	}

	summaries := SummarizeProducts(observations)

	assert.Len(t, summaries, 3)
	assert.Equal(t, "Sugar", summaries[0].Name)
	assert.Equal(t, "Rice", summaries[1].Name)
	assert.Equal(t, "Beans", summaries[2].Name)
}

func TestSummarizeProducts_LowestIsMinimum(t *testing.T) {
	d := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	observations := []domain.PriceObservation{
		obs("Rice", "A", 520, d),
		obs("Rice", "B", 470, d),
		obs("Rice", "C", 495, d),
	}

	summaries := SummarizeProducts(observations)

	assert.Len(t, summaries, 1)
	for _, o := range observations {
		assert.LessOrEqual(t, summaries[0].LowestPrice, o.Price)
	}
}

func TestBuildComparisonTable(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	yesterday := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	t.Run("empty input returns empty slice", func(t *testing.T) {
		rows := BuildComparisonTable([]domain.PriceObservation{}, now)
		assert.Empty(t, rows)
	})

	t.Run("lowest row flagged, other rows not", func(t *testing.T) {
		rows := BuildComparisonTable([]domain.PriceObservation{
			obs("Rice", "A", 450, yesterday),
			obs("Rice", "B", 480, today),
		}, now)

		assert.Len(t, rows, 2)
		assert.True(t, rows[0].IsLowest)
		assert.False(t, rows[1].IsLowest)
	})

	t.Run("ties are all flagged lowest", func(t *testing.T) {
		rows := BuildComparisonTable([]domain.PriceObservation{
			obs("Rice", "A", 450, today),
			obs("Sugar", "A", 200, today),
			obs("Rice", "B", 450, today),
		}, now)

		assert.Len(t, rows, 3)
		assert.True(t, rows[0].IsLowest)
		assert.True(t, rows[1].IsLowest)
		assert.True(t, rows[2].IsLowest)
	})

	t.Run("single row group is always lowest", func(t *testing.T) {
		rows := BuildComparisonTable([]domain.PriceObservation{
			obs("Beans", "A", 999, today),
		}, now)

		assert.Len(t, rows, 1)
		assert.True(t, rows[0].IsLowest)
	})

	t.Run("non-contiguous group still resolved by second pass", func(t *testing.T) {
		rows := BuildComparisonTable([]domain.PriceObservation{
			obs("Rice", "A", 480, today),
			obs("Sugar", "A", 200, today),
			obs("Rice", "B", 450, today),
		}, now)

		assert.False(t, rows[0].IsLowest)
		assert.True(t, rows[1].IsLowest)
		assert.True(t, rows[2].IsLowest)
	})

	t.Run("last updated label", func(t *testing.T) {
		rows := BuildComparisonTable([]domain.PriceObservation{
			obs("Rice", "A", 450, today),
			obs("Rice", "B", 480, yesterday),
		}, now)

		assert.Equal(t, "Today", rows[0].LastUpdated)
		assert.Equal(t, "2025-03-11", rows[1].LastUpdated)
	})
}

func TestBuildTrendSeries(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	observations := []domain.PriceObservation{
		obs("Rice", "A", 450, day2),
		obs("Rice", "B", 480, day1),
		obs("Sugar", "A", 200, day1),
	}

	t.Run("buckets by UTC date ascending", func(t *testing.T) {
		series := BuildTrendSeries(observations, "", "")

		assert.Len(t, series, 2)
		assert.Equal(t, "2025-03-10", series[0].Date)
		assert.Equal(t, "2025-03-11", series[1].Date)
		assert.Equal(t, map[string]float64{"Rice": 480, "Sugar": 200}, series[0].Prices)
		assert.Equal(t, map[string]float64{"Rice": 450}, series[1].Prices)
	})

	t.Run("later observation wins within a bucket", func(t *testing.T) {
		series := BuildTrendSeries([]domain.PriceObservation{
			obs("Rice", "A", 450, day1),
			obs("Rice", "A", 470, day1.Add(2*time.Hour)),
		}, "", "")

		assert.Len(t, series, 1)
		assert.Equal(t, map[string]float64{"Rice": 470}, series[0].Prices)
	})

	t.Run("product filter", func(t *testing.T) {
		series := BuildTrendSeries(observations, "prod-Sugar", "")

		assert.Len(t, series, 1)
		assert.Equal(t, map[string]float64{"Sugar": 200}, series[0].Prices)
	})

	t.Run("supplier filter", func(t *testing.T) {
		series := BuildTrendSeries(observations, "", "sup-B")

		assert.Len(t, series, 1)
		assert.Equal(t, map[string]float64{"Rice": 480}, series[0].Prices)
	})

	t.Run("both filters must match", func(t *testing.T) {
		series := BuildTrendSeries(observations, "prod-Sugar", "sup-B")
		assert.Empty(t, series)
	})

	t.Run("all sentinel matches everything", func(t *testing.T) {
		assert.Equal(t,
			BuildTrendSeries(observations, "", ""),
			BuildTrendSeries(observations, FilterAll, FilterAll),
		)
	})

	t.Run("idempotent", func(t *testing.T) {
		first := BuildTrendSeries(observations, "", "")
		second := BuildTrendSeries(observations, "", "")
		assert.Equal(t, first, second)
	})

	t.Run("empty input returns empty slice", func(t *testing.T) {
		assert.Empty(t, BuildTrendSeries([]domain.PriceObservation{}, "", ""))
	})

	t.Run("unmatched filter returns empty slice", func(t *testing.T) {
		assert.Empty(t, BuildTrendSeries(observations, "prod-Wheat", ""))
	})
}

func TestBuildSupplierMatrix(t *testing.T) {
	d := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	suppliers := []domain.Supplier{
		{ID: "sup-A", Name: "A"},
		{ID: "sup-B", Name: "B"},
		{ID: "sup-C", Name: "C"},
	}
	products := []domain.Product{
		{ID: "prod-Rice", Name: "Rice"},
		{ID: "prod-Sugar", Name: "Sugar"},
	}
	observations := []domain.PriceObservation{
		obs("Rice", "A", 450, d),
		obs("Rice", "B", 480, d),
		obs("Sugar", "A", 200, d),
	}

	t.Run("one row per supplier with matches", func(t *testing.T) {
		matrix := BuildSupplierMatrix(suppliers, products, observations)

		assert.Len(t, matrix, 2)
		assert.Equal(t, "A", matrix[0].SupplierName)
		assert.Equal(t, map[string]float64{"Rice": 450, "Sugar": 200}, matrix[0].Prices)
		assert.Equal(t, "B", matrix[1].SupplierName)
		assert.Equal(t, map[string]float64{"Rice": 480}, matrix[1].Prices)
	})

	t.Run("supplier without observations is dropped", func(t *testing.T) {
		matrix := BuildSupplierMatrix(suppliers, products, observations)

		for _, row := range matrix {
			assert.NotEqual(t, "C", row.SupplierName)
		}
	})

	t.Run("first match in input order wins", func(t *testing.T) {
		matrix := BuildSupplierMatrix(suppliers, products, []domain.PriceObservation{
			obs("Rice", "A", 440, d.Add(24*time.Hour)),
			obs("Rice", "A", 450, d),
		})

		assert.Len(t, matrix, 1)
		assert.Equal(t, map[string]float64{"Rice": 440}, matrix[0].Prices)
	})

	t.Run("empty catalogs return empty slice", func(t *testing.T) {
		assert.Empty(t, BuildSupplierMatrix(nil, nil, observations))
	})
}
