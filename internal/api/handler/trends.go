package handler

import (
	"net/http"

	"github.com/pricepal/pricepal-api/internal/usecases/pricing"
	"github.com/pricepal/pricepal-api/pkg/apiErrors"
	"github.com/pricepal/pricepal-api/pkg/log"
)

func GetTrendSeries(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		productID := r.URL.Query().Get("product_id")
		supplierID := r.URL.Query().Get("supplier_id")

		series, err := service.GetTrendSeries(claims.UserID, productID, supplierID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("trends: failed to build trend series")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build trend series", nil)
			return
		}

		respondJSON(w, http.StatusOK, series)
	}
}

func GetSupplierMatrix(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		matrix, err := service.GetSupplierMatrix(claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("trends: failed to build supplier matrix")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build supplier matrix", nil)
			return
		}

		respondJSON(w, http.StatusOK, matrix)
	}
}
