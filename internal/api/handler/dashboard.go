package handler

import (
	"net/http"

	"github.com/pricepal/pricepal-api/internal/usecases/pricing"
	"github.com/pricepal/pricepal-api/pkg/apiErrors"
	"github.com/pricepal/pricepal-api/pkg/log"
)

func GetProductSummaries(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		summaries, err := service.GetProductSummaries(claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to build product summaries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build product summaries", nil)
			return
		}

		respondJSON(w, http.StatusOK, summaries)
	}
}

func GetComparisonTable(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		limit, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid limit parameter", nil)
			return
		}

		rows, err := service.GetComparisonTable(claims.UserID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to build comparison table")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to build comparison table", nil)
			return
		}

		respondJSON(w, http.StatusOK, rows)
	}
}

func GetDashboardStats(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		stats, err := service.GetDashboardStats(claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to collect stats")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to collect dashboard stats", nil)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

func GetPriceAlerts(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		limit, err := parseLimit(r.URL.Query().Get("limit"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid limit parameter", nil)
			return
		}

		alerts, err := service.ListAlerts(claims.UserID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to list price alerts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list price alerts", nil)
			return
		}

		respondJSON(w, http.StatusOK, alerts)
	}
}
