package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/infrastructure/repository"
	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/pricepal/pricepal-api/internal/usecases/pricing"
	"github.com/pricepal/pricepal-api/pkg/apiErrors"
	"github.com/pricepal/pricepal-api/pkg/log"
)

func ListPriceEntries(service pricing.PricingService) http.HandlerFunc {
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

		entries, err := service.ListPriceEntries(claims.UserID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("prices: failed to list entries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list price entries", nil)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

func CreatePriceEntry(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		var req domain.CreatePriceEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		entry, err := service.AddPriceEntry(claims.UserID, &req)
		if err != nil {
			switch {
			case errors.Is(err, pricing.ErrMissingRequiredData):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Product, supplier and unit are required", nil)
			case errors.Is(err, pricing.ErrNegativePrice):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Price must not be negative", nil)
			case errors.Is(err, pricing.ErrUnknownProduct), errors.Is(err, pricing.ErrUnknownSupplier):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			default:
				log.ForContext(r.Context()).WithError(err).Error("prices: failed to create entry")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to record price entry", nil)
			}
			return
		}

		respondJSON(w, http.StatusCreated, entry)
	}
}

func DeletePriceEntry(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Price entry ID is required", nil)
			return
		}

		if err := service.DeletePriceEntry(claims.UserID, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Price entry not found", nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("prices: failed to delete entry")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to delete price entry", nil)
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	}
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non-negative integer")
	}

	return limit, nil
}
