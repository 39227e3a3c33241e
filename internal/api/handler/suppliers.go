package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/pricepal/pricepal-api/internal/usecases/catalog"
	"github.com/pricepal/pricepal-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListSuppliers(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		suppliers, err := service.ListSuppliers(claims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list suppliers", nil)
			return
		}

		respondJSON(w, http.StatusOK, suppliers)
	}
}

func CreateSupplier(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		var req domain.CreateSupplierRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		supplier, err := service.CreateSupplier(claims.UserID, &req)
		if err != nil {
			if errors.Is(err, catalog.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Supplier name is required", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to create supplier", nil)
			return
		}

		respondJSON(w, http.StatusCreated, supplier)
	}
}

func GetSupplier(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Supplier ID is required", nil)
			return
		}

		supplier, err := service.GetSupplier(claims.UserID, id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load supplier", nil)
			return
		}

		if supplier == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Supplier not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, supplier)
	}
}

func DeleteSupplier(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Supplier ID is required", nil)
			return
		}

		if err := service.DeleteSupplier(claims.UserID, id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Supplier not found", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to delete supplier", nil)
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	}
}
