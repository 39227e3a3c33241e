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

func ListProducts(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		products, err := service.ListProducts(claims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list products", nil)
			return
		}

		respondJSON(w, http.StatusOK, products)
	}
}

func CreateProduct(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		var req domain.CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		product, err := service.CreateProduct(claims.UserID, &req)
		if err != nil {
			if errors.Is(err, catalog.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Name, category and unit are required", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to create product", nil)
			return
		}

		respondJSON(w, http.StatusCreated, product)
	}
}

func GetProduct(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Product ID is required", nil)
			return
		}

		product, err := service.GetProduct(claims.UserID, id)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load product", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found", nil)
			return
		}

		respondJSON(w, http.StatusOK, product)
	}
}

func DeleteProduct(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Product ID is required", nil)
			return
		}

		if err := service.DeleteProduct(claims.UserID, id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Product not found", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to delete product", nil)
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	}
}
