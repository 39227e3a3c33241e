package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/pricepal/pricepal-api/pkg/apiErrors"
	"github.com/pricepal/pricepal-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// claimsFromContext pulls the authenticated user's claims, writing an error
// response when the middleware did not run.
func claimsFromContext(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
		return nil, false
	}
	return claims, true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error(err)
	}
}
