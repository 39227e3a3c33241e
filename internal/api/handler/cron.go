package handler

import (
	"net/http"
	"time"

	"github.com/pricepal/pricepal-api/internal/scheduler"
	"github.com/pricepal/pricepal-api/pkg/log"
)

type cronStatusResponse struct {
	Running         bool   `json:"running"`
	LastStartedAt   string `json:"last_started_at,omitempty"`
	LastCompletedAt string `json:"last_completed_at,omitempty"`
}

// RunPriceAlertJob triggers one digest pass in the background. The response
// only acknowledges the trigger; progress is visible through GetCronStatus.
func RunPriceAlertJob(alertService *scheduler.PriceAlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if running, _, _ := alertService.Status(); running {
			respondJSON(w, http.StatusConflict, map[string]string{
				"message": "Price alert digest is already running",
			})
			return
		}

		go func() {
			if err := alertService.RunManually(); err != nil {
				log.L.WithError(err).Error("cron: manual price alert digest failed")
			}
		}()

		respondJSON(w, http.StatusAccepted, map[string]string{
			"message": "Price alert digest started",
		})
	}
}

func GetCronStatus(alertService *scheduler.PriceAlertService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		running, startedAt, completedAt := alertService.Status()

		resp := cronStatusResponse{Running: running}
		if !startedAt.IsZero() {
			resp.LastStartedAt = startedAt.UTC().Format(time.RFC3339)
		}
		if !completedAt.IsZero() {
			resp.LastCompletedAt = completedAt.UTC().Format(time.RFC3339)
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
