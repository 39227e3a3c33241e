// Package scheduler contains the background jobs that keep derived data
// fresh.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pricepal/pricepal-api/infrastructure/repository"
	"github.com/pricepal/pricepal-api/internal/config"
	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/pricepal/pricepal-api/internal/usecases/pricing"
	"github.com/pricepal/pricepal-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type PriceAlertConfig struct {
	CronSchedule  string
	Enabled       bool
	RetentionDays int
}

// PriceAlertService recomputes every user's product summaries once a day and
// persists an alert for each product whose lowest price moved against the
// next-cheapest offer.
type PriceAlertService struct {
	scheduler           *gocron.Scheduler
	userRepo            repository.UserRepository
	entryRepo           repository.PriceEntryRepository
	alertRepo           repository.AlertRepository
	config              PriceAlertConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPriceAlertService(
	userRepo repository.UserRepository,
	entryRepo repository.PriceEntryRepository,
	alertRepo repository.AlertRepository,
	cfg *config.Config,
) *PriceAlertService {
	alertConfig := PriceAlertConfig{
		CronSchedule:  cfg.PriceAlertSync.CronSchedule,
		Enabled:       cfg.PriceAlertSync.Enabled,
		RetentionDays: cfg.PriceAlertSync.RetentionDays,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": alertConfig.CronSchedule,
		"enabled":       alertConfig.Enabled,
	}).Info("Price alert scheduler configuration loaded")

	return &PriceAlertService{
		scheduler: gocron.NewScheduler(time.UTC),
		userRepo:  userRepo,
		entryRepo: entryRepo,
		alertRepo: alertRepo,
		config:    alertConfig,
	}
}

// Start registers the cron job. A disabled scheduler still accepts manual
// runs through RunManually.
func (s *PriceAlertService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Price alert scheduler is disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunManually(); err != nil {
			logrus.WithError(err).Error("Price alert digest run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule price alert digest: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// RunManually executes one digest pass. Only one pass runs at a time.
func (s *PriceAlertService) RunManually() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return fmt.Errorf("price alert digest is already running")
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	userIDs, err := s.userRepo.ListActiveUserIDs()
	if err != nil {
		return fmt.Errorf("failed to list users for alert digest: %w", err)
	}

	logrus.WithField("users", len(userIDs)).Info("Price alert digest started")

	var failures int
	for _, userID := range userIDs {
		if err := s.processUser(userID); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Error("Failed to build alerts for user")
			failures++
		}
	}

	if s.config.RetentionDays > 0 {
		deleted, err := s.alertRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Failed to prune old alerts")
		} else if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Old alerts pruned")
		}
	}

	if failures > 0 {
		return fmt.Errorf("price alert digest finished with %d failed users", failures)
	}

	logrus.Info("Price alert digest completed")
	return nil
}

func (s *PriceAlertService) processUser(userID int) error {
	observations, err := s.entryRepo.ListObservations(userID, 0)
	if err != nil {
		return err
	}

	for _, alert := range buildAlerts(userID, pricing.SummarizeProducts(observations)) {
		if err := s.alertRepo.SaveAlert(alert); err != nil {
			return err
		}
	}

	return nil
}

// buildAlerts turns nonzero price changes into alert rows. Positive change
// means the current lowest price sits above the next-cheapest offer, which
// the dashboard reads as an increase.
func buildAlerts(userID int, summaries []domain.ProductSummary) []*domain.PriceAlert {
	alerts := make([]*domain.PriceAlert, 0)

	for _, summary := range summaries {
		change := utils.RoundWithTwoDecimalPlace(summary.PriceChangePercent)
		if change == 0 {
			continue
		}

		alertType := domain.AlertTypeSuccess
		verb := "dropped"
		if change > 0 {
			alertType = domain.AlertTypeWarning
			verb = "increased"
		}

		id, err := utils.GenerateID()
		if err != nil {
			continue
		}

		alerts = append(alerts, &domain.PriceAlert{
			ID:            id,
			OwnerID:       userID,
			ProductName:   summary.Name,
			Message:       fmt.Sprintf("%s prices %s %.1f%%", summary.Name, verb, abs(change)),
			Type:          alertType,
			ChangePercent: change,
		})
	}

	return alerts
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Status reports whether a digest is running and when the last one started
// and finished.
func (s *PriceAlertService) Status() (running bool, startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}
