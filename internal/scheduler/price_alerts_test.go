package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/pricepal/pricepal-api/infrastructure/repository/mocks"
	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func observation(product, supplier string, price float64) domain.PriceObservation {
	return domain.PriceObservation{
		ID:           product + "-" + supplier,
		ProductID:    "prod-" + product,
		ProductName:  product,
		SupplierID:   "sup-" + supplier,
		SupplierName: supplier,
		Price:        price,
		Unit:         "kg",
		CreatedAt:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestPriceAlertService_RunManually(t *testing.T) {
	tests := []struct {
		name      string
		retention int
		setup     func(userRepo *mocks.MockUserRepository, entryRepo *mocks.MockPriceEntryRepository, alertRepo *mocks.MockAlertRepository)
		wantErr   bool
	}{
		{
			name:      "saves a drop alert for the cheaper offer",
			retention: 30,
			setup: func(userRepo *mocks.MockUserRepository, entryRepo *mocks.MockPriceEntryRepository, alertRepo *mocks.MockAlertRepository) {
				userRepo.EXPECT().ListActiveUserIDs().Return([]int{1}, nil)
				entryRepo.EXPECT().ListObservations(1, 0).Return([]domain.PriceObservation{
					observation("Rice", "A", 450),
					observation("Rice", "B", 500),
				}, nil)
				alertRepo.EXPECT().SaveAlert(gomock.Any()).DoAndReturn(func(alert *domain.PriceAlert) error {
					assert.Equal(t, 1, alert.OwnerID)
					assert.Equal(t, "Rice", alert.ProductName)
					assert.Equal(t, domain.AlertTypeSuccess, alert.Type)
					assert.Equal(t, -10.0, alert.ChangePercent)
					assert.Equal(t, "Rice prices dropped 10.0%", alert.Message)
					assert.NotEmpty(t, alert.ID)
					return nil
				})
				alertRepo.EXPECT().DeleteOlderThan(30).Return(int64(0), nil)
			},
		},
		{
			name:      "skips products with zero change",
			retention: 0,
			setup: func(userRepo *mocks.MockUserRepository, entryRepo *mocks.MockPriceEntryRepository, alertRepo *mocks.MockAlertRepository) {
				userRepo.EXPECT().ListActiveUserIDs().Return([]int{1}, nil)
				entryRepo.EXPECT().ListObservations(1, 0).Return([]domain.PriceObservation{
					observation("Rice", "A", 450),
				}, nil)
			},
		},
		{
			name:      "reports failed users",
			retention: 0,
			setup: func(userRepo *mocks.MockUserRepository, entryRepo *mocks.MockPriceEntryRepository, alertRepo *mocks.MockAlertRepository) {
				userRepo.EXPECT().ListActiveUserIDs().Return([]int{1, 2}, nil)
				entryRepo.EXPECT().ListObservations(1, 0).Return(nil, errors.New("connection reset"))
				entryRepo.EXPECT().ListObservations(2, 0).Return([]domain.PriceObservation{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "fails when users cannot be listed",
			retention: 0,
			setup: func(userRepo *mocks.MockUserRepository, entryRepo *mocks.MockPriceEntryRepository, alertRepo *mocks.MockAlertRepository) {
				userRepo.EXPECT().ListActiveUserIDs().Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			entryRepo := mocks.NewMockPriceEntryRepository(ctrl)
			alertRepo := mocks.NewMockAlertRepository(ctrl)

			tt.setup(userRepo, entryRepo, alertRepo)

			service := &PriceAlertService{
				userRepo:  userRepo,
				entryRepo: entryRepo,
				alertRepo: alertRepo,
				config:    PriceAlertConfig{RetentionDays: tt.retention},
			}

			err := service.RunManually()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			running, startedAt, completedAt := service.Status()
			assert.False(t, running)
			assert.False(t, startedAt.IsZero())
			assert.False(t, completedAt.IsZero())
		})
	}
}

func TestBuildAlerts(t *testing.T) {
	summaries := []domain.ProductSummary{
		{Name: "Rice", PriceChangePercent: -10},
		{Name: "Sugar", PriceChangePercent: 0},
		{Name: "Beans", PriceChangePercent: 12.5},
	}

	alerts := buildAlerts(7, summaries)

	assert.Len(t, alerts, 2)

	assert.Equal(t, "Rice", alerts[0].ProductName)
	assert.Equal(t, domain.AlertTypeSuccess, alerts[0].Type)
	assert.Equal(t, "Rice prices dropped 10.0%", alerts[0].Message)

	assert.Equal(t, "Beans", alerts[1].ProductName)
	assert.Equal(t, domain.AlertTypeWarning, alerts[1].Type)
	assert.Equal(t, "Beans prices increased 12.5%", alerts[1].Message)
	assert.Equal(t, 7, alerts[1].OwnerID)
}
