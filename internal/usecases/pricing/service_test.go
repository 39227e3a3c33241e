package pricing

import (
	"testing"

	"github.com/pricepal/pricepal-api/infrastructure/repository/mocks"
	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_AddPriceEntry(t *testing.T) {
	product := &domain.Product{ID: "prod-1", Name: "Rice", Category: "grains", Unit: "kg"}
	supplier := &domain.Supplier{ID: "sup-1", Name: "A"}

	tests := []struct {
		name    string
		request *domain.CreatePriceEntryRequest
		setup   func(entryRepo *mocks.MockPriceEntryRepository, productRepo *mocks.MockProductRepository, supplierRepo *mocks.MockSupplierRepository)
		wantErr error
	}{
		{
			name:    "records a valid entry",
			request: &domain.CreatePriceEntryRequest{ProductID: "prod-1", SupplierID: "sup-1", Price: 450, Unit: "kg"},
			setup: func(entryRepo *mocks.MockPriceEntryRepository, productRepo *mocks.MockProductRepository, supplierRepo *mocks.MockSupplierRepository) {
				productRepo.EXPECT().GetProductByID("prod-1", 1).Return(product, nil)
				supplierRepo.EXPECT().GetSupplierByID("sup-1", 1).Return(supplier, nil)
				entryRepo.EXPECT().CreatePriceEntry(gomock.Any()).DoAndReturn(func(entry *domain.PriceObservation) error {
					assert.NotEmpty(t, entry.ID)
					assert.Equal(t, "Rice", entry.ProductName)
					assert.Equal(t, "A", entry.SupplierName)
					assert.Equal(t, 450.0, entry.Price)
					assert.Equal(t, 1, entry.OwnerID)
					return nil
				})
			},
		},
		{
			name:    "rejects missing identifiers",
			request: &domain.CreatePriceEntryRequest{SupplierID: "sup-1", Price: 450, Unit: "kg"},
			setup: func(entryRepo *mocks.MockPriceEntryRepository, productRepo *mocks.MockProductRepository, supplierRepo *mocks.MockSupplierRepository) {
			},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "rejects negative price",
			request: &domain.CreatePriceEntryRequest{ProductID: "prod-1", SupplierID: "sup-1", Price: -1, Unit: "kg"},
			setup: func(entryRepo *mocks.MockPriceEntryRepository, productRepo *mocks.MockProductRepository, supplierRepo *mocks.MockSupplierRepository) {
			},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "rejects product outside the caller's catalog",
			request: &domain.CreatePriceEntryRequest{ProductID: "prod-9", SupplierID: "sup-1", Price: 450, Unit: "kg"},
			setup: func(entryRepo *mocks.MockPriceEntryRepository, productRepo *mocks.MockProductRepository, supplierRepo *mocks.MockSupplierRepository) {
				productRepo.EXPECT().GetProductByID("prod-9", 1).Return(nil, nil)
			},
			wantErr: ErrUnknownProduct,
		},
		{
			name:    "rejects supplier outside the caller's catalog",
			request: &domain.CreatePriceEntryRequest{ProductID: "prod-1", SupplierID: "sup-9", Price: 450, Unit: "kg"},
			setup: func(entryRepo *mocks.MockPriceEntryRepository, productRepo *mocks.MockProductRepository, supplierRepo *mocks.MockSupplierRepository) {
				productRepo.EXPECT().GetProductByID("prod-1", 1).Return(product, nil)
				supplierRepo.EXPECT().GetSupplierByID("sup-9", 1).Return(nil, nil)
			},
			wantErr: ErrUnknownSupplier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			entryRepo := mocks.NewMockPriceEntryRepository(ctrl)
			productRepo := mocks.NewMockProductRepository(ctrl)
			supplierRepo := mocks.NewMockSupplierRepository(ctrl)
			alertRepo := mocks.NewMockAlertRepository(ctrl)

			tt.setup(entryRepo, productRepo, supplierRepo)

			service := NewService(entryRepo, productRepo, supplierRepo, alertRepo)

			entry, err := service.AddPriceEntry(1, tt.request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, entry)
		})
	}
}

func TestService_GetComparisonTable_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockPriceEntryRepository(ctrl)
	entryRepo.EXPECT().ListObservations(1, DefaultComparisonLimit).Return([]domain.PriceObservation{}, nil)

	service := NewService(entryRepo, nil, nil, nil)

	rows, err := service.GetComparisonTable(1, 0)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestService_GetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entryRepo := mocks.NewMockPriceEntryRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	supplierRepo := mocks.NewMockSupplierRepository(ctrl)

	productRepo.EXPECT().CountProducts(1).Return(4, nil)
	supplierRepo.EXPECT().CountSuppliers(1).Return(2, nil)
	entryRepo.EXPECT().CountPriceEntries(1).Return(17, nil)

	service := NewService(entryRepo, productRepo, supplierRepo, nil)

	stats, err := service.GetDashboardStats(1)
	assert.NoError(t, err)
	assert.Equal(t, &domain.DashboardStats{TotalProducts: 4, TotalSuppliers: 2, TotalEntries: 17}, stats)
}
