// Package pricing records price entries and derives the dashboard views
// from them: product summaries, the comparison table, trend series and the
// cross-supplier matrix.
package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/infrastructure/repository"
	"github.com/pricepal/pricepal-api/internal/domain"
	"github.com/pricepal/pricepal-api/pkg/log"
)

var (
	ErrMissingRequiredData = errors.New("missing required data")
	ErrNegativePrice       = errors.New("price must not be negative")
	ErrUnknownProduct      = errors.New("product is not in the catalog")
	ErrUnknownSupplier     = errors.New("supplier is not in the catalog")
)

// DefaultComparisonLimit caps the comparison table to the most recent
// observations when the caller does not ask for a specific window.
const DefaultComparisonLimit = 10

type PricingService interface {
	AddPriceEntry(ownerID int, req *domain.CreatePriceEntryRequest) (*domain.PriceObservation, error)
	ListPriceEntries(ownerID int, limit int) ([]domain.PriceObservation, error)
	DeletePriceEntry(ownerID int, id string) error

	GetProductSummaries(ownerID int) ([]domain.ProductSummary, error)
	GetComparisonTable(ownerID int, limit int) ([]domain.ComparisonRow, error)
	GetTrendSeries(ownerID int, productID, supplierID string) ([]domain.TrendPoint, error)
	GetSupplierMatrix(ownerID int) ([]domain.SupplierComparisonRow, error)
	GetDashboardStats(ownerID int) (*domain.DashboardStats, error)
	ListAlerts(ownerID int, limit int) ([]*domain.PriceAlert, error)
}

type Service struct {
	entryRepo    repository.PriceEntryRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	alertRepo    repository.AlertRepository
}

func NewService(
	entryRepo repository.PriceEntryRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	alertRepo repository.AlertRepository,
) PricingService {
	return &Service{
		entryRepo:    entryRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		alertRepo:    alertRepo,
	}
}

// AddPriceEntry validates the request against the caller's catalog and
// records the observation. Validation happens here, at the data-entry
// boundary; the aggregation functions never reject input.
func (s *Service) AddPriceEntry(ownerID int, req *domain.CreatePriceEntryRequest) (*domain.PriceObservation, error) {
	if req.ProductID == "" || req.SupplierID == "" || req.Unit == "" {
		return nil, ErrMissingRequiredData
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}

	product, err := s.productRepo.GetProductByID(req.ProductID, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrUnknownProduct
	}

	supplier, err := s.supplierRepo.GetSupplierByID(req.SupplierID, ownerID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrUnknownSupplier
	}

	entry := &domain.PriceObservation{
		ID:               uuid.NewString(),
		ProductID:        product.ID,
		ProductName:      product.Name,
		ProductCategory:  product.Category,
		SupplierID:       supplier.ID,
		SupplierName:     supplier.Name,
		SupplierLocation: supplier.Location,
		Price:            req.Price,
		Unit:             req.Unit,
		Notes:            req.Notes,
		OwnerID:          ownerID,
	}

	if err := s.entryRepo.CreatePriceEntry(entry); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"user_id":  ownerID,
		"product":  product.Name,
		"supplier": supplier.Name,
	}).Info("pricing: price entry recorded")

	return entry, nil
}

func (s *Service) ListPriceEntries(ownerID int, limit int) ([]domain.PriceObservation, error) {
	return s.entryRepo.ListObservations(ownerID, limit)
}

func (s *Service) DeletePriceEntry(ownerID int, id string) error {
	return s.entryRepo.DeletePriceEntry(id, ownerID)
}

func (s *Service) GetProductSummaries(ownerID int) ([]domain.ProductSummary, error) {
	observations, err := s.entryRepo.ListObservations(ownerID, 0)
	if err != nil {
		return nil, err
	}

	return SummarizeProducts(observations), nil
}

func (s *Service) GetComparisonTable(ownerID int, limit int) ([]domain.ComparisonRow, error) {
	if limit <= 0 {
		limit = DefaultComparisonLimit
	}

	observations, err := s.entryRepo.ListObservations(ownerID, limit)
	if err != nil {
		return nil, err
	}

	return BuildComparisonTable(observations, time.Now()), nil
}

func (s *Service) GetTrendSeries(ownerID int, productID, supplierID string) ([]domain.TrendPoint, error) {
	observations, err := s.entryRepo.ListObservations(ownerID, 0)
	if err != nil {
		return nil, err
	}

	return BuildTrendSeries(observations, productID, supplierID), nil
}

func (s *Service) GetSupplierMatrix(ownerID int) ([]domain.SupplierComparisonRow, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ownerID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListProducts(ownerID)
	if err != nil {
		return nil, err
	}

	observations, err := s.entryRepo.ListObservations(ownerID, 0)
	if err != nil {
		return nil, err
	}

	return BuildSupplierMatrix(suppliers, products, observations), nil
}

func (s *Service) GetDashboardStats(ownerID int) (*domain.DashboardStats, error) {
	totalProducts, err := s.productRepo.CountProducts(ownerID)
	if err != nil {
		return nil, err
	}

	totalSuppliers, err := s.supplierRepo.CountSuppliers(ownerID)
	if err != nil {
		return nil, err
	}

	totalEntries, err := s.entryRepo.CountPriceEntries(ownerID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalProducts:  totalProducts,
		TotalSuppliers: totalSuppliers,
		TotalEntries:   totalEntries,
	}, nil
}

func (s *Service) ListAlerts(ownerID int, limit int) ([]*domain.PriceAlert, error) {
	return s.alertRepo.ListAlerts(ownerID, limit)
}
