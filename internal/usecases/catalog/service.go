// Package catalog manages the per-user product and supplier catalogs.
package catalog

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pricepal/pricepal-api/infrastructure/repository"
	"github.com/pricepal/pricepal-api/internal/domain"
)

var (
	ErrMissingRequiredData = errors.New("missing required data")
	ErrNotFound            = repository.ErrNotFound
)

type CatalogService interface {
	CreateProduct(ownerID int, req *domain.CreateProductRequest) (*domain.Product, error)
	GetProduct(ownerID int, id string) (*domain.Product, error)
	ListProducts(ownerID int) ([]domain.Product, error)
	DeleteProduct(ownerID int, id string) error

	CreateSupplier(ownerID int, req *domain.CreateSupplierRequest) (*domain.Supplier, error)
	GetSupplier(ownerID int, id string) (*domain.Supplier, error)
	ListSuppliers(ownerID int) ([]domain.Supplier, error)
	DeleteSupplier(ownerID int, id string) error
}

type Service struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

func NewService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) CatalogService {
	return &Service{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *Service) CreateProduct(ownerID int, req *domain.CreateProductRequest) (*domain.Product, error) {
	if req.Name == "" || req.Category == "" || req.Unit == "" {
		return nil, ErrMissingRequiredData
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Unit:        req.Unit,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	return s.productRepo.CreateProduct(product)
}

func (s *Service) GetProduct(ownerID int, id string) (*domain.Product, error) {
	return s.productRepo.GetProductByID(id, ownerID)
}

func (s *Service) ListProducts(ownerID int) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ownerID)
}

func (s *Service) DeleteProduct(ownerID int, id string) error {
	return s.productRepo.DeleteProduct(id, ownerID)
}

func (s *Service) CreateSupplier(ownerID int, req *domain.CreateSupplierRequest) (*domain.Supplier, error) {
	if req.Name == "" {
		return nil, ErrMissingRequiredData
	}

	supplier := &domain.Supplier{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Contact:  req.Contact,
		Location: req.Location,
		Email:    req.Email,
		Rating:   req.Rating,
		OwnerID:  ownerID,
	}

	return s.supplierRepo.CreateSupplier(supplier)
}

func (s *Service) GetSupplier(ownerID int, id string) (*domain.Supplier, error) {
	return s.supplierRepo.GetSupplierByID(id, ownerID)
}

func (s *Service) ListSuppliers(ownerID int) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ownerID)
}

func (s *Service) DeleteSupplier(ownerID int, id string) error {
	return s.supplierRepo.DeleteSupplier(id, ownerID)
}
