package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/micromarket/backend/internal/models"
	"github.com/micromarket/backend/internal/repo"
	"github.com/micromarket/backend/internal/util"
)

// CatalogService is read-only: suppliers and products enter the store through
// demo seeding, never through the API.
type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) ListSuppliers(ctx context.Context, page, size int) ([]models.Supplier, error) {
	offset, limit := util.Calculate(page, size)
	suppliers, err := s.Repo.ListSuppliers(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return suppliers, nil
}

func (s *CatalogService) ListSupplierProducts(ctx context.Context, supplierID uuid.UUID, page, size int) ([]models.Product, error) {
	offset, limit := util.Calculate(page, size)
	products, err := s.Repo.ListSupplierProducts(ctx, supplierID, offset, limit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
