package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/micromarket/backend/internal/models"
)

func (r *GormRepo) ListSuppliers(ctx context.Context, offset, limit int) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.DB.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *GormRepo) ListSupplierProducts(ctx context.Context, supplierID uuid.UUID, offset, limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) CountSuppliers(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Supplier{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) CreateSuppliers(ctx context.Context, suppliers []models.Supplier) error {
	return r.DB.WithContext(ctx).Create(&suppliers).Error
}

func (r *GormRepo) CreateProducts(ctx context.Context, products []models.Product) error {
	return r.DB.WithContext(ctx).Create(&products).Error
}
