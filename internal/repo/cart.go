package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/micromarket/backend/internal/models"
)

func (r *GormRepo) GetCartByVendor(ctx context.Context, vendorID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Where("vendor_id = ?", vendorID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *GormRepo) CreateCart(ctx context.Context, cart *models.Cart) error {
	return r.DB.WithContext(ctx).Create(cart).Error
}

// ReplaceCart writes the whole cart row back, items included. The write is
// the single atomic step of a cart mutation; two concurrent mutations of the
// same cart race and the last writer wins.
func (r *GormRepo) ReplaceCart(ctx context.Context, cart *models.Cart) error {
	return r.DB.WithContext(ctx).Save(cart).Error
}
