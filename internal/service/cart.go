package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/micromarket/backend/internal/events"
	"github.com/micromarket/backend/internal/logging"
	"github.com/micromarket/backend/internal/models"
	"github.com/micromarket/backend/internal/repo"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

// GetOrCreate returns the vendor's single cart, creating an empty one on
// first access. Repeated calls return the same cart.
func (s *CartService) GetOrCreate(ctx context.Context, vendorID uuid.UUID) (*models.Cart, error) {
	cart, err := s.Repo.GetCartByVendor(ctx, vendorID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repo.ErrCartNotFound) {
		return nil, err
	}

	empty := models.Cart{
		VendorID: vendorID,
		Items:    []models.CartLine{},
	}
	if err := s.Repo.CreateCart(ctx, &empty); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("cart_created", "vendor_id", vendorID)
	return &empty, nil
}

// AddItem merges a line into the vendor's cart. A line already holding the
// product keeps its original unit price and only gains quantity; the total is
// recomputed from scratch over all lines and the whole cart is written back.
func (s *CartService) AddItem(ctx context.Context, vendorID uuid.UUID, line models.CartLine) (*models.Cart, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add_item", "vendor_id", vendorID)

	if line.ProductID == uuid.Nil {
		return nil, fmt.Errorf("product_id required: %w", ErrValidation)
	}
	if line.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}

	cart, err := s.GetOrCreate(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == line.ProductID {
			cart.Items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, line)
	}

	cart.TotalAmount = recomputeTotal(cart.Items)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.Repo.ReplaceCart(ctx, cart); err != nil {
		return nil, err
	}

	s.publish(ctx, cart.ID.String(), map[string]any{
		"type":       "cart_item_added",
		"vendor_id":  vendorID.String(),
		"product_id": line.ProductID.String(),
		"quantity":   line.Quantity,
	})

	l.Info("cart_item_added", "product_id", line.ProductID, "total", cart.TotalAmount)
	return cart, nil
}

// Full recomputation on every mutation; the cached total never drifts from
// the lines.
func recomputeTotal(items []models.CartLine) float64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.PricePerUnit
	}
	return total
}

func (s *CartService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicCartEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", events.TopicCartEvents, "error", err)
	}
}
