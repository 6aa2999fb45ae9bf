package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/micromarket/backend/internal/logging"
	"github.com/micromarket/backend/internal/models"
	"github.com/micromarket/backend/internal/repo"
)

type DemoService struct {
	Repo *repo.GormRepo
}

// Init seeds the fixed demo suppliers and their products. It is a no-op once
// any supplier exists, so repeated calls leave the catalog unchanged.
func (s *DemoService) Init(ctx context.Context) (created bool, err error) {
	l := logging.FromContext(ctx).With("svc", "demo.init")

	total, err := s.Repo.CountSuppliers(ctx)
	if err != nil {
		return false, err
	}
	if total > 0 {
		l.Info("demo data already present", "suppliers", total)
		return false, nil
	}

	suppliers := demoSuppliers()
	if err := s.Repo.CreateSuppliers(ctx, suppliers); err != nil {
		return false, err
	}

	products := demoProducts(suppliers)
	if err := s.Repo.CreateProducts(ctx, products); err != nil {
		return false, err
	}

	l.Info("demo data initialized", "suppliers", len(suppliers), "products", len(products))
	return true, nil
}

func demoSuppliers() []models.Supplier {
	// Demo suppliers have no backing user record; the owning ids are freshly
	// generated and the foreign key is not enforced.
	return []models.Supplier{
		{
			UserID:         uuid.New(),
			StallName:      "Fresh Valley Farms",
			Description:    "Premium fresh vegetables and herbs directly from our organic farm",
			ImageURL:       "https://images.unsplash.com/photo-1532079563951-0c8a7dacddb3",
			ContactPhone:   "+1-555-0123",
			Location:       "Central Market District",
			Rating:         4.8,
			DeliveryRating: 4.5,
		},
		{
			UserID:         uuid.New(),
			StallName:      "Tropical Fruits Paradise",
			Description:    "Exotic fruits and seasonal produce from local and international sources",
			ImageURL:       "https://images.unsplash.com/photo-1488459716781-31db52582fe9",
			ContactPhone:   "+1-555-0456",
			Location:       "East Market Zone",
			Rating:         4.6,
			DeliveryRating: 4.3,
		},
		{
			UserID:         uuid.New(),
			StallName:      "Spice & Herb Corner",
			Description:    "Authentic spices, dried herbs, and specialty seasonings for street food vendors",
			ImageURL:       "https://images.unsplash.com/photo-1550989460-0adf9ea622e2",
			ContactPhone:   "+1-555-0789",
			Location:       "Spice Alley",
			Rating:         4.9,
			DeliveryRating: 4.7,
		},
	}
}

func demoProducts(suppliers []models.Supplier) []models.Product {
	categories := []string{"Vegetables", "Fruits", "Spices", "Herbs"}
	tiers := []models.DiscountTier{
		{MinQty: 10, Discount: 0.05},
		{MinQty: 25, Discount: 0.10},
		{MinQty: 50, Discount: 0.15},
	}

	var products []models.Product
	for _, sup := range suppliers {
		for i := 0; i < 5; i++ {
			category := categories[i%len(categories)]
			products = append(products, models.Product{
				SupplierID:        sup.ID,
				Name:              fmt.Sprintf("Product %d", i+1),
				Category:          category,
				PricePerUnit:      math.Round((2.5+float64(i)*1.2)*100) / 100,
				Unit:              "kg",
				QuantityAvailable: 100 + i*20,
				BulkDiscountTiers: tiers,
				ImageURL:          sup.ImageURL,
				Description:       fmt.Sprintf("Fresh %s from %s", strings.ToLower(category), sup.StallName),
			})
		}
	}
	return products
}
