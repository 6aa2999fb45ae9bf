package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"              json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"    json:"email"`
	Name         string    `gorm:"not null"                json:"name"`
	UserType     string    `gorm:"not null"                json:"user_type"`
	PasswordHash string    `gorm:"not null"                json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Supplier struct {
	ID             uuid.UUID `gorm:"primaryKey"      json:"id"`
	UserID         uuid.UUID `gorm:"index"           json:"user_id"`
	StallName      string    `gorm:"not null"        json:"stall_name"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	ContactPhone   string    `json:"contact_phone"`
	Location       string    `json:"location"`
	Rating         float64   `json:"rating"`
	DeliveryRating float64   `json:"delivery_rating"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type DiscountTier struct {
	MinQty   int     `json:"min_qty"`
	Discount float64 `json:"discount"`
}

type Product struct {
	ID                uuid.UUID `gorm:"primaryKey"      json:"id"`
	SupplierID        uuid.UUID `gorm:"index;not null"  json:"supplier_id"`
	Name              string    `gorm:"not null"        json:"name"`
	Category          string    `json:"category"`
	PricePerUnit      float64   `gorm:"not null"        json:"price_per_unit"`
	Unit              string    `json:"unit"`
	QuantityAvailable int       `json:"quantity_available"`
	// Stored and returned as-is; no pricing path reads the tiers.
	BulkDiscountTiers []DiscountTier `gorm:"serializer:json" json:"bulk_discount_tiers"`
	ImageURL          string         `json:"image_url"`
	Description       string         `json:"description"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CartLine struct {
	ProductID    uuid.UUID `json:"product_id"`
	SupplierID   uuid.UUID `json:"supplier_id"`
	Quantity     int       `json:"quantity"`
	PricePerUnit float64   `json:"price_per_unit"`
}

// Cart is persisted as a single row and always written back whole, so the
// items travel with it as one document.
type Cart struct {
	ID          uuid.UUID  `gorm:"primaryKey"           json:"id"`
	VendorID    uuid.UUID  `gorm:"uniqueIndex;not null" json:"vendor_id"`
	Items       []CartLine `gorm:"serializer:json"      json:"items"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
