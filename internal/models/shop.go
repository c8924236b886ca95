package models

import "time"

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"uniqueIndex;not null" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner,omitempty"`

	Name string `gorm:"size:100;uniqueIndex;not null" json:"shop_name"`

	AddressID *uint    `json:"address_id"`
	Address   *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shop_address,omitempty"`

	ImageURL string `gorm:"size:255" json:"shop_image"`

	ServicesOffered []string `gorm:"serializer:json" json:"services_offered"`
	NumberOfWorkers int      `json:"number_of_workers"`

	OpenTime  string `gorm:"size:10" json:"open_time"`  // e.g. "08:00 AM"
	CloseTime string `gorm:"size:10" json:"close_time"` // e.g. "06:00 PM"

	// Arithmetic mean over all reviews, rewritten on each new review.
	Rating float64 `gorm:"default:0" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
