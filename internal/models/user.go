package models

import "time"

const (
	RoleCustomer  = "customer"
	RoleShopOwner = "shopOwner"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	ImageURL     string `gorm:"size:255" json:"image_url"`
	Role         string `gorm:"size:20;default:'customer'" json:"role"`

	AddressID *uint    `json:"address_id"`
	Address   *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"address,omitempty"`

	PaymentID *uint    `json:"payment_id"`
	Payment   *Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"payment,omitempty"`

	RefreshToken string `gorm:"size:512" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
