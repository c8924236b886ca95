package models

import "time"

const (
	ServiceTirePuncture  = "Tire Puncture"
	ServiceEngineProblem = "Engine Problem"
	ServiceOther         = "Other"
)

func IsValidService(s string) bool {
	switch s {
	case ServiceTirePuncture, ServiceEngineProblem, ServiceOther:
		return true
	}
	return false
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"not null" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	ShopID uint `gorm:"not null" json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shop,omitempty"`

	Service string `gorm:"size:30;not null" json:"service"`
	Status  string `gorm:"size:20;default:'Pending'" json:"status"`

	// Address references snapshotted at booking time.
	CustomerAddressID uint     `gorm:"not null" json:"customer_address_id"`
	CustomerAddress   *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:CustomerAddressID" json:"customer_address,omitempty"`

	ShopAddressID uint     `gorm:"not null" json:"shop_address_id"`
	ShopAddress   *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:ShopAddressID" json:"shop_address,omitempty"`

	PaymentID *uint    `json:"payment_id"`
	Payment   *Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"payment,omitempty"`

	AppointmentAt time.Time `gorm:"not null" json:"appointment_date"`
	Notes         string    `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
