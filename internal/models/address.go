package models

import "time"

type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Street   string `gorm:"size:255;not null" json:"street"`
	Area     string `gorm:"size:100;not null" json:"area"`
	City     string `gorm:"size:100;not null" json:"city"`
	Province string `gorm:"size:100;not null" json:"province"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
