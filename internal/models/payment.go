package models

import "time"

const (
	PaymentMethodCreditCard   = "credit card"
	PaymentMethodDebitCard    = "debit card"
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank transfer"
)

// Card fields are required for every method except cash; the handler
// enforces that, the schema stays permissive.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Method         string `gorm:"size:20;not null" json:"payment_method"`
	CardNumber     string `gorm:"size:30" json:"card_number,omitempty"`
	ExpiryDate     string `gorm:"size:5" json:"expiry_date,omitempty"` // MM/YY
	CardHolderName string `gorm:"size:100" json:"card_holder_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash, PaymentMethodBankTransfer:
		return true
	}
	return false
}
