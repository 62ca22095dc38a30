package entity

import (
	"github.com/shopspring/decimal"

	"github.com/quickmart/checkout-api/pkg/money"
)

// DefaultDiscountRate is the percentage applied when a presented card number
// is not on file. Card lookup never fails: an unknown number gets a synthetic
// card at this rate.
var DefaultDiscountRate = decimal.RequireFromString("2.00")

// DiscountCard represents a customer discount card with a percentage rate.
type DiscountCard struct {
	Number       int             `gorm:"primary_key" json:"number"`
	DiscountRate decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"discount_rate"`
}

// NewDiscountCard builds a card, normalizing the rate to two decimal places.
func NewDiscountCard(number int, rate decimal.Decimal) DiscountCard {
	return DiscountCard{
		Number:       number,
		DiscountRate: money.Round2(rate),
	}
}

// NewDefaultCard synthesizes the default card for a number that is not on
// file. It carries the requested number but the default rate.
func NewDefaultCard(number int) DiscountCard {
	return NewDiscountCard(number, DefaultDiscountRate)
}

// TableName returns the table name for the DiscountCard model
func (DiscountCard) TableName() string {
	return "discount_cards"
}
