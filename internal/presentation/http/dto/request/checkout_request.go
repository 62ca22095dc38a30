package request

import "github.com/shopspring/decimal"

// CheckoutItem is one requested basket entry.
type CheckoutItem struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

// CheckoutRequest represents the checkout input. Items keep their request
// order; duplicate product IDs are merged during basket resolution.
type CheckoutRequest struct {
	Items            []CheckoutItem   `json:"items" binding:"required,min=1,dive"`
	DiscountCard     *int             `json:"discount_card,omitempty"`
	BalanceDebitCard *decimal.Decimal `json:"balance_debit_card,omitempty"`
}
