package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one resolved basket entry: a product and the total quantity
// requested for it. Basket resolution merges duplicate product IDs into a
// single LineItem before any discount evaluation.
type LineItem struct {
	Product  Product
	Quantity int
}

// ReceiptLine is a fully priced line on a receipt. All monetary fields are at
// two decimal places, rounded half-up at each computation step.
type ReceiptLine struct {
	Product        Product         `json:"product"`
	Quantity       int             `json:"quantity"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountLabel  string          `json:"discount_label,omitempty"`
	NetTotal       decimal.Decimal `json:"net_total"`
}

// Receipt is a value object representing one completed checkout. It is
// composed once by the receipt calculator; formatters project it without
// recomputing any amount.
type Receipt struct {
	Number               string           `json:"number"`
	Timestamp            time.Time        `json:"timestamp"`
	Lines                []ReceiptLine    `json:"lines"`
	DiscountCard         *DiscountCard    `json:"discount_card,omitempty"`
	GrossTotalSum        decimal.Decimal  `json:"gross_total_sum"`
	TotalDiscountSum     decimal.Decimal  `json:"total_discount_sum"`
	NetTotalSum          decimal.Decimal  `json:"net_total_sum"`
	AccountBalance       *decimal.Decimal `json:"account_balance,omitempty"`
	BalanceAfterPurchase *decimal.Decimal `json:"balance_after_purchase,omitempty"`
}
