package response

import (
	"time"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/pkg/money"
)

// ReceiptLineResponse is one priced line of the receipt. Monetary fields are
// rendered at a fixed two decimals so clients never see scale drift.
type ReceiptLineResponse struct {
	ProductID      int    `json:"product_id"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPrice      string `json:"unit_price"`
	GrossTotal     string `json:"gross_total"`
	DiscountAmount string `json:"discount_amount"`
	DiscountLabel  string `json:"discount_label,omitempty"`
	NetTotal       string `json:"net_total"`
}

// DiscountCardResponse describes the card applied to the receipt.
type DiscountCardResponse struct {
	Number       int    `json:"number"`
	DiscountRate string `json:"discount_rate"`
}

// ReceiptResponse is the JSON projection of a computed receipt.
type ReceiptResponse struct {
	Number               string                `json:"number"`
	Timestamp            time.Time             `json:"timestamp"`
	Lines                []ReceiptLineResponse `json:"lines"`
	DiscountCard         *DiscountCardResponse `json:"discount_card,omitempty"`
	GrossTotalSum        string                `json:"gross_total_sum"`
	TotalDiscountSum     string                `json:"total_discount_sum"`
	NetTotalSum          string                `json:"net_total_sum"`
	AccountBalance       *string               `json:"account_balance,omitempty"`
	BalanceAfterPurchase *string               `json:"balance_after_purchase,omitempty"`
}

// NewReceiptResponse projects a Receipt into its JSON form without
// recomputing any amount.
func NewReceiptResponse(r *entity.Receipt) *ReceiptResponse {
	resp := &ReceiptResponse{
		Number:           r.Number,
		Timestamp:        r.Timestamp,
		Lines:            make([]ReceiptLineResponse, 0, len(r.Lines)),
		GrossTotalSum:    money.Format(r.GrossTotalSum),
		TotalDiscountSum: money.Format(r.TotalDiscountSum),
		NetTotalSum:      money.Format(r.NetTotalSum),
	}

	for _, line := range r.Lines {
		resp.Lines = append(resp.Lines, ReceiptLineResponse{
			ProductID:      line.Product.ID,
			Description:    line.Product.Description,
			Quantity:       line.Quantity,
			UnitPrice:      money.Format(line.Product.Price),
			GrossTotal:     money.Format(line.GrossTotal),
			DiscountAmount: money.Format(line.DiscountAmount),
			DiscountLabel:  line.DiscountLabel,
			NetTotal:       money.Format(line.NetTotal),
		})
	}

	if r.DiscountCard != nil {
		resp.DiscountCard = &DiscountCardResponse{
			Number:       r.DiscountCard.Number,
			DiscountRate: money.Format(r.DiscountCard.DiscountRate),
		}
	}
	if r.AccountBalance != nil && r.BalanceAfterPurchase != nil {
		balance := money.Format(*r.AccountBalance)
		after := money.Format(*r.BalanceAfterPurchase)
		resp.AccountBalance = &balance
		resp.BalanceAfterPurchase = &after
	}
	return resp
}
