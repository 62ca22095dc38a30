package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/pkg/money"
)

// Wholesale discount policy: 10% off a line when the product is flagged
// wholesale and the line quantity reaches the threshold. A line that got the
// wholesale discount never also gets the card discount.
const wholesaleMinQuantity = 5

var (
	wholesaleRate = decimal.RequireFromString("0.10")
	oneHundred    = decimal.NewFromInt(100)
)

// ReceiptService computes receipts from resolved line items
type ReceiptService struct{}

// NewReceiptService creates a new receipt service
func NewReceiptService() *ReceiptService {
	return &ReceiptService{}
}

// Compute prices every line, applies the discount policy and aggregates the
// totals. Every monetary value is rounded half-up to two decimals at the step
// that produces it; the sums add the already-rounded line values and are
// rounded once more after summation.
func (s *ReceiptService) Compute(lines []entity.LineItem, card *entity.DiscountCard, balance *decimal.Decimal) *entity.Receipt {
	receipt := &entity.Receipt{
		Number:       fmt.Sprintf("CHK-%s", uuid.New().String()[:8]),
		Timestamp:    time.Now(),
		Lines:        make([]entity.ReceiptLine, 0, len(lines)),
		DiscountCard: card,
	}

	grossSum := decimal.Zero
	netSum := decimal.Zero

	for _, item := range lines {
		line := s.computeLine(item, card)
		receipt.Lines = append(receipt.Lines, line)
		grossSum = grossSum.Add(line.GrossTotal)
		netSum = netSum.Add(line.NetTotal)
	}

	receipt.GrossTotalSum = money.Round2(grossSum)
	receipt.NetTotalSum = money.Round2(netSum)
	receipt.TotalDiscountSum = receipt.GrossTotalSum.Sub(receipt.NetTotalSum)

	if balance != nil {
		b := money.Round2(*balance)
		after := money.Round2(b.Sub(receipt.NetTotalSum))
		receipt.AccountBalance = &b
		receipt.BalanceAfterPurchase = &after
	}
	return receipt
}

func (s *ReceiptService) computeLine(item entity.LineItem, card *entity.DiscountCard) entity.ReceiptLine {
	gross := money.Round2(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))

	discount := decimal.Zero
	label := ""
	subtotal := gross

	wholesaleApplied := item.Product.WholesaleProduct && item.Quantity >= wholesaleMinQuantity
	if wholesaleApplied {
		discount = money.Round2(gross.Mul(wholesaleRate))
		subtotal = gross.Sub(discount)
		label = "10% wholesale"
	}

	if !wholesaleApplied && card != nil && card.DiscountRate.IsPositive() {
		cardDiscount := money.Round2(subtotal.Mul(card.DiscountRate.Div(oneHundred)))
		subtotal = subtotal.Sub(cardDiscount)
		discount = discount.Add(cardDiscount)
		// Fixed 2-decimal rendering keeps the label stable across locales.
		label = fmt.Sprintf("%s%% card discount", money.Format(card.DiscountRate))
	}

	return entity.ReceiptLine{
		Product:        item.Product,
		Quantity:       item.Quantity,
		GrossTotal:     gross,
		DiscountAmount: discount,
		DiscountLabel:  label,
		NetTotal:       subtotal,
	}
}
