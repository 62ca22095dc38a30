// Package report renders computed receipts for the two output sinks: a
// human-readable console table and a row set for the semicolon-delimited
// receipt file. Rendering is a pure projection of the Receipt value; no
// monetary amount is recomputed here.
package report

import (
	"fmt"
	"strings"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/pkg/money"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04:05"
)

// Console renders the receipt as the fixed-width table printed to the
// operator.
func Console(r *entity.Receipt, marker string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n", r.Timestamp.Format(dateLayout))
	fmt.Fprintf(&b, "Time: %s\n", r.Timestamp.Format(timeLayout))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-5s %-30s %-10s %-10s %-10s %-15s\n",
		"QTY", "DESCRIPTION", "PRICE", "TOTAL", "DISCOUNT", "DISCOUNT INFO")

	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%-5d %-30s %s%-9s %s%-9s %s%-9s %-15s\n",
			line.Quantity,
			line.Product.Description,
			marker, money.Format(line.Product.Price),
			marker, money.Format(line.GrossTotal),
			marker, money.Format(line.DiscountAmount),
			line.DiscountLabel,
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "TOTAL PRICE: %s%-10s\n", marker, money.Format(r.GrossTotalSum))
	fmt.Fprintf(&b, "TOTAL DISCOUNT: %s%-10s\n", marker, money.Format(r.TotalDiscountSum))
	fmt.Fprintf(&b, "TOTAL WITH DISCOUNT: %s%-10s\n", marker, money.Format(r.NetTotalSum))

	return b.String()
}

// Records renders the receipt as the ordered rows of the receipt file. Every
// monetary field carries the currency marker appended directly to the numeric
// text ("12.34$").
func Records(r *entity.Receipt, marker string) [][]string {
	rows := [][]string{
		{"Date", r.Timestamp.Format(dateLayout)},
		{"Time", r.Timestamp.Format(timeLayout)},
		{"QTY", "DESCRIPTION", "PRICE", "DISCOUNT", "TOTAL"},
	}

	for _, line := range r.Lines {
		rows = append(rows, []string{
			fmt.Sprintf("%d", line.Quantity),
			line.Product.Description,
			money.FormatWithMarker(line.Product.Price, marker),
			money.FormatWithMarker(line.DiscountAmount, marker),
			money.FormatWithMarker(line.NetTotal, marker),
		})
	}

	rows = append(rows, []string{"DISCOUNT CARD", "DISCOUNT PERCENTAGE"})
	if r.DiscountCard != nil {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.DiscountCard.Number),
			money.Format(r.DiscountCard.DiscountRate) + "%",
		})
	}

	rows = append(rows, []string{})
	rows = append(rows, []string{"TOTAL PRICE", "TOTAL DISCOUNT", "TOTAL WITH DISCOUNT"})
	rows = append(rows, []string{
		money.FormatWithMarker(r.GrossTotalSum, marker),
		money.FormatWithMarker(r.TotalDiscountSum, marker),
		money.FormatWithMarker(r.NetTotalSum, marker),
	})

	if r.AccountBalance != nil && r.BalanceAfterPurchase != nil {
		rows = append(rows, []string{"BALANCE DEBIT CARD", money.FormatWithMarker(*r.AccountBalance, marker)})
		rows = append(rows, []string{"TOTAL BALANCE AFTER PURCHASE", money.FormatWithMarker(*r.BalanceAfterPurchase, marker)})
	}

	return rows
}
