package service

import (
	"fmt"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/pkg/logger"
	"github.com/quickmart/checkout-api/pkg/money"
	"github.com/quickmart/checkout-api/pkg/printer"
)

// PrinterService sends computed receipts to a thermal printer. It is an
// extra output sink beside the console and file renderings and consumes the
// same Receipt value without recomputing anything.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	marker      string
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, printerType, marker string) *PrinterService {
	return &PrinterService{printer: p, printerType: printerType, marker: marker}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt formats the receipt for 58mm paper and sends it to the
// printer.
func (s *PrinterService) PrintReceipt(r *entity.Receipt) error {
	if err := s.printer.Print(s.format(r)); err != nil {
		logger.Error().Err(err).Str("receipt", r.Number).Msg("receipt print failed")
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	return nil
}

func (s *PrinterService) format(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("QUICKMART").
		SetBold(false).
		Text(r.Number).
		Text(r.Timestamp.Format("02.01.2006 15:04:05")).
		SetAlign(printer.AlignLeft).
		Separator('-')

	for _, line := range r.Lines {
		doc.ItemLine(line.Quantity, line.Product.Description, money.FormatWithMarker(line.NetTotal, s.marker))
		if line.DiscountLabel != "" {
			doc.KeyValue("  "+line.DiscountLabel, "-"+money.FormatWithMarker(line.DiscountAmount, s.marker))
		}
	}

	doc.Separator('-').
		KeyValue("TOTAL PRICE", money.FormatWithMarker(r.GrossTotalSum, s.marker)).
		KeyValue("TOTAL DISCOUNT", money.FormatWithMarker(r.TotalDiscountSum, s.marker)).
		KeyValue("TOTAL WITH DISCOUNT", money.FormatWithMarker(r.NetTotalSum, s.marker))

	if r.DiscountCard != nil {
		doc.KeyValue(fmt.Sprintf("CARD %d", r.DiscountCard.Number), money.Format(r.DiscountCard.DiscountRate)+"%")
	}
	if r.AccountBalance != nil && r.BalanceAfterPurchase != nil {
		doc.KeyValue("BALANCE", money.FormatWithMarker(*r.AccountBalance, s.marker)).
			KeyValue("BALANCE AFTER", money.FormatWithMarker(*r.BalanceAfterPurchase, s.marker))
	}

	doc.FeedLines(3).Cut()
	return doc.Bytes()
}
