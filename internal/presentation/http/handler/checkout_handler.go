package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/quickmart/checkout-api/internal/application/service"
	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/internal/domain/repository"
	"github.com/quickmart/checkout-api/internal/presentation/http/dto/request"
	"github.com/quickmart/checkout-api/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout-related HTTP requests
type CheckoutHandler struct {
	basketService  *service.BasketService
	receiptService *service.ReceiptService
	printerService *service.PrinterService
	cardRepo       repository.DiscountCardRepository
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(
	basketService *service.BasketService,
	receiptService *service.ReceiptService,
	printerService *service.PrinterService,
	cardRepo repository.DiscountCardRepository,
) *CheckoutHandler {
	return &CheckoutHandler{
		basketService:  basketService,
		receiptService: receiptService,
		printerService: printerService,
		cardRepo:       cardRepo,
	}
}

// Checkout computes a receipt for the requested basket
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	receipt, ok := h.compute(c)
	if !ok {
		return
	}
	response.OK(c, "Receipt computed successfully", response.NewReceiptResponse(receipt))
}

// Print computes a receipt and sends it to the configured thermal printer.
// The computed receipt is returned either way so clients can fall back to
// their own rendering when no hardware is attached.
func (h *CheckoutHandler) Print(c *gin.Context) {
	receipt, ok := h.compute(c)
	if !ok {
		return
	}
	if err := h.printerService.PrintReceipt(receipt); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed successfully", response.NewReceiptResponse(receipt))
}

// PrinterStatus reports whether a printer is configured and reachable
func (h *CheckoutHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

func (h *CheckoutHandler) compute(c *gin.Context) (*entity.Receipt, bool) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid checkout request")
		return nil, false
	}

	items := make([]service.BasketItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.BasketItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	lines, err := h.basketService.Resolve(c.Request.Context(), items)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}

	var card *entity.DiscountCard
	if req.DiscountCard != nil {
		card, err = h.cardRepo.GetByNumber(c.Request.Context(), *req.DiscountCard)
		if err != nil {
			response.Error(c, err)
			return nil, false
		}
	}

	return h.receiptService.Compute(lines, card, req.BalanceDebitCard), true
}
