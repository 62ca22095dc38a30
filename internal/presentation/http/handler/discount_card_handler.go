package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quickmart/checkout-api/internal/domain/repository"
	"github.com/quickmart/checkout-api/internal/presentation/http/dto/response"
)

// DiscountCardHandler handles discount card lookups
type DiscountCardHandler struct {
	cardRepo repository.DiscountCardRepository
}

// NewDiscountCardHandler creates a new discount card handler
func NewDiscountCardHandler(cardRepo repository.DiscountCardRepository) *DiscountCardHandler {
	return &DiscountCardHandler{cardRepo: cardRepo}
}

// Get looks up a card by number. An unknown number still returns 200 with
// the synthesized default-rate card; lookup never fails on a miss.
func (h *DiscountCardHandler) Get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.BadRequest(c, "Invalid card number")
		return
	}

	card, err := h.cardRepo.GetByNumber(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount card retrieved successfully", card)
}
