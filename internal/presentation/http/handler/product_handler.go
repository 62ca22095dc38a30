package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quickmart/checkout-api/internal/domain/repository"
	"github.com/quickmart/checkout-api/internal/presentation/http/dto/response"
)

// ProductHandler handles catalog read requests
type ProductHandler struct {
	productRepo repository.ProductRepository
}

// NewProductHandler creates a new product handler
func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

// List returns the whole catalog ordered by product ID
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Get returns a single product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}
