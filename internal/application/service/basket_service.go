package service

import (
	"context"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	"github.com/quickmart/checkout-api/internal/domain/repository"
	"github.com/quickmart/checkout-api/pkg/apperror"
)

// BasketItem is one requested basket entry: a product ID and a quantity.
// The basket is an ordered sequence; duplicate IDs are merged during
// resolution into the first occurrence's position.
type BasketItem struct {
	ProductID int
	Quantity  int
}

// BasketService resolves a requested basket into priced line items
type BasketService struct {
	productRepo repository.ProductRepository
}

// NewBasketService creates a new basket service
func NewBasketService(productRepo repository.ProductRepository) *BasketService {
	return &BasketService{productRepo: productRepo}
}

// Resolve expands a basket request into line items, grouping quantities by
// product. Resolution is all-or-nothing: a non-positive quantity or an
// unknown product ID aborts the whole basket with no partial result.
func (s *BasketService) Resolve(ctx context.Context, items []BasketItem) ([]entity.LineItem, error) {
	quantities := make(map[int]int, len(items))
	order := make([]int, 0, len(items))

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperror.NewInvalidQuantityError(item.ProductID, item.Quantity)
		}
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	// Batch fetch all products in one query (prevents N+1)
	products, err := s.productRepo.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	productMap := make(map[int]entity.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	lines := make([]entity.LineItem, 0, len(order))
	for _, id := range order {
		product, exists := productMap[id]
		if !exists {
			return nil, apperror.NewProductNotFoundError(id)
		}
		lines = append(lines, entity.LineItem{
			Product:  product,
			Quantity: quantities[id],
		})
	}
	return lines, nil
}
