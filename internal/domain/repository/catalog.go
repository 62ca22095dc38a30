package repository

import (
	"context"

	"github.com/quickmart/checkout-api/internal/domain/entity"
)

// ProductRepository defines read access to the product catalog. The catalog
// is an immutable snapshot for the lifetime of a run; implementations must
// not expose any mutation of stock quantities to callers.
type ProductRepository interface {
	// GetByID returns the product for id, or a ProductNotFound error.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single lookup
	// (prevents N+1 against database-backed implementations).
	GetByIDs(ctx context.Context, ids []int) ([]entity.Product, error)
	// List returns every product, ordered by ID.
	List(ctx context.Context) ([]entity.Product, error)
}

// DiscountCardRepository defines read access to the discount card directory.
type DiscountCardRepository interface {
	// GetByNumber returns the stored card for number, or the synthetic
	// default card when the number is not on file. It never fails on a miss.
	GetByNumber(ctx context.Context, number int) (*entity.DiscountCard, error)
	// List returns every card on file, ordered by number.
	List(ctx context.Context) ([]entity.DiscountCard, error)
}
