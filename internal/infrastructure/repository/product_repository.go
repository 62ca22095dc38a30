package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	domainRepo "github.com/quickmart/checkout-api/internal/domain/repository"
	"github.com/quickmart/checkout-api/pkg/apperror"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a postgres-backed product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewProductNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, ids []int) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&products).Error
	return products, err
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Order("id").Find(&products).Error
	return products, err
}
