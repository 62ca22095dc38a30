package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	domainRepo "github.com/quickmart/checkout-api/internal/domain/repository"
)

type discountCardRepository struct {
	db *gorm.DB
}

// NewDiscountCardRepository creates a postgres-backed discount card repository
func NewDiscountCardRepository(db *gorm.DB) domainRepo.DiscountCardRepository {
	return &discountCardRepository{db: db}
}

// GetByNumber returns the stored card, or the synthetic default card when the
// number is not on file.
func (r *discountCardRepository) GetByNumber(ctx context.Context, number int) (*entity.DiscountCard, error) {
	var card entity.DiscountCard
	err := r.db.WithContext(ctx).First(&card, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		card = entity.NewDefaultCard(number)
		return &card, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *discountCardRepository) List(ctx context.Context) ([]entity.DiscountCard, error) {
	var cards []entity.DiscountCard
	err := r.db.WithContext(ctx).Order("number").Find(&cards).Error
	return cards, err
}
