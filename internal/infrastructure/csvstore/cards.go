package csvstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/quickmart/checkout-api/internal/domain/entity"
	domainRepo "github.com/quickmart/checkout-api/internal/domain/repository"
	"github.com/quickmart/checkout-api/pkg/apperror"
	"github.com/quickmart/checkout-api/pkg/money"
)

type cardStore struct {
	byNumber map[int]entity.DiscountCard
}

// LoadDiscountCards reads the discount card directory from a
// semicolon-delimited file. Expected columns: number; amount.
func LoadDiscountCards(path string) (domainRepo.DiscountCardRepository, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, apperror.NewCardDirectoryLoadError(err)
	}

	byNumber := make(map[int]entity.DiscountCard, len(records))
	for i, record := range records {
		card, err := parseCard(record)
		if err != nil {
			return nil, apperror.NewCardDirectoryLoadError(fmt.Errorf("%s row %d: %w", path, i+2, err))
		}
		byNumber[card.Number] = card
	}
	return &cardStore{byNumber: byNumber}, nil
}

func parseCard(record map[string]string) (entity.DiscountCard, error) {
	var zero entity.DiscountCard

	numberStr, err := get(record, "number")
	if err != nil {
		return zero, err
	}
	number, err := strconv.Atoi(numberStr)
	if err != nil {
		return zero, fmt.Errorf("invalid number %q", numberStr)
	}

	amountStr, err := get(record, "amount")
	if err != nil {
		return zero, err
	}
	rate, err := money.Parse(amountStr)
	if err != nil {
		return zero, err
	}

	return entity.NewDiscountCard(number, rate), nil
}

// GetByNumber returns the stored card, or the synthetic default card when the
// number is not on file. The miss path never fails.
func (s *cardStore) GetByNumber(ctx context.Context, number int) (*entity.DiscountCard, error) {
	card, ok := s.byNumber[number]
	if !ok {
		card = entity.NewDefaultCard(number)
	}
	return &card, nil
}

func (s *cardStore) List(ctx context.Context) ([]entity.DiscountCard, error) {
	cards := make([]entity.DiscountCard, 0, len(s.byNumber))
	for _, card := range s.byNumber {
		cards = append(cards, card)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Number < cards[j].Number })
	return cards, nil
}
