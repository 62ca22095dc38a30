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

type productStore struct {
	byID map[int]entity.Product
}

// LoadProducts reads the product catalog from a semicolon-delimited file.
// Expected columns: id; description; price; quantity_in_stock;
// wholesale_product. Any unreadable or malformed input fails the load.
func LoadProducts(path string) (domainRepo.ProductRepository, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, apperror.NewCatalogLoadError(err)
	}

	byID := make(map[int]entity.Product, len(records))
	for i, record := range records {
		product, err := parseProduct(record)
		if err != nil {
			return nil, apperror.NewCatalogLoadError(fmt.Errorf("%s row %d: %w", path, i+2, err))
		}
		byID[product.ID] = product
	}
	return &productStore{byID: byID}, nil
}

func parseProduct(record map[string]string) (entity.Product, error) {
	var zero entity.Product

	idStr, err := get(record, "id")
	if err != nil {
		return zero, err
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return zero, fmt.Errorf("invalid id %q", idStr)
	}

	description, err := get(record, "description")
	if err != nil {
		return zero, err
	}

	priceStr, err := get(record, "price")
	if err != nil {
		return zero, err
	}
	price, err := money.Parse(priceStr)
	if err != nil {
		return zero, err
	}

	stockStr, err := get(record, "quantity_in_stock")
	if err != nil {
		return zero, err
	}
	stock, err := strconv.Atoi(stockStr)
	if err != nil {
		return zero, fmt.Errorf("invalid quantity_in_stock %q", stockStr)
	}

	wholesaleStr, err := get(record, "wholesale_product")
	if err != nil {
		return zero, err
	}
	wholesale, err := strconv.ParseBool(wholesaleStr)
	if err != nil {
		return zero, fmt.Errorf("invalid wholesale_product %q", wholesaleStr)
	}

	return entity.NewProduct(id, description, price, stock, wholesale), nil
}

func (s *productStore) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	product, ok := s.byID[id]
	if !ok {
		return nil, apperror.NewProductNotFoundError(id)
	}
	return &product, nil
}

func (s *productStore) GetByIDs(ctx context.Context, ids []int) ([]entity.Product, error) {
	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := s.byID[id]; ok {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *productStore) List(ctx context.Context) ([]entity.Product, error) {
	products := make([]entity.Product, 0, len(s.byID))
	for _, product := range s.byID {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}
