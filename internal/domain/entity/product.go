package entity

import (
	"github.com/shopspring/decimal"

	"github.com/quickmart/checkout-api/pkg/money"
)

// Product represents a catalog product. Products are immutable after load;
// stock quantity is reference data and is never decremented at checkout.
type Product struct {
	ID               int             `gorm:"primary_key" json:"id"`
	Description      string          `gorm:"size:255;not null" json:"description"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	QuantityInStock  int             `gorm:"not null" json:"quantity_in_stock"`
	WholesaleProduct bool            `gorm:"not null" json:"wholesale_product"`
}

// NewProduct builds a Product, normalizing the unit price to two decimal
// places (half-up) at construction.
func NewProduct(id int, description string, price decimal.Decimal, stock int, wholesale bool) Product {
	return Product{
		ID:               id,
		Description:      description,
		Price:            money.Round2(price),
		QuantityInStock:  stock,
		WholesaleProduct: wholesale,
	}
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
