package domain

import "fmt"

// DefaultCategory is assigned when a product is created without one.
const DefaultCategory = "Uncategorized"

// Product is a single catalog record. SKU is the unique identity and never
// changes after creation.
type Product struct {
	Name     string  `json:"name" yaml:"name"`
	SKU      string  `json:"sku" yaml:"sku"`
	Price    float64 `json:"price" yaml:"price"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Category string  `json:"category" yaml:"category"`
}

// NewProduct validates the supplied fields and constructs a Product.
func NewProduct(name, sku string, price float64, quantity int, category string) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if sku == "" {
		return nil, fmt.Errorf("%w: sku must not be empty", ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if category == "" {
		category = DefaultCategory
	}
	return &Product{
		Name:     name,
		SKU:      sku,
		Price:    price,
		Quantity: quantity,
		Category: category,
	}, nil
}

// AdjustStock applies delta to the on-hand quantity. The quantity never goes
// negative: a withdrawal larger than the current stock fails and leaves the
// product unchanged.
func (p *Product) AdjustStock(delta int) error {
	if p.Quantity+delta < 0 {
		return fmt.Errorf("%w: have %d, tried to remove %d", ErrInsufficientStock, p.Quantity, -delta)
	}
	p.Quantity += delta
	return nil
}

// Describe renders the one-line inventory listing for this product.
func (p *Product) Describe() string {
	return fmt.Sprintf("%s: %s - $%.2f (%d in stock)", p.SKU, p.Name, p.Price, p.Quantity)
}
