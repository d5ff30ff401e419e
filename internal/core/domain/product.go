package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

func NewProduct(id, name string, price int64) Product {
	return Product{ID: id, Name: name, Price: decimal.NewFromInt(price)}
}

// NormalizeProductID upper-cases and trims an id for comparison.
func NormalizeProductID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Catalog is the fixed, ordered set of purchasable products.
type Catalog struct {
	products []Product
}

func NewCatalog(products ...Product) *Catalog {
	return &Catalog{products: slices.Clone(products)}
}

func DefaultCatalog() *Catalog {
	return NewCatalog(
		NewProduct("ABC", "Tshirt", 600),
		NewProduct("DEF", "Hoodie", 1200),
		NewProduct("GHI", "Joggers", 700),
		NewProduct("JKL", "Sweater", 1500),
		NewProduct("MNO", "Jacket", 2000),
	)
}

// Lookup returns false for unknown ids; reporting the miss is the caller's job.
func (c *Catalog) Lookup(id string) (Product, bool) {
	want := NormalizeProductID(id)
	for _, p := range c.products {
		if NormalizeProductID(p.ID) == want {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) List() []Product {
	return slices.Clone(c.products)
}
