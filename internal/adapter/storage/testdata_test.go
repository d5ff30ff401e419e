package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/shop-sim/internal/core/domain"
)

func sampleOrder(id int, method string) domain.Order {
	return domain.Order{
		ID:            id,
		TotalAmount:   decimal.NewFromInt(2400),
		PaymentMethod: method,
		Lines: []domain.CartLine{
			{Product: domain.NewProduct("ABC", "Tshirt", 600), Quantity: 2},
			{Product: domain.NewProduct("DEF", "Hoodie", 1200), Quantity: 1},
		},
		CreatedAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
}
