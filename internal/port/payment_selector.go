package port

import (
	"context"

	"github.com/rl1809/shop-sim/internal/core/domain"
)

type PaymentSelector interface {
	// SelectPayment blocks until a valid method is chosen, or returns an error if input is exhausted
	SelectPayment(ctx context.Context) (domain.PaymentMethod, error)
}
