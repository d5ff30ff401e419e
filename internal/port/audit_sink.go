package port

import (
	"context"

	"github.com/rl1809/shop-sim/internal/core/domain"
)

type AuditSink interface {
	// RecordCheckout appends the audit line for a committed order; existing records are never rewritten
	RecordCheckout(ctx context.Context, order domain.Order) error
}
