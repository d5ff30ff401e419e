package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Lines         []CartLine
	CreatedAt     time.Time
}

// AuditLine renders the single record appended to the audit trail per checkout.
func (o Order) AuditLine() string {
	return fmt.Sprintf("(LOG) -> Order ID: %d has been successfully checked out and paid using %s.", o.ID, o.PaymentMethod)
}

func (o Order) clone() Order {
	o.Lines = slices.Clone(o.Lines)
	return o
}

// OrderLedger is append-only. Orders are copied in and copied out, so neither
// the cart nor a caller holding a returned order can alter a committed one.
type OrderLedger struct {
	orders []Order
	now    func() time.Time
}

func NewOrderLedger() *OrderLedger {
	return &OrderLedger{now: time.Now}
}

func (l *OrderLedger) Commit(lines []CartLine, paymentMethod string, total decimal.Decimal) Order {
	order := Order{
		ID:            len(l.orders) + 1,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		Lines:         slices.Clone(lines),
		CreatedAt:     l.now(),
	}
	l.orders = append(l.orders, order)
	return order.clone()
}

func (l *OrderLedger) All() []Order {
	out := make([]Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o.clone()
	}
	return out
}

func (l *OrderLedger) Len() int {
	return len(l.orders)
}

func (l *OrderLedger) IsEmpty() bool {
	return len(l.orders) == 0
}
