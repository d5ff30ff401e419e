package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/rl1809/shop-sim/internal/core/domain"
	"github.com/rl1809/shop-sim/internal/logger"
	"github.com/rl1809/shop-sim/internal/port"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrUnknownProduct = errors.New("unknown product")
)

type CheckoutState string

const (
	StateIdle                  CheckoutState = "idle"
	StateAwaitingPaymentChoice CheckoutState = "awaiting_payment_choice"
	StateCharging              CheckoutState = "charging"
	StateCommitting            CheckoutState = "committing"
)

// OrderService owns the session's cart and ledger. It is not safe for
// concurrent use; the console drives it from a single goroutine.
type OrderService struct {
	catalog *domain.Catalog
	cart    *domain.Cart
	ledger  *domain.OrderLedger
	audit   port.AuditSink
	out     io.Writer
	logger  *slog.Logger
	state   CheckoutState
}

func NewOrderService(catalog *domain.Catalog, cart *domain.Cart, ledger *domain.OrderLedger, audit port.AuditSink, out io.Writer, log *slog.Logger) *OrderService {
	return &OrderService{
		catalog: catalog,
		cart:    cart,
		ledger:  ledger,
		audit:   audit,
		out:     out,
		logger:  log,
		state:   StateIdle,
	}
}

func (s *OrderService) Catalog() []domain.Product {
	return s.catalog.List()
}

func (s *OrderService) AddToCart(ctx context.Context, productID string) (domain.Product, error) {
	p, ok := s.catalog.Lookup(productID)
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}

	s.cart.AddProduct(p)

	logger.WithContext(ctx, s.logger).DebugContext(ctx, "product added to cart",
		slog.String("product_id", p.ID),
		slog.Int("cart_lines", s.cart.Len()),
	)
	return p, nil
}

func (s *OrderService) Cart() []domain.CartLine {
	return s.cart.Lines()
}

func (s *OrderService) CartTotal() decimal.Decimal {
	return s.cart.TotalAmount()
}

func (s *OrderService) CartIsEmpty() bool {
	return s.cart.IsEmpty()
}

func (s *OrderService) Orders() []domain.Order {
	return s.ledger.All()
}

func (s *OrderService) State() CheckoutState {
	return s.state
}

// Checkout charges the selected payment method for the whole cart, commits
// the order, records the audit line, and clears the cart. Once charging has
// started the order is always committed; an audit failure is logged and does
// not undo it.
func (s *OrderService) Checkout(ctx context.Context, selector port.PaymentSelector) (domain.Order, error) {
	log := logger.WithContext(ctx, s.logger)

	if s.cart.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}
	total := s.cart.TotalAmount()

	s.transition(ctx, log, StateAwaitingPaymentChoice)
	method, err := selector.SelectPayment(ctx)
	if err != nil {
		s.transition(ctx, log, StateIdle)
		return domain.Order{}, fmt.Errorf("select payment method: %w", err)
	}

	s.transition(ctx, log, StateCharging)
	if err := method.Charge(s.out, total); err != nil {
		log.WarnContext(ctx, "failed to write charge confirmation",
			slog.String("payment_method", method.Name()),
			slog.String("error", err.Error()),
		)
	}

	s.transition(ctx, log, StateCommitting)
	order := s.ledger.Commit(s.cart.Lines(), method.Name(), total)

	if err := s.audit.RecordCheckout(ctx, order); err != nil {
		log.ErrorContext(ctx, "failed to record checkout audit line",
			slog.Int("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.cart.Clear()
	s.transition(ctx, log, StateIdle)

	log.InfoContext(ctx, "order committed",
		slog.Int("order_id", order.ID),
		slog.String("payment_method", order.PaymentMethod),
		slog.String("total", order.TotalAmount.String()),
		slog.Int("lines", len(order.Lines)),
	)

	return order, nil
}

func (s *OrderService) transition(ctx context.Context, log *slog.Logger, next CheckoutState) {
	log.DebugContext(ctx, "checkout state change",
		slog.String("from", string(s.state)),
		slog.String("to", string(next)),
	)
	s.state = next
}
