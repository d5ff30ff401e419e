package domain

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod charges an amount and names itself on orders and audit lines.
// Charging is simulated: it only writes a confirmation and never declines.
type PaymentMethod interface {
	Name() string
	Charge(w io.Writer, amount decimal.Decimal) error
}

type Cash struct{}

func (Cash) Name() string { return "Cash" }

func (Cash) Charge(w io.Writer, amount decimal.Decimal) error {
	return writeConfirmation(w, amount, "Cash")
}

type Card struct{}

func (Card) Name() string { return "Credit / Debit Card" }

func (Card) Charge(w io.Writer, amount decimal.Decimal) error {
	return writeConfirmation(w, amount, "Credit/Debit Card")
}

type DigitalWallet struct{}

func (DigitalWallet) Name() string { return "GCash" }

func (DigitalWallet) Charge(w io.Writer, amount decimal.Decimal) error {
	return writeConfirmation(w, amount, "GCash")
}

func writeConfirmation(w io.Writer, amount decimal.Decimal, label string) error {
	_, err := fmt.Fprintf(w, "Paid %s using %s.\n", amount.String(), label)
	return err
}

// PaymentOption pairs a menu token with the method it selects.
type PaymentOption struct {
	Choice string
	Label  string
	Method PaymentMethod
}

func PaymentOptions() []PaymentOption {
	return []PaymentOption{
		{Choice: "1", Label: "Cash", Method: Cash{}},
		{Choice: "2", Label: "Credit/Debit Card", Method: Card{}},
		{Choice: "3", Label: "GCash", Method: DigitalWallet{}},
	}
}

func PaymentMethodByChoice(choice string) (PaymentMethod, bool) {
	choice = strings.TrimSpace(choice)
	for _, opt := range PaymentOptions() {
		if opt.Choice == choice {
			return opt.Method, true
		}
	}
	return nil, false
}
