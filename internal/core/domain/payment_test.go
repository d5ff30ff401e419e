package domain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPaymentMethods_NamesAndConfirmations(t *testing.T) {
	tests := []struct {
		method  PaymentMethod
		name    string
		confirm string
	}{
		{Cash{}, "Cash", "Paid 2400 using Cash.\n"},
		{Card{}, "Credit / Debit Card", "Paid 2400 using Credit/Debit Card.\n"},
		{DigitalWallet{}, "GCash", "Paid 2400 using GCash.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.method.Charge(&buf, decimal.NewFromInt(2400)))
			assert.Equal(t, tt.name, tt.method.Name())
			assert.Equal(t, tt.confirm, buf.String())
		})
	}
}

func TestPaymentMethod_ChargeWriteError(t *testing.T) {
	err := Cash{}.Charge(failingWriter{}, decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestPaymentMethodByChoice(t *testing.T) {
	m, ok := PaymentMethodByChoice("1")
	require.True(t, ok)
	assert.Equal(t, "Cash", m.Name())

	m, ok = PaymentMethodByChoice("2")
	require.True(t, ok)
	assert.Equal(t, "Credit / Debit Card", m.Name())

	m, ok = PaymentMethodByChoice(" 3 ")
	require.True(t, ok)
	assert.Equal(t, "GCash", m.Name())

	for _, bad := range []string{"", "0", "4", "cash", "one"} {
		_, ok := PaymentMethodByChoice(bad)
		assert.False(t, ok, bad)
	}
}

func TestPaymentOptions_MenuOrder(t *testing.T) {
	opts := PaymentOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, "1", opts[0].Choice)
	assert.Equal(t, "Credit/Debit Card", opts[1].Label)
	assert.IsType(t, DigitalWallet{}, opts[2].Method)
}
