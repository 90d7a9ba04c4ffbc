package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"pending to processing", PaymentStatusPending, PaymentStatusProcessing, true},
		{"pending to success", PaymentStatusPending, PaymentStatusSuccess, false},
		{"processing to success", PaymentStatusProcessing, PaymentStatusSuccess, true},
		{"processing to failed", PaymentStatusProcessing, PaymentStatusFailed, true},
		{"processing to pending", PaymentStatusProcessing, PaymentStatusPending, false},
		{"success is terminal", PaymentStatusSuccess, PaymentStatusFailed, false},
		{"failed is terminal", PaymentStatusFailed, PaymentStatusSuccess, false},
		{"success to success", PaymentStatusSuccess, PaymentStatusSuccess, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransitionTo(tt.from, tt.to))
		})
	}
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.False(t, PaymentStatusProcessing.IsTerminal())
	assert.True(t, PaymentStatusSuccess.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
}

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range PaymentMethods() {
		assert.True(t, m.Valid(), "method %s should be valid", m)
	}
	assert.False(t, PaymentMethod("paypal").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestPaymentTransaction_Refunded(t *testing.T) {
	txn := PaymentTransaction{}
	assert.False(t, txn.Refunded())

	txn.RefundID = "RFD123"
	assert.True(t, txn.Refunded())
}
