package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/elitecart/storefront/internal/domain"
	"github.com/elitecart/storefront/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentRequest() ProcessPaymentRequestDTO {
	return ProcessPaymentRequestDTO{
		Method:  domain.MethodUPI,
		Amount:  1000,
		OrderID: "EC123",
		Customer: domain.CustomerInfo{
			Name:  "Demo User",
			Email: "demo@elitecart.in",
			Phone: "+91 98765 43210",
		},
		MethodData: payment.MethodData{"upiId": "user@paytm"},
	}
}

func TestPaymentHandler_Process(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/payments", paymentRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var result payment.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.TransactionID)

	history := env.paymentStore.History()
	require.Len(t, history, 1)
	assert.Equal(t, 1000.0, history[0].Amount)
	assert.Equal(t, domain.PaymentStatusSuccess, history[0].Status)
}

func TestPaymentHandler_Process_ValidationError(t *testing.T) {
	env := newTestEnv(t)

	req := paymentRequest()
	req.Amount = 0
	rec := env.do(t, http.MethodPost, "/api/payments", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = paymentRequest()
	req.MethodData = payment.MethodData{"upiId": "broken"}
	rec = env.do(t, http.MethodPost, "/api/payments", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, env.paymentStore.History(), "validation failures must not create records")
}

func TestPaymentHandler_History(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/payments", paymentRequest())

	rec := env.do(t, http.MethodGet, "/api/payments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HistoryResponseDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Transactions, 1)
	assert.False(t, resp.Busy)
}

func TestPaymentHandler_Refund(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/payments", paymentRequest())
	var result payment.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.True(t, result.Success)

	rec = env.do(t, http.MethodPost, "/api/payments/"+result.TransactionID+"/refund", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var txn domain.PaymentTransaction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&txn))
	assert.Equal(t, 1000.0, txn.RefundAmount)
	assert.Equal(t, domain.RefundStatusProcessed, txn.RefundStatus)

	// a second refund attempt is rejected
	rec = env.do(t, http.MethodPost, "/api/payments/"+result.TransactionID+"/refund", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPaymentHandler_Refund_UnknownTransaction(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/payments/TXNnope/refund", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
