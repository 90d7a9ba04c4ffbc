package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/elitecart/storefront/internal/domain"
	"github.com/elitecart/storefront/internal/payment"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	store  *payment.Store
	logger *zap.Logger
}

func NewPaymentHandler(store *payment.Store, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		store:  store,
		logger: logger,
	}
}

type ProcessPaymentRequestDTO struct {
	Method         domain.PaymentMethod   `json:"method"`
	Amount         float64                `json:"amount"`
	OrderID        string                 `json:"order_id"`
	Customer       domain.CustomerInfo    `json:"customer"`
	BillingAddress *domain.BillingAddress `json:"billing_address,omitempty"`
	MethodData     payment.MethodData     `json:"method_data,omitempty"`
}

type HistoryResponseDTO struct {
	Transactions []domain.PaymentTransaction `json:"transactions"`
	Busy         bool                        `json:"busy"`
}

// Process runs a payment attempt. Validation errors come back as 400
// before any record exists; a declined charge is a normal 200 with
// success=false and the transaction retained in the log.
func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	details := domain.PaymentDetails{
		Method:         req.Method,
		Amount:         req.Amount,
		Currency:       "INR",
		OrderID:        req.OrderID,
		CustomerInfo:   req.Customer,
		BillingAddress: req.BillingAddress,
	}

	result, err := h.store.ProcessPayment(r.Context(), details, req.MethodData)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payment", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HistoryResponseDTO{
		Transactions: h.store.History(),
		Busy:         h.store.Busy(),
	})
}

func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "id")
	if transactionID == "" {
		respondError(w, http.StatusBadRequest, "invalid_transaction_id", "transaction id is required")
		return
	}

	txn, err := h.store.RefundPayment(r.Context(), transactionID)
	switch {
	case errors.Is(err, payment.ErrTransactionNotFound):
		respondError(w, http.StatusNotFound, "not_found", "transaction not found or not eligible for refund")
	case errors.Is(err, payment.ErrNotRefundable), errors.Is(err, payment.ErrAlreadyRefunded):
		respondError(w, http.StatusConflict, "not_refundable", "transaction not found or not eligible for refund")
	case err != nil:
		h.logger.Error("refund failed", zap.String("transaction_id", transactionID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "unable to process refund")
	default:
		respondJSON(w, http.StatusOK, txn)
	}
}
