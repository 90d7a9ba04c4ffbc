package payment

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/elitecart/storefront/internal/domain"
	"github.com/elitecart/storefront/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotRefundable       = errors.New("transaction not eligible for refund")
	ErrAlreadyRefunded     = errors.New("transaction already refunded")
	ErrRefundDeclined      = errors.New("refund declined by gateway")
)

// Result is the caller-facing outcome of one payment attempt.
// TransactionID carries the gateway reference, not the internal id.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Store owns the payment transaction log. Records are append-only
// except for status and refund mutations; no transaction is ever
// deleted. The full log is persisted after every mutation.
type Store struct {
	mu           sync.Mutex
	kv           storage.KV
	gateway      Gateway
	logger       *zap.Logger
	transactions []domain.PaymentTransaction
	inFlight     atomic.Int64
}

func NewStore(kv storage.KV, gateway Gateway, logger *zap.Logger) *Store {
	return &Store{
		kv:      kv,
		gateway: gateway,
		logger:  logger,
	}
}

// Hydrate loads the transaction log from durable storage. Corrupt data
// falls back to an empty log; Hydrate never fails.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Load(ctx, storage.KeyPaymentHistory)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to load payment history", zap.Error(err))
		}
		return
	}

	var transactions []domain.PaymentTransaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		s.logger.Warn("discarding corrupt payment history", zap.Error(err))
		return
	}
	s.transactions = transactions
}

// Busy reports whether any payment or refund is in flight. Advisory
// only; it does not block overlapping calls.
func (s *Store) Busy() bool {
	return s.inFlight.Load() > 0
}

// ProcessPayment runs one payment attempt end to end: validates the
// input, appends a processing record, charges the simulated gateway and
// writes the terminal status exactly once. Validation errors are
// returned before any record is created. A context cancelled mid-charge
// abandons the attempt and leaves the record in processing.
func (s *Store) ProcessPayment(ctx context.Context, details domain.PaymentDetails, data MethodData) (Result, error) {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	if err := validateDetails(details); err != nil {
		return Result{}, err
	}
	if err := validateMethodData(details.Method, data); err != nil {
		return Result{}, err
	}

	txn := domain.PaymentTransaction{
		ID:                   newID("TXN"),
		OrderID:              details.OrderID,
		Method:               details.Method,
		Amount:               details.Amount,
		Status:               domain.PaymentStatusProcessing,
		Timestamp:            time.Now(),
		GatewayTransactionID: newID("RZP"),
	}

	s.mu.Lock()
	s.transactions = append(s.transactions, txn)
	s.persist(ctx)
	s.mu.Unlock()

	outcome, err := s.gateway.Charge(ctx, details)
	if err != nil {
		s.logger.Warn("charge abandoned",
			zap.String("transaction_id", txn.ID),
			zap.Error(err))
		return Result{Error: "Payment processing failed"}, nil
	}

	if outcome.Approved {
		s.resolve(ctx, txn.ID, domain.PaymentStatusSuccess, "")
		return Result{Success: true, TransactionID: txn.GatewayTransactionID}, nil
	}

	s.resolve(ctx, txn.ID, domain.PaymentStatusFailed, outcome.Reason)
	return Result{Error: outcome.Reason}, nil
}

// resolve writes a terminal status onto a processing record. The
// transition guard makes the terminal write at most once even under
// overlapping calls.
func (s *Store) resolve(ctx context.Context, id string, status domain.PaymentStatus, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := s.findLocked(id)
	if txn == nil {
		s.logger.Warn("resolved transaction missing from log", zap.String("transaction_id", id))
		return
	}
	if !domain.CanTransitionTo(txn.Status, status) {
		s.logger.Warn("illegal status transition",
			zap.String("transaction_id", id),
			zap.String("from", txn.Status.String()),
			zap.String("to", status.String()))
		return
	}

	txn.Status = status
	txn.FailureReason = reason
	s.persist(ctx)
}

// RefundPayment refunds a successful transaction in full. The id may be
// the internal transaction id or the gateway reference. A transaction
// that already carries a refund sub-record is not refundable again.
func (s *Store) RefundPayment(ctx context.Context, transactionID string) (domain.PaymentTransaction, error) {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	s.mu.Lock()
	txn := s.findLocked(transactionID)
	if txn == nil {
		s.mu.Unlock()
		return domain.PaymentTransaction{}, ErrTransactionNotFound
	}
	if txn.Status != domain.PaymentStatusSuccess {
		s.mu.Unlock()
		return domain.PaymentTransaction{}, ErrNotRefundable
	}
	if txn.Refunded() {
		s.mu.Unlock()
		return domain.PaymentTransaction{}, ErrAlreadyRefunded
	}
	id, amount := txn.ID, txn.Amount
	s.mu.Unlock()

	result, err := s.gateway.Refund(ctx, amount)
	if err != nil {
		return domain.PaymentTransaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn = s.findLocked(id)
	if txn == nil {
		return domain.PaymentTransaction{}, ErrTransactionNotFound
	}
	if txn.Refunded() {
		// a concurrent call won while we waited on the gateway
		return domain.PaymentTransaction{}, ErrAlreadyRefunded
	}

	txn.RefundID = newID("RFD")
	txn.RefundAmount = amount
	if result.Processed {
		txn.RefundStatus = domain.RefundStatusProcessed
	} else {
		txn.RefundStatus = domain.RefundStatusFailed
	}
	s.persist(ctx)

	if !result.Processed {
		return *txn, ErrRefundDeclined
	}
	return *txn, nil
}

// History returns all transactions sorted by creation time, most recent
// first. Pure projection: the store's state is not touched and the
// returned slice is the caller's to mutate.
func (s *Store) History() []domain.PaymentTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.PaymentTransaction, len(s.transactions))
	copy(out, s.transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// findLocked matches a transaction by internal id or gateway reference.
// Must be called with the lock held.
func (s *Store) findLocked(id string) *domain.PaymentTransaction {
	for i := range s.transactions {
		if s.transactions[i].ID == id || s.transactions[i].GatewayTransactionID == id {
			return &s.transactions[i]
		}
	}
	return nil
}

// persist writes the whole log through to durable storage. Failures are
// logged, not surfaced; the in-memory log stays authoritative. Must be
// called with the lock held.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.transactions)
	if err != nil {
		s.logger.Warn("failed to marshal payment history", zap.Error(err))
		return
	}
	if err := s.kv.Save(ctx, storage.KeyPaymentHistory, data); err != nil {
		s.logger.Warn("failed to persist payment history", zap.Error(err))
	}
}

func newID(prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}
