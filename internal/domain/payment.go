package domain

import "time"

type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodCard       PaymentMethod = "card"
	MethodNetbanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
	MethodCOD        PaymentMethod = "cod"
	MethodEMI        PaymentMethod = "emi"
)

// PaymentMethods lists every method the gateway accepts, in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodUPI, MethodCard, MethodNetbanking, MethodWallet, MethodCOD, MethodEMI}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodUPI, MethodCard, MethodNetbanking, MethodWallet, MethodCOD, MethodEMI:
		return true
	}
	return false
}

type PaymentStatus string

const (
	// PaymentStatusPending is reserved; the current flow creates
	// transactions directly in processing.
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccess    PaymentStatus = "success"
	PaymentStatusFailed     PaymentStatus = "failed"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSuccess || s == PaymentStatusFailed
}

// String representation (for logging)
func (s PaymentStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether a transaction in status `from` may move
// to status `to`. Terminal statuses never transition.
func CanTransitionTo(from, to PaymentStatus) bool {
	switch from {
	case PaymentStatusPending:
		return to == PaymentStatusProcessing
	case PaymentStatusProcessing:
		return to == PaymentStatusSuccess || to == PaymentStatusFailed
	default:
		return false
	}
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusProcessed RefundStatus = "processed"
	RefundStatusFailed    RefundStatus = "failed"
)

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BillingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// PaymentDetails is the immutable input of a payment attempt.
type PaymentDetails struct {
	Method         PaymentMethod   `json:"method"`
	Amount         float64         `json:"amount"`
	Currency       string          `json:"currency"`
	OrderID        string          `json:"orderId"`
	CustomerInfo   CustomerInfo    `json:"customerInfo"`
	BillingAddress *BillingAddress `json:"billingAddress,omitempty"`
}

// PaymentTransaction records a single payment attempt. The status and the
// refund fields are the only parts that mutate after creation.
type PaymentTransaction struct {
	ID                   string        `json:"id"`
	OrderID              string        `json:"orderId"`
	Method               PaymentMethod `json:"method"`
	Amount               float64       `json:"amount"`
	Status               PaymentStatus `json:"status"`
	Timestamp            time.Time     `json:"timestamp"`
	GatewayTransactionID string        `json:"gatewayTransactionId,omitempty"`
	FailureReason        string        `json:"failureReason,omitempty"`
	RefundID             string        `json:"refundId,omitempty"`
	RefundAmount         float64       `json:"refundAmount,omitempty"`
	RefundStatus         RefundStatus  `json:"refundStatus,omitempty"`
}

// Refunded reports whether a refund sub-record has been attached.
func (t *PaymentTransaction) Refunded() bool {
	return t.RefundID != ""
}
