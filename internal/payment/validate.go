package payment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elitecart/storefront/internal/domain"
)

// MethodData carries the method-specific form fields submitted with a
// payment: card number and expiry, UPI id, bank selection, wallet name.
type MethodData map[string]string

var (
	ErrUnknownMethod  = errors.New("unknown payment method")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrMissingOrderID = errors.New("order id is required")
	ErrInvalidCard    = errors.New("invalid card details")
	ErrInvalidUPIID   = errors.New("invalid UPI ID")
	ErrUnknownBank    = errors.New("please select a valid bank")
	ErrMissingWallet  = errors.New("please select a wallet")
)

// banks supported for netbanking, keyed by selection id.
var banks = map[string]string{
	"sbi":      "State Bank of India",
	"hdfc":     "HDFC Bank",
	"icici":    "ICICI Bank",
	"axis":     "Axis Bank",
	"kotak":    "Kotak Mahindra Bank",
	"pnb":      "Punjab National Bank",
	"bob":      "Bank of Baroda",
	"canara":   "Canara Bank",
	"union":    "Union Bank of India",
	"indian":   "Indian Bank",
	"central":  "Central Bank of India",
	"boi":      "Bank of India",
	"idbi":     "IDBI Bank",
	"yes":      "Yes Bank",
	"indusind": "IndusInd Bank",
	"federal":  "Federal Bank",
	"karur":    "Karur Vysya Bank",
	"south":    "South Indian Bank",
}

// validateDetails rejects malformed payment input before any record is
// created.
func validateDetails(details domain.PaymentDetails) error {
	if !details.Method.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMethod, details.Method)
	}
	if details.Amount <= 0 {
		return ErrInvalidAmount
	}
	if details.OrderID == "" {
		return ErrMissingOrderID
	}
	return nil
}

func validateMethodData(method domain.PaymentMethod, data MethodData) error {
	switch method {
	case domain.MethodCard:
		number := strings.ReplaceAll(data["cardNumber"], " ", "")
		if !allDigits(number) || len(number) < 13 || len(number) > 19 {
			return fmt.Errorf("%w: card number", ErrInvalidCard)
		}
		if data["expiryMonth"] == "" || data["expiryYear"] == "" {
			return fmt.Errorf("%w: expiry", ErrInvalidCard)
		}
		cvv := data["cvv"]
		if !allDigits(cvv) || len(cvv) < 3 {
			return fmt.Errorf("%w: cvv", ErrInvalidCard)
		}
	case domain.MethodUPI:
		if !strings.Contains(data["upiId"], "@") {
			return ErrInvalidUPIID
		}
	case domain.MethodNetbanking:
		if _, ok := banks[data["bankId"]]; !ok {
			return ErrUnknownBank
		}
	case domain.MethodWallet:
		if data["walletName"] == "" {
			return ErrMissingWallet
		}
	case domain.MethodCOD, domain.MethodEMI:
		// nothing to validate
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
