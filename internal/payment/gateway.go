package payment

import (
	"context"
	"math/rand"
	"time"

	"github.com/elitecart/storefront/internal/domain"
)

// ChargeResult is the gateway's decision for one charge attempt.
// Reason is set only when the charge was declined.
type ChargeResult struct {
	Approved bool
	Reason   string
}

type RefundResult struct {
	Processed bool
}

// Gateway models the external payment processor. Charge and Refund
// block for the processor's latency; implementations decide the
// outcome, the store owns the transaction record.
type Gateway interface {
	Charge(ctx context.Context, details domain.PaymentDetails) (ChargeResult, error)
	Refund(ctx context.Context, amount float64) (RefundResult, error)
}

// successPercent is the fixed approval rate of the simulated processor.
const successPercent = 90

// failureReasons is the fixed set a declined charge draws from.
var failureReasons = []string{
	"Insufficient funds",
	"Card declined by bank",
	"Transaction timeout",
	"Invalid OTP",
	"Bank server error",
	"Payment cancelled by user",
}

// SimulatedGateway approves 90% of charges after a randomized delay.
// Refunds always process. Zero the delays for instant outcomes.
type SimulatedGateway struct {
	ChargeDelayMin time.Duration
	ChargeDelayMax time.Duration
	RefundDelay    time.Duration
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{
		ChargeDelayMin: 2 * time.Second,
		ChargeDelayMax: 5 * time.Second,
		RefundDelay:    2 * time.Second,
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ domain.PaymentDetails) (ChargeResult, error) {
	delay := g.ChargeDelayMin
	if span := g.ChargeDelayMax - g.ChargeDelayMin; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	if err := wait(ctx, delay); err != nil {
		return ChargeResult{}, err
	}

	return decideOutcome(rand.Intn(100), rand.Intn(len(failureReasons))), nil
}

// decideOutcome maps a draw in [0,100) and a reason index to a charge
// result. Kept free of the random source so it can be tested directly.
func decideOutcome(draw, reason int) ChargeResult {
	if draw < successPercent {
		return ChargeResult{Approved: true}
	}
	return ChargeResult{Reason: failureReasons[reason]}
}

// Refund always processes for this implementation.
func (g *SimulatedGateway) Refund(ctx context.Context, _ float64) (RefundResult, error) {
	if err := wait(ctx, g.RefundDelay); err != nil {
		return RefundResult{}, err
	}
	return RefundResult{Processed: true}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
