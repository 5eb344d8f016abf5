package types

import (
	"cosmossdk.io/math"
)

// SwapRequest is the swap intercepted from the host before it applies its own
// pricing. AmountSpecified is signed: the sign distinguishes exact-input from
// exact-output from the trader's perspective. A constant-sum pool quotes 1:1,
// so both resolve to the same counter-amount.
type SwapRequest struct {
	ZeroForOne      bool
	AmountSpecified math.Int
}

// Amount returns the unsigned swap size.
func (r SwapRequest) Amount() math.Int {
	return r.AmountSpecified.Abs()
}

// Validate rejects empty or zero-size swaps.
func (r SwapRequest) Validate() error {
	if r.AmountSpecified.IsNil() || r.AmountSpecified.IsZero() {
		return ErrInvalidAmount.Wrap("swap amount must be non-zero")
	}
	return nil
}

// OverrideDelta is returned to the host from the swap interceptor. Combined
// with the host's own delta accounting it cancels the host's default pricing
// and execution path: the pool has already applied the full 1:1 exchange.
type OverrideDelta struct {
	// AmountSpecified offsets the trader's specified amount.
	AmountSpecified math.Int

	// AmountUnspecified is the counter-amount on the other asset, equal in
	// magnitude because the pool prices every swap at exactly 1:1.
	AmountUnspecified math.Int
}

// NewOverrideDelta derives the delta that suppresses the host's execution of
// the given request.
func NewOverrideDelta(amountSpecified math.Int) OverrideDelta {
	return OverrideDelta{
		AmountSpecified:   amountSpecified.Neg(),
		AmountUnspecified: amountSpecified,
	}
}
