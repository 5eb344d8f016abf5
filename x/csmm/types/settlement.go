package types

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SettlementDirection says which way assets move relative to the requester.
type SettlementDirection byte

const (
	// SettlementDeposit moves assets from the requester into the host's
	// custody and converts them into pool-owned ledger credit.
	SettlementDeposit SettlementDirection = 1

	// SettlementWithdraw consumes pool-owned ledger credit and pays the
	// underlying assets out to the requester.
	SettlementWithdraw SettlementDirection = 2
)

// PendingSettlement describes one settlement round-trip with the host ledger.
// It is handed to the host opaquely encoded and returned unchanged in the
// callback. It lives only for the duration of that round-trip and is never
// persisted.
type PendingSettlement struct {
	Amount0   math.Int            `json:"amount0"`
	Amount1   math.Int            `json:"amount1"`
	Asset0    string              `json:"asset0"`
	Asset1    string              `json:"asset1"`
	Requester sdk.AccAddress      `json:"requester"`
	PoolID    PoolID              `json:"pool_id"`
	Direction SettlementDirection `json:"direction"`
}

// Encode serializes the record into the opaque payload passed to the host.
func (ps PendingSettlement) Encode() ([]byte, error) {
	return json.Marshal(ps)
}

// DecodePendingSettlement reverses Encode.
func DecodePendingSettlement(bz []byte) (PendingSettlement, error) {
	var ps PendingSettlement
	if err := json.Unmarshal(bz, &ps); err != nil {
		return PendingSettlement{}, ErrSettlementFailed.Wrapf("malformed settlement payload: %v", err)
	}
	return ps, nil
}

// Validate checks the record before any host instruction is issued.
func (ps PendingSettlement) Validate() error {
	if ps.Direction != SettlementDeposit && ps.Direction != SettlementWithdraw {
		return ErrSettlementFailed.Wrapf("unknown settlement direction %d", ps.Direction)
	}
	if ps.Amount0.IsNil() || ps.Amount1.IsNil() || !ps.Amount0.IsPositive() || !ps.Amount1.IsPositive() {
		return ErrInvalidAmount.Wrap("settlement amounts must be positive")
	}
	if err := sdk.ValidateDenom(ps.Asset0); err != nil {
		return ErrSettlementFailed.Wrapf("asset0: %v", err)
	}
	if err := sdk.ValidateDenom(ps.Asset1); err != nil {
		return ErrSettlementFailed.Wrapf("asset1: %v", err)
	}
	if ps.Requester.Empty() {
		return ErrSettlementFailed.Wrap("empty requester")
	}
	return nil
}
