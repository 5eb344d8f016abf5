package keeper

import (
	"bytes"
	"context"
	"crypto/sha256"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// requestSettlement drives one two-phase settlement round-trip: it hands the
// encoded record to the host, which re-enters OnSettlementCallback before
// returning. At most one request is in flight at a time; the marker in the
// transient store enforces that and lets the callback reject unsolicited or
// replayed payloads.
func (k Keeper) requestSettlement(ctx context.Context, ps types.PendingSettlement) error {
	if err := k.requireHost(); err != nil {
		return err
	}
	if err := ps.Validate(); err != nil {
		return err
	}

	payload, err := ps.Encode()
	if err != nil {
		return types.ErrSettlementFailed.Wrapf("encode settlement: %v", err)
	}

	mem := k.getMemStore(ctx)
	if mem.Has(InFlightSettlementKey) {
		return types.ErrSettlementInFlight
	}

	sum := sha256.Sum256(payload)
	mem.Set(InFlightSettlementKey, sum[:])

	if err := k.host.RequestSettlement(ctx, payload); err != nil {
		mem.Delete(InFlightSettlementKey)
		k.metrics.SettlementFailures.WithLabelValues(ps.PoolID.String()).Inc()
		return types.ErrSettlementFailed.Wrap(err.Error())
	}

	// The callback consumes the marker. A host that returns success without
	// re-entering never settled anything.
	if mem.Has(InFlightSettlementKey) {
		mem.Delete(InFlightSettlementKey)
		k.metrics.SettlementFailures.WithLabelValues(ps.PoolID.String()).Inc()
		return types.ErrSettlementFailed.Wrap("host returned without invoking the settlement callback")
	}
	return nil
}

// OnSettlementCallback is the host's re-entry point during RequestSettlement.
// It decodes the opaque record and instructs the host to move assets and
// ledger credit according to the settlement direction. Any failure here
// propagates out and aborts the whole enclosing liquidity call.
func (k Keeper) OnSettlementCallback(ctx context.Context, caller sdk.AccAddress, payload []byte) error {
	if k.host == nil || !caller.Equals(k.host.Address()) {
		return types.ErrOnlyHost.Wrapf("callback from %s", caller.String())
	}

	mem := k.getMemStore(ctx)
	marker := mem.Get(InFlightSettlementKey)
	sum := sha256.Sum256(payload)
	if marker == nil || !bytes.Equal(marker, sum[:]) {
		return types.ErrSettlementFailed.Wrap("no matching settlement in flight")
	}
	// Single use: a second callback for the same payload is unsolicited.
	mem.Delete(InFlightSettlementKey)

	ps, err := types.DecodePendingSettlement(payload)
	if err != nil {
		return err
	}
	if err := ps.Validate(); err != nil {
		return err
	}

	switch ps.Direction {
	case types.SettlementDeposit:
		return k.settleDeposit(ctx, ps)
	case types.SettlementWithdraw:
		return k.settleWithdraw(ctx, ps)
	default:
		return types.ErrSettlementFailed.Wrapf("unknown direction %d", ps.Direction)
	}
}

// settleDeposit pulls both assets from the requester into host custody and
// converts that custody into pool-owned ledger credit, one asset at a time.
func (k Keeper) settleDeposit(ctx context.Context, ps types.PendingSettlement) error {
	if err := k.host.PullAssetIn(ctx, ps.Asset0, ps.Requester, ps.Amount0); err != nil {
		return types.ErrSettlementFailed.Wrapf("pull %s: %v", ps.Asset0, err)
	}
	if err := k.host.CreditLedger(ctx, ps.Asset0, k.poolOwner, ps.Amount0); err != nil {
		return types.ErrSettlementFailed.Wrapf("credit %s: %v", ps.Asset0, err)
	}
	if err := k.host.PullAssetIn(ctx, ps.Asset1, ps.Requester, ps.Amount1); err != nil {
		return types.ErrSettlementFailed.Wrapf("pull %s: %v", ps.Asset1, err)
	}
	if err := k.host.CreditLedger(ctx, ps.Asset1, k.poolOwner, ps.Amount1); err != nil {
		return types.ErrSettlementFailed.Wrapf("credit %s: %v", ps.Asset1, err)
	}
	return nil
}

// settleWithdraw consumes pool-owned ledger credit and pays the underlying
// assets out to the requester, one asset at a time.
func (k Keeper) settleWithdraw(ctx context.Context, ps types.PendingSettlement) error {
	if err := k.host.DebitLedger(ctx, ps.Asset0, k.poolOwner, ps.Amount0); err != nil {
		return types.ErrSettlementFailed.Wrapf("debit %s: %v", ps.Asset0, err)
	}
	if err := k.host.PushAssetOut(ctx, ps.Asset0, ps.Requester, ps.Amount0); err != nil {
		return types.ErrSettlementFailed.Wrapf("push %s: %v", ps.Asset0, err)
	}
	if err := k.host.DebitLedger(ctx, ps.Asset1, k.poolOwner, ps.Amount1); err != nil {
		return types.ErrSettlementFailed.Wrapf("debit %s: %v", ps.Asset1, err)
	}
	if err := k.host.PushAssetOut(ctx, ps.Asset1, ps.Requester, ps.Amount1); err != nil {
		return types.ErrSettlementFailed.Wrapf("push %s: %v", ps.Asset1, err)
	}
	return nil
}
