// Package host provides an in-memory host ledger for keeper tests. It models
// the external exchange that owns pool lifecycle calls: asset balances,
// custody, ledger credit, and the synchronous settlement round-trip.
package host

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/constantsum/csmm/x/csmm/types"
)

// Ledger is a test double for the host exchange. Balances and ledger credits
// live in plain maps keyed by bech32 address and asset. The zero flags make
// every host-side failure mode injectable.
type Ledger struct {
	addr     sdk.AccAddress
	callback types.SettlementCallback

	balances map[string]map[string]math.Int
	credits  map[string]map[string]math.Int

	// RejectSettlements makes RequestSettlement fail before the callback.
	RejectSettlements bool
	// SkipCallback makes RequestSettlement return success without ever
	// re-entering the pool.
	SkipCallback bool

	// SettlementCount counts completed settlement round-trips.
	SettlementCount int
}

// New creates an empty in-memory host ledger.
func New() *Ledger {
	return &Ledger{
		addr:     sdk.AccAddress([]byte("host_ledger_________")),
		balances: make(map[string]map[string]math.Int),
		credits:  make(map[string]map[string]math.Int),
	}
}

// SetCallback registers the pool's settlement re-entry point.
func (h *Ledger) SetCallback(cb types.SettlementCallback) {
	h.callback = cb
}

// Address implements types.HostLedger.
func (h *Ledger) Address() sdk.AccAddress {
	return h.addr
}

// RequestSettlement implements types.HostLedger. It re-enters the pool
// synchronously through the registered callback unless a failure mode is
// armed.
func (h *Ledger) RequestSettlement(ctx context.Context, payload []byte) error {
	if h.RejectSettlements {
		return fmt.Errorf("host rejected settlement request")
	}
	if h.SkipCallback {
		return nil
	}
	if h.callback == nil {
		return fmt.Errorf("no settlement callback registered")
	}

	// A failed settlement must leave the host side untouched too, mirroring
	// the transactional semantics a real exchange provides.
	balances, credits := snapshot(h.balances), snapshot(h.credits)
	if err := h.callback(ctx, h.addr, payload); err != nil {
		h.balances, h.credits = balances, credits
		return err
	}
	h.SettlementCount++
	return nil
}

func snapshot(m map[string]map[string]math.Int) map[string]map[string]math.Int {
	out := make(map[string]map[string]math.Int, len(m))
	for addr, assets := range m {
		inner := make(map[string]math.Int, len(assets))
		for asset, amount := range assets {
			inner[asset] = amount
		}
		out[addr] = inner
	}
	return out
}

// PullAssetIn implements types.HostLedger: it moves amount of asset from the
// account into host custody.
func (h *Ledger) PullAssetIn(ctx context.Context, asset string, from sdk.AccAddress, amount math.Int) error {
	if err := h.sub(h.balances, from.String(), asset, amount); err != nil {
		return fmt.Errorf("pull %s from %s: %w", asset, from.String(), err)
	}
	h.add(h.balances, h.addr.String(), asset, amount)
	return nil
}

// PushAssetOut implements types.HostLedger: it releases amount of asset from
// host custody to the account.
func (h *Ledger) PushAssetOut(ctx context.Context, asset string, to sdk.AccAddress, amount math.Int) error {
	if err := h.sub(h.balances, h.addr.String(), asset, amount); err != nil {
		return fmt.Errorf("push %s to %s: %w", asset, to.String(), err)
	}
	h.add(h.balances, to.String(), asset, amount)
	return nil
}

// CreditLedger implements types.HostLedger.
func (h *Ledger) CreditLedger(ctx context.Context, asset string, owner sdk.AccAddress, amount math.Int) error {
	h.add(h.credits, owner.String(), asset, amount)
	return nil
}

// DebitLedger implements types.HostLedger.
func (h *Ledger) DebitLedger(ctx context.Context, asset string, owner sdk.AccAddress, amount math.Int) error {
	if err := h.sub(h.credits, owner.String(), asset, amount); err != nil {
		return fmt.Errorf("debit %s credit of %s: %w", asset, owner.String(), err)
	}
	return nil
}

// FundAccount seeds an account with amount of asset.
func (h *Ledger) FundAccount(addr sdk.AccAddress, asset string, amount math.Int) {
	h.add(h.balances, addr.String(), asset, amount)
}

// BalanceOf returns an account's asset balance. Host custody lives under the
// host's own address.
func (h *Ledger) BalanceOf(addr sdk.AccAddress, asset string) math.Int {
	return h.get(h.balances, addr.String(), asset)
}

// CustodyOf returns the amount of asset held in host custody.
func (h *Ledger) CustodyOf(asset string) math.Int {
	return h.get(h.balances, h.addr.String(), asset)
}

// CreditOf returns an account's ledger credit in asset.
func (h *Ledger) CreditOf(addr sdk.AccAddress, asset string) math.Int {
	return h.get(h.credits, addr.String(), asset)
}

// ExecuteSwap drives a swap the way the host would: it asks the interceptor
// for the override delta, then applies the trade to the trader's balances and
// host custody at the 1:1 rate the delta encodes.
func (h *Ledger) ExecuteSwap(ctx context.Context, hooks types.PoolHooks, trader sdk.AccAddress, pool types.Pool, req types.SwapRequest) (types.OverrideDelta, error) {
	delta, err := hooks.BeforeSwap(ctx, trader, pool, req)
	if err != nil {
		return types.OverrideDelta{}, err
	}

	amount := req.Amount()
	assetIn, assetOut := pool.Asset0, pool.Asset1
	if !req.ZeroForOne {
		assetIn, assetOut = pool.Asset1, pool.Asset0
	}

	if err := h.sub(h.balances, trader.String(), assetIn, amount); err != nil {
		return types.OverrideDelta{}, fmt.Errorf("trader %s: %w", assetIn, err)
	}
	h.add(h.balances, h.addr.String(), assetIn, amount)
	if err := h.sub(h.balances, h.addr.String(), assetOut, amount); err != nil {
		return types.OverrideDelta{}, fmt.Errorf("custody %s: %w", assetOut, err)
	}
	h.add(h.balances, trader.String(), assetOut, amount)

	return delta, nil
}

// ModifyLiquidity drives the host's generic liquidity path through the
// interceptor.
func (h *Ledger) ModifyLiquidity(ctx context.Context, hooks types.PoolHooks, sender sdk.AccAddress, pool types.Pool, amount0, amount1 math.Int) error {
	return hooks.BeforeAddLiquidity(ctx, sender, pool, amount0, amount1)
}

func (h *Ledger) get(m map[string]map[string]math.Int, addr, asset string) math.Int {
	amount, ok := m[addr][asset]
	if !ok {
		return math.ZeroInt()
	}
	return amount
}

func (h *Ledger) add(m map[string]map[string]math.Int, addr, asset string, amount math.Int) {
	if m[addr] == nil {
		m[addr] = make(map[string]math.Int)
	}
	m[addr][asset] = h.get(m, addr, asset).Add(amount)
}

func (h *Ledger) sub(m map[string]map[string]math.Int, addr, asset string, amount math.Int) error {
	have := h.get(m, addr, asset)
	if have.LT(amount) {
		return fmt.Errorf("insufficient funds: have %s, need %s", have.String(), amount.String())
	}
	m[addr][asset] = have.Sub(amount)
	return nil
}

var _ types.HostLedger = (*Ledger)(nil)
